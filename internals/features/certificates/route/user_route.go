package route

import (
	certificateController "kursusku_backend/internals/features/certificates/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CertificateUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := certificateController.NewCertificateController(db)

	events := user.Group("/events")
	events.Get("/:id/certificate", ctrl.GetCertificate)                 // 📜 Status / belum layak
	events.Post("/:id/certificate/claim", ctrl.ClaimCertificate)        // 🎓 Terbitkan bila lolos ambang
	events.Get("/:id/certificate/image", ctrl.DownloadCertificateImage) // 🖼️ PNG
}
