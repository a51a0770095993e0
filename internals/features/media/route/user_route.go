package route

import (
	mediaController "kursusku_backend/internals/features/media/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MediaUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := mediaController.NewMediaController(db)

	sessions := user.Group("/sessions")
	sessions.Get("/:id/media", ctrl.GetSessionMedia) // 📂 videos[] + files[]

	media := user.Group("/media")
	media.Get("/signed-video/:filename", ctrl.GetSignedVideo)
	media.Get("/signed-file/:filename", ctrl.GetSignedFile)
	media.Get("/stream/:filename", ctrl.StreamMedia)   // verifikasi exp + sig
	media.Get("/preview/:filename", ctrl.PreviewImage) // webp + badge watermark
}
