package route

import (
	affiliateController "kursusku_backend/internals/features/affiliates/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AffiliateUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := affiliateController.NewAffiliateController(db)

	events := user.Group("/events")
	events.Get("/:id/affiliate", ctrl.GetAffiliateStatus)
	events.Post("/:id/affiliate/join", ctrl.JoinAffiliate) // 📝 Gerbang profil → form → status
}
