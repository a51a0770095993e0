package route

import (
	profileController "kursusku_backend/internals/features/users/user_profiles/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserProfileRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewUserProfileController(db)

	profile := user.Group("/profile")
	profile.Get("/", ctrl.GetMyProfile)    // 📄 Profil + kelengkapan
	profile.Put("/", ctrl.UpdateMyProfile) // ✏️ Update profil
}
