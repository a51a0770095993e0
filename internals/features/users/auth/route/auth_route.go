// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "kursusku_backend/internals/features/users/auth/controller"
	rateLimiter "kursusku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)

	// 🔒 Butuh token (blacklist diisi saat logout)
	baseAuth.Post("/logout", authController.Logout)
}
