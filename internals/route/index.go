// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	affiliateRoute "kursusku_backend/internals/features/affiliates/route"
	certificateRoute "kursusku_backend/internals/features/certificates/route"
	eventRoute "kursusku_backend/internals/features/events/events/route"
	purchaseRoute "kursusku_backend/internals/features/events/purchases/route"
	mediaRoute "kursusku_backend/internals/features/media/route"
	progressRoute "kursusku_backend/internals/features/quiz/progress/route"
	quizRoute "kursusku_backend/internals/features/quiz/quizzes/route"
	authRoute "kursusku_backend/internals/features/users/auth/route"
	profileRoute "kursusku_backend/internals/features/users/user_profiles/route"
	authMiddleware "kursusku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan semua route aplikasi.
//   - /api/auth               → publik (login, register, google, logout)
//   - /api/payments/notification → publik (webhook Midtrans, skip auth)
//   - /api/u/*                → butuh token user
//   - /api/a/*                → butuh token (admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🔓 Publik
	authRoute.AuthRoutes(app, db)
	purchaseRoute.PaymentWebhookRoutes(app, db)

	// 🔒 User login
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	profileRoute.UserProfileRoutes(user, db)
	eventRoute.EventUserRoutes(user, db)
	purchaseRoute.PurchaseUserRoutes(user, db)
	quizRoute.QuizUserRoutes(user, db)
	progressRoute.ProgressUserRoutes(user, db)
	certificateRoute.CertificateUserRoutes(user, db)
	mediaRoute.MediaUserRoutes(user, db)
	affiliateRoute.AffiliateUserRoutes(user, db)

	// 🛠️ Admin
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))
	eventRoute.EventAdminRoutes(admin, db)
	quizRoute.QuizAdminRoutes(admin, db)
}
