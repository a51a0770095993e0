package route

import (
	purchaseController "kursusku_backend/internals/features/events/purchases/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PurchaseUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := purchaseController.NewPurchaseUserController(db)

	sessions := user.Group("/sessions")
	sessions.Get("/:id/purchase-check", ctrl.CheckPurchase) // 🔍 Cek status beli
	sessions.Post("/:id/buy", ctrl.BuySession)              // 💳 Beli / klaim gratis
	sessions.Post("/:id/cart", ctrl.AddToCart)              // 🛒 Tambah keranjang

	purchases := user.Group("/purchases")
	purchases.Get("/", ctrl.GetMyPurchases) // 📄 Riwayat pembelian
}

// Webhook publik (di-skip auth middleware)
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	webhookCtrl := purchaseController.NewPaymentWebhookController(db)
	app.Post("/api/payments/notification", webhookCtrl.HandleNotification)
}
