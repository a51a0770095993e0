package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/events/purchases/service"
)

type PaymentWebhookController struct {
	DB *gorm.DB
}

func NewPaymentWebhookController(db *gorm.DB) *PaymentWebhookController {
	return &PaymentWebhookController{DB: db}
}

// =============================
// 🔔 Notifikasi status Midtrans
// =============================
func (ctrl *PaymentWebhookController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := service.HandlePaymentStatusWebhook(ctrl.DB, body); err != nil {
		log.Println("[ERROR] Webhook gagal diproses:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses notifikasi")
	}

	return c.JSON(fiber.Map{"message": "OK"})
}
