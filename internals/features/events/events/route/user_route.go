package route

import (
	eventController "kursusku_backend/internals/features/events/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EventUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventUserController(db)

	events := user.Group("/events")
	events.Get("/", ctrl.GetEvents)
	events.Get("/:id", ctrl.GetEventDetail)
	events.Get("/:id/access", ctrl.GetEventAccess) // 🔐 Status beli + kuis + aksi per sesi
}
