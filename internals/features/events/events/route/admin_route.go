package route

import (
	eventController "kursusku_backend/internals/features/events/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventAdminController(db)

	events := admin.Group("/events")
	events.Post("/", ctrl.CreateEvent)
	events.Put("/:id/publish", ctrl.PublishEvent)
	events.Post("/:id/sessions", ctrl.CreateEventSession)
}
