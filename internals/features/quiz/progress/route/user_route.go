package route

import (
	progressController "kursusku_backend/internals/features/quiz/progress/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProgressUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	events := user.Group("/events")
	events.Get("/:id/quiz-progress", ctrl.GetEventQuizProgress) // 📊 Progress + ambang lulus
}
