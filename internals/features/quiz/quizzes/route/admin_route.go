package route

import (
	quizController "kursusku_backend/internals/features/quiz/quizzes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func QuizAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizAdminController(db)

	quizzes := admin.Group("/quizzes")
	quizzes.Post("/", ctrl.CreateSessionQuiz)
	quizzes.Post("/:id/questions", ctrl.AddQuizQuestion)
	quizzes.Delete("/:id/questions/:question_id", ctrl.DeleteQuizQuestion)
}
