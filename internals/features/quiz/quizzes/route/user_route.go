package route

import (
	quizController "kursusku_backend/internals/features/quiz/quizzes/controller"
	"kursusku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func QuizUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizUserController(db)

	sessions := user.Group("/sessions")
	// 📄 Soal tanpa kunci / ✅ Nilai + simpan hasil
	sessions.Get("/:id/quiz", ctrl.GetSessionQuiz)
	sessions.Post("/:id/quiz/submit", middlewares.QuizSubmitRateLimiter(), ctrl.SubmitSessionQuiz)
}
