package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	purchaseService "kursusku_backend/internals/features/events/purchases/service"
	progressService "kursusku_backend/internals/features/quiz/progress/service"
	"kursusku_backend/internals/features/quiz/quizzes/dto"
	"kursusku_backend/internals/features/quiz/quizzes/engine"
	"kursusku_backend/internals/features/quiz/quizzes/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type QuizUserController struct {
	DB *gorm.DB
}

func NewQuizUserController(db *gorm.DB) *QuizUserController {
	return &QuizUserController{DB: db}
}

// =============================
// 📄 Ambil kuis satu sesi (soal tanpa kunci)
// =============================
func (ctrl *QuizUserController) GetSessionQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}

	if err := ctrl.requirePurchased(c, userID, sessionID); err != nil {
		return err
	}

	var quiz model.SessionQuizModel
	if err := ctrl.DB.Where("session_quiz_session_id = ?", sessionID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi ini tidak memiliki kuis")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	var questions []model.SessionQuizQuestionModel
	if err := ctrl.DB.
		Where("session_quiz_question_quiz_id = ?", quiz.SessionQuizID).
		Order("session_quiz_question_order ASC").
		Find(&questions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	return helper.Success(c, "Berhasil ambil kuis", dto.ToSessionQuizWithQuestionsDTO(quiz, questions))
}

// =============================
// ✅ Submit jawaban kuis satu sesi
// =============================
func (ctrl *QuizUserController) SubmitSessionQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}

	if err := ctrl.requirePurchased(c, userID, sessionID); err != nil {
		return err
	}

	var body dto.SubmitQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var quiz model.SessionQuizModel
	if err := ctrl.DB.Where("session_quiz_session_id = ?", sessionID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi ini tidak memiliki kuis")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	var questionRows []model.SessionQuizQuestionModel
	if err := ctrl.DB.
		Where("session_quiz_question_quiz_id = ?", quiz.SessionQuizID).
		Order("session_quiz_question_order ASC").
		Find(&questionRows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	// Rakit attempt dari jawaban yang dikirim
	questions := make([]engine.Question, 0, len(questionRows))
	for _, q := range questionRows {
		questions = append(questions, engine.Question{
			ID:      q.SessionQuizQuestionID,
			Text:    q.SessionQuizQuestion,
			Options: q.SessionQuizQuestionOptions,
			Correct: q.SessionQuizQuestionCorrect,
		})
	}
	attempt := engine.NewAttempt(questions)

	for rawID, letter := range body.Answers {
		qid, err := uuid.Parse(rawID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Question ID tidak valid: "+rawID)
		}
		if err := attempt.SelectAnswer(qid, letter); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	// Semua soal wajib terjawab sebelum dinilai
	if err := attempt.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Ambang dari setting event (default 80 bila tidak ada)
	var session struct {
		EventSessionEventID uuid.UUID `gorm:"column:event_session_event_id"`
	}
	if err := ctrl.DB.Table("event_sessions").
		Select("event_session_event_id").
		Where("event_session_id = ?", sessionID).
		First(&session).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	aggregator := progressService.NewAggregator(ctrl.DB)
	minScore, err := aggregator.MinScoreRequired(c.UserContext(), session.EventSessionEventID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil ambang kelulusan")
	}

	result, err := attempt.Grade(minScore)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Attempt baru menggantikan penuh hasil lama (upsert per user+quiz)
	row := model.UserQuizResultModel{
		UserQuizResultQuizID:       quiz.SessionQuizID,
		UserQuizResultUserID:       userID,
		UserQuizResultScore:        result.ScorePercent,
		UserQuizResultCorrectCount: result.CorrectAnswers,
		UserQuizResultTotalCount:   result.TotalQuestions,
		UserQuizResultPassed:       result.Passed,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_quiz_result_quiz_id"}, {Name: "user_quiz_result_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_quiz_result_score",
			"user_quiz_result_correct_count",
			"user_quiz_result_total_count",
			"user_quiz_result_passed",
			"user_quiz_result_updated_at",
		}),
	}).Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan hasil kuis:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan hasil kuis")
	}

	return helper.Success(c, "Kuis dinilai", dto.QuizResultDTO{
		Result:           result,
		MinScoreRequired: minScore,
	})
}

// requirePurchased: kuis hanya untuk sesi yang sudah dibeli
func (ctrl *QuizUserController) requirePurchased(c *fiber.Ctx, userID, sessionID uuid.UUID) error {
	checker := purchaseService.NewPurchaseChecker(ctrl.DB)
	has, err := checker.HasPurchased(c.UserContext(), userID, sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek status pembelian")
	}
	if !has {
		return fiber.NewError(fiber.StatusForbidden, "Sesi belum dibeli")
	}
	return nil
}
