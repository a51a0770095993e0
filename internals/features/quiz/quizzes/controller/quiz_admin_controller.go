package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/quiz/quizzes/dto"
	"kursusku_backend/internals/features/quiz/quizzes/model"
	helper "kursusku_backend/internals/helpers"
)

type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

// =============================
// ➕ Buat kuis untuk satu sesi (maks 1 kuis per sesi)
// =============================
func (ctrl *QuizAdminController) CreateSessionQuiz(c *fiber.Ctx) error {
	var body dto.CreateSessionQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	sessionID, err := uuid.Parse(body.SessionQuizSessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}

	var count int64
	if err := ctrl.DB.Table("event_sessions").
		Where("event_session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek sesi")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	quiz := model.SessionQuizModel{
		SessionQuizTitle:       body.SessionQuizTitle,
		SessionQuizDescription: body.SessionQuizDescription,
		SessionQuizSessionID:   sessionID,
	}
	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		log.Println("[ERROR] Gagal membuat kuis:", err)
		return fiber.NewError(fiber.StatusBadRequest, "Sesi ini sudah memiliki kuis")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kuis berhasil dibuat", quiz)
}

// =============================
// ➕ Tambah soal ke kuis
// =============================
func (ctrl *QuizAdminController) AddQuizQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var body dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var quiz model.SessionQuizModel
	if err := ctrl.DB.First(&quiz, "session_quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kuis tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kuis")
	}

	// Kunci jawaban harus menunjuk opsi yang berisi
	idx := int(body.SessionQuizQuestionCorrect[0] - 'A')
	if idx >= len(body.SessionQuizQuestionOptions) || body.SessionQuizQuestionOptions[idx] == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Kunci jawaban menunjuk opsi kosong")
	}

	order := body.SessionQuizQuestionOrder
	if order <= 0 {
		var maxOrder int
		ctrl.DB.Table("session_quiz_questions").
			Select("COALESCE(MAX(session_quiz_question_order), 0)").
			Where("session_quiz_question_quiz_id = ?", quizID).
			Scan(&maxOrder)
		order = maxOrder + 1
	}

	question := model.SessionQuizQuestionModel{
		SessionQuizQuestionQuizID:      quizID,
		SessionQuizQuestion:            body.SessionQuizQuestion,
		SessionQuizQuestionOptions:     body.SessionQuizQuestionOptions,
		SessionQuizQuestionCorrect:     body.SessionQuizQuestionCorrect,
		SessionQuizQuestionExplanation: body.SessionQuizQuestionExplanation,
		SessionQuizQuestionOrder:       order,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		log.Println("[ERROR] Gagal menambah soal:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah soal")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Soal berhasil ditambahkan", question)
}

// =============================
// 🗑️ Hapus soal
// =============================
func (ctrl *QuizAdminController) DeleteQuizQuestion(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("question_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Question ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.SessionQuizQuestionModel{}, "session_quiz_question_id = ?", questionID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Soal tidak ditemukan")
	}

	return helper.Success(c, "Soal berhasil dihapus", nil)
}
