package dto

import (
	"time"

	"kursusku_backend/internals/features/quiz/quizzes/engine"
	"kursusku_backend/internals/features/quiz/quizzes/model"
)

// ============================
// Response DTO (tampilan user: kunci jawaban & pembahasan dibuang)
// ============================

type QuizQuestionDTO struct {
	SessionQuizQuestionID    string            `json:"session_quiz_question_id"`
	SessionQuizQuestion      string            `json:"session_quiz_question"`
	SessionQuizQuestionOrder int               `json:"session_quiz_question_order"`
	Options                  map[string]string `json:"options"` // huruf → teks, hanya opsi berisi
}

type SessionQuizWithQuestionsDTO struct {
	SessionQuizID          string            `json:"session_quiz_id"`
	SessionQuizTitle       string            `json:"session_quiz_title"`
	SessionQuizDescription string            `json:"session_quiz_description"`
	SessionQuizSessionID   string            `json:"session_quiz_session_id"`
	SessionQuizCreatedAt   time.Time         `json:"session_quiz_created_at"`
	Questions              []QuizQuestionDTO `json:"questions"`
}

type QuizResultDTO struct {
	engine.Result
	MinScoreRequired float64 `json:"min_score_required"`
}

// ============================
// Request DTO
// ============================

type SubmitQuizRequest struct {
	// question_id → huruf pilihan (A–D)
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}

type CreateSessionQuizRequest struct {
	SessionQuizTitle       string `json:"session_quiz_title" validate:"required"`
	SessionQuizDescription string `json:"session_quiz_description"`
	SessionQuizSessionID   string `json:"session_quiz_session_id" validate:"required,uuid"`
}

type CreateQuizQuestionRequest struct {
	SessionQuizQuestion            string   `json:"session_quiz_question" validate:"required"`
	SessionQuizQuestionOptions     []string `json:"session_quiz_question_options" validate:"required,min=2,max=4,dive,required"`
	SessionQuizQuestionCorrect     string   `json:"session_quiz_question_correct" validate:"required,oneof=A B C D"`
	SessionQuizQuestionExplanation string   `json:"session_quiz_question_explanation"`
	SessionQuizQuestionOrder       int      `json:"session_quiz_question_order"`
}

// ============================
// Converter
// ============================

var optionLetters = []string{"A", "B", "C", "D"}

func ToQuizQuestionDTO(m model.SessionQuizQuestionModel) QuizQuestionDTO {
	options := make(map[string]string)
	for i, opt := range m.SessionQuizQuestionOptions {
		if i >= len(optionLetters) {
			break
		}
		if opt != "" {
			options[optionLetters[i]] = opt
		}
	}
	return QuizQuestionDTO{
		SessionQuizQuestionID:    m.SessionQuizQuestionID.String(),
		SessionQuizQuestion:      m.SessionQuizQuestion,
		SessionQuizQuestionOrder: m.SessionQuizQuestionOrder,
		Options:                  options,
	}
}

func ToSessionQuizWithQuestionsDTO(quiz model.SessionQuizModel, questions []model.SessionQuizQuestionModel) SessionQuizWithQuestionsDTO {
	qdtos := make([]QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		qdtos = append(qdtos, ToQuizQuestionDTO(q))
	}
	return SessionQuizWithQuestionsDTO{
		SessionQuizID:          quiz.SessionQuizID.String(),
		SessionQuizTitle:       quiz.SessionQuizTitle,
		SessionQuizDescription: quiz.SessionQuizDescription,
		SessionQuizSessionID:   quiz.SessionQuizSessionID.String(),
		SessionQuizCreatedAt:   quiz.SessionQuizCreatedAt,
		Questions:              qdtos,
	}
}
