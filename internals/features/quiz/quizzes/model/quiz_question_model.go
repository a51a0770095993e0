package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SessionQuizQuestionModel struct {
	SessionQuizQuestionID          uuid.UUID      `gorm:"column:session_quiz_question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"session_quiz_question_id"`
	SessionQuizQuestionQuizID      uuid.UUID      `gorm:"column:session_quiz_question_quiz_id;type:uuid;not null;index:idx_quiz_questions_quiz" json:"session_quiz_question_quiz_id"`
	SessionQuizQuestion            string         `gorm:"column:session_quiz_question;type:text;not null" json:"session_quiz_question"`
	SessionQuizQuestionOptions     pq.StringArray `gorm:"column:session_quiz_question_options;type:text[]" json:"session_quiz_question_options"` // index 0..3 = huruf A..D
	SessionQuizQuestionCorrect     string         `gorm:"column:session_quiz_question_correct;type:char(1);not null" json:"session_quiz_question_correct"` // A/B/C/D
	SessionQuizQuestionExplanation string         `gorm:"column:session_quiz_question_explanation;type:text" json:"session_quiz_question_explanation"`
	SessionQuizQuestionOrder       int            `gorm:"column:session_quiz_question_order;not null;default:1" json:"session_quiz_question_order"`
	SessionQuizQuestionCreatedAt   time.Time      `gorm:"column:session_quiz_question_created_at;autoCreateTime" json:"session_quiz_question_created_at"`
}

func (SessionQuizQuestionModel) TableName() string {
	return "session_quiz_questions"
}
