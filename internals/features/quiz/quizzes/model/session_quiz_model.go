package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionQuizModel struct {
	SessionQuizID          uuid.UUID `gorm:"column:session_quiz_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"session_quiz_id"`
	SessionQuizTitle       string    `gorm:"column:session_quiz_title;type:varchar(255);not null" json:"session_quiz_title"`
	SessionQuizDescription string    `gorm:"column:session_quiz_description;type:text" json:"session_quiz_description"`
	SessionQuizSessionID   uuid.UUID `gorm:"column:session_quiz_session_id;type:uuid;not null;uniqueIndex:uq_session_quizzes_session" json:"session_quiz_session_id"`
	SessionQuizCreatedAt   time.Time `gorm:"column:session_quiz_created_at;autoCreateTime" json:"session_quiz_created_at"`
}

func (SessionQuizModel) TableName() string {
	return "session_quizzes"
}
