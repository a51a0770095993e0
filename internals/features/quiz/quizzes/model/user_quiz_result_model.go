package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu baris per (user, quiz): attempt baru menggantikan penuh hasil lama.
type UserQuizResultModel struct {
	UserQuizResultID           uuid.UUID `gorm:"column:user_quiz_result_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_quiz_result_id"`
	UserQuizResultQuizID       uuid.UUID `gorm:"column:user_quiz_result_quiz_id;type:uuid;not null;uniqueIndex:uq_quiz_results_user_quiz" json:"user_quiz_result_quiz_id"`
	UserQuizResultUserID       uuid.UUID `gorm:"column:user_quiz_result_user_id;type:uuid;not null;uniqueIndex:uq_quiz_results_user_quiz" json:"user_quiz_result_user_id"`
	UserQuizResultScore        float64   `gorm:"column:user_quiz_result_score" json:"user_quiz_result_score"`
	UserQuizResultCorrectCount int       `gorm:"column:user_quiz_result_correct_count" json:"user_quiz_result_correct_count"`
	UserQuizResultTotalCount   int       `gorm:"column:user_quiz_result_total_count" json:"user_quiz_result_total_count"`
	UserQuizResultPassed       bool      `gorm:"column:user_quiz_result_passed" json:"user_quiz_result_passed"`
	UserQuizResultCreatedAt    time.Time `gorm:"column:user_quiz_result_created_at;autoCreateTime" json:"user_quiz_result_created_at"`
	UserQuizResultUpdatedAt    time.Time `gorm:"column:user_quiz_result_updated_at;autoUpdateTime" json:"user_quiz_result_updated_at"`
}

func (UserQuizResultModel) TableName() string {
	return "user_quiz_results"
}
