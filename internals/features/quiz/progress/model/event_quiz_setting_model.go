package model

import (
	"time"

	"github.com/google/uuid"
)

// Ambang kelulusan per event. Baris tidak ada ⇒ pakai default 80.
type EventQuizSettingModel struct {
	EventQuizSettingID               uuid.UUID `gorm:"column:event_quiz_setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_quiz_setting_id"`
	EventQuizSettingEventID          uuid.UUID `gorm:"column:event_quiz_setting_event_id;type:uuid;not null;uniqueIndex:uq_event_quiz_settings_event" json:"event_quiz_setting_event_id"`
	EventQuizSettingMinScoreRequired float64   `gorm:"column:event_quiz_setting_min_score_required;not null;default:80" json:"event_quiz_setting_min_score_required"`
	EventQuizSettingCreatedAt        time.Time `gorm:"column:event_quiz_setting_created_at;autoCreateTime" json:"event_quiz_setting_created_at"`
}

func (EventQuizSettingModel) TableName() string {
	return "event_quiz_settings"
}
