package model

import (
	"time"

	"github.com/google/uuid"
)

type EventSessionModel struct {
	EventSessionID              uuid.UUID `gorm:"column:event_session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"event_session_id"`
	EventSessionEventID         uuid.UUID `gorm:"column:event_session_event_id;type:uuid;not null;index:idx_event_sessions_event_id" json:"event_session_event_id"`
	EventSessionTitle           string    `gorm:"column:event_session_title;type:varchar(255);not null" json:"event_session_title"`
	EventSessionDurationMinutes int       `gorm:"column:event_session_duration_minutes" json:"event_session_duration_minutes"`
	EventSessionPrice           *int64    `gorm:"column:event_session_price" json:"event_session_price"` // 0/NULL = gratis
	EventSessionOrder           int       `gorm:"column:event_session_order;not null;default:1" json:"event_session_order"` // urutan tampil "Sesi N"
	EventSessionCreatedAt       time.Time `gorm:"column:event_session_created_at;autoCreateTime" json:"event_session_created_at"`
	EventSessionUpdatedAt       time.Time `gorm:"column:event_session_updated_at;autoUpdateTime" json:"event_session_updated_at"`
}

func (EventSessionModel) TableName() string {
	return "event_sessions"
}

// IsFree: harga 0 atau NULL berarti sesi gratis
func (m *EventSessionModel) IsFree() bool {
	return m.EventSessionPrice == nil || *m.EventSessionPrice == 0
}
