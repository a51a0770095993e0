package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status publish event. SCHEDULED berarti materi belum boleh dibuka sama sekali.
const (
	EventPublishStatusDraft     = "DRAFT"
	EventPublishStatusScheduled = "SCHEDULED"
	EventPublishStatusPublished = "PUBLISHED"
)

type EventModel struct {
	EventID             uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle          string     `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription    string     `gorm:"column:event_description;type:text" json:"event_description"`
	EventCategory       string     `gorm:"column:event_category;type:varchar(100)" json:"event_category"`
	EventPublishStatus  string     `gorm:"column:event_publish_status;type:varchar(20);not null;default:DRAFT" json:"event_publish_status"`
	EventPublishAt      *time.Time `gorm:"column:event_publish_at;type:timestamptz" json:"event_publish_at"`
	EventInstructorName string     `gorm:"column:event_instructor_name;type:varchar(255)" json:"event_instructor_name"`
	EventOrganizationID uuid.UUID  `gorm:"column:event_organization_id;type:uuid;not null;index:idx_events_organization_id" json:"event_organization_id"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

// IsScheduled: semua aksi sesi dinonaktifkan saat event masih SCHEDULED
func (m *EventModel) IsScheduled() bool {
	return m.EventPublishStatus == EventPublishStatusScheduled
}
