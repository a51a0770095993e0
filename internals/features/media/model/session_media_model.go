package model

import (
	"time"

	"github.com/google/uuid"
)

// Jenis media per sesi. Path storage bersifat opaque; URL tonton/unduh selalu
// lewat endpoint signed, tidak pernah diekspos langsung.
const (
	SessionMediaKindVideo = "video"
	SessionMediaKindFile  = "file"
)

type SessionMediaModel struct {
	SessionMediaID          uuid.UUID `gorm:"column:session_media_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"session_media_id"`
	SessionMediaSessionID   uuid.UUID `gorm:"column:session_media_session_id;type:uuid;not null;index:idx_session_media_session" json:"session_media_session_id"`
	SessionMediaKind        string    `gorm:"column:session_media_kind;type:varchar(10);not null" json:"session_media_kind"`
	SessionMediaTitle       string    `gorm:"column:session_media_title;type:varchar(255);not null" json:"session_media_title"`
	SessionMediaStoragePath string    `gorm:"column:session_media_storage_path;type:text;not null" json:"session_media_storage_path"`
	SessionMediaOrder       int       `gorm:"column:session_media_order;not null;default:1" json:"session_media_order"`
	SessionMediaCreatedAt   time.Time `gorm:"column:session_media_created_at;autoCreateTime" json:"session_media_created_at"`
}

func (SessionMediaModel) TableName() string {
	return "session_media"
}
