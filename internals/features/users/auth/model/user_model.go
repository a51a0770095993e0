package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string         `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	Email     string         `gorm:"column:email;type:varchar(255);not null;unique" json:"email"`
	Password  string         `gorm:"column:password;type:text;not null" json:"-"`
	GoogleID  *string        `gorm:"column:google_id;type:varchar(64);unique" json:"google_id,omitempty"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
