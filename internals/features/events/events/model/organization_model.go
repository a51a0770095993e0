package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationModel struct {
	OrganizationID        uuid.UUID `gorm:"column:organization_id;type:uuid;default:gen_random_uuid();primaryKey" json:"organization_id"`
	OrganizationName      string    `gorm:"column:organization_name;type:varchar(255);not null" json:"organization_name"`
	OrganizationCreatedAt time.Time `gorm:"column:organization_created_at;autoCreateTime" json:"organization_created_at"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
