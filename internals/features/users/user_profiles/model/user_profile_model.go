// file: internals/features/users/user_profiles/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel merepresentasikan tabel user_profiles
type UserProfileModel struct {
	UserProfileID        uuid.UUID      `gorm:"column:user_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_profile_id"`
	UserProfileUserID    uuid.UUID      `gorm:"column:user_profile_user_id;type:uuid;not null;uniqueIndex:uq_user_profiles_user" json:"user_profile_user_id"`
	UserProfilePhone     *string        `gorm:"column:user_profile_phone;type:varchar(20)" json:"user_profile_phone"`
	UserProfileAddress   *string        `gorm:"column:user_profile_address;type:text" json:"user_profile_address"`
	UserProfileGender    *string        `gorm:"column:user_profile_gender;type:varchar(20)" json:"user_profile_gender"`
	UserProfileBirthdate *time.Time     `gorm:"column:user_profile_birthdate;type:date" json:"user_profile_birthdate"`
	UserProfileCreatedAt time.Time      `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt time.Time      `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`
	UserProfileDeletedAt gorm.DeletedAt `gorm:"column:user_profile_deleted_at;index" json:"user_profile_deleted_at,omitempty"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
