package dto

import (
	"time"

	"kursusku_backend/internals/features/users/user_profiles/model"
	"kursusku_backend/internals/features/users/user_profiles/service"
)

// ============================
// Response DTO
// ============================
type UserProfileDTO struct {
	UserProfileID        string     `json:"user_profile_id"`
	UserProfileUserID    string     `json:"user_profile_user_id"`
	UserProfilePhone     *string    `json:"user_profile_phone"`
	UserProfileAddress   *string    `json:"user_profile_address"`
	UserProfileGender    *string    `json:"user_profile_gender"`
	UserProfileBirthdate *time.Time `json:"user_profile_birthdate"`

	IsComplete    bool                   `json:"is_complete"`
	MissingFields []service.MissingField `json:"missing_fields,omitempty"`
}

// ============================
// Update Request DTO
// ============================
type UpdateUserProfileRequest struct {
	UserProfilePhone     *string `json:"user_profile_phone" validate:"omitempty,min=8,max=20"`
	UserProfileAddress   *string `json:"user_profile_address" validate:"omitempty,min=3"`
	UserProfileGender    *string `json:"user_profile_gender" validate:"omitempty,oneof=male female"`
	UserProfileBirthdate *string `json:"user_profile_birthdate" validate:"omitempty,datetime=2006-01-02"`
}

// ============================
// Converter
// ============================
func ToUserProfileDTO(m model.UserProfileModel, userName string) UserProfileDTO {
	fields := service.ProfileFields{
		Name:      userName,
		Phone:     m.UserProfilePhone,
		Address:   m.UserProfileAddress,
		Gender:    m.UserProfileGender,
		Birthdate: m.UserProfileBirthdate,
	}
	missing := service.MissingProfileFields(fields)
	return UserProfileDTO{
		UserProfileID:        m.UserProfileID.String(),
		UserProfileUserID:    m.UserProfileUserID.String(),
		UserProfilePhone:     m.UserProfilePhone,
		UserProfileAddress:   m.UserProfileAddress,
		UserProfileGender:    m.UserProfileGender,
		UserProfileBirthdate: m.UserProfileBirthdate,
		IsComplete:           len(missing) == 0,
		MissingFields:        missing,
	}
}
