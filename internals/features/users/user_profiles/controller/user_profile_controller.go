package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "kursusku_backend/internals/features/users/auth/model"
	"kursusku_backend/internals/features/users/user_profiles/dto"
	"kursusku_backend/internals/features/users/user_profiles/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// =============================
// 📄 Get My Profile (+ kelengkapan)
// =============================
func (ctrl *UserProfileController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
		}
		// belum punya baris profil: kembalikan profil kosong + daftar field kurang
		profile = model.UserProfileModel{UserProfileUserID: userID}
	}

	return helper.Success(c, "Berhasil ambil profil", dto.ToUserProfileDTO(profile, user.UserName))
}

// =============================
// ✏️ Update My Profile (upsert)
// =============================
func (ctrl *UserProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateUserProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var profile model.UserProfileModel
	err = ctrl.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfileModel{UserProfileUserID: userID}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	if body.UserProfilePhone != nil {
		profile.UserProfilePhone = body.UserProfilePhone
	}
	if body.UserProfileAddress != nil {
		profile.UserProfileAddress = body.UserProfileAddress
	}
	if body.UserProfileGender != nil {
		profile.UserProfileGender = body.UserProfileGender
	}
	if body.UserProfileBirthdate != nil {
		bd, err := time.Parse("2006-01-02", *body.UserProfileBirthdate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal lahir tidak valid (YYYY-MM-DD)")
		}
		profile.UserProfileBirthdate = &bd
	}

	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.Success(c, "Profil berhasil diperbarui", dto.ToUserProfileDTO(profile, user.UserName))
}
