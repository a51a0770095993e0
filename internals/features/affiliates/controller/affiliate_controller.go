package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/affiliates/dto"
	"kursusku_backend/internals/features/affiliates/model"
	authModel "kursusku_backend/internals/features/users/auth/model"
	profileModel "kursusku_backend/internals/features/users/user_profiles/model"
	profileService "kursusku_backend/internals/features/users/user_profiles/service"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type AffiliateController struct {
	DB *gorm.DB
}

func NewAffiliateController(db *gorm.DB) *AffiliateController {
	return &AffiliateController{DB: db}
}

// =============================
// 🤝 Status kemitraan affiliate satu event
// =============================
func (ctrl *AffiliateController) GetAffiliateStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var membership model.AffiliatePartnershipModel
	err = ctrl.DB.
		Where("affiliate_partnership_user_id = ? AND affiliate_partnership_event_id = ?", userID, eventID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Belum pernah mengajukan", dto.AffiliateStatusDTO{HasApplied: false})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil status affiliate")
	}

	membershipDTO := dto.ToAffiliatePartnershipDTO(membership)
	return helper.Success(c, "Status affiliate ditemukan", dto.AffiliateStatusDTO{
		HasApplied: true,
		Status:     membership.AffiliatePartnershipStatus,
		Membership: &membershipDTO,
	})
}

// =============================
// 📝 Ajukan kemitraan affiliate
// =============================
// Urutan gerbang: profil lengkap → form valid → belum pernah mengajukan.
// Profil belum lengkap ⇒ 400 + daftar field kosong + petunjuk redirect,
// tidak ada yang ditulis ke DB.
func (ctrl *AffiliateController) JoinAffiliate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	missing, err := ctrl.missingProfileFields(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kelengkapan profil")
	}
	if len(missing) > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Lengkapi profil terlebih dahulu", fiber.Map{
			"missing_fields": missing,
			"redirect":       "/profile",
		})
	}

	var body dto.JoinAffiliateRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.AffiliatePartnershipModel
	err = ctrl.DB.
		Where("affiliate_partnership_user_id = ? AND affiliate_partnership_event_id = ?", userID, eventID).
		First(&existing).Error
	if err == nil {
		// PENDING maupun REJECTED sama-sama menutup pengajuan ulang
		return fiber.NewError(fiber.StatusBadRequest, "Pengajuan affiliate sudah pernah dibuat (status: "+existing.AffiliatePartnershipStatus+")")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek pengajuan affiliate")
	}

	membership := body.ToModel(userID, eventID)
	if err := ctrl.DB.Create(&membership).Error; err != nil {
		log.Println("[ERROR] Gagal membuat pengajuan affiliate:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pengajuan affiliate")
	}

	membershipDTO := dto.ToAffiliatePartnershipDTO(membership)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan affiliate terkirim", dto.AffiliateStatusDTO{
		HasApplied: true,
		Status:     membership.AffiliatePartnershipStatus,
		Membership: &membershipDTO,
	})
}

func (ctrl *AffiliateController) missingProfileFields(userID uuid.UUID) ([]profileService.MissingField, error) {
	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	var profile profileModel.UserProfileModel
	err := ctrl.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return profileService.MissingProfileFields(profileService.ProfileFields{
		Name:      user.UserName,
		Phone:     profile.UserProfilePhone,
		Address:   profile.UserProfileAddress,
		Gender:    profile.UserProfileGender,
		Birthdate: profile.UserProfileBirthdate,
	}), nil
}
