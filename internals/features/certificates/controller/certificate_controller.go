package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/certificates/dto"
	"kursusku_backend/internals/features/certificates/model"
	"kursusku_backend/internals/features/certificates/render"
	eventModel "kursusku_backend/internals/features/events/events/model"
	progressService "kursusku_backend/internals/features/quiz/progress/service"
	authModel "kursusku_backend/internals/features/users/auth/model"
	helper "kursusku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// =============================
// 📜 Status sertifikat satu event
// =============================
// Dua cabang yang saling eksklusif, diputuskan server: sudah punya sertifikat,
// atau belum layak (dengan skor & ambang supaya user tahu kurang berapa).
func (ctrl *CertificateController) GetCertificate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var cert model.UserCertificateModel
	err = ctrl.DB.
		Where("user_certificate_user_id = ? AND user_certificate_event_id = ?", userID, eventID).
		First(&cert).Error
	if err == nil {
		certDTO := dto.ToCertificateDTO(cert)
		return helper.Success(c, "Sertifikat ditemukan", dto.CertificateStatusDTO{
			HasCertificate: true,
			Certificate:    &certDTO,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	aggregator := progressService.NewAggregator(ctrl.DB)
	progress, err := aggregator.Aggregate(c.UserContext(), userID, eventID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil progress kuis")
	}

	return helper.Success(c, "Sertifikat belum tersedia",
		dto.NotYetEligibleStatus(progress.HasQuizzes, progress.TotalPercent, progress.MinScoreRequired))
}

// =============================
// 🎓 Klaim sertifikat
// =============================
func (ctrl *CertificateController) ClaimCertificate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	// sudah pernah klaim ⇒ kembalikan yang ada (idempoten)
	var existing model.UserCertificateModel
	err = ctrl.DB.
		Where("user_certificate_user_id = ? AND user_certificate_event_id = ?", userID, eventID).
		First(&existing).Error
	if err == nil {
		certDTO := dto.ToCertificateDTO(existing)
		return helper.Success(c, "Sertifikat sudah pernah diterbitkan", dto.CertificateStatusDTO{
			HasCertificate: true,
			Certificate:    &certDTO,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek sertifikat")
	}

	aggregator := progressService.NewAggregator(ctrl.DB)
	progress, err := aggregator.Aggregate(c.UserContext(), userID, eventID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil progress kuis")
	}

	if !progress.CertificateEligible() {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Nilai belum memenuhi ambang sertifikat", fiber.Map{
			"total_score":  progress.TotalPercent,
			"min_required": progress.MinScoreRequired,
		})
	}

	cert := model.UserCertificateModel{
		UserCertificateUserID:       userID,
		UserCertificateEventID:      eventID,
		UserCertificateCode:         newCertificateCode(),
		UserCertificateScorePercent: progress.TotalPercent,
	}
	if err := ctrl.DB.Create(&cert).Error; err != nil {
		log.Println("[ERROR] Gagal menerbitkan sertifikat:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan sertifikat")
	}

	certDTO := dto.ToCertificateDTO(cert)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sertifikat berhasil diterbitkan", dto.CertificateStatusDTO{
		HasCertificate: true,
		Certificate:    &certDTO,
	})
}

// =============================
// 🖼️ Unduh sertifikat sebagai PNG
// =============================
func (ctrl *CertificateController) DownloadCertificateImage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var cert model.UserCertificateModel
	if err := ctrl.DB.
		Where("user_certificate_user_id = ? AND user_certificate_event_id = ?", userID, eventID).
		First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sertifikat belum diterbitkan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var event eventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var org eventModel.OrganizationModel
	if event.EventOrganizationID != uuid.Nil {
		ctrl.DB.First(&org, "organization_id = ?", event.EventOrganizationID)
	}

	issuedAt := cert.UserCertificateIssuedAt
	data, err := render.Draw(render.Record{
		UserName:         user.UserName,
		EventTitle:       event.EventTitle,
		OrganizationName: org.OrganizationName,
		ScorePercent:     cert.UserCertificateScorePercent,
		CertificateCode:  cert.UserCertificateCode,
		IssuedAt:         &issuedAt,
	})
	if err != nil {
		log.Println("[ERROR] Gagal merender sertifikat:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal merender sertifikat")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, certificateFilename(event.EventTitle)))
	return c.Send(data)
}

// certificateFilename: nama unduhan berbasis judul event, fallback "course".
func certificateFilename(eventTitle string) string {
	title := strings.TrimSpace(eventTitle)
	if title == "" {
		title = "course"
	}
	return "certificate-" + title + ".png"
}

// newCertificateCode: CERT- + 6 hex huruf besar dari uuid acak.
func newCertificateCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CERT-" + strings.ToUpper(raw[:6])
}
