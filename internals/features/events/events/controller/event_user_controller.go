package controller

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	affiliateModel "kursusku_backend/internals/features/affiliates/model"
	"kursusku_backend/internals/features/events/events/dto"
	"kursusku_backend/internals/features/events/events/model"
	"kursusku_backend/internals/features/events/events/service"
	purchaseService "kursusku_backend/internals/features/events/purchases/service"
	progressService "kursusku_backend/internals/features/quiz/progress/service"
	helper "kursusku_backend/internals/helpers"
)

type EventUserController struct {
	DB *gorm.DB
}

func NewEventUserController(db *gorm.DB) *EventUserController {
	return &EventUserController{DB: db}
}

// progressLookup menjembatani dokumen progress event ke potongan yang
// dibutuhkan resolver. Entry yang muncul = sesi yang memang punya kuis.
type progressLookup struct {
	agg *progressService.Aggregator
}

func (p progressLookup) QuizEntries(ctx context.Context, userID, eventID uuid.UUID) ([]service.QuizEntry, error) {
	progress, err := p.agg.Aggregate(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	entries := make([]service.QuizEntry, 0, len(progress.Entries))
	for _, e := range progress.Entries {
		entries = append(entries, service.QuizEntry{
			SessionID: e.SessionID,
			HasQuiz:   true,
			Completed: e.Completed,
			Score:     e.Score,
			Passed:    e.Passed,
		})
	}
	return entries, nil
}

// =============================
// 📋 List event yang sudah tayang
// =============================
func (ctrl *EventUserController) GetEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.
		Where("event_publish_status IN ?", []string{model.EventPublishStatusPublished, model.EventPublishStatusScheduled}).
		Order("event_created_at DESC").
		Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar event")
	}

	return helper.Success(c, "Berhasil ambil daftar event", events)
}

// =============================
// 📄 Detail event + sesi terurut + penyelenggara
// =============================
func (ctrl *EventUserController) GetEventDetail(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	event, sessions, err := ctrl.loadEventWithSessions(eventID)
	if err != nil {
		return err
	}

	var org model.OrganizationModel
	if err := ctrl.DB.First(&org, "organization_id = ?", event.EventOrganizationID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil penyelenggara")
	}

	return helper.Success(c, "Berhasil ambil detail event", dto.ToEventDetailDTO(event, org, sessions))
}

// =============================
// 🔐 Keputusan akses per sesi (beli + kuis + aksi UI)
// =============================
func (ctrl *EventUserController) GetEventAccess(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	event, sessions, err := ctrl.loadEventWithSessions(eventID)
	if err != nil {
		return err
	}

	resolver := service.AccessResolver{
		Purchases: purchaseService.NewPurchaseChecker(ctrl.DB),
		Progress:  progressLookup{agg: progressService.NewAggregator(ctrl.DB)},
	}
	result := resolver.ResolveSessions(c.UserContext(), userID, event, sessions, nil)

	access := dto.ToEventAccessDTO(result)
	// ketiga concern independen: gagal ambil status affiliate tidak merusak
	// hasil beli/kuis — field dibiarkan kosong (unknown)
	access.Affiliate = ctrl.affiliateStatus(userID, eventID)

	return helper.Success(c, "Berhasil ambil akses event", access)
}

func (ctrl *EventUserController) affiliateStatus(userID, eventID uuid.UUID) *dto.AffiliateAccessDTO {
	var membership affiliateModel.AffiliatePartnershipModel
	err := ctrl.DB.
		Where("affiliate_partnership_user_id = ? AND affiliate_partnership_event_id = ?", userID, eventID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.AffiliateAccessDTO{HasApplied: false}
		}
		log.Printf("[ERROR] ambil status affiliate event %s gagal: %v", eventID, err)
		return nil
	}
	return &dto.AffiliateAccessDTO{
		HasApplied: true,
		Status:     membership.AffiliatePartnershipStatus,
	}
}

func (ctrl *EventUserController) loadEventWithSessions(eventID uuid.UUID) (model.EventModel, []model.EventSessionModel, error) {
	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return event, nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return event, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	var sessions []model.EventSessionModel
	if err := ctrl.DB.
		Where("event_session_event_id = ?", eventID).
		Order("event_session_order ASC").
		Find(&sessions).Error; err != nil {
		return event, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	return event, sessions, nil
}
