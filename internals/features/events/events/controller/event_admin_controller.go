package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/events/events/dto"
	"kursusku_backend/internals/features/events/events/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type EventAdminController struct {
	DB *gorm.DB
}

func NewEventAdminController(db *gorm.DB) *EventAdminController {
	return &EventAdminController{DB: db}
}

// =============================
// ➕ Buat event (status awal DRAFT)
// =============================
func (ctrl *EventAdminController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	orgID, err := uuid.Parse(body.EventOrganizationID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Organization ID tidak valid")
	}

	var orgCount int64
	if err := ctrl.DB.Model(&model.OrganizationModel{}).
		Where("organization_id = ?", orgID).
		Count(&orgCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek penyelenggara")
	}
	if orgCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Penyelenggara tidak ditemukan")
	}

	event := model.EventModel{
		EventTitle:          body.EventTitle,
		EventDescription:    body.EventDescription,
		EventCategory:       body.EventCategory,
		EventPublishStatus:  model.EventPublishStatusDraft,
		EventInstructorName: body.EventInstructorName,
		EventOrganizationID: orgID,
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Println("[ERROR] Gagal membuat event:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat event")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil dibuat", event)
}

// =============================
// 🚦 Ubah status publish (DRAFT / SCHEDULED / PUBLISHED)
// =============================
func (ctrl *EventAdminController) PublishEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var body dto.PublishEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.EventPublishStatus == model.EventPublishStatusScheduled && body.EventPublishAt == nil {
		return fiber.NewError(fiber.StatusBadRequest, "SCHEDULED membutuhkan event_publish_at")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	event.EventPublishStatus = body.EventPublishStatus
	event.EventPublishAt = body.EventPublishAt
	if body.EventPublishStatus == model.EventPublishStatusPublished && event.EventPublishAt == nil {
		now := time.Now()
		event.EventPublishAt = &now
	}

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	return helper.Success(c, "Status event diperbarui", event)
}

// =============================
// ➕ Tambah sesi ke event
// =============================
func (ctrl *EventAdminController) CreateEventSession(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var body dto.CreateEventSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var eventCount int64
	if err := ctrl.DB.Model(&model.EventModel{}).
		Where("event_id = ?", eventID).
		Count(&eventCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek event")
	}
	if eventCount == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
	}

	order := body.EventSessionOrder
	if order <= 0 {
		var maxOrder int
		ctrl.DB.Model(&model.EventSessionModel{}).
			Select("COALESCE(MAX(event_session_order), 0)").
			Where("event_session_event_id = ?", eventID).
			Scan(&maxOrder)
		order = maxOrder + 1
	}

	session := model.EventSessionModel{
		EventSessionEventID:         eventID,
		EventSessionTitle:           body.EventSessionTitle,
		EventSessionDurationMinutes: body.EventSessionDurationMinutes,
		EventSessionPrice:           body.EventSessionPrice,
		EventSessionOrder:           order,
	}
	if err := ctrl.DB.Create(&session).Error; err != nil {
		log.Println("[ERROR] Gagal membuat sesi:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi berhasil dibuat", session)
}
