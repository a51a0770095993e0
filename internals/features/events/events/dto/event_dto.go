package dto

import (
	"time"

	"kursusku_backend/internals/features/events/events/model"
	"kursusku_backend/internals/features/events/events/service"
)

// ============================
// Response DTO
// ============================

type EventSessionDTO struct {
	EventSessionID              string `json:"event_session_id"`
	EventSessionTitle           string `json:"event_session_title"`
	EventSessionDurationMinutes int    `json:"event_session_duration_minutes"`
	EventSessionPrice           *int64 `json:"event_session_price"`
	EventSessionOrder           int    `json:"event_session_order"`
	IsFree                      bool   `json:"is_free"`
}

type EventDetailDTO struct {
	EventID             string            `json:"event_id"`
	EventTitle          string            `json:"event_title"`
	EventDescription    string            `json:"event_description"`
	EventCategory       string            `json:"event_category"`
	EventPublishStatus  string            `json:"event_publish_status"`
	EventPublishAt      *time.Time        `json:"event_publish_at"`
	EventInstructorName string            `json:"event_instructor_name"`
	OrganizationName    string            `json:"organization_name"`
	Sessions            []EventSessionDTO `json:"sessions"`
}

type SessionAccessDTO struct {
	EventSessionDTO
	IsPurchased bool                   `json:"is_purchased"`
	Resolved    bool                   `json:"resolved"`
	QuizStatus  service.QuizStatus     `json:"quiz_status"`
	QuizScore   *float64               `json:"quiz_score,omitempty"`
	Actions     service.SessionActions `json:"actions"`
}

// Status affiliate ikut dalam keputusan akses; nil = gagal diambil (unknown),
// bukan "belum mengajukan".
type AffiliateAccessDTO struct {
	HasApplied bool   `json:"has_applied"`
	Status     string `json:"status,omitempty"`
}

type EventAccessDTO struct {
	EventID   string              `json:"event_id"`
	Sessions  []SessionAccessDTO  `json:"sessions"`
	Affiliate *AffiliateAccessDTO `json:"affiliate,omitempty"`
}

// ============================
// Request DTO (admin)
// ============================

type CreateEventRequest struct {
	EventTitle          string `json:"event_title" validate:"required"`
	EventDescription    string `json:"event_description"`
	EventCategory       string `json:"event_category"`
	EventInstructorName string `json:"event_instructor_name"`
	EventOrganizationID string `json:"event_organization_id" validate:"required,uuid"`
}

type PublishEventRequest struct {
	// SCHEDULED butuh publish_at; PUBLISHED langsung tayang
	EventPublishStatus string     `json:"event_publish_status" validate:"required,oneof=DRAFT SCHEDULED PUBLISHED"`
	EventPublishAt     *time.Time `json:"event_publish_at"`
}

type CreateEventSessionRequest struct {
	EventSessionTitle           string `json:"event_session_title" validate:"required"`
	EventSessionDurationMinutes int    `json:"event_session_duration_minutes"`
	EventSessionPrice           *int64 `json:"event_session_price"` // 0/NULL = gratis
	EventSessionOrder           int    `json:"event_session_order"`
}

// ============================
// Converter
// ============================

func ToEventSessionDTO(m model.EventSessionModel) EventSessionDTO {
	return EventSessionDTO{
		EventSessionID:              m.EventSessionID.String(),
		EventSessionTitle:           m.EventSessionTitle,
		EventSessionDurationMinutes: m.EventSessionDurationMinutes,
		EventSessionPrice:           m.EventSessionPrice,
		EventSessionOrder:           m.EventSessionOrder,
		IsFree:                      m.IsFree(),
	}
}

func ToEventDetailDTO(event model.EventModel, org model.OrganizationModel, sessions []model.EventSessionModel) EventDetailDTO {
	sdtos := make([]EventSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		sdtos = append(sdtos, ToEventSessionDTO(s))
	}
	return EventDetailDTO{
		EventID:             event.EventID.String(),
		EventTitle:          event.EventTitle,
		EventDescription:    event.EventDescription,
		EventCategory:       event.EventCategory,
		EventPublishStatus:  event.EventPublishStatus,
		EventPublishAt:      event.EventPublishAt,
		EventInstructorName: event.EventInstructorName,
		OrganizationName:    org.OrganizationName,
		Sessions:            sdtos,
	}
}

func ToEventAccessDTO(result service.AccessResult) EventAccessDTO {
	sdtos := make([]SessionAccessDTO, 0, len(result.Sessions))
	for _, sa := range result.Sessions {
		sdtos = append(sdtos, SessionAccessDTO{
			EventSessionDTO: ToEventSessionDTO(sa.Session),
			IsPurchased:     sa.IsPurchased,
			Resolved:        sa.Resolved,
			QuizStatus:      sa.QuizStatus,
			QuizScore:       sa.QuizScore,
			Actions:         sa.Actions,
		})
	}
	return EventAccessDTO{
		EventID:  result.EventID.String(),
		Sessions: sdtos,
	}
}
