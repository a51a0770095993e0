package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/affiliates/model"
)

// Empat field wajib divalidasi sebelum ada tulisan ke DB.
type JoinAffiliateRequest struct {
	Motivation       string `json:"motivation" validate:"required,min=10"`
	PromotionChannel string `json:"promotion_channel" validate:"required"`
	PromotionPlan    string `json:"promotion_plan" validate:"required,min=10"`
	Agreement        bool   `json:"agreement" validate:"required,eq=true"`
}

type AffiliateStatusDTO struct {
	HasApplied bool                     `json:"has_applied"`
	Status     string                   `json:"status,omitempty"`
	Membership *AffiliatePartnershipDTO `json:"membership,omitempty"`
}

type AffiliatePartnershipDTO struct {
	AffiliatePartnershipID string    `json:"affiliate_partnership_id"`
	EventID                string    `json:"event_id"`
	Status                 string    `json:"status"`
	PromotionChannel       string    `json:"promotion_channel"`
	CreatedAt              time.Time `json:"created_at"`
}

// ToModel memetakan form join ke baris kemitraan baru (status awal PENDING).
// Persetujuan ikut disimpan sebagai bukti user menyetujui syarat.
func (r JoinAffiliateRequest) ToModel(userID, eventID uuid.UUID) model.AffiliatePartnershipModel {
	return model.AffiliatePartnershipModel{
		AffiliatePartnershipUserID:           userID,
		AffiliatePartnershipEventID:          eventID,
		AffiliatePartnershipStatus:           model.AffiliateStatusPending,
		AffiliatePartnershipMotivation:       r.Motivation,
		AffiliatePartnershipPromotionChannel: r.PromotionChannel,
		AffiliatePartnershipPromotionPlan:    r.PromotionPlan,
		AffiliatePartnershipAgreement:        r.Agreement,
	}
}

func ToAffiliatePartnershipDTO(m model.AffiliatePartnershipModel) AffiliatePartnershipDTO {
	return AffiliatePartnershipDTO{
		AffiliatePartnershipID: m.AffiliatePartnershipID.String(),
		EventID:                m.AffiliatePartnershipEventID.String(),
		Status:                 m.AffiliatePartnershipStatus,
		PromotionChannel:       m.AffiliatePartnershipPromotionChannel,
		CreatedAt:              m.AffiliatePartnershipCreatedAt,
	}
}
