package model

import (
	"time"

	"github.com/google/uuid"
)

// Status kemitraan affiliate. PENDING dan REJECTED sama-sama memblokir
// pengajuan ulang; hanya yang belum pernah mengajukan yang boleh join.
const (
	AffiliateStatusPending  = "PENDING"
	AffiliateStatusApproved = "APPROVED"
	AffiliateStatusRejected = "REJECTED"
)

type AffiliatePartnershipModel struct {
	AffiliatePartnershipID               uuid.UUID `gorm:"column:affiliate_partnership_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"affiliate_partnership_id"`
	AffiliatePartnershipUserID           uuid.UUID `gorm:"column:affiliate_partnership_user_id;type:uuid;not null;uniqueIndex:uq_affiliate_user_event" json:"affiliate_partnership_user_id"`
	AffiliatePartnershipEventID          uuid.UUID `gorm:"column:affiliate_partnership_event_id;type:uuid;not null;uniqueIndex:uq_affiliate_user_event" json:"affiliate_partnership_event_id"`
	AffiliatePartnershipStatus           string    `gorm:"column:affiliate_partnership_status;type:varchar(20);not null;default:PENDING" json:"affiliate_partnership_status"`
	AffiliatePartnershipMotivation       string    `gorm:"column:affiliate_partnership_motivation;type:text;not null" json:"affiliate_partnership_motivation"`
	AffiliatePartnershipPromotionChannel string    `gorm:"column:affiliate_partnership_promotion_channel;type:varchar(100);not null" json:"affiliate_partnership_promotion_channel"`
	AffiliatePartnershipPromotionPlan    string    `gorm:"column:affiliate_partnership_promotion_plan;type:text;not null" json:"affiliate_partnership_promotion_plan"`
	AffiliatePartnershipAgreement        bool      `gorm:"column:affiliate_partnership_agreement;not null;default:false" json:"affiliate_partnership_agreement"`
	AffiliatePartnershipCreatedAt        time.Time `gorm:"column:affiliate_partnership_created_at;autoCreateTime" json:"affiliate_partnership_created_at"`
	AffiliatePartnershipUpdatedAt        time.Time `gorm:"column:affiliate_partnership_updated_at;autoUpdateTime" json:"affiliate_partnership_updated_at"`
}

func (AffiliatePartnershipModel) TableName() string {
	return "affiliate_partnerships"
}
