package dto

import (
	"testing"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/affiliates/model"
)

func TestJoinRequestToModelKeepsAllFormFields(t *testing.T) {
	userID, eventID := uuid.New(), uuid.New()
	req := JoinAffiliateRequest{
		Motivation:       "Ingin membagikan kursus ini ke komunitas saya",
		PromotionChannel: "Instagram",
		PromotionPlan:    "Posting review mingguan plus sesi live",
		Agreement:        true,
	}

	m := req.ToModel(userID, eventID)

	if m.AffiliatePartnershipUserID != userID || m.AffiliatePartnershipEventID != eventID {
		t.Fatalf("ids not carried: %+v", m)
	}
	if m.AffiliatePartnershipStatus != model.AffiliateStatusPending {
		t.Fatalf("new application must start PENDING, got %q", m.AffiliatePartnershipStatus)
	}
	if m.AffiliatePartnershipMotivation != req.Motivation ||
		m.AffiliatePartnershipPromotionChannel != req.PromotionChannel ||
		m.AffiliatePartnershipPromotionPlan != req.PromotionPlan {
		t.Fatalf("form fields dropped: %+v", m)
	}
	// persetujuan ikut tersimpan, bukan hanya divalidasi lalu dibuang
	if !m.AffiliatePartnershipAgreement {
		t.Fatal("agreement must be persisted on the partnership row")
	}
}
