package dto

import (
	"time"

	"kursusku_backend/internals/features/events/purchases/model"
)

// ============================
// Response DTO
// ============================

type PurchaseCheckDTO struct {
	SessionID    string `json:"session_id"`
	HasPurchased bool   `json:"has_purchased"`
}

type BuySessionResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	// sesi gratis langsung paid tanpa token pembayaran
	GrantedFree bool `json:"granted_free"`
}

type SessionPurchaseDTO struct {
	SessionPurchaseID        string     `json:"session_purchase_id"`
	SessionPurchaseSessionID string     `json:"session_purchase_session_id"`
	SessionPurchaseOrderID   string     `json:"session_purchase_order_id"`
	SessionPurchaseStatus    string     `json:"session_purchase_status"`
	SessionPurchaseAmount    int64      `json:"session_purchase_amount"`
	SessionPurchasePaidAt    *time.Time `json:"session_purchase_paid_at,omitempty"`
	SessionPurchaseCreatedAt time.Time  `json:"session_purchase_created_at"`
}

// ============================
// Converter
// ============================

func ToSessionPurchaseDTO(m model.SessionPurchaseModel) SessionPurchaseDTO {
	return SessionPurchaseDTO{
		SessionPurchaseID:        m.SessionPurchaseID.String(),
		SessionPurchaseSessionID: m.SessionPurchaseSessionID.String(),
		SessionPurchaseOrderID:   m.SessionPurchaseOrderID,
		SessionPurchaseStatus:    m.SessionPurchaseStatus,
		SessionPurchaseAmount:    m.SessionPurchaseAmount,
		SessionPurchasePaidAt:    m.SessionPurchasePaidAt,
		SessionPurchaseCreatedAt: m.SessionPurchaseCreatedAt,
	}
}
