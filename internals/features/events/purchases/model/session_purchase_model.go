package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status pembelian sesi. has_purchased ⇔ ada baris berstatus paid.
const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusPaid     = "paid"
	PurchaseStatusExpired  = "expired"
	PurchaseStatusCanceled = "canceled"
)

type SessionPurchaseModel struct {
	SessionPurchaseID        uuid.UUID  `gorm:"column:session_purchase_id;type:uuid;default:gen_random_uuid();primaryKey" json:"session_purchase_id"`
	SessionPurchaseSessionID uuid.UUID  `gorm:"column:session_purchase_session_id;type:uuid;not null;index:idx_session_purchases_session" json:"session_purchase_session_id"`
	SessionPurchaseUserID    uuid.UUID  `gorm:"column:session_purchase_user_id;type:uuid;not null;index:idx_session_purchases_user" json:"session_purchase_user_id"`
	SessionPurchaseOrderID   string     `gorm:"column:session_purchase_order_id;type:varchar(64);not null;unique" json:"session_purchase_order_id"`
	SessionPurchaseStatus    string     `gorm:"column:session_purchase_status;type:varchar(20);not null;default:pending" json:"session_purchase_status"`
	SessionPurchaseAmount    int64      `gorm:"column:session_purchase_amount;not null" json:"session_purchase_amount"`
	SessionPurchasePaidAt    *time.Time `gorm:"column:session_purchase_paid_at;type:timestamptz" json:"session_purchase_paid_at"`

	// payload mentah notifikasi gateway terakhir (buat audit/debug)
	SessionPurchaseGatewayPayload datatypes.JSON `gorm:"column:session_purchase_gateway_payload;type:jsonb" json:"session_purchase_gateway_payload,omitempty"`

	SessionPurchaseCreatedAt time.Time `gorm:"column:session_purchase_created_at;autoCreateTime" json:"session_purchase_created_at"`
	SessionPurchaseUpdatedAt time.Time `gorm:"column:session_purchase_updated_at;autoUpdateTime" json:"session_purchase_updated_at"`
}

func (SessionPurchaseModel) TableName() string {
	return "session_purchases"
}
