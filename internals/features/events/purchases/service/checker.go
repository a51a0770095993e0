// file: internals/features/events/purchases/service/checker.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/events/purchases/model"
)

// PurchaseChecker adalah implementasi PurchaseLookup berbasis DB.
// Satu query independen per sesi; read-only dan idempoten.
type PurchaseChecker struct {
	DB *gorm.DB
}

func NewPurchaseChecker(db *gorm.DB) *PurchaseChecker {
	return &PurchaseChecker{DB: db}
}

// HasPurchased: true hanya jika ada pembelian berstatus paid.
// pending/expired/canceled tidak membuka akses.
func (s *PurchaseChecker) HasPurchased(ctx context.Context, userID, sessionID uuid.UUID) (bool, error) {
	var purchase model.SessionPurchaseModel
	err := s.DB.WithContext(ctx).
		Where("session_purchase_user_id = ? AND session_purchase_session_id = ? AND session_purchase_status = ?",
			userID, sessionID, model.PurchaseStatusPaid).
		First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
