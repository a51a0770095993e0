// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	purchaseModel "kursusku_backend/internals/features/events/purchases/model"
)

// StatusTransition adalah hasil pemetaan satu transaction_status gateway.
// Processed=false berarti status tidak dikenal dan baris dibiarkan apa adanya.
type StatusTransition struct {
	Status    string
	StampPaid bool
	Processed bool
}

// MapTransactionStatus memetakan transaction_status Midtrans ke status
// pembelian. Murni, dipisah dari query supaya bisa dites: ini satu-satunya
// transisi yang membuka akses berbayar.
func MapTransactionStatus(status string) StatusTransition {
	switch status {
	case "capture", "settlement":
		return StatusTransition{Status: purchaseModel.PurchaseStatusPaid, StampPaid: true, Processed: true}
	case "pending":
		return StatusTransition{Status: purchaseModel.PurchaseStatusPending, Processed: true}
	case "expire":
		return StatusTransition{Status: purchaseModel.PurchaseStatusExpired, Processed: true}
	case "cancel", "deny":
		return StatusTransition{Status: purchaseModel.PurchaseStatusCanceled, Processed: true}
	default:
		return StatusTransition{}
	}
}

// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	// Ambil pembelian berdasarkan order_id
	var purchase purchaseModel.SessionPurchaseModel
	if err := db.Where("session_purchase_order_id = ?", orderID).First(&purchase).Error; err != nil {
		log.Println("[ERROR] Pembelian tidak ditemukan:", err)
		return fmt.Errorf("purchase with order_id %s not found", orderID)
	}

	transition := MapTransactionStatus(status)
	if transition.Processed {
		purchase.SessionPurchaseStatus = transition.Status
		if transition.StampPaid {
			now := time.Now()
			purchase.SessionPurchasePaidAt = &now
		}
	} else {
		log.Println("[INFO] Status tidak diproses:", status)
	}

	// Simpan payload mentah untuk audit
	if raw, err := json.Marshal(body); err == nil {
		purchase.SessionPurchaseGatewayPayload = datatypes.JSON(raw)
	}

	// Simpan update status pembelian ke database
	if err := db.Save(&purchase).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status pembelian:", err)
		return err
	}

	return nil
}
