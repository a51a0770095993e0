package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "kursusku_backend/internals/features/events/events/model"
	"kursusku_backend/internals/features/events/purchases/dto"
	"kursusku_backend/internals/features/events/purchases/model"
	"kursusku_backend/internals/features/events/purchases/service"
	userModel "kursusku_backend/internals/features/users/auth/model"
	helper "kursusku_backend/internals/helpers"
)

type PurchaseUserController struct {
	DB *gorm.DB
}

func NewPurchaseUserController(db *gorm.DB) *PurchaseUserController {
	return &PurchaseUserController{DB: db}
}

// =============================
// 🔍 Cek status beli satu sesi
// =============================
func (ctrl *PurchaseUserController) CheckPurchase(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}

	checker := service.NewPurchaseChecker(ctrl.DB)
	has, err := checker.HasPurchased(c.UserContext(), userID, sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek status pembelian")
	}

	return helper.Success(c, "Berhasil cek status pembelian", dto.PurchaseCheckDTO{
		SessionID:    sessionID.String(),
		HasPurchased: has,
	})
}

// =============================
// 💳 Beli sesi (Snap token / klaim gratis)
// =============================
func (ctrl *PurchaseUserController) BuySession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}

	var session eventModel.EventSessionModel
	if err := ctrl.DB.First(&session, "event_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}

	var event eventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", session.EventSessionEventID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	if event.IsScheduled() {
		return fiber.NewError(fiber.StatusForbidden, "Event masih terjadwal, belum bisa dibeli")
	}

	// Sudah paid? Jangan buat order baru.
	checker := service.NewPurchaseChecker(ctrl.DB)
	if has, err := checker.HasPurchased(c.UserContext(), userID, sessionID); err == nil && has {
		return fiber.NewError(fiber.StatusBadRequest, "Sesi sudah dibeli")
	}

	orderID := fmt.Sprintf("SESI-%s-%d", strings.Split(sessionID.String(), "-")[0], time.Now().Unix())

	// 🎁 Sesi gratis: langsung paid tanpa cek token pembayaran
	if session.IsFree() {
		now := time.Now()
		purchase := model.SessionPurchaseModel{
			SessionPurchaseSessionID: sessionID,
			SessionPurchaseUserID:    userID,
			SessionPurchaseOrderID:   orderID,
			SessionPurchaseStatus:    model.PurchaseStatusPaid,
			SessionPurchaseAmount:    0,
			SessionPurchasePaidAt:    &now,
		}
		if err := ctrl.DB.Create(&purchase).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal klaim sesi gratis")
		}
		log.Println("[SUCCESS] Sesi gratis diklaim:", orderID)
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi gratis berhasil diklaim", dto.BuySessionResponse{
			OrderID:     orderID,
			GrantedFree: true,
		})
	}

	purchase := model.SessionPurchaseModel{
		SessionPurchaseSessionID: sessionID,
		SessionPurchaseUserID:    userID,
		SessionPurchaseOrderID:   orderID,
		SessionPurchaseStatus:    model.PurchaseStatusPending,
		SessionPurchaseAmount:    *session.EventSessionPrice,
	}
	if err := ctrl.DB.Create(&purchase).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat order")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	token, redirectURL, err := service.GenerateSnapToken(purchase, session.EventSessionTitle, user.UserName, user.Email)
	if err != nil {
		log.Println("[ERROR] Gagal membuat Snap token:", err)
		return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi dibuat", dto.BuySessionResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// =============================
// 🛒 Tambah sesi ke keranjang
// =============================
func (ctrl *PurchaseUserController) AddToCart(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}

	item := model.CartItemModel{
		CartItemUserID:    userID,
		CartItemSessionID: sessionID,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusBadRequest, "Sesi sudah ada di keranjang")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah ke keranjang")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi ditambahkan ke keranjang", fiber.Map{
		"cart_item_id": item.CartItemID,
	})
}

// =============================
// 📄 Riwayat pembelian saya
// =============================
func (ctrl *PurchaseUserController) GetMyPurchases(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var purchases []model.SessionPurchaseModel
	if err := ctrl.DB.
		Where("session_purchase_user_id = ?", userID).
		Order("session_purchase_created_at DESC").
		Find(&purchases).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat pembelian")
	}

	dtos := make([]dto.SessionPurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		dtos = append(dtos, dto.ToSessionPurchaseDTO(p))
	}

	return helper.Success(c, "Berhasil ambil riwayat pembelian", dtos)
}
