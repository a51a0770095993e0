package controller

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	eventModel "kursusku_backend/internals/features/events/events/model"
	purchaseService "kursusku_backend/internals/features/events/purchases/service"
	"kursusku_backend/internals/features/media/dto"
	"kursusku_backend/internals/features/media/model"
	"kursusku_backend/internals/features/media/service"
	helper "kursusku_backend/internals/helpers"
)

const signedStreamBase = "/api/u/media/stream"

type MediaController struct {
	DB     *gorm.DB
	Signer *service.Signer
}

func NewMediaController(db *gorm.DB) *MediaController {
	return &MediaController{
		DB:     db,
		Signer: service.NewSigner(configs.MediaSignSecret),
	}
}

// =============================
// 📂 Daftar media satu sesi (wajib sudah beli, event tidak SCHEDULED)
// =============================
func (ctrl *MediaController) GetSessionMedia(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}

	if err := ctrl.requireOpenable(c, userID, sessionID); err != nil {
		return err
	}

	var items []model.SessionMediaModel
	if err := ctrl.DB.
		Where("session_media_session_id = ?", sessionID).
		Order("session_media_order ASC").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil media")
	}

	return helper.Success(c, "Berhasil ambil media sesi", dto.ToSessionMediaListDTO(items))
}

// =============================
// 🎬 URL signed untuk video
// =============================
func (ctrl *MediaController) GetSignedVideo(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	filename, err := ctrl.authorizeFilename(c, userID, model.SessionMediaKindVideo)
	if err != nil {
		return err
	}

	return helper.Success(c, "URL video siap", dto.SignedVideoDTO{
		SignedURL: ctrl.Signer.SignedURL(signedStreamBase, filename),
	})
}

// =============================
// 📄 URL signed + rencana tampilan untuk file
// =============================
func (ctrl *MediaController) GetSignedFile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	filename, err := ctrl.authorizeFilename(c, userID, model.SessionMediaKindFile)
	if err != nil {
		return err
	}

	signedURL := ctrl.Signer.SignedURL(signedStreamBase, filename)
	return helper.Success(c, "URL file siap", dto.SignedFileDTO{
		SignedURL: signedURL,
		Plan:      service.ViewerPlan(service.Classify(filename), signedURL),
	})
}

// =============================
// 📡 Streaming: verifikasi signature + expiry lalu kirim file
// =============================
func (ctrl *MediaController) StreamMedia(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" || strings.Contains(filename, "..") {
		return fiber.NewError(fiber.StatusBadRequest, "Filename tidak valid")
	}

	if err := ctrl.Signer.Verify(filename, c.Query("exp"), c.Query("sig")); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	dir := configs.GetEnv("MEDIA_STORAGE_DIR")
	if dir == "" {
		dir = "./storage/media"
	}
	return c.SendFile(filepath.Join(dir, filepath.Base(filename)))
}

// =============================
// 🖼️ Preview gambar terproteksi (badge watermark, webp)
// =============================
func (ctrl *MediaController) PreviewImage(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" || strings.Contains(filename, "..") {
		return fiber.NewError(fiber.StatusBadRequest, "Filename tidak valid")
	}

	if err := ctrl.Signer.Verify(filename, c.Query("exp"), c.Query("sig")); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	if service.Classify(filename) != service.KindImage {
		return fiber.NewError(fiber.StatusBadRequest, "Preview hanya untuk gambar")
	}

	dir := configs.GetEnv("MEDIA_STORAGE_DIR")
	if dir == "" {
		dir = "./storage/media"
	}
	src, err := imaging.Open(filepath.Join(dir, filepath.Base(filename)))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Gambar tidak ditemukan")
	}

	data, err := service.ProtectedPreview(src)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat preview")
	}

	c.Set(fiber.HeaderContentType, "image/webp")
	return c.Send(data)
}

// authorizeFilename memastikan filename memang milik media sesi yang sudah
// dibeli user (dan event-nya tidak SCHEDULED).
func (ctrl *MediaController) authorizeFilename(c *fiber.Ctx, userID uuid.UUID, kind string) (string, error) {
	filename := c.Params("filename")
	if filename == "" || strings.Contains(filename, "..") {
		return "", fiber.NewError(fiber.StatusBadRequest, "Filename tidak valid")
	}

	var media model.SessionMediaModel
	err := ctrl.DB.
		Where("session_media_kind = ? AND session_media_storage_path LIKE ?", kind, "%"+filename).
		First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fiber.NewError(fiber.StatusNotFound, "Media tidak ditemukan")
		}
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil media")
	}

	if err := ctrl.requireOpenable(c, userID, media.SessionMediaSessionID); err != nil {
		return "", err
	}
	return service.Filename(media.SessionMediaStoragePath), nil
}

// requireOpenable: materi hanya terbuka untuk sesi yang sudah dibeli, dan
// event SCHEDULED memblokir semuanya berapa pun status belinya.
func (ctrl *MediaController) requireOpenable(c *fiber.Ctx, userID, sessionID uuid.UUID) error {
	var session eventModel.EventSessionModel
	if err := ctrl.DB.First(&session, "event_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	var event eventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", session.EventSessionEventID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	if event.IsScheduled() {
		return fiber.NewError(fiber.StatusForbidden, "Event belum dimulai")
	}

	checker := purchaseService.NewPurchaseChecker(ctrl.DB)
	has, err := checker.HasPurchased(c.UserContext(), userID, sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek status pembelian")
	}
	if !has {
		return fiber.NewError(fiber.StatusForbidden, "Sesi belum dibeli")
	}
	return nil
}
