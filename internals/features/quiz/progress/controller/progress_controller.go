package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/quiz/progress/service"
	helper "kursusku_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// =============================
// 📊 Progress kuis satu event
// =============================
func (ctrl *ProgressController) GetEventQuizProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Event ID tidak valid")
	}

	aggregator := service.NewAggregator(ctrl.DB)
	progress, err := aggregator.Aggregate(c.UserContext(), userID, eventID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil progress kuis")
	}

	return helper.Success(c, "Berhasil ambil progress kuis", progress)
}
