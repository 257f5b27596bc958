package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/pkg/utils"
	"github.com/smartcity-dashboard/internal/pkg/validator"
	"github.com/smartcity-dashboard/internal/usecase"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

type AnalyticsHandler struct {
	analyticsUC *usecase.AnalyticsUseCase
	logger      *zap.Logger
}

func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: analyticsUC,
		logger:      logger,
	}
}

// Summary godoc
// @Summary Сводка по области просмотра
// @Description Средние AQI и WQI станций внутри bbox и текстовая подсказка
// @Tags Analytics
// @Produce json
// @Param min_lat query number true "Южная граница"
// @Param max_lat query number true "Северная граница"
// @Param min_lng query number true "Западная граница"
// @Param max_lng query number true "Восточная граница"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	bbox, err := queryBBox(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.SummaryRequest{
		MinLat: bbox.MinLat,
		MaxLat: bbox.MaxLat,
		MinLng: bbox.MinLng,
		MaxLng: bbox.MaxLng,
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	summary, err := h.analyticsUC.Summary(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendRaw(c, summary)
}
