package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/pkg/errors"
	"github.com/smartcity-dashboard/internal/pkg/utils"
	"github.com/smartcity-dashboard/internal/pkg/validator"
	"github.com/smartcity-dashboard/internal/usecase"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

// ProbeHandler - обработчик отчета по точке
type ProbeHandler struct {
	probeUC *usecase.ProbeUseCase
	logger  *zap.Logger
}

// NewProbeHandler - создание нового ProbeHandler
func NewProbeHandler(probeUC *usecase.ProbeUseCase, logger *zap.Logger) *ProbeHandler {
	return &ProbeHandler{
		probeUC: probeUC,
		logger:  logger,
	}
}

// Analyze godoc
// @Summary Отчет по точке карты
// @Description Собирает трафик, экологию, безопасность, инфраструктуру, тренды и сравнение с районами для координаты. Сбои источников данных заменяются значениями по умолчанию.
// @Tags Probe
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Param days query int false "Глубина трендов в днях (1 = почасовой режим, <= 0 без трендов)" default(7)
// @Success 200 {object} dto.Report
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/probe/analyze [get]
func (h *ProbeHandler) Analyze(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(c.Query("lat")), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(c.Query("lng")), 64)
	if errLat != nil || errLng != nil || !utils.IsFiniteCoordinate(lat, lng) {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat": c.Query("lat"),
			"lng": c.Query("lng"),
		}))
	}

	req := dto.AnalyzeRequest{Lat: lat, Lng: lng, Days: usecase.DefaultTrendDays}
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"days": "must be an integer"}))
		}
		req.Days = days
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.probeUC.Analyze(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendRaw(c, report)
}
