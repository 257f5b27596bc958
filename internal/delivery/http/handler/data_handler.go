package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/pkg/utils"
	"github.com/smartcity-dashboard/internal/pkg/validator"
	"github.com/smartcity-dashboard/internal/usecase"
)

// DataHandler - отдача датасетов в GeoJSON
type DataHandler struct {
	datasetUC *usecase.DatasetUseCase
	logger    *zap.Logger
}

// NewDataHandler - создание нового DataHandler
func NewDataHandler(datasetUC *usecase.DatasetUseCase, logger *zap.Logger) *DataHandler {
	return &DataHandler{
		datasetUC: datasetUC,
		logger:    logger,
	}
}

type bboxLoader func(ctx context.Context, bbox *domain.BoundingBox) (*geojson.FeatureCollection, error)

// serveBBox - общий путь для датасетов с фильтром по области просмотра
func (h *DataHandler) serveBBox(c *fiber.Ctx, load bboxLoader) error {
	req, err := queryBBox(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	fc, err := load(c.UserContext(), req.BoundingBox())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendRaw(c, fc)
}

// AirQuality godoc
// @Summary Станции качества воздуха
// @Description Станции из aqi_delhi.csv, опционально внутри bbox
// @Tags Data
// @Produce json
// @Param min_lat query number false "Южная граница"
// @Param max_lat query number false "Северная граница"
// @Param min_lng query number false "Западная граница"
// @Param max_lng query number false "Восточная граница"
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/data/air-quality [get]
func (h *DataHandler) AirQuality(c *fiber.Ctx) error {
	return h.serveBBox(c, h.datasetUC.AirQuality)
}

// WaterQuality godoc
// @Summary Станции качества воды
// @Description Станции из water_delhi.csv, опционально внутри bbox
// @Tags Data
// @Produce json
// @Param min_lat query number false "Южная граница"
// @Param max_lat query number false "Северная граница"
// @Param min_lng query number false "Западная граница"
// @Param max_lng query number false "Восточная граница"
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/data/water-quality [get]
func (h *DataHandler) WaterQuality(c *fiber.Ctx) error {
	return h.serveBBox(c, h.datasetUC.WaterQuality)
}

// Traffic godoc
// @Summary Загруженность перекрестков
// @Description Строки traffic_flow.csv с последним timestamp. Нет файла - пустая коллекция.
// @Tags Traffic
// @Produce json
// @Param min_lat query number false "Южная граница"
// @Param max_lat query number false "Северная граница"
// @Param min_lng query number false "Западная граница"
// @Param max_lng query number false "Восточная граница"
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Router /api/data/traffic [get]
func (h *DataHandler) Traffic(c *fiber.Ctx) error {
	return h.serveBBox(c, h.datasetUC.Traffic)
}

// IndiaAQI godoc
// @Summary Качество воздуха по городам Индии
// @Description Последние показания каждой станции с известными координатами
// @Tags Data
// @Produce json
// @Param min_lat query number false "Южная граница"
// @Param max_lat query number false "Северная граница"
// @Param min_lng query number false "Западная граница"
// @Param max_lng query number false "Восточная граница"
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Router /api/data/aqi-india [get]
func (h *DataHandler) IndiaAQI(c *fiber.Ctx) error {
	return h.serveBBox(c, h.datasetUC.IndiaAQI)
}

// Reservoirs godoc
// @Summary Водохранилища Ченнаи
// @Description Уровни воды (mcft) на последнюю дату
// @Tags Chennai
// @Produce json
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/data/chennai/reservoirs [get]
func (h *DataHandler) Reservoirs(c *fiber.Ctx) error {
	fc, err := h.datasetUC.Reservoirs(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendRaw(c, fc)
}
