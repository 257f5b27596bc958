package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/pkg/utils"
	"github.com/smartcity-dashboard/internal/pkg/validator"
	"github.com/smartcity-dashboard/internal/usecase"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

// GeocodeHandler - поиск адресов и объектов OSM
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Search godoc
// @Summary Поиск адреса
// @Description Проксирует поиск Nominatim (не более 5 результатов, с деталями адреса). Ответ Nominatim возвращается без изменений.
// @Tags Geo
// @Produce json
// @Param q query string true "Поисковый запрос (минимум 2 символа)"
// @Success 200 {array} object
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/geocode/search [get]
func (h *GeocodeHandler) Search(c *fiber.Ctx) error {
	req := dto.GeocodeSearchRequest{Query: c.Query("q")}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	results, err := h.geocodeUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(results)
}

// Places godoc
// @Summary Объекты карты
// @Description Больницы, полиция, пожарные части или парки из OpenStreetMap в виде GeoJSON. Без bbox поиск идет по городу по умолчанию. Ошибка Overpass дает пустую коллекцию.
// @Tags Geo
// @Produce json
// @Param type query string false "Тип объекта (hospital, police, fire_station, park)" default(hospital)
// @Param min_lat query number false "Южная граница"
// @Param max_lat query number false "Северная граница"
// @Param min_lng query number false "Западная граница"
// @Param max_lng query number false "Восточная граница"
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/geocode/places [get]
func (h *GeocodeHandler) Places(c *fiber.Ctx) error {
	bbox, err := queryBBox(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.PlacesRequest{
		Type:        c.Query("type", "hospital"),
		BBoxRequest: bbox,
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	fc, err := h.geocodeUC.Places(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendRaw(c, fc)
}
