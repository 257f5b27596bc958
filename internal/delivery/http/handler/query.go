package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/smartcity-dashboard/internal/pkg/errors"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

// queryFloat разбирает необязательный числовой параметр; пустое значение - nil
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{key: "must be a number"})
	}
	return &v, nil
}

// queryBBox читает min_lat, max_lat, min_lng, max_lng
func queryBBox(c *fiber.Ctx) (dto.BBoxRequest, error) {
	var req dto.BBoxRequest
	var err error

	if req.MinLat, err = queryFloat(c, "min_lat"); err != nil {
		return req, err
	}
	if req.MaxLat, err = queryFloat(c, "max_lat"); err != nil {
		return req, err
	}
	if req.MinLng, err = queryFloat(c, "min_lng"); err != nil {
		return req, err
	}
	if req.MaxLng, err = queryFloat(c, "max_lng"); err != nil {
		return req, err
	}

	return req, nil
}
