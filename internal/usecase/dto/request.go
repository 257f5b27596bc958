package dto

import "github.com/smartcity-dashboard/internal/domain"

// AnalyzeRequest - запрос отчета по точке
type AnalyzeRequest struct {
	Lat  float64 `query:"lat"`
	Lng  float64 `query:"lng"`
	Days int     `query:"days" validate:"max=3650"`
}

// GeocodeSearchRequest - прокси-поиск Nominatim
type GeocodeSearchRequest struct {
	Query string `query:"q" validate:"required,min=2"`
}

// BBoxRequest - необязательный фильтр области просмотра.
// Фильтр применяется только если заданы все четыре границы.
type BBoxRequest struct {
	MinLat *float64 `query:"min_lat" validate:"omitempty,min=-90,max=90"`
	MaxLat *float64 `query:"max_lat" validate:"omitempty,min=-90,max=90"`
	MinLng *float64 `query:"min_lng" validate:"omitempty,min=-180,max=180"`
	MaxLng *float64 `query:"max_lng" validate:"omitempty,min=-180,max=180"`
}

// Complete - заданы ли все четыре границы
func (r BBoxRequest) Complete() bool {
	return r.MinLat != nil && r.MaxLat != nil && r.MinLng != nil && r.MaxLng != nil
}

// BoundingBox возвращает nil, если фильтр задан не полностью
func (r BBoxRequest) BoundingBox() *domain.BoundingBox {
	if !r.Complete() {
		return nil
	}
	return &domain.BoundingBox{
		MinLat: *r.MinLat,
		MinLon: *r.MinLng,
		MaxLat: *r.MaxLat,
		MaxLon: *r.MaxLng,
	}
}

// PlacesRequest - объекты карты заданного типа
type PlacesRequest struct {
	Type string `query:"type" validate:"required"`
	BBoxRequest
}

// SummaryRequest - сводка по области просмотра; все границы обязательны
type SummaryRequest struct {
	MinLat *float64 `query:"min_lat" validate:"required,min=-90,max=90"`
	MaxLat *float64 `query:"max_lat" validate:"required,min=-90,max=90"`
	MinLng *float64 `query:"min_lng" validate:"required,min=-180,max=180"`
	MaxLng *float64 `query:"max_lng" validate:"required,min=-180,max=180"`
}

func (r SummaryRequest) BoundingBox() domain.BoundingBox {
	return domain.BoundingBox{
		MinLat: *r.MinLat,
		MinLon: *r.MinLng,
		MaxLat: *r.MaxLat,
		MaxLon: *r.MaxLng,
	}
}
