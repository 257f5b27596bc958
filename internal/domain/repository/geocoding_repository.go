package repository

import (
	"context"
	"encoding/json"
)

// GeocodingRepository - внешний сервис геокодирования (Nominatim)
type GeocodingRepository interface {
	// Search возвращает сырой JSON-массив результатов поиска
	Search(ctx context.Context, query string) (json.RawMessage, error)

	// ReverseGeocode возвращает display_name для координаты
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}
