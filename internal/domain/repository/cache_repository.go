package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/smartcity-dashboard/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; промах кеша - (nil, nil)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetSearchResults получает ответ геокодера по строке поиска
	GetSearchResults(ctx context.Context, query string) (json.RawMessage, error)

	// SetSearchResults сохраняет ответ геокодера
	SetSearchResults(ctx context.Context, query string, results json.RawMessage, ttl time.Duration) error

	// GetPlaces получает GeoJSON объектов карты
	GetPlaces(ctx context.Context, query domain.PlaceQuery) (*geojson.FeatureCollection, error)

	// SetPlaces сохраняет GeoJSON объектов карты
	SetPlaces(ctx context.Context, query domain.PlaceQuery, fc *geojson.FeatureCollection, ttl time.Duration) error
}
