package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/redis/go-redis/v9"
	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	searchKeyPrefix = "geocode:search:"
	placesKeyPrefix = "places:"
)

// SearchKey - ключ кеша результатов поиска Nominatim
func SearchKey(query string) string {
	return searchKeyPrefix + query
}

// PlacesKey - ключ кеша объектов Overpass: places:<type>:<bbox|city>
func PlacesKey(query domain.PlaceQuery) string {
	if query.BBox != nil {
		b := query.BBox
		return fmt.Sprintf("%s%s:%g,%g,%g,%g", placesKeyPrefix, query.Type, b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
	}
	return fmt.Sprintf("%s%s:%s", placesKeyPrefix, query.Type, query.City)
}

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetSearchResults получает закешированный ответ поиска
func (r *cacheRepository) GetSearchResults(ctx context.Context, query string) (json.RawMessage, error) {
	data, err := r.Get(ctx, SearchKey(query))
	if err != nil || data == nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (r *cacheRepository) SetSearchResults(ctx context.Context, query string, results json.RawMessage, ttl time.Duration) error {
	return r.Set(ctx, SearchKey(query), results, ttl)
}

// GetPlaces получает FeatureCollection объектов из кеша
func (r *cacheRepository) GetPlaces(ctx context.Context, query domain.PlaceQuery) (*geojson.FeatureCollection, error) {
	data, err := r.Get(ctx, PlacesKey(query))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		r.logger.Error("Failed to unmarshal places from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal places: %w", err)
	}

	return fc, nil
}

// SetPlaces сохраняет FeatureCollection объектов в кеше
func (r *cacheRepository) SetPlaces(ctx context.Context, query domain.PlaceQuery, fc *geojson.FeatureCollection, ttl time.Duration) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		r.logger.Error("Failed to marshal places", zap.Error(err))
		return fmt.Errorf("marshal places: %w", err)
	}

	return r.Set(ctx, PlacesKey(query), data, ttl)
}
