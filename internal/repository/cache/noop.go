package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
)

// noopCache используется при REDIS_ENABLED=false: всегда промах, запись игнорируется
type noopCache struct{}

func NewNoopCacheRepository() repository.CacheRepository {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (noopCache) Delete(context.Context, string) error { return nil }

func (noopCache) Exists(context.Context, string) (bool, error) { return false, nil }

func (noopCache) GetSearchResults(context.Context, string) (json.RawMessage, error) {
	return nil, nil
}

func (noopCache) SetSearchResults(context.Context, string, json.RawMessage, time.Duration) error {
	return nil
}

func (noopCache) GetPlaces(context.Context, domain.PlaceQuery) (*geojson.FeatureCollection, error) {
	return nil, nil
}

func (noopCache) SetPlaces(context.Context, domain.PlaceQuery, *geojson.FeatureCollection, time.Duration) error {
	return nil
}
