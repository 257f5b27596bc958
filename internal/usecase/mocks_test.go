package usecase_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/mock"

	"github.com/smartcity-dashboard/internal/domain"
)

// MockTrafficRepository is a mock of TrafficRepository
type MockTrafficRepository struct {
	mock.Mock
}

func (m *MockTrafficRepository) Snapshot(ctx context.Context) (*domain.TrafficSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrafficSnapshot), args.Error(1)
}

func (m *MockTrafficRepository) Reload(ctx context.Context) (*domain.TrafficSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrafficSnapshot), args.Error(1)
}

func (m *MockTrafficRepository) Sample(ctx context.Context, lat, lng float64) (domain.TrafficSample, error) {
	args := m.Called(ctx, lat, lng)
	return args.Get(0).(domain.TrafficSample), args.Error(1)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Search(ctx context.Context, query string) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockGeocodingRepository) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	args := m.Called(ctx, lat, lng)
	return args.String(0), args.Error(1)
}

// MockPlacesRepository is a mock of PlacesRepository
type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) FetchPlaces(ctx context.Context, query domain.PlaceQuery) ([]domain.Place, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetSearchResults(ctx context.Context, query string) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockCacheRepository) SetSearchResults(ctx context.Context, query string, results json.RawMessage, ttl time.Duration) error {
	args := m.Called(ctx, query, results, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetPlaces(ctx context.Context, query domain.PlaceQuery) (*geojson.FeatureCollection, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geojson.FeatureCollection), args.Error(1)
}

func (m *MockCacheRepository) SetPlaces(ctx context.Context, query domain.PlaceQuery, fc *geojson.FeatureCollection, ttl time.Duration) error {
	args := m.Called(ctx, query, fc, ttl)
	return args.Error(0)
}

// MockEnvironmentRepository is a mock of EnvironmentRepository
type MockEnvironmentRepository struct {
	mock.Mock
}

func (m *MockEnvironmentRepository) GetAirQualityStations(ctx context.Context) ([]domain.AirQualityStation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AirQualityStation), args.Error(1)
}

func (m *MockEnvironmentRepository) GetWaterQualityStations(ctx context.Context) ([]domain.WaterQualityStation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WaterQualityStation), args.Error(1)
}

func (m *MockEnvironmentRepository) GetIndiaAQIReadings(ctx context.Context) ([]domain.IndiaAQIReading, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndiaAQIReading), args.Error(1)
}

func (m *MockEnvironmentRepository) GetReservoirLevels(ctx context.Context) ([]domain.ReservoirLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservoirLevel), args.Error(1)
}
