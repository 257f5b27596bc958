package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/domain"
	apperrors "github.com/smartcity-dashboard/internal/pkg/errors"
	"github.com/smartcity-dashboard/internal/usecase"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

func newGeocodeUseCase(geocoder *MockGeocodingRepository, places *MockPlacesRepository, cache *MockCacheRepository) *usecase.GeocodeUseCase {
	return usecase.NewGeocodeUseCase(geocoder, places, cache, time.Hour, 15*time.Minute, "New Delhi", zap.NewNop())
}

func ptr(v float64) *float64 {
	return &v
}

func TestGeocodeUseCase_Search(t *testing.T) {
	ctx := context.Background()
	results := json.RawMessage(`[{"display_name":"India Gate, New Delhi"}]`)

	t.Run("cache miss fetches and stores", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(geocoder, &MockPlacesRepository{}, cache)

		cache.On("GetSearchResults", ctx, "india gate").Return(nil, nil)
		geocoder.On("Search", ctx, "india gate").Return(results, nil)
		cache.On("SetSearchResults", ctx, "india gate", results, time.Hour).Return(nil)

		got, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: " india gate "})
		require.NoError(t, err)
		assert.JSONEq(t, string(results), string(got))

		geocoder.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips upstream", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(geocoder, &MockPlacesRepository{}, cache)

		cache.On("GetSearchResults", ctx, "india gate").Return(results, nil)

		got, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "india gate"})
		require.NoError(t, err)
		assert.JSONEq(t, string(results), string(got))
		geocoder.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(geocoder, &MockPlacesRepository{}, cache)

		cache.On("GetSearchResults", ctx, "india gate").Return(nil, errors.New("redis down"))
		geocoder.On("Search", ctx, "india gate").Return(results, nil)
		cache.On("SetSearchResults", ctx, "india gate", results, time.Hour).Return(errors.New("redis down"))

		got, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "india gate"})
		require.NoError(t, err)
		assert.JSONEq(t, string(results), string(got))
	})

	t.Run("upstream failure", func(t *testing.T) {
		geocoder := &MockGeocodingRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(geocoder, &MockPlacesRepository{}, cache)

		cache.On("GetSearchResults", ctx, "india gate").Return(nil, nil)
		geocoder.On("Search", ctx, "india gate").Return(nil, errors.New("status 503"))

		_, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "india gate"})
		assert.ErrorIs(t, err, apperrors.ErrGeocodingUnavailable)
	})

	t.Run("short query", func(t *testing.T) {
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, &MockPlacesRepository{}, &MockCacheRepository{})

		_, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: " a "})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	})
}

func TestGeocodeUseCase_Places(t *testing.T) {
	ctx := context.Background()
	hospitals := []domain.Place{
		{ID: 101, Name: "AIIMS", Type: domain.PlaceTypeHospital, Lat: 28.567, Lon: 77.21, Tags: map[string]string{"amenity": "hospital", "name": "AIIMS"}},
		{ID: 202, Name: "Unknown", Type: domain.PlaceTypeHospital, Lat: 28.6, Lon: 77.3},
	}

	t.Run("city query is cached", func(t *testing.T) {
		places := &MockPlacesRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, places, cache)

		query := domain.PlaceQuery{Type: domain.PlaceTypeHospital, City: "New Delhi"}
		cache.On("GetPlaces", ctx, query).Return(nil, nil)
		places.On("FetchPlaces", ctx, query).Return(hospitals, nil)
		cache.On("SetPlaces", ctx, query, mock.AnythingOfType("*geojson.FeatureCollection"), 15*time.Minute).Return(nil)

		fc, err := uc.Places(ctx, dto.PlacesRequest{Type: "hospital"})
		require.NoError(t, err)
		require.Len(t, fc.Features, 2)

		f := fc.Features[0]
		assert.Equal(t, orb.Point{77.21, 28.567}, f.Geometry)
		assert.Equal(t, int64(101), f.Properties["id"])
		assert.Equal(t, "AIIMS", f.Properties["name"])
		assert.Equal(t, "hospital", f.Properties["type"])
		assert.Equal(t, map[string]string{"amenity": "hospital", "name": "AIIMS"}, f.Properties["details"])
		assert.Equal(t, map[string]string{}, fc.Features[1].Properties["details"])

		places.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("bbox query", func(t *testing.T) {
		places := &MockPlacesRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, places, cache)

		query := domain.PlaceQuery{
			Type: domain.PlaceTypePolice,
			BBox: &domain.BoundingBox{MinLat: 28.5, MinLon: 77.1, MaxLat: 28.7, MaxLon: 77.3},
		}
		cache.On("GetPlaces", ctx, query).Return(nil, nil)
		places.On("FetchPlaces", ctx, query).Return([]domain.Place{}, nil)
		cache.On("SetPlaces", ctx, query, mock.Anything, 15*time.Minute).Return(nil)

		fc, err := uc.Places(ctx, dto.PlacesRequest{
			Type: "police",
			BBoxRequest: dto.BBoxRequest{
				MinLat: ptr(28.5), MaxLat: ptr(28.7), MinLng: ptr(77.1), MaxLng: ptr(77.3),
			},
		})
		require.NoError(t, err)
		assert.Empty(t, fc.Features)
		places.AssertExpectations(t)
	})

	t.Run("partial bbox falls back to city", func(t *testing.T) {
		places := &MockPlacesRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, places, cache)

		query := domain.PlaceQuery{Type: domain.PlaceTypePark, City: "New Delhi"}
		cache.On("GetPlaces", ctx, query).Return(nil, nil)
		places.On("FetchPlaces", ctx, query).Return([]domain.Place{}, nil)
		cache.On("SetPlaces", ctx, query, mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Places(ctx, dto.PlacesRequest{Type: "park", BBoxRequest: dto.BBoxRequest{MinLat: ptr(28.5)}})
		require.NoError(t, err)
		places.AssertExpectations(t)
	})

	t.Run("cache hit", func(t *testing.T) {
		places := &MockPlacesRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, places, cache)

		cached := geojson.NewFeatureCollection()
		cached.Append(geojson.NewFeature(orb.Point{77.2, 28.6}))
		cache.On("GetPlaces", ctx, mock.Anything).Return(cached, nil)

		fc, err := uc.Places(ctx, dto.PlacesRequest{Type: "fire_station"})
		require.NoError(t, err)
		assert.Same(t, cached, fc)
		places.AssertNotCalled(t, "FetchPlaces", mock.Anything, mock.Anything)
	})

	t.Run("upstream error returns empty collection", func(t *testing.T) {
		places := &MockPlacesRepository{}
		cache := &MockCacheRepository{}
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, places, cache)

		cache.On("GetPlaces", ctx, mock.Anything).Return(nil, nil)
		places.On("FetchPlaces", ctx, mock.Anything).Return(nil, errors.New("overpass 504"))

		fc, err := uc.Places(ctx, dto.PlacesRequest{Type: "hospital"})
		require.NoError(t, err)
		assert.NotNil(t, fc)
		assert.Empty(t, fc.Features)
		cache.AssertNotCalled(t, "SetPlaces", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, &MockPlacesRepository{}, &MockCacheRepository{})

		_, err := uc.Places(ctx, dto.PlacesRequest{Type: "school"})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_PLACE_TYPE", appErr.Code)
	})

	t.Run("inverted bbox", func(t *testing.T) {
		uc := newGeocodeUseCase(&MockGeocodingRepository{}, &MockPlacesRepository{}, &MockCacheRepository{})

		_, err := uc.Places(ctx, dto.PlacesRequest{
			Type: "hospital",
			BBoxRequest: dto.BBoxRequest{
				MinLat: ptr(28.7), MaxLat: ptr(28.5), MinLng: ptr(77.1), MaxLng: ptr(77.3),
			},
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidBBox)
	})
}
