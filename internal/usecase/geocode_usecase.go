package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"github.com/smartcity-dashboard/internal/pkg/errors"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

// GeocodeUseCase - поиск адресов и объектов карты через OSM
type GeocodeUseCase struct {
	geocoder    repository.GeocodingRepository
	placesRepo  repository.PlacesRepository
	cacheRepo   repository.CacheRepository
	searchTTL   time.Duration
	placesTTL   time.Duration
	defaultCity string
	logger      *zap.Logger
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(
	geocoder repository.GeocodingRepository,
	placesRepo repository.PlacesRepository,
	cacheRepo repository.CacheRepository,
	searchTTL time.Duration,
	placesTTL time.Duration,
	defaultCity string,
	logger *zap.Logger,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoder:    geocoder,
		placesRepo:  placesRepo,
		cacheRepo:   cacheRepo,
		searchTTL:   searchTTL,
		placesTTL:   placesTTL,
		defaultCity: defaultCity,
		logger:      logger,
	}
}

// Search проксирует поиск Nominatim; ответ кешируется по строке запроса
func (uc *GeocodeUseCase) Search(ctx context.Context, req dto.GeocodeSearchRequest) (json.RawMessage, error) {
	query := strings.TrimSpace(req.Query)
	if len([]rune(query)) < 2 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"q": "min=2"})
	}

	cached, err := uc.cacheRepo.GetSearchResults(ctx, query)
	if err != nil {
		uc.logger.Warn("Search cache read failed", zap.String("query", query), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	results, err := uc.geocoder.Search(ctx, query)
	if err != nil {
		uc.logger.Error("Nominatim search failed", zap.String("query", query), zap.Error(err))
		return nil, errors.ErrGeocodingUnavailable
	}

	if err := uc.cacheRepo.SetSearchResults(ctx, query, results, uc.searchTTL); err != nil {
		uc.logger.Warn("Search cache write failed", zap.String("query", query), zap.Error(err))
	}

	return results, nil
}

// Places возвращает объекты OSM как GeoJSON. Ошибка Overpass дает пустую коллекцию.
func (uc *GeocodeUseCase) Places(ctx context.Context, req dto.PlacesRequest) (*geojson.FeatureCollection, error) {
	placeType := domain.PlaceType(req.Type)
	if !placeType.Valid() {
		return nil, errors.ErrInvalidPlaceType.WithDetails(map[string]interface{}{"type": req.Type})
	}

	query := domain.PlaceQuery{Type: placeType}
	if bbox := req.BoundingBox(); bbox != nil {
		if !bbox.Valid() {
			return nil, errors.ErrInvalidBBox
		}
		query.BBox = bbox
	} else {
		query.City = uc.defaultCity
	}

	cached, err := uc.cacheRepo.GetPlaces(ctx, query)
	if err != nil {
		uc.logger.Warn("Places cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	places, err := uc.placesRepo.FetchPlaces(ctx, query)
	if err != nil {
		uc.logger.Error("Overpass request failed, returning empty collection",
			zap.String("type", string(placeType)),
			zap.Error(err))
		return geojson.NewFeatureCollection(), nil
	}

	fc := placesToFeatureCollection(places)
	if err := uc.cacheRepo.SetPlaces(ctx, query, fc, uc.placesTTL); err != nil {
		uc.logger.Warn("Places cache write failed", zap.Error(err))
	}

	return fc, nil
}

func placesToFeatureCollection(places []domain.Place) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, p := range places {
		details := p.Tags
		if details == nil {
			details = map[string]string{}
		}

		f := geojson.NewFeature(orb.Point{p.Lon, p.Lat})
		f.Properties["id"] = p.ID
		f.Properties["name"] = p.Name
		f.Properties["type"] = string(p.Type)
		f.Properties["details"] = details
		fc.Append(f)
	}
	return fc
}
