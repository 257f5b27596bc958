package usecase

import (
	"context"
	stderrors "errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"github.com/smartcity-dashboard/internal/pkg/errors"
)

// DatasetUseCase - отдача датасетов в виде GeoJSON
type DatasetUseCase struct {
	envRepo     repository.EnvironmentRepository
	trafficRepo repository.TrafficRepository
	logger      *zap.Logger
}

// NewDatasetUseCase - создание нового DatasetUseCase
func NewDatasetUseCase(
	envRepo repository.EnvironmentRepository,
	trafficRepo repository.TrafficRepository,
	logger *zap.Logger,
) *DatasetUseCase {
	return &DatasetUseCase{
		envRepo:     envRepo,
		trafficRepo: trafficRepo,
		logger:      logger,
	}
}

// AirQuality - станции aqi_delhi.csv, опционально в пределах bbox
func (uc *DatasetUseCase) AirQuality(ctx context.Context, bbox *domain.BoundingBox) (*geojson.FeatureCollection, error) {
	if err := checkBBox(bbox); err != nil {
		return nil, err
	}

	stations, err := uc.envRepo.GetAirQualityStations(ctx)
	if err != nil {
		return nil, uc.datasetError("air quality", err)
	}

	fc := geojson.NewFeatureCollection()
	for _, s := range stations {
		if !domain.ContainsOrAll(bbox, s.Latitude, s.Longitude) {
			continue
		}
		f := geojson.NewFeature(orb.Point{s.Longitude, s.Latitude})
		f.Properties = geojson.Properties{
			"StationId":   s.StationID,
			"StationName": s.StationName,
			"City":        s.City,
			"Date":        s.Date,
			"AQI":         jsonNumber(s.AQI),
			"PM2.5":       jsonNumber(s.PM25),
			"PM10":        jsonNumber(s.PM10),
			"NO2":         jsonNumber(s.NO2),
		}
		fc.Append(f)
	}

	return fc, nil
}

// WaterQuality - станции water_delhi.csv, опционально в пределах bbox
func (uc *DatasetUseCase) WaterQuality(ctx context.Context, bbox *domain.BoundingBox) (*geojson.FeatureCollection, error) {
	if err := checkBBox(bbox); err != nil {
		return nil, err
	}

	stations, err := uc.envRepo.GetWaterQualityStations(ctx)
	if err != nil {
		return nil, uc.datasetError("water quality", err)
	}

	fc := geojson.NewFeatureCollection()
	for _, s := range stations {
		if !domain.ContainsOrAll(bbox, s.Latitude, s.Longitude) {
			continue
		}
		f := geojson.NewFeature(orb.Point{s.Longitude, s.Latitude})
		f.Properties = geojson.Properties{
			"StationCode": s.StationCode,
			"Location":    s.Location,
			"State":       s.State,
			"WQI":         jsonNumber(s.WQI),
			"pH":          jsonNumber(s.PH),
			"DO":          jsonNumber(s.DO),
			"BOD":         jsonNumber(s.BOD),
		}
		fc.Append(f)
	}

	return fc, nil
}

// Traffic - перекрестки на последний момент времени.
// Отсутствующий или нечитаемый файл дает пустую коллекцию.
func (uc *DatasetUseCase) Traffic(ctx context.Context, bbox *domain.BoundingBox) (*geojson.FeatureCollection, error) {
	if err := checkBBox(bbox); err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()

	snap, err := uc.trafficRepo.Snapshot(ctx)
	if err != nil {
		uc.logger.Warn("Traffic snapshot unavailable", zap.Error(err))
		return fc, nil
	}

	latest, err := snap.Latest()
	if err != nil {
		uc.logger.Error("Failed to select latest traffic rows", zap.Error(err))
		return fc, nil
	}

	for _, r := range latest {
		if !domain.ContainsOrAll(bbox, r.Lat, r.Lon) {
			continue
		}
		f := geojson.NewFeature(orb.Point{r.Lon, r.Lat})
		f.Properties = geojson.Properties{
			"intersection_id": r.IntersectionID,
			"congestion":      jsonNumber(r.Congestion),
			"flow_vpm":        jsonNumber(r.FlowVPM),
			"avg_speed":       jsonNumber(r.AvgSpeedKmh),
			"incidents":       jsonNumber(r.Incidents),
			"timestamp":       r.Timestamp,
		}
		fc.Append(f)
	}

	return fc, nil
}

// IndiaAQI - последние показания станций по городам Индии
func (uc *DatasetUseCase) IndiaAQI(ctx context.Context, bbox *domain.BoundingBox) (*geojson.FeatureCollection, error) {
	if err := checkBBox(bbox); err != nil {
		return nil, err
	}

	readings, err := uc.envRepo.GetIndiaAQIReadings(ctx)
	if err != nil {
		return nil, uc.datasetError("india aqi", err)
	}

	fc := geojson.NewFeatureCollection()
	for _, r := range readings {
		if !domain.ContainsOrAll(bbox, r.Lat, r.Lon) {
			continue
		}
		f := geojson.NewFeature(orb.Point{r.Lon, r.Lat})
		f.Properties = geojson.Properties{
			"city":      r.City,
			"location":  r.Location,
			"timestamp": r.Timestamp,
			"pm25":      optionalNumber(r.PM25),
			"pm10":      optionalNumber(r.PM10),
			"no2":       optionalNumber(r.NO2),
			"so2":       optionalNumber(r.SO2),
			"co":        optionalNumber(r.CO),
			"o3":        optionalNumber(r.O3),
			"aqi":       optionalNumber(r.AQI),
		}
		fc.Append(f)
	}

	return fc, nil
}

// Reservoirs - уровни водохранилищ Ченнаи на последнюю дату
func (uc *DatasetUseCase) Reservoirs(ctx context.Context) (*geojson.FeatureCollection, error) {
	levels, err := uc.envRepo.GetReservoirLevels(ctx)
	if err != nil {
		return nil, uc.datasetError("chennai reservoirs", err)
	}

	fc := geojson.NewFeatureCollection()
	for _, l := range levels {
		f := geojson.NewFeature(orb.Point{l.Lon, l.Lat})
		f.Properties = geojson.Properties{
			"name":       l.Name,
			"level_mcft": jsonNumber(l.LevelMcft),
			"date":       l.Date,
			"type":       "reservoir",
		}
		fc.Append(f)
	}

	return fc, nil
}

// datasetError: отсутствующий файл - 404, остальное - 500
func (uc *DatasetUseCase) datasetError(dataset string, err error) error {
	if stderrors.Is(err, domain.ErrDatasetNotFound) {
		uc.logger.Warn("Dataset not found", zap.String("dataset", dataset), zap.Error(err))
		return errors.ErrDataSourceNotFound.WithDetails(map[string]interface{}{"dataset": dataset})
	}

	uc.logger.Error("Failed to load dataset", zap.String("dataset", dataset), zap.Error(err))
	return errors.ErrDataProcessing.WithDetails(map[string]interface{}{"dataset": dataset})
}

func checkBBox(bbox *domain.BoundingBox) error {
	if bbox != nil && !bbox.Valid() {
		return errors.ErrInvalidBBox
	}
	return nil
}

// jsonNumber заменяет NaN и Inf на null: encoding/json их не сериализует
func jsonNumber(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func optionalNumber(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return jsonNumber(*v)
}
