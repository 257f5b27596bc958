package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"github.com/smartcity-dashboard/internal/pkg/errors"
	"github.com/smartcity-dashboard/internal/pkg/utils"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

const (
	// DefaultTrendDays - глубина трендов, если days не передан
	DefaultTrendDays = 7

	addressComponents = 3
)

// ProbeUseCase - сборка отчета по точке карты
type ProbeUseCase struct {
	trafficRepo    repository.TrafficRepository
	geocoder       repository.GeocodingRepository
	clock          clockwork.Clock
	jitter         JitterSource
	geocodeTimeout time.Duration
	logger         *zap.Logger
}

// NewProbeUseCase - создание нового ProbeUseCase
func NewProbeUseCase(
	trafficRepo repository.TrafficRepository,
	geocoder repository.GeocodingRepository,
	clock clockwork.Clock,
	jitter JitterSource,
	geocodeTimeout time.Duration,
	logger *zap.Logger,
) *ProbeUseCase {
	return &ProbeUseCase{
		trafficRepo:    trafficRepo,
		geocoder:       geocoder,
		clock:          clock,
		jitter:         jitter,
		geocodeTimeout: geocodeTimeout,
		logger:         logger,
	}
}

// Analyze собирает отчет. Сбой любого блока заменяется значением по умолчанию,
// ошибка возвращается только для невалидных координат.
func (uc *ProbeUseCase) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.Report, error) {
	if !utils.IsFiniteCoordinate(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	lat, lng := req.Lat, req.Lng
	log := uc.logger.With(zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Int("days", req.Days))

	traffic := domain.UnknownTrafficSample()
	uc.guard(log, "traffic", func() {
		sample, err := uc.trafficRepo.Sample(ctx, lat, lng)
		if err != nil {
			log.Warn("Traffic lookup failed", zap.Error(err))
			return
		}
		traffic = sample
	})

	metrics := domain.ProbeMetrics{Weather: weatherConditions[0]}
	uc.guard(log, "metrics", func() {
		metrics = deriveMetrics(lat, lng, traffic.Congestion, uc.jitter())
	})

	address := coordinateAddress(lat, lng)
	uc.guard(log, "geocode", func() {
		address = uc.resolveAddress(ctx, log, lat, lng)
	})

	base := trendBase{
		AQI:     int(metrics.AQI),
		Traffic: int(traffic.Congestion),
		Crime:   metrics.CrimeIndex,
		WQI:     int(metrics.WQI),
	}

	trends := emptyTrends()
	if req.Days > 0 {
		uc.guard(log, "trends", func() {
			trends = synthesizeTrends(lat, lng, req.Days, base, uc.clock.Now())
		})
	}

	regional := make([]domain.RegionalEntry, 0)
	uc.guard(log, "regional", func() {
		regional = compareRegions(lat, lng, base.AQI, metrics.SafetyScore)
	})

	verdict := defaultVerdict()
	uc.guard(log, "verdict", func() {
		verdict = buildVerdict(metrics, traffic.Congestion)
	})

	return &dto.Report{
		Location: dto.LocationBlock{Lat: lat, Lng: lng, Address: address},
		Verdict:  verdict,
		Traffic:  traffic,
		Environment: dto.EnvironmentBlock{
			AQI:   dto.IndicatorInt{Value: int(metrics.AQI), Status: aqiStatus(metrics.AQI)},
			Water: dto.IndicatorInt{Value: int(metrics.WQI), Status: waterStatus(metrics.WQI)},
			Weather: dto.WeatherBlock{
				Condition: metrics.Weather,
				Temp:      fmt.Sprintf("%d°C", 28+int(metrics.WQI)%5),
			},
			Noise: dto.IndicatorString{
				Value:  fmt.Sprintf("%d dB", metrics.NoiseIdx),
				Status: noiseStatus(metrics.NoiseIdx),
			},
		},
		Safety: dto.SafetyBlock{
			Score:     int(metrics.SafetyScore),
			CrimeRate: fmt.Sprintf("%.1f/100", metrics.CrimeIndex),
			Rating:    safetyRating(metrics.SafetyScore),
			Reviews:   int(metrics.SafetyScore * 12),
		},
		Nearby: dto.NearbyBlock{
			Hospitals:      metrics.Hospitals + 1,
			Parks:          metrics.Parks + 1,
			Malls:          metrics.Malls,
			ParkingScore:   int(100 - traffic.Congestion),
			TransportScore: int(traffic.Speed + 40),
		},
		Analytics: trends,
		Regional:  regional,
	}, nil
}

// guard изолирует блок отчета: паника логируется, остается значение по умолчанию
func (uc *ProbeUseCase) guard(log *zap.Logger, block string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Report block failed, using default",
				zap.String("block", block),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
	}()
	fn()
}

func (uc *ProbeUseCase) resolveAddress(ctx context.Context, log *zap.Logger, lat, lng float64) string {
	ctx, cancel := context.WithTimeout(ctx, uc.geocodeTimeout)
	defer cancel()

	name, err := uc.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		log.Warn("Reverse geocoding failed, using coordinates", zap.Error(err))
		return coordinateAddress(lat, lng)
	}

	return shortenAddress(name)
}

// shortenAddress оставляет первые три компонента display_name
func shortenAddress(name string) string {
	parts := strings.Split(name, ",")
	if len(parts) > addressComponents {
		parts = parts[:addressComponents]
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ", ")
}

func coordinateAddress(lat, lng float64) string {
	return fmt.Sprintf("Coord: %.4f, %.4f", lat, lng)
}

func emptyTrends() domain.TrendSeries {
	return domain.TrendSeries{
		Labels:   []string{},
		AQI:      []int{},
		Traffic:  []int{},
		Humidity: []int{},
		Water:    []int{},
		Crime:    []float64{},
	}
}

func aqiStatus(aqi float64) string {
	if aqi > 150 {
		return "Poor"
	}
	return "Good"
}

func waterStatus(wqi float64) string {
	if wqi > 80 {
		return "Potable"
	}
	return "Needs Treatment"
}

func noiseStatus(noiseIdx int) string {
	if noiseIdx > 70 {
		return "High"
	}
	return "Moderate"
}

func safetyRating(safety float64) string {
	if safety > 70 {
		return "Safe"
	}
	return "Caution"
}
