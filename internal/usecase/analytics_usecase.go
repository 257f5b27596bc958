package usecase

import (
	"context"
	stderrors "errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"github.com/smartcity-dashboard/internal/pkg/errors"
	"github.com/smartcity-dashboard/internal/usecase/dto"
)

const normalInsight = "Normal environmental levels."

// AnalyticsUseCase - агрегаты по области просмотра карты
type AnalyticsUseCase struct {
	envRepo repository.EnvironmentRepository
	logger  *zap.Logger
}

// NewAnalyticsUseCase - создание нового AnalyticsUseCase
func NewAnalyticsUseCase(envRepo repository.EnvironmentRepository, logger *zap.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		envRepo: envRepo,
		logger:  logger,
	}
}

// Summary считает средние AQI и WQI по станциям внутри bbox
func (uc *AnalyticsUseCase) Summary(ctx context.Context, req dto.SummaryRequest) (*dto.SummaryResponse, error) {
	bbox := req.BoundingBox()
	if !bbox.Valid() {
		return nil, errors.ErrInvalidBBox
	}

	summary := &dto.SummaryResponse{}

	airStations, err := uc.envRepo.GetAirQualityStations(ctx)
	if err := uc.skipMissing("air quality", err); err != nil {
		return nil, err
	}
	var aqi []float64
	for _, s := range airStations {
		if bbox.Contains(s.Latitude, s.Longitude) {
			aqi = append(aqi, s.AQI)
		}
	}
	summary.AvgAQI = truncatedMean(aqi)

	waterStations, err := uc.envRepo.GetWaterQualityStations(ctx)
	if err := uc.skipMissing("water quality", err); err != nil {
		return nil, err
	}
	var wqi []float64
	for _, s := range waterStations {
		if bbox.Contains(s.Latitude, s.Longitude) {
			wqi = append(wqi, s.WQI)
		}
	}
	summary.AvgWQI = truncatedMean(wqi)

	summary.Insight = buildInsight(summary.AvgAQI, summary.AvgWQI)
	return summary, nil
}

// skipMissing: отсутствующий датасет не считается ошибкой сводки
func (uc *AnalyticsUseCase) skipMissing(dataset string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, domain.ErrDatasetNotFound) {
		uc.logger.Debug("Dataset missing, skipped in summary", zap.String("dataset", dataset))
		return nil
	}
	uc.logger.Error("Failed to load dataset for summary", zap.String("dataset", dataset), zap.Error(err))
	return errors.ErrDataProcessing.WithDetails(map[string]interface{}{"dataset": dataset})
}

// truncatedMean - среднее без NaN, усеченное до целого; nil, если значений нет
func truncatedMean(values []float64) *int {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return nil
	}
	mean := int(sum / float64(n))
	return &mean
}

// buildInsight: нулевое среднее не дает подсказки, как и отсутствующее
func buildInsight(avgAQI, avgWQI *int) string {
	var insights []string

	if avgAQI != nil && *avgAQI != 0 {
		if *avgAQI > 200 {
			insights = append(insights, "High air pollution detected.")
		} else if *avgAQI < 100 {
			insights = append(insights, "Air quality is good.")
		}
	}

	if avgWQI != nil && *avgWQI > 100 {
		insights = append(insights, "Water contamination warning.")
	}

	if len(insights) == 0 {
		return normalInsight
	}
	return strings.Join(insights, " ")
}
