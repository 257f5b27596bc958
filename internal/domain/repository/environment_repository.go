package repository

import (
	"context"

	"github.com/smartcity-dashboard/internal/domain"
)

// EnvironmentRepository - доступ к датасетам качества воздуха и воды.
// Отсутствующий файл возвращается как ошибка, оборачивающая domain.ErrDatasetNotFound.
type EnvironmentRepository interface {
	// GetAirQualityStations возвращает станции aqi_delhi.csv
	GetAirQualityStations(ctx context.Context) ([]domain.AirQualityStation, error)

	// GetWaterQualityStations возвращает станции water_delhi.csv
	GetWaterQualityStations(ctx context.Context) ([]domain.WaterQualityStation, error)

	// GetIndiaAQIReadings возвращает последние измерения станций по всем городам
	GetIndiaAQIReadings(ctx context.Context) ([]domain.IndiaAQIReading, error)

	// GetReservoirLevels возвращает последние уровни водохранилищ Ченнаи
	GetReservoirLevels(ctx context.Context) ([]domain.ReservoirLevel, error)
}
