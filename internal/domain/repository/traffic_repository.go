package repository

import (
	"context"

	"github.com/smartcity-dashboard/internal/domain"
)

// TrafficRepository - доступ к снимку traffic_flow.csv
type TrafficRepository interface {
	// Snapshot возвращает текущий неизменяемый снимок
	Snapshot(ctx context.Context) (*domain.TrafficSnapshot, error)

	// Reload перечитывает файл и публикует новый снимок
	Reload(ctx context.Context) (*domain.TrafficSnapshot, error)

	// Sample возвращает показатели трафика для координаты
	Sample(ctx context.Context, lat, lng float64) (domain.TrafficSample, error)
}
