package filedata

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"github.com/smartcity-dashboard/internal/pkg/utils"
	"go.uber.org/zap"
)

type trafficRepository struct {
	store     *Store
	clock     clockwork.Clock
	logger    *zap.Logger
	published atomic.Pointer[domain.TrafficSnapshot]
}

// NewTrafficRepository создает репозиторий traffic_flow.csv.
// Пока снимок не опубликован через Reload, файл читается на каждый запрос.
func NewTrafficRepository(store *Store, clock clockwork.Clock, logger *zap.Logger) repository.TrafficRepository {
	return &trafficRepository{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (r *trafficRepository) Snapshot(ctx context.Context) (*domain.TrafficSnapshot, error) {
	if snap := r.published.Load(); snap != nil {
		return snap, nil
	}
	return r.load(ctx)
}

func (r *trafficRepository) Reload(ctx context.Context) (*domain.TrafficSnapshot, error) {
	snap, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	r.published.Store(snap)
	r.logger.Debug("Traffic snapshot published",
		zap.Int("rows", snap.Len()),
		zap.Time("loaded_at", snap.LoadedAt()))

	return snap, nil
}

// Sample выбирает строку снимка по координате: int(floorMod(lat*100 + lng*100, rows))
func (r *trafficRepository) Sample(ctx context.Context, lat, lng float64) (domain.TrafficSample, error) {
	snap, err := r.Snapshot(ctx)
	if err != nil {
		return domain.UnknownTrafficSample(), err
	}
	if snap.Len() == 0 {
		return domain.UnknownTrafficSample(), fmt.Errorf("traffic snapshot is empty")
	}

	idx := int(utils.FloorMod(lat*100+lng*100, float64(snap.Len())))
	if idx >= snap.Len() {
		idx = snap.Len() - 1
	}

	return domain.NewTrafficSample(snap.At(idx)), nil
}

func (r *trafficRepository) load(ctx context.Context) (*domain.TrafficSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	readings, err := readCSV[domain.TrafficReading](r.store, TrafficFile)
	if err != nil {
		return nil, err
	}

	return domain.NewTrafficSnapshot(readings, r.clock.Now()), nil
}
