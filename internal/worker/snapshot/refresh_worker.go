package snapshot

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/smartcity-dashboard/internal/domain/repository"
	"github.com/smartcity-dashboard/internal/worker"
)

const WorkerName = "traffic-snapshot-refresh"

// RefreshWorker периодически перечитывает traffic_flow.csv и публикует новый снимок
type RefreshWorker struct {
	*worker.BaseWorker
	trafficRepo repository.TrafficRepository
	clock       clockwork.Clock
	interval    time.Duration
}

// NewRefreshWorker создает воркер обновления снимка трафика
func NewRefreshWorker(
	trafficRepo repository.TrafficRepository,
	clock clockwork.Clock,
	interval time.Duration,
	logger *zap.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker:  worker.NewBaseWorker(WorkerName, logger),
		trafficRepo: trafficRepo,
		clock:       clock,
		interval:    interval,
	}
}

// Start публикует снимок сразу, затем раз в interval
func (w *RefreshWorker) Start(ctx context.Context) error {
	w.Logger().Info("Snapshot refresh worker started", zap.Duration("interval", w.interval))

	w.refresh(ctx)

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Logger().Info("Context cancelled, stopping snapshot refresh")
			return nil
		case <-w.StopChan():
			w.Logger().Info("Snapshot refresh worker stopped")
			return nil
		case <-ticker.Chan():
			w.refresh(ctx)
		}
	}
}

// refresh: при ошибке остается предыдущий опубликованный снимок
func (w *RefreshWorker) refresh(ctx context.Context) {
	snap, err := w.trafficRepo.Reload(ctx)
	if err != nil {
		w.Logger().Warn("Failed to refresh traffic snapshot, keeping previous", zap.Error(err))
		return
	}

	w.Logger().Debug("Traffic snapshot refreshed",
		zap.Int("rows", snap.Len()),
		zap.Time("loaded_at", snap.LoadedAt()))
}
