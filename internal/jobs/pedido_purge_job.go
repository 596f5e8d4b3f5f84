package jobs

import (
	"context"
	"log/slog"
	"time"

	"pedidos/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// purgeSchedule runs the retention sweep once a day, off business hours.
const purgeSchedule = "0 0 3 * * *"

// PedidoPurgeJob removes orders older than the retention window. The same
// sweep runs once at boot; the job keeps a long-lived server from
// accumulating expired orders between restarts.
type PedidoPurgeJob struct {
	uowFactory ports.UnitOfWorkFactory
	retention  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPedidoPurgeJob creates the job. Orders created more than retention ago
// are removed on each run.
func NewPedidoPurgeJob(
	uowFactory ports.UnitOfWorkFactory,
	retention time.Duration,
	logger *slog.Logger,
) *PedidoPurgeJob {
	return &PedidoPurgeJob{
		uowFactory: uowFactory,
		retention:  retention,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pedido_purge_job"),
	}
}

// Start schedules the daily purge.
func (j *PedidoPurgeJob) Start() error {
	_, err := j.cron.AddFunc(purgeSchedule, func() {
		ctx := context.Background()

		removed, err := j.purge(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pedido purge failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired pedidos purged", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pedido purge job started", "retention", j.retention)
	return nil
}

// Stop stops the purge job.
func (j *PedidoPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pedido purge job stopped")
}

func (j *PedidoPurgeJob) purge(ctx context.Context) (int64, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	removed, err := uow.PedidoRepository().DeleteOlderThan(ctx, time.Now().Add(-j.retention))
	if err != nil {
		_ = uow.Rollback(ctx)
		return 0, err
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}
