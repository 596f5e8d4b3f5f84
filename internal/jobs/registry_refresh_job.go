package jobs

import (
	"context"
	"log/slog"

	"pedidos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RegistryRefreshJob periodically refreshes the order registry under its
// current filter. Mutating commands already refresh after every change; this
// job additionally picks up changes made by other users.
type RegistryRefreshJob struct {
	handler  queries.RefreshOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRegistryRefreshJob creates the job. The schedule is a six-field cron
// expression with a seconds column, e.g. "*/30 * * * * *".
func NewRegistryRefreshJob(
	handler queries.RefreshOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *RegistryRefreshJob {
	return &RegistryRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "registry_refresh_job"),
	}
}

// Start schedules the refresh. A failed refresh is logged and the previous
// registry cache stays in place until the next tick succeeds.
func (j *RegistryRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx, queries.NewRefreshOrdersQuery()); err != nil {
			j.logger.ErrorContext(ctx, "Registry refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Registry refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *RegistryRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Registry refresh job stopped")
}
