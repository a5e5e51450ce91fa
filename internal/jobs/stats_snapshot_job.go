package jobs

import (
	"context"
	"log/slog"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type StatsProvider interface {
	Handle(ctx context.Context, query queries.GetParcelStatsQuery) (services.Stats, error)
}

type StatsObserver interface {
	ObserveStats(stats services.Stats)
}

// StatsSnapshotJob periodically exports the all-vendor parcel stats as gauges.
type StatsSnapshotJob struct {
	handler  StatsProvider
	observer StatsObserver
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStatsSnapshotJob(handler StatsProvider, observer StatsObserver, schedule string, logger *slog.Logger) *StatsSnapshotJob {
	return &StatsSnapshotJob{
		handler:  handler,
		observer: observer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "stats_snapshot_job"),
	}
}

func (j *StatsSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stats snapshot job started", "schedule", j.schedule)
	return nil
}

func (j *StatsSnapshotJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetParcelStatsQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats snapshot failed", "error", err)
		return
	}
	j.observer.ObserveStats(stats)
}

func (j *StatsSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stats snapshot job stopped")
}
