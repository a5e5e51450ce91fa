package jobs

import (
	"context"
	"log/slog"

	"parcelhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error)
}

type RelayObserver interface {
	ObservePublished()
	ObservePublishFailed()
}

// OutboxRelayJob publishes pending parcel events on a schedule.
type OutboxRelayJob struct {
	handler   OutboxRelayer
	observer  RelayObserver
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a six-field cron expression.
func NewOutboxRelayJob(
	handler OutboxRelayer,
	observer RelayObserver,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		observer:  observer,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run performs one relay pass. Cron calls it; tests call it directly.
func (j *OutboxRelayJob) Run(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	for range result.Published {
		j.observer.ObservePublished()
	}
	if err != nil {
		j.observer.ObservePublishFailed()
		j.logger.ErrorContext(ctx, "Outbox relay failed",
			"error", err,
			"published", result.Published,
			"pending", result.Pending,
		)
		return
	}

	if result.Published > 0 {
		j.logger.DebugContext(ctx, "Outbox relayed", "published", result.Published)
	}
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
