package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob   *OutboxRelayJob
	statsSnapshotJob *StatsSnapshotJob
}

func NewJobManager(outboxRelayJob *OutboxRelayJob, statsSnapshotJob *StatsSnapshotJob) *JobManager {
	return &JobManager{
		outboxRelayJob:   outboxRelayJob,
		statsSnapshotJob: statsSnapshotJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.statsSnapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start stats snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all jobs and waits for running passes to finish.
func (jm *JobManager) StopAll() {
	jm.statsSnapshotJob.Stop()
	jm.outboxRelayJob.Stop()
}
