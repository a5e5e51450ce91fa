// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes parcel events written to the outbox (default every 5 seconds)
// 2. StatsSnapshotJob - exports parcel counts and revenue as Prometheus gauges (default every minute)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOutboxRelayJob(relayHandler, metrics, cfg.OutboxRelaySchedule, 100, logger),
//		jobs.NewStatsSnapshotJob(statsHandler, metrics, cfg.StatsSnapshotSchedule, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first). A pass that is still running
// when the next tick arrives causes that tick to be skipped.
//
// # Error Handling
//
// - The relay logs a failed publish and retries the same message on the next tick
// - A failed stats snapshot leaves the previous gauge values in place
// - Failed job starts will stop any already running jobs
package jobs
