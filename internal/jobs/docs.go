// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the order lifecycle requires.
//
// # Available Jobs
//
// 1. StaleOrderSweepJob - Runs every minute to cancel pending orders older than the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderMaxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * * *", running at the top of
// every minute. Orders abandoned in Pending do not need second-level
// responsiveness; a minute keeps database pressure low.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run
// leaves stale orders in place rather than in a partially cancelled state
// because the sweep runs in a single transaction.
package jobs
