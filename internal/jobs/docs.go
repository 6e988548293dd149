// Package jobs provides scheduled background tasks for the parcel carrier
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run outside the request cycle.
//
// # Available Jobs
//
// 1. StaleParcelJob - Runs every minute to surface parcels stuck in an
// unfinished status longer than the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(staleParcelsHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stale parcel job only reads and logs; query failures are logged and the
// next tick retries. A failed job start stops any already running jobs.
package jobs
