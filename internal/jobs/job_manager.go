package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"parcelcarrier/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleParcelJob *StaleParcelJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleParcelsHandler queries.GetStaleParcelsQueryHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleParcelJob: NewStaleParcelJob(staleParcelsHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleParcelJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale parcel job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleParcelJob.Stop()
}
