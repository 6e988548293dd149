package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelcarrier/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleParcelJob periodically reports parcels that have sat in an unfinished
// status longer than the configured threshold. It only reads; operators act
// on the log output.
type StaleParcelJob struct {
	handler   queries.GetStaleParcelsQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleParcelJob creates a job that checks for stale parcels every minute.
func NewStaleParcelJob(
	handler queries.GetStaleParcelsQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleParcelJob {
	return &StaleParcelJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_parcel_job"),
	}
}

// Start begins the stale parcel check to run at the top of every minute.
func (j *StaleParcelJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetStaleParcelsQuery(j.threshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale parcel check misconfigured", "error", err)
			return
		}

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale parcel check failed", "error", err)
			return
		}

		for _, item := range stale {
			attrs := []any{
				"parcelId", item.ID.String(),
				"status", item.Status,
				"destinationAddress", item.DestinationAddress,
				"lastUpdate", item.UpdatedAt,
			}
			if item.TransporterLogin != nil {
				attrs = append(attrs, "transporter", *item.TransporterLogin)
			}
			j.logger.WarnContext(ctx, "Parcel needs attention", attrs...)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale parcel job started (running every minute)",
		"threshold", j.threshold)
	return nil
}

// Stop stops the stale parcel job.
func (j *StaleParcelJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale parcel job stopped")
}
