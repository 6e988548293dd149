package queries

import (
	"errors"
	"time"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/errs"
	"parcelcarrier/internal/pkg/guard"
)

var ErrGetStaleParcelsQueryIsNotConstructed = errors.New(
	"GetStaleParcelsQuery must be created via NewGetStaleParcelsQuery constructor",
)

// GetStaleParcelsQuery finds parcels that need operator attention: pending
// parcels nobody picked up, and in-transit parcels that have not moved, both
// older than the threshold.
type GetStaleParcelsQuery struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleParcelsQuery creates a query for stuck parcels.
// The threshold must be positive.
func NewGetStaleParcelsQuery(threshold time.Duration) (GetStaleParcelsQuery, error) {
	if threshold <= 0 {
		return GetStaleParcelsQuery{}, errs.NewValueIsRequiredError("threshold")
	}

	return GetStaleParcelsQuery{
		threshold: threshold,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleParcelsQueryIsNotConstructed)
}

// Threshold returns the staleness cutoff.
func (q GetStaleParcelsQuery) Threshold() time.Duration {
	return q.threshold
}

// StaleParcelReadModel represents one stuck parcel.
type StaleParcelReadModel struct {
	ID                 kernel.UUID
	Status             string
	DestinationAddress string
	TransporterLogin   *string
	UpdatedAt          time.Time
}
