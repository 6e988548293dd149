// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, and the security
// primitives used by authentication. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no parcel matches.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes a parcel aggregate from storage.
	// Returns errs.ObjectNotFoundError when no parcel matches.
	Delete(ctx context.Context, id kernel.UUID) error
}
