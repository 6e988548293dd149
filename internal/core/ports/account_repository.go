package ports

import (
	"context"
	"errors"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
)

// ErrAvailabilityConflict is returned by UpdateWithAvailabilityCheck when the
// account's availability in storage no longer matches the expected value,
// meaning a concurrent operation claimed or released the transporter first.
var ErrAvailabilityConflict = errors.New("transporter availability changed concurrently")

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid and its login must be unique.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// UpdateWithAvailabilityCheck persists changes to a transporter account
	// only if its stored availability still equals expected. Returns
	// ErrAvailabilityConflict when another transaction changed it first.
	UpdateWithAvailabilityCheck(ctx context.Context, aggregate *account.Account, expected account.Availability) error

	// Get retrieves an account aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no account matches.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByLogin retrieves an account aggregate by its login name.
	// Returns errs.ObjectNotFoundError when no account matches.
	GetByLogin(ctx context.Context, login string) (*account.Account, error)

	// ExistsByLogin reports whether an account with the given login exists.
	ExistsByLogin(ctx context.Context, login string) (bool, error)
}
