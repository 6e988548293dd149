package accountrepo

import (
	"context"
	"errors"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/ports"
	"parcelcarrier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database.
// All columns are written so a deactivation (active=false) persists.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithAvailabilityCheck saves an account only if its stored availability
// still matches expected. The guarded write makes concurrent assignments to
// the same transporter serialize on the availability column: the second
// transaction updates zero rows and gets ErrAvailabilityConflict.
func (r *GormAccountRepository) UpdateWithAvailabilityCheck(
	ctx context.Context,
	aggregate *account.Account,
	expected account.Availability,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ? AND availability = ?", dto.ID, expected.String()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrAvailabilityConflict
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLogin retrieves an account by its unique login.
func (r *GormAccountRepository) GetByLogin(ctx context.Context, login string) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", login)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByLogin reports whether an account with the given login exists.
func (r *GormAccountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("login = ?", login).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
