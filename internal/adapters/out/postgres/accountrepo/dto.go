// Package accountrepo provides data transfer objects and mapping functions for
// account persistence. It implements the repository pattern for the account
// domain aggregate, handling the conversion between domain entities and
// database representations.
package accountrepo

import (
	"time"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. Specialty and availability columns are null for administrator
// rows.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(16);index"`
	Active       bool      `gorm:"not null"`
	Specialty    *string   `gorm:"type:varchar(16)"`
	Availability *string   `gorm:"type:varchar(16);index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	var specialty, availability *string
	if aggregate.IsTransporter() {
		s := aggregate.Specialty().String()
		a := aggregate.Availability().String()
		specialty, availability = &s, &a
	}

	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Login:        aggregate.Login(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Active:       aggregate.IsActive(),
		Specialty:    specialty,
		Availability: availability,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate using RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var specialty account.Specialty
	if dto.Specialty != nil {
		specialty, err = account.SpecialtyFromString(*dto.Specialty)
		if err != nil {
			return nil, err
		}
	}

	var availability account.Availability
	if dto.Availability != nil {
		availability, err = account.AvailabilityFromString(*dto.Availability)
		if err != nil {
			return nil, err
		}
	}

	return account.RestoreAccount(
		id,
		dto.Login,
		dto.PasswordHash,
		role,
		dto.Active,
		specialty,
		availability,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
