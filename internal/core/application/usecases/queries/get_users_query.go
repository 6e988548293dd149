package queries

import (
	"errors"
	"math"
	"time"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/errs"
	"parcelcarrier/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// UserFilter carries the optional criteria for account listing.
// Nil pointer fields mean "no filter".
type UserFilter struct {
	Role         *account.Role
	Specialty    *account.Specialty
	Availability *account.Availability
	Active       *bool
}

// GetUsersQuery retrieves a filtered, paginated page of accounts. Credential
// digests never appear in the read model.
type GetUsersQuery struct { //nolint:recvcheck //using for validation
	filter UserFilter
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query to list accounts.
// Page numbering starts at zero. A non-positive size falls back to the
// default page size; sizes above the maximum are clamped.
func NewGetUsersQuery(filter UserFilter, page, size int) (GetUsersQuery, error) {
	if page < 0 {
		return GetUsersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, math.MaxInt)
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	if filter.Role != nil {
		if err := filter.Role.Validate(); err != nil {
			return GetUsersQuery{}, err
		}
	}
	if filter.Specialty != nil {
		if err := filter.Specialty.Validate(); err != nil {
			return GetUsersQuery{}, err
		}
	}
	if filter.Availability != nil {
		if err := filter.Availability.Validate(); err != nil {
			return GetUsersQuery{}, err
		}
	}

	return GetUsersQuery{
		filter: filter,
		page:   page,
		size:   size,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Filter returns the listing criteria.
func (q GetUsersQuery) Filter() UserFilter {
	return q.filter
}

// Page returns the zero-based page number.
func (q GetUsersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetUsersQuery) Size() int {
	return q.size
}

// UserReadModel represents one account row in the read model.
// Specialty and Availability are nil for administrator accounts.
type UserReadModel struct {
	ID           kernel.UUID
	Login        string
	Role         string
	Specialty    *string
	Availability *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetUsersQueryResponse is a page of accounts plus the total match count.
type GetUsersQueryResponse struct {
	Items []UserReadModel
	Total int64
	Page  int
	Size  int
}
