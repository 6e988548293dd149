// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"math"
	"time"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/errs"
	"parcelcarrier/internal/pkg/guard"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// ParcelFilter carries the optional criteria for parcel listing.
// Nil pointer fields mean "no filter". Unassigned and TransporterID are
// mutually exclusive; Unassigned wins when both are set.
type ParcelFilter struct {
	ParcelType      *parcel.Type
	Status          *parcel.Status
	TransporterID   *kernel.UUID
	Unassigned      bool
	AddressContains string
}

// GetParcelsQuery retrieves a filtered, paginated page of parcels.
type GetParcelsQuery struct { //nolint:recvcheck //using for validation
	filter ParcelFilter
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a query to list parcels.
// Page numbering starts at zero. A non-positive size falls back to the
// default page size; sizes above the maximum are clamped.
func NewGetParcelsQuery(filter ParcelFilter, page, size int) (GetParcelsQuery, error) {
	if page < 0 {
		return GetParcelsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, math.MaxInt)
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	if filter.ParcelType != nil {
		if err := filter.ParcelType.Validate(); err != nil {
			return GetParcelsQuery{}, err
		}
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return GetParcelsQuery{}, err
		}
	}
	if filter.TransporterID != nil {
		if err := filter.TransporterID.Validate(); err != nil {
			return GetParcelsQuery{}, err
		}
	}

	return GetParcelsQuery{
		filter: filter,
		page:   page,
		size:   size,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Filter returns the listing criteria.
func (q GetParcelsQuery) Filter() ParcelFilter {
	return q.filter
}

// Page returns the zero-based page number.
func (q GetParcelsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetParcelsQuery) Size() int {
	return q.size
}

// ParcelReadModel represents one parcel row in the read model, denormalized
// with the transporter's login when assigned.
type ParcelReadModel struct {
	ID                   kernel.UUID
	Type                 string
	Weight               float64
	DestinationAddress   string
	Status               string
	TransporterID        *kernel.UUID
	TransporterLogin     *string
	HandlingInstructions string
	MinTemperature       *float64
	MaxTemperature       *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// GetParcelsQueryResponse is a page of parcels plus the total match count.
type GetParcelsQueryResponse struct {
	Items []ParcelReadModel
	Total int64
	Page  int
	Size  int
}
