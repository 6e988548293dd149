package http

import (
	"strconv"

	"parcelcarrier/internal/core/application/usecases/queries"
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// parcelFilterFromQuery builds a parcel filter from the type, status,
// transporterId, unassigned, and address query parameters. Absent parameters
// leave their filter fields unset.
func parcelFilterFromQuery(ctx echo.Context) (queries.ParcelFilter, error) {
	var filter queries.ParcelFilter

	if raw := ctx.QueryParam("type"); raw != "" {
		parcelType, err := parcel.TypeFromString(raw)
		if err != nil {
			return queries.ParcelFilter{}, err
		}
		filter.ParcelType = &parcelType
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := parcel.StatusFromString(raw)
		if err != nil {
			return queries.ParcelFilter{}, err
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("transporterId"); raw != "" {
		transporterID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.ParcelFilter{}, err
		}
		filter.TransporterID = &transporterID
	}

	if raw := ctx.QueryParam("unassigned"); raw != "" {
		unassigned, err := strconv.ParseBool(raw)
		if err != nil {
			return queries.ParcelFilter{}, errs.NewValueIsInvalidError("unassigned")
		}
		filter.Unassigned = unassigned
	}

	filter.AddressContains = ctx.QueryParam("address")

	return filter, nil
}

// userFilterFromQuery builds an account filter from the role, specialty,
// availability, and active query parameters.
func userFilterFromQuery(ctx echo.Context) (queries.UserFilter, error) {
	var filter queries.UserFilter

	if raw := ctx.QueryParam("role"); raw != "" {
		role, err := account.RoleFromString(raw)
		if err != nil {
			return queries.UserFilter{}, err
		}
		filter.Role = &role
	}

	if raw := ctx.QueryParam("specialty"); raw != "" {
		specialty, err := account.SpecialtyFromString(raw)
		if err != nil {
			return queries.UserFilter{}, err
		}
		filter.Specialty = &specialty
	}

	if raw := ctx.QueryParam("availability"); raw != "" {
		availability, err := account.AvailabilityFromString(raw)
		if err != nil {
			return queries.UserFilter{}, err
		}
		filter.Availability = &availability
	}

	if raw := ctx.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return queries.UserFilter{}, errs.NewValueIsInvalidError("active")
		}
		filter.Active = &active
	}

	return filter, nil
}

// paginationFromQuery reads the page and size query parameters, defaulting to
// the first page and letting the query constructor apply the size defaults.
func paginationFromQuery(ctx echo.Context) (page, size int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidError("page")
		}
	}

	if raw := ctx.QueryParam("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidError("size")
		}
	}

	return page, size, nil
}
