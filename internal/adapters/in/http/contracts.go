package http

import (
	"errors"
	"net/http"
	"time"

	"parcelcarrier/internal/core/application/usecases/commands"
	"parcelcarrier/internal/core/application/usecases/queries"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/core/domain/services"
	"parcelcarrier/internal/core/ports"
	"parcelcarrier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PackageRequest is the write payload for package creation and update.
type PackageRequest struct {
	Type                 string   `json:"type"`
	Weight               float64  `json:"weight"`
	DestinationAddress   string   `json:"destinationAddress"`
	HandlingInstructions string   `json:"handlingInstructions,omitempty"`
	MinTemperature       *float64 `json:"minTemperature,omitempty"`
	MaxTemperature       *float64 `json:"maxTemperature,omitempty"`
}

// PackageResponse is the read shape for a single package.
type PackageResponse struct {
	ID                   string    `json:"id"`
	Type                 string    `json:"type"`
	Weight               float64   `json:"weight"`
	DestinationAddress   string    `json:"destinationAddress"`
	Status               string    `json:"status"`
	TransporterID        *string   `json:"transporterId,omitempty"`
	TransporterLogin     *string   `json:"transporterLogin,omitempty"`
	HandlingInstructions string    `json:"handlingInstructions,omitempty"`
	MinTemperature       *float64  `json:"minTemperature,omitempty"`
	MaxTemperature       *float64  `json:"maxTemperature,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// PackagePageResponse is a page of packages with pagination metadata.
type PackagePageResponse struct {
	Items      []PackageResponse `json:"items"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalItems int64             `json:"totalItems"`
}

// StatusChangeRequest carries the new status for a package.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// TransporterRequest is the write payload for transporter registration and update.
// Password is optional on update.
type TransporterRequest struct {
	Login     string `json:"login"`
	Password  string `json:"password,omitempty"`
	Specialty string `json:"specialty"`
}

// UserResponse is the read shape for an account. The password hash never
// appears here.
type UserResponse struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	Role         string    `json:"role"`
	Specialty    *string   `json:"specialty,omitempty"`
	Availability *string   `json:"availability,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPageResponse is a page of accounts with pagination metadata.
type UserPageResponse struct {
	Items      []UserResponse `json:"items"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalItems int64          `json:"totalItems"`
}

// LoginRequest carries plaintext credentials for authentication.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the authenticated identity.
type LoginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"accountId"`
	Login     string `json:"login"`
	Role      string `json:"role"`
}

// ErrorResponse is the uniform error envelope for all endpoints.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Errors    []string  `json:"errors,omitempty"`
}

func newErrorResponse(ctx echo.Context, status int, message string, details ...string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      ctx.Request().URL.Path,
		Errors:    details,
	}
}

// respondError maps domain and application errors to HTTP status codes and
// writes the uniform error envelope.
func respondError(ctx echo.Context, err error) error {
	var (
		mismatch    *services.SpecialtyMismatchError
		unavailable *services.TransporterUnavailableError
		notCarrier  *services.NotTransporterError
	)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, newErrorResponse(ctx, http.StatusNotFound, err.Error()))

	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, commands.ErrAccountDeactivated):
		return ctx.JSON(http.StatusUnauthorized, newErrorResponse(ctx, http.StatusUnauthorized, err.Error()))

	case errors.Is(err, commands.ErrNotParcelOwner):
		return ctx.JSON(http.StatusForbidden, newErrorResponse(ctx, http.StatusForbidden, err.Error()))

	case errors.Is(err, commands.ErrLoginAlreadyTaken),
		errors.Is(err, parcel.ErrNotAssignable),
		errors.Is(err, ports.ErrAvailabilityConflict),
		errors.As(err, &mismatch),
		errors.As(err, &unavailable),
		errors.As(err, &notCarrier):
		return ctx.JSON(http.StatusConflict, newErrorResponse(ctx, http.StatusConflict, err.Error()))

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, newErrorResponse(ctx, http.StatusBadRequest, "validation failed", err.Error()))

	default:
		return ctx.JSON(http.StatusInternalServerError,
			newErrorResponse(ctx, http.StatusInternalServerError, "internal server error"))
	}
}

func toPackageResponse(item queries.ParcelReadModel) PackageResponse {
	var transporterID *string
	if item.TransporterID != nil {
		id := item.TransporterID.String()
		transporterID = &id
	}

	return PackageResponse{
		ID:                   item.ID.String(),
		Type:                 item.Type,
		Weight:               item.Weight,
		DestinationAddress:   item.DestinationAddress,
		Status:               item.Status,
		TransporterID:        transporterID,
		TransporterLogin:     item.TransporterLogin,
		HandlingInstructions: item.HandlingInstructions,
		MinTemperature:       item.MinTemperature,
		MaxTemperature:       item.MaxTemperature,
		CreatedAt:            item.CreatedAt,
		UpdatedAt:            item.UpdatedAt,
	}
}

func toPackagePageResponse(page queries.GetParcelsQueryResponse) PackagePageResponse {
	items := make([]PackageResponse, len(page.Items))
	for i, item := range page.Items {
		items[i] = toPackageResponse(item)
	}

	return PackagePageResponse{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.Total,
	}
}

func toUserPageResponse(page queries.GetUsersQueryResponse) UserPageResponse {
	items := make([]UserResponse, len(page.Items))
	for i, user := range page.Items {
		items[i] = toUserResponse(user)
	}

	return UserPageResponse{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.Total,
	}
}

func toUserResponse(user queries.UserReadModel) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Login:        user.Login,
		Role:         user.Role,
		Specialty:    user.Specialty,
		Availability: user.Availability,
		Active:       user.Active,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
