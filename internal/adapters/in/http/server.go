// Package http exposes the application use cases over a REST API.
// Handlers translate between JSON contracts and commands or queries;
// all business rules live in the application and domain layers.
package http

import (
	"net/http"

	"parcelcarrier/internal/core/application/usecases/commands"
	"parcelcarrier/internal/core/application/usecases/queries"
	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	authenticateHandler          commands.AuthenticateCommandHandler
	createParcelHandler          commands.CreateParcelCommandHandler
	updateParcelHandler          commands.UpdateParcelCommandHandler
	assignParcelHandler          commands.AssignParcelCommandHandler
	changeParcelStatusHandler    commands.ChangeParcelStatusCommandHandler
	deleteParcelHandler          commands.DeleteParcelCommandHandler
	createTransporterHandler     commands.CreateTransporterCommandHandler
	updateTransporterHandler     commands.UpdateTransporterCommandHandler
	deactivateTransporterHandler commands.DeactivateTransporterCommandHandler
	activateAccountHandler       commands.ActivateAccountCommandHandler

	// Query handlers
	getParcelsHandler queries.GetParcelsQueryHandler
	getUsersHandler   queries.GetUsersQueryHandler

	tokens ports.TokenProvider
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	authenticateHandler commands.AuthenticateCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelCommandHandler,
	assignParcelHandler commands.AssignParcelCommandHandler,
	changeParcelStatusHandler commands.ChangeParcelStatusCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	createTransporterHandler commands.CreateTransporterCommandHandler,
	updateTransporterHandler commands.UpdateTransporterCommandHandler,
	deactivateTransporterHandler commands.DeactivateTransporterCommandHandler,
	activateAccountHandler commands.ActivateAccountCommandHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
	tokens ports.TokenProvider,
) *Server {
	return &Server{
		authenticateHandler:          authenticateHandler,
		createParcelHandler:          createParcelHandler,
		updateParcelHandler:          updateParcelHandler,
		assignParcelHandler:          assignParcelHandler,
		changeParcelStatusHandler:    changeParcelStatusHandler,
		deleteParcelHandler:          deleteParcelHandler,
		createTransporterHandler:     createTransporterHandler,
		updateTransporterHandler:     updateTransporterHandler,
		deactivateTransporterHandler: deactivateTransporterHandler,
		activateAccountHandler:       activateAccountHandler,
		getParcelsHandler:            getParcelsHandler,
		getUsersHandler:              getUsersHandler,
		tokens:                       tokens,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance. Admin and
// transporter route groups enforce their role; the login endpoint is open.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(AuthMiddleware(s.tokens))

	e.POST("/api/auth/login", s.Login)

	admin := e.Group("/api/admin", RequireRole(account.RoleAdmin))
	admin.POST("/packages", s.CreatePackage)
	admin.GET("/packages", s.GetPackages)
	admin.GET("/packages/search", s.SearchPackages)
	admin.PUT("/packages/:id", s.UpdatePackage)
	admin.PATCH("/packages/:packageId/assign/:transporterId", s.AssignPackage)
	admin.PATCH("/packages/:id/status", s.ChangePackageStatus)
	admin.DELETE("/packages/:id", s.DeletePackage)
	admin.GET("/users", s.GetUsers)
	admin.PATCH("/users/:id/activate", s.ActivateUser)
	admin.GET("/transporters", s.GetTransporters)
	admin.POST("/transporters", s.CreateTransporter)
	admin.PUT("/transporters/:id", s.UpdateTransporter)
	admin.DELETE("/transporters/:id", s.DeactivateTransporter)

	transporter := e.Group("/api/transporter", RequireRole(account.RoleTransporter))
	transporter.GET("/packages", s.GetOwnPackages)
	transporter.GET("/packages/search", s.SearchOwnPackages)
	transporter.PATCH("/packages/:id/status", s.ChangeOwnPackageStatus)
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newErrorResponse(ctx, http.StatusBadRequest, "invalid request body"))
	}

	cmd, err := commands.NewAuthenticateCommand(request.Login, request.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.authenticateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		AccountID: result.AccountID.String(),
		Login:     result.Login,
		Role:      result.Role.String(),
	})
}

// CreatePackage handles POST /api/admin/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var request PackageRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newErrorResponse(ctx, http.StatusBadRequest, "invalid request body"))
	}

	parcelType, err := parcel.TypeFromString(request.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	parcelID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		parcelType,
		request.Weight,
		request.DestinationAddress,
		request.HandlingInstructions,
		request.MinTemperature,
		request.MaxTemperature,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

// GetPackages handles GET /api/admin/packages with optional type, status,
// transporterId, unassigned, page, and size query parameters.
func (s *Server) GetPackages(ctx echo.Context) error {
	filter, err := parcelFilterFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.listPackages(ctx, filter)
}

// SearchPackages handles GET /api/admin/packages/search?address=.
func (s *Server) SearchPackages(ctx echo.Context) error {
	filter := queries.ParcelFilter{AddressContains: ctx.QueryParam("address")}
	return s.listPackages(ctx, filter)
}

// UpdatePackage handles PUT /api/admin/packages/:id.
// The type in the payload must match the stored one; parcel type is fixed
// after creation.
func (s *Server) UpdatePackage(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request PackageRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newErrorResponse(ctx, http.StatusBadRequest, "invalid request body"))
	}

	parcelType, err := parcel.TypeFromString(request.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelCommand(
		parcelID,
		parcelType,
		request.Weight,
		request.DestinationAddress,
		request.HandlingInstructions,
		request.MinTemperature,
		request.MaxTemperature,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPackage handles PATCH /api/admin/packages/:packageId/assign/:transporterId.
func (s *Server) AssignPackage(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("packageId"))
	if err != nil {
		return respondError(ctx, err)
	}

	transporterID, err := kernel.UUIDFromString(ctx.Param("transporterId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignParcelCommand(parcelID, transporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePackageStatus handles PATCH /api/admin/packages/:id/status.
// Admins may set any defined status, including moving backwards.
func (s *Server) ChangePackageStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request StatusChangeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newErrorResponse(ctx, http.StatusBadRequest, "invalid request body"))
	}

	status, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeParcelStatusCommand(parcelID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeParcelStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePackage handles DELETE /api/admin/packages/:id.
func (s *Server) DeletePackage(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /api/admin/users with optional role, specialty,
// availability, active, page, and size query parameters.
func (s *Server) GetUsers(ctx echo.Context) error {
	filter, err := userFilterFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.listUsers(ctx, filter)
}

// ActivateUser handles PATCH /api/admin/users/:id/activate.
func (s *Server) ActivateUser(ctx echo.Context) error {
	accountID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewActivateAccountCommand(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.activateAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTransporters handles GET /api/admin/transporters.
func (s *Server) GetTransporters(ctx echo.Context) error {
	filter, err := userFilterFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	role := account.RoleTransporter
	filter.Role = &role

	return s.listUsers(ctx, filter)
}

// CreateTransporter handles POST /api/admin/transporters.
func (s *Server) CreateTransporter(ctx echo.Context) error {
	var request TransporterRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newErrorResponse(ctx, http.StatusBadRequest, "invalid request body"))
	}

	specialty, err := account.SpecialtyFromString(request.Specialty)
	if err != nil {
		return respondError(ctx, err)
	}

	transporterID := kernel.NewUUID()

	cmd, err := commands.NewCreateTransporterCommand(transporterID, request.Login, request.Password, specialty)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createTransporterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": transporterID.String()})
}

// UpdateTransporter handles PUT /api/admin/transporters/:id.
// An empty password keeps the current one.
func (s *Server) UpdateTransporter(ctx echo.Context) error {
	transporterID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request TransporterRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newErrorResponse(ctx, http.StatusBadRequest, "invalid request body"))
	}

	specialty, err := account.SpecialtyFromString(request.Specialty)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateTransporterCommand(transporterID, request.Login, request.Password, specialty)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateTransporterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateTransporter handles DELETE /api/admin/transporters/:id.
// The account is deactivated, not removed; assignment history stays intact.
func (s *Server) DeactivateTransporter(ctx echo.Context) error {
	transporterID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeactivateTransporterCommand(transporterID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deactivateTransporterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOwnPackages handles GET /api/transporter/packages with an optional
// status query parameter. Only parcels assigned to the caller are returned.
func (s *Server) GetOwnPackages(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)

	filter, err := parcelFilterFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	accountID := claims.AccountID
	filter.TransporterID = &accountID
	filter.Unassigned = false

	return s.listPackages(ctx, filter)
}

// SearchOwnPackages handles GET /api/transporter/packages/search?address=.
func (s *Server) SearchOwnPackages(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)

	accountID := claims.AccountID
	filter := queries.ParcelFilter{
		TransporterID:   &accountID,
		AddressContains: ctx.QueryParam("address"),
	}

	return s.listPackages(ctx, filter)
}

// ChangeOwnPackageStatus handles PATCH /api/transporter/packages/:id/status.
// Fails with 403 unless the parcel is assigned to the caller.
func (s *Server) ChangeOwnPackageStatus(ctx echo.Context) error {
	claims, _ := claimsFrom(ctx)

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var request StatusChangeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			newErrorResponse(ctx, http.StatusBadRequest, "invalid request body"))
	}

	status, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOwnParcelStatusCommand(parcelID, status, claims.AccountID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeParcelStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) listPackages(ctx echo.Context, filter queries.ParcelFilter) error {
	page, size, err := paginationFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelsQuery(filter, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackagePageResponse(result))
}

func (s *Server) listUsers(ctx echo.Context, filter queries.UserFilter) error {
	page, size, err := paginationFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetUsersQuery(filter, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserPageResponse(result))
}
