package commands

import (
	"context"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/services"
)

// AssignParcelCommandHandler orchestrates the parcel assignment process.
// Loads both aggregates, delegates the business rule checks to the
// ParcelAssigner domain service, and persists both changes atomically.
// The transporter update carries an availability precondition so two
// concurrent assignments to the same transporter cannot both succeed.
type AssignParcelCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.ParcelAssigner
}

// NewAssignParcelCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignParcelCommandHandler(uowFactory UoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewParcelAssigner(),
	}
}

// Handle processes the assignment command.
// Checks run in a fixed order: the parcel must exist, the account must exist
// and be a transporter, the parcel must be pending, the specialty must match,
// and the transporter must be active and available.
func (h AssignParcelCommandHandler) Handle(ctx context.Context, cmd AssignParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	accountRepo := uow.AccountRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	transporter, err := accountRepo.Get(ctx, cmd.TransporterID())
	if err != nil {
		return err
	}

	if err = h.assigner.Assign(aggregate, transporter); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = accountRepo.UpdateWithAvailabilityCheck(ctx, transporter, account.Available); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
