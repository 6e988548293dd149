package commands

import (
	"context"

	"parcelcarrier/internal/core/domain/services"
)

// DeactivateTransporterCommandHandler handles transporter soft deletion.
type DeactivateTransporterCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewDeactivateTransporterCommandHandler creates a handler for deactivation.
func NewDeactivateTransporterCommandHandler(uowFactory AccountUoWFactory) DeactivateTransporterCommandHandler {
	return DeactivateTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deactivation command.
// Returns errs.ObjectNotFoundError when the account does not exist and
// services.NotTransporterError when it exists with a different role, so an
// admin account cannot be deactivated through this operation.
// Deactivating an already inactive transporter is a no-op that still succeeds.
func (h DeactivateTransporterCommandHandler) Handle(ctx context.Context, cmd DeactivateTransporterCommand) error {
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

	accountRepo := uow.AccountRepository()

	aggregate, err := accountRepo.Get(ctx, cmd.TransporterID())
	if err != nil {
		return err
	}

	if !aggregate.IsTransporter() {
		return &services.NotTransporterError{Login: aggregate.Login(), Role: aggregate.Role()}
	}

	aggregate.Deactivate()

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
