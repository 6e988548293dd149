package commands

import (
	"context"
	"errors"

	"parcelcarrier/internal/pkg/errs"
)

// DeleteParcelCommandHandler handles parcel removal.
// If the parcel is still assigned, its transporter is released back to
// available in the same transaction before the row is deleted.
type DeleteParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory UoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Returns errs.ObjectNotFoundError when the parcel does not exist.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if aggregate.IsAssigned() && !aggregate.IsFinished() {
		accountRepo := uow.AccountRepository()

		transporter, err := accountRepo.Get(ctx, *aggregate.TransporterID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			// Dangling reference, nothing to release.
		case err != nil:
			return err
		case transporter.IsOnDelivery():
			transporter.SetAvailable()
			if err = accountRepo.Update(ctx, transporter); err != nil {
				return err
			}
		}
	}

	if err = parcelRepo.Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
