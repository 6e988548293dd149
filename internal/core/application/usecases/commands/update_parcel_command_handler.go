package commands

import (
	"context"
)

// UpdateParcelCommandHandler handles parcel attribute updates.
// Loads the aggregate, applies the new attributes through the domain rules,
// and persists the result within a transaction.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelCommandHandler creates a handler for parcel updates.
func NewUpdateParcelCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel update command.
// Returns errs.ObjectNotFoundError when the parcel does not exist and a
// validation error when the update violates business rules, including an
// attempt to change the parcel type.
func (h UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) error {
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

	if err = aggregate.ApplyUpdate(
		cmd.ParcelType(),
		cmd.Weight(),
		cmd.DestinationAddress(),
		cmd.HandlingInstructions(),
		cmd.MinTemperature(),
		cmd.MaxTemperature(),
	); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
