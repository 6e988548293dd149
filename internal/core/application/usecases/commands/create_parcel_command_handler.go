package commands

import (
	"context"

	"parcelcarrier/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel registration.
// New parcels always start in the pending status with no transporter.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command.
// Builds the aggregate, which enforces the per-type business rules, and
// persists it within a transaction.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.ParcelType(),
		cmd.Weight(),
		cmd.DestinationAddress(),
		cmd.HandlingInstructions(),
		cmd.MinTemperature(),
		cmd.MaxTemperature(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
