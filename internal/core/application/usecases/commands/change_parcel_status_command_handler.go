package commands

import (
	"context"
	"errors"

	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/errs"
)

// ErrNotParcelOwner is returned when a transporter tries to change the status
// of a parcel that is not assigned to them.
var ErrNotParcelOwner = errors.New("parcel is not assigned to this transporter")

// ChangeParcelStatusCommandHandler handles parcel status transitions.
//
// The status setter is permissive: any defined status value is accepted,
// including backwards moves. When the new status is terminal (delivered or
// cancelled) and the parcel has a transporter, the transporter is released
// back to available in the same transaction. A dangling transporter reference
// is tolerated: the release is skipped silently when the account is gone.
type ChangeParcelStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeParcelStatusCommandHandler creates a handler for status changes.
func NewChangeParcelStatusCommandHandler(uowFactory UoWFactory) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns ErrNotParcelOwner for the owner variant when the parcel belongs to
// a different transporter or to nobody.
func (h ChangeParcelStatusCommandHandler) Handle(ctx context.Context, cmd ChangeParcelStatusCommand) error {
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

	if actorID := cmd.ActorID(); actorID != nil && !aggregate.BelongsTo(*actorID) {
		return ErrNotParcelOwner
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if cmd.NewStatus().IsFinished() && aggregate.IsAssigned() {
		if err = h.releaseTransporter(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseTransporter returns the parcel's transporter to the available pool.
// A missing account record is not an error: the parcel keeps its historical
// reference and the release is simply skipped.
func (h ChangeParcelStatusCommandHandler) releaseTransporter(ctx context.Context, uow UoW, aggregate *parcel.Parcel) error {
	accountRepo := uow.AccountRepository()

	transporter, err := accountRepo.Get(ctx, *aggregate.TransporterID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if transporter.IsAvailable() {
		return nil
	}

	transporter.SetAvailable()
	return accountRepo.Update(ctx, transporter)
}
