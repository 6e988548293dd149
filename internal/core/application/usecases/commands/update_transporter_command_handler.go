package commands

import (
	"context"

	"parcelcarrier/internal/core/domain/services"
	"parcelcarrier/internal/core/ports"
)

// UpdateTransporterCommandHandler handles transporter account updates.
// A login change triggers a uniqueness check; the password is re-hashed only
// when a new one was supplied.
type UpdateTransporterCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewUpdateTransporterCommandHandler creates a handler for transporter updates.
func NewUpdateTransporterCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) UpdateTransporterCommandHandler {
	return UpdateTransporterCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the update command.
// Returns errs.ObjectNotFoundError when the account does not exist,
// services.NotTransporterError when it exists with a different role, and
// ErrLoginAlreadyTaken when renaming to a login in use.
func (h UpdateTransporterCommandHandler) Handle(ctx context.Context, cmd UpdateTransporterCommand) error {
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

	if cmd.Login() != aggregate.Login() {
		taken, err := accountRepo.ExistsByLogin(ctx, cmd.Login())
		if err != nil {
			return err
		}
		if taken {
			return ErrLoginAlreadyTaken
		}

		if err = aggregate.ChangeLogin(cmd.Login()); err != nil {
			return err
		}
	}

	if cmd.HasPassword() {
		passwordHash, err := h.hasher.Hash(cmd.Password())
		if err != nil {
			return err
		}
		if err = aggregate.ChangePasswordHash(passwordHash); err != nil {
			return err
		}
	}

	if cmd.Specialty() != aggregate.Specialty() {
		if err = aggregate.ChangeSpecialty(cmd.Specialty()); err != nil {
			return err
		}
	}

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
