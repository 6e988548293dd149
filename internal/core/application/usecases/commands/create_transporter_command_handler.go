package commands

import (
	"context"
	"errors"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/ports"
)

// ErrLoginAlreadyTaken is returned when registering or renaming an account to
// a login that already exists.
var ErrLoginAlreadyTaken = errors.New("login is already taken")

// CreateTransporterCommandHandler handles transporter registration.
// Enforces login uniqueness and stores only the password digest.
type CreateTransporterCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateTransporterCommandHandler creates a handler for transporter registration.
func NewCreateTransporterCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) CreateTransporterCommandHandler {
	return CreateTransporterCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Returns ErrLoginAlreadyTaken when the login is in use.
func (h CreateTransporterCommandHandler) Handle(ctx context.Context, cmd CreateTransporterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := account.NewTransporter(cmd.TransporterID(), cmd.Login(), passwordHash, cmd.Specialty())
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

	accountRepo := uow.AccountRepository()

	taken, err := accountRepo.ExistsByLogin(ctx, cmd.Login())
	if err != nil {
		return err
	}
	if taken {
		return ErrLoginAlreadyTaken
	}

	if err = accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
