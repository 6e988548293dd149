package commands

import (
	"context"
)

// ActivateAccountCommandHandler handles account reactivation.
type ActivateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewActivateAccountCommandHandler creates a handler for account activation.
func NewActivateAccountCommandHandler(uowFactory AccountUoWFactory) ActivateAccountCommandHandler {
	return ActivateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command.
// Returns errs.ObjectNotFoundError when the account does not exist.
func (h ActivateAccountCommandHandler) Handle(ctx context.Context, cmd ActivateAccountCommand) error {
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

	aggregate, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	aggregate.Activate()

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
