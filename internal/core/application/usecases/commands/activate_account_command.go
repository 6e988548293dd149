package commands

import (
	"errors"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/guard"
)

var ErrActivateAccountCommandIsNotConstructed = errors.New(
	"ActivateAccountCommand must be created via NewActivateAccountCommand constructor",
)

// ActivateAccountCommand represents a request to reactivate a previously
// deactivated account.
type ActivateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewActivateAccountCommand creates a command to activate an account.
func NewActivateAccountCommand(accountID kernel.UUID) (ActivateAccountCommand, error) {
	cmd := ActivateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAccountID(accountID); err != nil {
		return ActivateAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateAccountCommand) Validate() error {
	return c.guard.Validate(ErrActivateAccountCommandIsNotConstructed)
}

// AccountID returns the identifier of the account to activate.
func (c ActivateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c *ActivateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
