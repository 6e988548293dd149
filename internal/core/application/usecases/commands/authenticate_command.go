package commands

import (
	"errors"

	"parcelcarrier/internal/pkg/errs"
	"parcelcarrier/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand represents a login attempt with plaintext credentials.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	login    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateCommand creates a command to authenticate an account.
// Both fields must be present; format checks beyond that are deliberately
// skipped so a malformed login fails the same way as an unknown one.
func NewAuthenticateCommand(login, password string) (AuthenticateCommand, error) {
	cmd := AuthenticateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLogin(login),
		cmd.setPassword(password),
	); err != nil {
		return AuthenticateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

// Login returns the login name being authenticated.
func (c AuthenticateCommand) Login() string {
	return c.login
}

// Password returns the plaintext password to verify.
func (c AuthenticateCommand) Password() string {
	return c.password
}

func (c *AuthenticateCommand) setLogin(login string) error {
	if login == "" {
		return errs.NewValueIsRequiredError("login")
	}

	c.login = login
	return nil
}

func (c *AuthenticateCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
