package commands

import (
	"errors"
	"fmt"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/errs"
	"parcelcarrier/internal/pkg/guard"
)

const (
	minPasswordLength = 5
	maxPasswordLength = 20
)

var ErrCreateTransporterCommandIsNotConstructed = errors.New(
	"CreateTransporterCommand must be created via NewCreateTransporterCommand constructor",
)

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength),
		)
	}
	return nil
}

// CreateTransporterCommand represents a request to register a new transporter
// account. The plaintext password is hashed by the handler before it reaches
// the aggregate.
type CreateTransporterCommand struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID
	login         string
	password      string
	specialty     account.Specialty

	guard guard.ConstructorGuard
}

// NewCreateTransporterCommand creates a command to register a transporter.
// Validates the identifier, password length, and specialty. Login format
// rules are enforced by the account aggregate.
func NewCreateTransporterCommand(
	transporterID kernel.UUID,
	login string,
	password string,
	specialty account.Specialty,
) (CreateTransporterCommand, error) {
	cmd := CreateTransporterCommand{
		login: login,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransporterID(transporterID),
		cmd.setPassword(password),
		cmd.setSpecialty(specialty),
	); err != nil {
		return CreateTransporterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransporterCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransporterCommandIsNotConstructed)
}

// TransporterID returns the identifier for the new account.
func (c CreateTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// Login returns the requested login name.
func (c CreateTransporterCommand) Login() string {
	return c.login
}

// Password returns the plaintext password to hash.
func (c CreateTransporterCommand) Password() string {
	return c.password
}

// Specialty returns the transporter's cargo category.
func (c CreateTransporterCommand) Specialty() account.Specialty {
	return c.specialty
}

func (c *CreateTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *CreateTransporterCommand) setPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	c.password = password
	return nil
}

func (c *CreateTransporterCommand) setSpecialty(specialty account.Specialty) error {
	if err := specialty.Validate(); err != nil {
		return err
	}

	c.specialty = specialty
	return nil
}
