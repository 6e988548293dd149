package commands

import (
	"errors"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/guard"
)

var ErrUpdateTransporterCommandIsNotConstructed = errors.New(
	"UpdateTransporterCommand must be created via NewUpdateTransporterCommand constructor",
)

// UpdateTransporterCommand represents a request to modify a transporter
// account. An empty password means the stored credential is kept.
type UpdateTransporterCommand struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID
	login         string
	password      string
	specialty     account.Specialty

	guard guard.ConstructorGuard
}

// NewUpdateTransporterCommand creates a command to update a transporter.
// The password is optional: pass the empty string to keep the current one.
func NewUpdateTransporterCommand(
	transporterID kernel.UUID,
	login string,
	password string,
	specialty account.Specialty,
) (UpdateTransporterCommand, error) {
	cmd := UpdateTransporterCommand{
		login: login,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransporterID(transporterID),
		cmd.setPassword(password),
		cmd.setSpecialty(specialty),
	); err != nil {
		return UpdateTransporterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTransporterCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTransporterCommandIsNotConstructed)
}

// TransporterID returns the identifier of the account to update.
func (c UpdateTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// Login returns the requested login name.
func (c UpdateTransporterCommand) Login() string {
	return c.login
}

// Password returns the new plaintext password, or empty to keep the current one.
func (c UpdateTransporterCommand) Password() string {
	return c.password
}

// HasPassword reports whether a new password was supplied.
func (c UpdateTransporterCommand) HasPassword() bool {
	return c.password != ""
}

// Specialty returns the transporter's cargo category.
func (c UpdateTransporterCommand) Specialty() account.Specialty {
	return c.specialty
}

func (c *UpdateTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *UpdateTransporterCommand) setPassword(password string) error {
	if password == "" {
		return nil
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	c.password = password
	return nil
}

func (c *UpdateTransporterCommand) setSpecialty(specialty account.Specialty) error {
	if err := specialty.Validate(); err != nil {
		return err
	}

	c.specialty = specialty
	return nil
}
