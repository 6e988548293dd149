package commands

import (
	"errors"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/guard"
)

var ErrDeactivateTransporterCommandIsNotConstructed = errors.New(
	"DeactivateTransporterCommand must be created via NewDeactivateTransporterCommand constructor",
)

// DeactivateTransporterCommand represents a request to soft delete a
// transporter account. The record stays in storage but can no longer
// authenticate or take parcels.
type DeactivateTransporterCommand struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateTransporterCommand creates a command to deactivate a transporter.
func NewDeactivateTransporterCommand(transporterID kernel.UUID) (DeactivateTransporterCommand, error) {
	cmd := DeactivateTransporterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTransporterID(transporterID); err != nil {
		return DeactivateTransporterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateTransporterCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateTransporterCommandIsNotConstructed)
}

// TransporterID returns the identifier of the account to deactivate.
func (c DeactivateTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

func (c *DeactivateTransporterCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}
