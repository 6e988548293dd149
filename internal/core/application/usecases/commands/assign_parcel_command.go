package commands

import (
	"errors"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/guard"
)

var ErrAssignParcelCommandIsNotConstructed = errors.New(
	"AssignParcelCommand must be created via NewAssignParcelCommand constructor",
)

// AssignParcelCommand represents a request to hand a pending parcel to a
// specific transporter.
type AssignParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a command to assign a parcel to a transporter.
func NewAssignParcelCommand(parcelID, transporterID kernel.UUID) (AssignParcelCommand, error) {
	cmd := AssignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTransporterID(transporterID),
	); err != nil {
		return AssignParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignParcelCommand) Validate() error {
	return c.guard.Validate(ErrAssignParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to assign.
func (c AssignParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TransporterID returns the identifier of the target transporter.
func (c AssignParcelCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

func (c *AssignParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignParcelCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}
