package commands

import (
	"errors"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/guard"
)

var ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
	"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand or NewChangeOwnParcelStatusCommand constructor",
)

// ChangeParcelStatusCommand represents a request to set a parcel's status.
//
// Two variants exist: the privileged form skips ownership checks and is used
// by administrators, while the owner form carries the acting transporter's
// identity and only succeeds when the parcel is assigned to that transporter.
type ChangeParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	newStatus parcel.Status
	actorID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeParcelStatusCommand creates a privileged status change command.
// No ownership check is performed during handling.
func NewChangeParcelStatusCommand(parcelID kernel.UUID, newStatus parcel.Status) (ChangeParcelStatusCommand, error) {
	cmd := ChangeParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return cmd, nil
}

// NewChangeOwnParcelStatusCommand creates a status change command on behalf of
// the transporter identified by actorID. Handling fails unless the parcel is
// currently assigned to that transporter.
func NewChangeOwnParcelStatusCommand(
	parcelID kernel.UUID,
	newStatus parcel.Status,
	actorID kernel.UUID,
) (ChangeParcelStatusCommand, error) {
	cmd := ChangeParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setNewStatus(newStatus),
		cmd.setActorID(actorID),
	); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to modify.
func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the status to set.
func (c ChangeParcelStatusCommand) NewStatus() parcel.Status {
	return c.newStatus
}

// ActorID returns the acting transporter's identity, or nil for the
// privileged variant.
func (c ChangeParcelStatusCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *ChangeParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ChangeParcelStatusCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *ChangeParcelStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = &actorID
	return nil
}
