package commands

import (
	"errors"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a request to replace a parcel's mutable
// attributes. The parcel type cannot change after creation; the aggregate
// rejects a mismatch during handling.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID             kernel.UUID
	parcelType           parcel.Type
	weight               float64
	destinationAddress   string
	handlingInstructions string
	minTemperature       *float64
	maxTemperature       *float64

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a command to update an existing parcel.
func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	parcelType parcel.Type,
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemperature *float64,
	maxTemperature *float64,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		weight:               weight,
		destinationAddress:   destinationAddress,
		handlingInstructions: handlingInstructions,
		minTemperature:       minTemperature,
		maxTemperature:       maxTemperature,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setParcelType(parcelType),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ParcelType returns the parcel's category.
func (c UpdateParcelCommand) ParcelType() parcel.Type {
	return c.parcelType
}

// Weight returns the parcel weight in kilograms.
func (c UpdateParcelCommand) Weight() float64 {
	return c.weight
}

// DestinationAddress returns the delivery destination.
func (c UpdateParcelCommand) DestinationAddress() string {
	return c.destinationAddress
}

// HandlingInstructions returns the free-form handling notes.
func (c UpdateParcelCommand) HandlingInstructions() string {
	return c.handlingInstructions
}

// MinTemperature returns the lower transport temperature bound, if any.
func (c UpdateParcelCommand) MinTemperature() *float64 {
	return c.minTemperature
}

// MaxTemperature returns the upper transport temperature bound, if any.
func (c UpdateParcelCommand) MaxTemperature() *float64 {
	return c.maxTemperature
}

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setParcelType(parcelType parcel.Type) error {
	if err := parcelType.Validate(); err != nil {
		return err
	}

	c.parcelType = parcelType
	return nil
}
