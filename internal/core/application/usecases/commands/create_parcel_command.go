package commands

import (
	"errors"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel.
// Encapsulates the parcel's type, weight, destination, and handling details.
// Deep business validation (weight bounds, address length, per-type rules)
// happens in the parcel aggregate constructor.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID             kernel.UUID
	parcelType           parcel.Type
	weight               float64
	destinationAddress   string
	handlingInstructions string
	minTemperature       *float64
	maxTemperature       *float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates that the parcel ID and type are well formed.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	parcelType parcel.Type,
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemperature *float64,
	maxTemperature *float64,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
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
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ParcelType returns the parcel's category.
func (c CreateParcelCommand) ParcelType() parcel.Type {
	return c.parcelType
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// DestinationAddress returns the delivery destination.
func (c CreateParcelCommand) DestinationAddress() string {
	return c.destinationAddress
}

// HandlingInstructions returns the free-form handling notes.
func (c CreateParcelCommand) HandlingInstructions() string {
	return c.handlingInstructions
}

// MinTemperature returns the lower transport temperature bound, if any.
func (c CreateParcelCommand) MinTemperature() *float64 {
	return c.minTemperature
}

// MaxTemperature returns the upper transport temperature bound, if any.
func (c CreateParcelCommand) MaxTemperature() *float64 {
	return c.maxTemperature
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setParcelType(parcelType parcel.Type) error {
	if err := parcelType.Validate(); err != nil {
		return err
	}

	c.parcelType = parcelType
	return nil
}
