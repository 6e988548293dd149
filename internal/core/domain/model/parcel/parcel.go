package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/pkg/errs"
	"parcelcarrier/internal/pkg/guard"
)

const (
	// maxWeight is the heaviest parcel the system accepts, in kilograms.
	maxWeight = 1000.0
	// minAddressLength and maxAddressLength bound the destination address.
	minAddressLength = 10
	maxAddressLength = 500
	// maxInstructionsLength bounds the free-text handling instructions.
	maxInstructionsLength = 1000
	// minTemperatureBound and maxTemperatureBound bound the refrigeration range, in °C.
	minTemperatureBound = -30.0
	maxTemperatureBound = 30.0
)

// Domain errors for parcel operations.
var (
	// ErrParcelIsNotConstructed is returned when using a Parcel that was not
	// created via NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

	// ErrNotAssignable is returned when attempting to assign a parcel that is
	// not in the Pending status. Callers should treat it as a state conflict.
	ErrNotAssignable = errors.New("parcel cannot be assigned in its current status")
)

// Parcel is the aggregate root for a shipment tracked through its delivery
// lifecycle. It owns the status state machine and the business-rule validation
// applied at creation and update time.
//
// Invariants:
//   - status is always one of the defined Status values
//   - type is immutable after creation
//   - fragile parcels carry non-blank handling instructions
//   - refrigerated parcels carry a valid temperature range (min < max, both in [-30, 30])
//   - a transporter reference may only be acquired through Assign
//
// The transporter reference is a weak identifier: resolving it to a live
// account is always an explicit repository lookup.
type Parcel struct {
	id                   kernel.UUID
	parcelType           Type
	weight               float64
	destinationAddress   string
	status               Status
	transporterID        *kernel.UUID
	handlingInstructions string
	minTemperature       *float64
	maxTemperature       *float64
	createdAt            time.Time
	updatedAt            time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a Pending parcel, enforcing all creation-time business rules.
//
// Validation applied:
//   - id must be a constructed UUID
//   - parcelType must be a defined type
//   - weight must be positive and at most 1000
//   - destinationAddress must be 10–500 characters
//   - fragile parcels require non-blank handlingInstructions (at most 1000 characters)
//   - refrigerated parcels require minTemperature < maxTemperature, both in [-30, 30]
//
// Temperature values on non-refrigerated parcels are stored but never
// validated; the range is only meaningful for refrigerated parcels.
func NewParcel(
	id kernel.UUID,
	parcelType Type,
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemperature *float64,
	maxTemperature *float64,
) (*Parcel, error) {
	now := time.Now().UTC()
	p := &Parcel{
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setType(parcelType),
		p.setWeight(weight),
		p.setDestinationAddress(destinationAddress),
		p.setHandlingInstructions(parcelType, handlingInstructions),
		p.setTemperatureRange(parcelType, minTemperature, maxTemperature),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistent storage, preserving its
// previously persisted state including status, transporter reference, and
// timestamps. The restored parcel behaves identically to one created through
// normal domain operations.
func RestoreParcel(
	id kernel.UUID,
	parcelType Type,
	weight float64,
	destinationAddress string,
	status Status,
	transporterID *kernel.UUID,
	handlingInstructions string,
	minTemperature *float64,
	maxTemperature *float64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setType(parcelType),
		p.setWeight(weight),
		p.setDestinationAddress(destinationAddress),
		p.setStatus(status),
		p.setHandlingInstructions(parcelType, handlingInstructions),
		p.setTemperatureRange(parcelType, minTemperature, maxTemperature),
	); err != nil {
		return nil, err
	}

	if transporterID != nil {
		if err := transporterID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *transporterID
		p.transporterID = &idCopy
	}

	return p, nil
}

// Validate ensures the Parcel instance was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Type returns the parcel's category. It never changes after creation.
func (p *Parcel) Type() Type {
	return p.parcelType
}

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// DestinationAddress returns the delivery address.
func (p *Parcel) DestinationAddress() string {
	return p.destinationAddress
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// TransporterID returns the assigned transporter's identifier, or nil when unassigned.
func (p *Parcel) TransporterID() *kernel.UUID {
	return p.transporterID
}

// HandlingInstructions returns the free-text handling instructions.
func (p *Parcel) HandlingInstructions() string {
	return p.handlingInstructions
}

// MinTemperature returns the lower bound of the refrigeration range, if any.
func (p *Parcel) MinTemperature() *float64 {
	return p.minTemperature
}

// MaxTemperature returns the upper bound of the refrigeration range, if any.
func (p *Parcel) MaxTemperature() *float64 {
	return p.maxTemperature
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsAssigned reports whether the parcel references a transporter.
func (p *Parcel) IsAssigned() bool {
	return p.transporterID != nil
}

// IsPending reports whether the parcel is waiting for assignment.
func (p *Parcel) IsPending() bool {
	return p.status == StatusPending
}

// IsInTransit reports whether the parcel is currently being delivered.
func (p *Parcel) IsInTransit() bool {
	return p.status == StatusInTransit
}

// IsFinished reports whether the parcel reached Delivered or Cancelled.
func (p *Parcel) IsFinished() bool {
	return p.status.IsFinished()
}

// CanBeAssigned reports whether the parcel may be handed to a transporter.
func (p *Parcel) CanBeAssigned() bool {
	return p.status.CanAssign()
}

// IsFragile reports whether the parcel requires careful handling.
func (p *Parcel) IsFragile() bool {
	return p.parcelType.IsFragile()
}

// IsRefrigerated reports whether the parcel requires a controlled temperature.
func (p *Parcel) IsRefrigerated() bool {
	return p.parcelType.IsRefrigerated()
}

// RequiresSpecialHandling reports whether the parcel's type imposes extra rules.
func (p *Parcel) RequiresSpecialHandling() bool {
	return p.parcelType.RequiresSpecialHandling()
}

// Assign hands the parcel to the given transporter and moves it to InTransit.
//
// Returns ErrNotAssignable when the parcel is not Pending; the caller decides
// how to surface the conflict. The transporter's own state change is the
// caller's responsibility so both writes can share one transaction.
func (p *Parcel) Assign(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	if !p.CanBeAssigned() {
		return fmt.Errorf("%w: %s", ErrNotAssignable, p.status)
	}

	p.transporterID = &transporterID
	p.status = StatusInTransit
	p.touch()
	return nil
}

// ChangeStatus sets the parcel status to newStatus.
//
// The contract is deliberately permissive: any defined status value is
// accepted, including re-setting the current value or moving backwards in the
// lifecycle. Only undefined statuses are rejected. The transporter reference is
// left untouched; releasing the transporter on a finished status is the
// lifecycle manager's concern.
func (p *Parcel) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	p.status = newStatus
	p.touch()
	return nil
}

// BelongsTo reports whether the parcel is currently assigned to the given transporter.
func (p *Parcel) BelongsTo(transporterID kernel.UUID) bool {
	return p.transporterID != nil && p.transporterID.IsEqual(transporterID)
}

// ApplyUpdate replaces the mutable attributes of the parcel, re-running the
// creation-time business rules. The parcel type is immutable: passing a type
// different from the current one fails validation.
func (p *Parcel) ApplyUpdate(
	parcelType Type,
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemperature *float64,
	maxTemperature *float64,
) error {
	if err := parcelType.Validate(); err != nil {
		return err
	}

	if parcelType != p.parcelType {
		return errs.NewValueIsInvalidErrorWithCause(
			"type",
			fmt.Errorf("parcel type is immutable: cannot change %s to %s", p.parcelType, parcelType),
		)
	}

	if err := errors.Join(
		p.setWeight(weight),
		p.setDestinationAddress(destinationAddress),
		p.setHandlingInstructions(p.parcelType, handlingInstructions),
		p.setTemperatureRange(p.parcelType, minTemperature, maxTemperature),
	); err != nil {
		return err
	}

	p.touch()
	return nil
}

func (p *Parcel) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setType(parcelType Type) error {
	if err := parcelType.Validate(); err != nil {
		return err
	}
	p.parcelType = parcelType
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 || weight > maxWeight {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, maxWeight)
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setDestinationAddress(address string) error {
	length := len(strings.TrimSpace(address))
	if length < minAddressLength || length > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"destinationAddress",
			fmt.Errorf("address must contain between %d and %d characters", minAddressLength, maxAddressLength),
		)
	}
	p.destinationAddress = address
	return nil
}

func (p *Parcel) setHandlingInstructions(parcelType Type, instructions string) error {
	if parcelType.IsFragile() && strings.TrimSpace(instructions) == "" {
		return errs.NewValueIsRequiredError("handlingInstructions")
	}
	if len(instructions) > maxInstructionsLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"handlingInstructions",
			fmt.Errorf("handling instructions cannot exceed %d characters", maxInstructionsLength),
		)
	}
	p.handlingInstructions = instructions
	return nil
}

// setTemperatureRange validates the refrigeration range. For non-refrigerated
// parcels any supplied values are stored as-is and treated as valid; the range
// is only meaningful for refrigerated parcels.
func (p *Parcel) setTemperatureRange(parcelType Type, minTemperature, maxTemperature *float64) error {
	if parcelType.IsRefrigerated() {
		if minTemperature == nil || maxTemperature == nil {
			return errs.NewValueIsRequiredError("minTemperature and maxTemperature")
		}
		if *minTemperature < minTemperatureBound || *minTemperature > maxTemperatureBound {
			return errs.NewValueIsOutOfRangeError(
				"minTemperature", *minTemperature, minTemperatureBound, maxTemperatureBound,
			)
		}
		if *maxTemperature < minTemperatureBound || *maxTemperature > maxTemperatureBound {
			return errs.NewValueIsOutOfRangeError(
				"maxTemperature", *maxTemperature, minTemperatureBound, maxTemperatureBound,
			)
		}
		if *minTemperature >= *maxTemperature {
			return errs.NewValueIsInvalidErrorWithCause(
				"minTemperature",
				fmt.Errorf("minTemperature %v must be lower than maxTemperature %v", *minTemperature, *maxTemperature),
			)
		}
	}

	p.minTemperature = copyFloat(minTemperature)
	p.maxTemperature = copyFloat(maxTemperature)
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
