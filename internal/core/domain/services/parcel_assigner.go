package services

import (
	"fmt"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
)

// SpecialtyMismatchError is returned when a transporter's specialty does not
// permit carrying the parcel's type.
type SpecialtyMismatchError struct {
	ParcelType parcel.Type
	Specialty  account.Specialty
}

func (e *SpecialtyMismatchError) Error() string {
	return fmt.Sprintf("transporter with specialty %s cannot handle %s parcels", e.Specialty, e.ParcelType)
}

// TransporterUnavailableError is returned when the transporter cannot accept a
// new parcel because it is inactive or already delivering. Carries the
// transporter's identifier and its availability at the time of the attempt.
type TransporterUnavailableError struct {
	TransporterID kernel.UUID
	Login         string
	Availability  account.Availability
}

func (e *TransporterUnavailableError) Error() string {
	return fmt.Sprintf("transporter %s is not available for assignment (availability: %s)",
		e.TransporterID, e.Availability)
}

// NotTransporterError is returned when the assignment target is not a
// transporter account.
type NotTransporterError struct {
	Login string
	Role  account.Role
}

func (e *NotTransporterError) Error() string {
	return fmt.Sprintf("account %s has role %s and cannot carry parcels", e.Login, e.Role)
}

// ParcelAssigner is a domain service responsible for pairing a pending parcel
// with a transporter.
//
// Business rules, checked in order:
//   - The target account must be a transporter
//   - The parcel must be in a state that allows assignment
//   - The transporter's specialty must match the parcel's type exactly
//   - The transporter must be active and available
//
// On success both aggregates change together: the parcel moves to in transit
// and records the transporter, and the transporter moves to on delivery.
type ParcelAssigner struct{}

// NewParcelAssigner creates a new ParcelAssigner instance.
func NewParcelAssigner() ParcelAssigner {
	return ParcelAssigner{}
}

// Assign pairs the parcel with the transporter, mutating both aggregates.
// The caller is responsible for persisting both within a single transaction.
func (s ParcelAssigner) Assign(p *parcel.Parcel, transporter *account.Account) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := transporter.Validate(); err != nil {
		return err
	}

	if !transporter.IsTransporter() {
		return &NotTransporterError{Login: transporter.Login(), Role: transporter.Role()}
	}

	if !p.CanBeAssigned() {
		return parcel.ErrNotAssignable
	}

	if !transporter.CanHandle(p.Type()) {
		return &SpecialtyMismatchError{ParcelType: p.Type(), Specialty: transporter.Specialty()}
	}

	if !transporter.CanTakeNewParcel() {
		return &TransporterUnavailableError{
			TransporterID: transporter.ID(),
			Login:         transporter.Login(),
			Availability:  transporter.Availability(),
		}
	}

	if err := p.Assign(transporter.ID()); err != nil {
		return err
	}
	transporter.SetOnDelivery()

	return nil
}
