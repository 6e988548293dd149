package account

import (
	"fmt"

	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/errs"
)

// Specialty is the category of parcel a transporter is permitted to carry.
// Each specialty maps one-to-one to a parcel type; there is no cross-matching.
type Specialty int

const (
	// SpecialtyUnknown represents an invalid or undefined specialty.
	SpecialtyUnknown Specialty = iota

	// SpecialtyStandard carries standard parcels.
	SpecialtyStandard

	// SpecialtyFragile carries fragile parcels.
	SpecialtyFragile

	// SpecialtyRefrigerated carries refrigerated parcels.
	SpecialtyRefrigerated
)

func getSpecialtyStrings() map[Specialty]string {
	return map[Specialty]string{
		SpecialtyUnknown:      "UNKNOWN",
		SpecialtyStandard:     "STANDARD",
		SpecialtyFragile:      "FRAGILE",
		SpecialtyRefrigerated: "REFRIGERATED",
	}
}

// specialtyParcelTypes is the specialty to parcel type matching table.
// Strictly one-to-one: a specialty handles exactly its own parcel type.
func specialtyParcelTypes() map[Specialty]parcel.Type {
	return map[Specialty]parcel.Type{
		SpecialtyStandard:     parcel.TypeStandard,
		SpecialtyFragile:      parcel.TypeFragile,
		SpecialtyRefrigerated: parcel.TypeRefrigerated,
	}
}

// SpecialtyFromString parses a wire representation ("STANDARD", "FRAGILE",
// "REFRIGERATED") into a Specialty.
func SpecialtyFromString(s string) (Specialty, error) {
	for sp, str := range getSpecialtyStrings() {
		if sp != SpecialtyUnknown && str == s {
			return sp, nil
		}
	}
	return SpecialtyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"specialty",
		fmt.Errorf("%q is not a valid specialty", s),
	)
}

// Validate checks that the Specialty is one of the defined specialties.
func (s Specialty) Validate() error {
	if _, ok := specialtyParcelTypes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"specialty",
			fmt.Errorf("%d is not a valid specialty", s),
		)
	}
	return nil
}

// String returns the wire representation of the specialty.
func (s Specialty) String() string {
	if str, ok := getSpecialtyStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Matches reports whether the specialty permits carrying the given parcel type.
func (s Specialty) Matches(parcelType parcel.Type) bool {
	matched, ok := specialtyParcelTypes()[s]
	return ok && matched == parcelType
}
