package parcel

import (
	"fmt"

	"parcelcarrier/internal/pkg/errs"
)

// Type categorizes a parcel by its handling requirements.
// The type is immutable after creation and drives which transporter
// specialty may carry the parcel.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeStandard is an ordinary parcel with no special handling.
	TypeStandard

	// TypeFragile requires handling instructions to be present.
	TypeFragile

	// TypeRefrigerated requires a valid temperature range.
	TypeRefrigerated
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:      "UNKNOWN",
		TypeStandard:     "STANDARD",
		TypeFragile:      "FRAGILE",
		TypeRefrigerated: "REFRIGERATED",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeStandard:     "STANDARD",
		TypeFragile:      "FRAGILE",
		TypeRefrigerated: "REFRIGERATED",
	}
}

// TypeFromString parses a wire representation ("STANDARD", "FRAGILE",
// "REFRIGERATED") into a Type. Unrecognized input yields an error.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"type",
		fmt.Errorf("%q is not a valid parcel type", s),
	)
}

// Validate checks that the Type is one of the defined parcel types.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"type",
			fmt.Errorf("%d is not a valid type", t),
		)
	}
	return nil
}

// String returns the wire representation of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFragile reports whether the type is Fragile.
func (t Type) IsFragile() bool {
	return t == TypeFragile
}

// IsRefrigerated reports whether the type is Refrigerated.
func (t Type) IsRefrigerated() bool {
	return t == TypeRefrigerated
}

// IsStandard reports whether the type is Standard.
func (t Type) IsStandard() bool {
	return t == TypeStandard
}

// RequiresSpecialHandling reports whether the type imposes extra handling rules.
// Fragile and Refrigerated parcels require special handling.
func (t Type) RequiresSpecialHandling() bool {
	return t == TypeFragile || t == TypeRefrigerated
}
