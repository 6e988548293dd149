package account

import (
	"fmt"

	"parcelcarrier/internal/pkg/errs"
)

// Availability is a transporter's capacity state. It is only ever toggled by
// the assignment and lifecycle flows, never directly by a caller.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Available means the transporter can take a new parcel.
	Available

	// OnDelivery means the transporter is currently carrying a parcel.
	OnDelivery
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "UNKNOWN",
		Available:           "AVAILABLE",
		OnDelivery:          "ON_DELIVERY",
	}
}

// AvailabilityFromString parses a wire representation ("AVAILABLE",
// "ON_DELIVERY") into an Availability.
func AvailabilityFromString(s string) (Availability, error) {
	for a, str := range getAvailabilityStrings() {
		if a != AvailabilityUnknown && str == s {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability",
		fmt.Errorf("%q is not a valid availability", s),
	)
}

// Validate checks that the Availability is one of the defined values.
func (a Availability) Validate() error {
	if a != Available && a != OnDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability",
			fmt.Errorf("%d is not a valid availability", a),
		)
	}
	return nil
}

// String returns the wire representation of the availability.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}
