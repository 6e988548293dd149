package parcel

import (
	"fmt"

	"parcelcarrier/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// The documented lifecycle is:
//
//	Pending ──(assign)──> InTransit ──(deliver)──> Delivered
//	   │                      │
//	   └──────(cancel)────────┴──────> Cancelled
//
// Assignment is only permitted from Pending. Direct status changes via
// ChangeStatus are deliberately unconstrained beyond requiring a defined
// status value; see Parcel.ChangeStatus.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a newly created parcel,
	// waiting to be assigned to a transporter.
	StatusPending

	// StatusInTransit indicates the parcel has been assigned and is being delivered.
	StatusInTransit

	// StatusDelivered indicates the parcel reached its destination.
	StatusDelivered

	// StatusCancelled indicates the delivery was cancelled.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses a parcel may legitimately hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses a wire representation ("PENDING", "IN_TRANSIT",
// "DELIVERED", "CANCELLED") into a Status. Unrecognized input yields an error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid parcel status", s),
	)
}

// Validate checks that the Status is one of the defined parcel statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinished reports whether this status terminates transporter engagement.
// Delivered and Cancelled are the finished statuses.
func (s Status) IsFinished() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanAssign reports whether a parcel in this status may be handed to a transporter.
// Only Pending parcels are assignable.
func (s Status) CanAssign() bool {
	return s == StatusPending
}
