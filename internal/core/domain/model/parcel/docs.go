// Package parcel contains the Parcel aggregate and its value objects.
//
// A parcel is a shipment tracked through the delivery lifecycle. The package
// owns the Status state machine, the Type categorization, and the business
// rules for creation and update (weight and address bounds, fragile handling
// instructions, refrigeration temperature ranges).
//
// The aggregate holds a weak reference to its assigned transporter by
// identifier only; resolving it to an account is an explicit lookup performed
// by the application layer. State transitions mutate the aggregate in memory
// and leave persistence to the caller, keeping the state machine testable
// without a database.
package parcel
