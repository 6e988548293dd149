// Package services contains domain services that coordinate behavior across
// multiple aggregates.
//
// ParcelAssigner pairs a pending parcel with a transporter, enforcing the
// specialty and availability rules that neither aggregate can check alone.
package services
