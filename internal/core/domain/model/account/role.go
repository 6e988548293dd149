package account

import (
	"fmt"

	"parcelcarrier/internal/pkg/errs"
)

// Role distinguishes administrators from transporters.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin manages parcels and transporter accounts.
	RoleAdmin

	// RoleTransporter delivers parcels assigned to it.
	RoleTransporter
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "UNKNOWN",
		RoleAdmin:       "ADMIN",
		RoleTransporter: "TRANSPORTER",
	}
}

// RoleFromString parses a wire representation ("ADMIN", "TRANSPORTER") into a Role.
func RoleFromString(s string) (Role, error) {
	for r, str := range getRoleStrings() {
		if r != RoleUnknown && str == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the defined roles.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleTransporter {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsAdmin reports whether the role is Admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsTransporter reports whether the role is Transporter.
func (r Role) IsTransporter() bool {
	return r == RoleTransporter
}
