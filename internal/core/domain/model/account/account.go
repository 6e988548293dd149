package account

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/errs"
	"parcelcarrier/internal/pkg/guard"
)

const (
	minLoginLength = 3
	maxLoginLength = 50
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Domain errors for account operations.
var (
	// ErrAccountIsNotConstructed is returned when using an Account that was not
	// created via NewAdmin, NewTransporter, or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAdmin, NewTransporter, or RestoreAccount constructor")

	// ErrPasswordHashIsRequired is returned when an account is created without a credential digest.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// Account is the aggregate root for a system user: either an administrator or
// a transporter. Transporters additionally carry a specialty and an
// availability state.
//
// Invariants:
//   - login is 3–50 characters of letters, digits, and underscores
//   - a password hash is always present; the plaintext never enters the domain
//   - specialty and availability are only meaningful for transporters
//   - availability transitions happen exclusively through SetOnDelivery and
//     SetAvailable, driven by the assignment and lifecycle flows
type Account struct {
	id           kernel.UUID
	login        string
	passwordHash string
	role         Role
	active       bool
	specialty    Specialty
	availability Availability
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewAdmin creates an active administrator account.
func NewAdmin(id kernel.UUID, login, passwordHash string) (*Account, error) {
	now := time.Now().UTC()
	a := &Account{
		role:      RoleAdmin,
		active:    true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setLogin(login),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// NewTransporter creates an active transporter account with the given
// specialty, starting in the Available state.
func NewTransporter(id kernel.UUID, login, passwordHash string, specialty Specialty) (*Account, error) {
	now := time.Now().UTC()
	a := &Account{
		role:         RoleTransporter,
		active:       true,
		availability: Available,
		createdAt:    now,
		updatedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setLogin(login),
		a.setPasswordHash(passwordHash),
		a.setSpecialty(specialty),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an account from persistent storage. Specialty and
// availability are validated only for transporters; administrator rows carry
// the zero values.
func RestoreAccount(
	id kernel.UUID,
	login string,
	passwordHash string,
	role Role,
	active bool,
	specialty Specialty,
	availability Availability,
	createdAt time.Time,
	updatedAt time.Time,
) (*Account, error) {
	a := &Account{
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	joined := []error{
		a.setID(id),
		a.setLogin(login),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	}

	if role.IsTransporter() {
		joined = append(joined, a.setSpecialty(specialty), a.setAvailability(availability))
	}

	if err := errors.Join(joined...); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Account instance was created through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Login returns the unique login name.
func (a *Account) Login() string {
	return a.login
}

// PasswordHash returns the stored credential digest.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.active
}

// Specialty returns the transporter's parcel category. Zero for administrators.
func (a *Account) Specialty() Specialty {
	return a.specialty
}

// Availability returns the transporter's capacity state. Zero for administrators.
func (a *Account) Availability() Availability {
	return a.availability
}

// CreatedAt returns the creation timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// IsAdmin reports whether the account is an administrator.
func (a *Account) IsAdmin() bool {
	return a.role.IsAdmin()
}

// IsTransporter reports whether the account is a transporter.
func (a *Account) IsTransporter() bool {
	return a.role.IsTransporter()
}

// IsAvailable reports whether the account is a transporter ready for a new parcel.
func (a *Account) IsAvailable() bool {
	return a.IsTransporter() && a.availability == Available
}

// IsOnDelivery reports whether the account is a transporter currently delivering.
func (a *Account) IsOnDelivery() bool {
	return a.IsTransporter() && a.availability == OnDelivery
}

// CanHandle reports whether the transporter's specialty permits carrying the
// given parcel type. Always false for administrators.
func (a *Account) CanHandle(parcelType parcel.Type) bool {
	return a.IsTransporter() && a.specialty.Matches(parcelType)
}

// CanTakeNewParcel reports whether the transporter may accept an assignment:
// it must be an active transporter in the Available state.
func (a *Account) CanTakeNewParcel() bool {
	return a.IsTransporter() && a.active && a.availability == Available
}

// Activate marks the account as active.
func (a *Account) Activate() {
	a.active = true
	a.touch()
}

// Deactivate marks the account as inactive. Deactivated accounts cannot
// authenticate or take new parcels.
func (a *Account) Deactivate() {
	a.active = false
	a.touch()
}

// SetOnDelivery moves a transporter to the OnDelivery state.
// A no-op for non-transporter accounts.
func (a *Account) SetOnDelivery() {
	if !a.IsTransporter() {
		return
	}
	a.availability = OnDelivery
	a.touch()
}

// SetAvailable moves a transporter back to the Available state.
// A no-op for non-transporter accounts.
func (a *Account) SetAvailable() {
	if !a.IsTransporter() {
		return
	}
	a.availability = Available
	a.touch()
}

// ChangeLogin replaces the login name. Uniqueness is the caller's concern.
func (a *Account) ChangeLogin(login string) error {
	if err := a.setLogin(login); err != nil {
		return err
	}
	a.touch()
	return nil
}

// ChangePasswordHash replaces the stored credential digest.
func (a *Account) ChangePasswordHash(passwordHash string) error {
	if err := a.setPasswordHash(passwordHash); err != nil {
		return err
	}
	a.touch()
	return nil
}

// ChangeSpecialty replaces a transporter's specialty.
func (a *Account) ChangeSpecialty(specialty Specialty) error {
	if !a.IsTransporter() {
		return errs.NewValueIsInvalidErrorWithCause(
			"specialty",
			fmt.Errorf("account %s is not a transporter", a.id),
		)
	}
	if err := a.setSpecialty(specialty); err != nil {
		return err
	}
	a.touch()
	return nil
}

func (a *Account) touch() {
	a.updatedAt = time.Now().UTC()
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setLogin(login string) error {
	if len(login) < minLoginLength || len(login) > maxLoginLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"login",
			fmt.Errorf("login must be between %d and %d characters", minLoginLength, maxLoginLength),
		)
	}
	if !loginPattern.MatchString(login) {
		return errs.NewValueIsInvalidErrorWithCause(
			"login",
			fmt.Errorf("login can only contain letters, numbers and underscores"),
		)
	}
	a.login = login
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setSpecialty(specialty Specialty) error {
	if err := specialty.Validate(); err != nil {
		return err
	}
	a.specialty = specialty
	return nil
}

func (a *Account) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	a.availability = availability
	return nil
}
