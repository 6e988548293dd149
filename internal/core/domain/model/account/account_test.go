package account_test

import (
	"strings"
	"testing"
	"time"

	"parcelcarrier/internal/core/domain/model/account"
	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidTransporter(t *testing.T, specialty account.Specialty) *account.Account {
	t.Helper()
	a, err := account.NewTransporter(kernel.NewUUID(), "driver_1", "$2a$10$hash", specialty)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func createValidAdmin(t *testing.T) *account.Account {
	t.Helper()
	a, err := account.NewAdmin(kernel.NewUUID(), "admin", "$2a$10$hash")
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func TestNewAdmin(t *testing.T) {
	t.Run("should create active admin with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.NewAdmin(id, "admin", "$2a$10$hash")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "admin", a.Login())
		assert.Equal(t, "$2a$10$hash", a.PasswordHash())
		assert.True(t, a.IsAdmin())
		assert.False(t, a.IsTransporter())
		assert.True(t, a.IsActive())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := account.NewAdmin(invalidID, "admin", "$2a$10$hash")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for empty password hash", func(t *testing.T) {
		a, err := account.NewAdmin(kernel.NewUUID(), "admin", "")

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "passwordHash")
	})
}

func TestNewTransporter(t *testing.T) {
	t.Run("should create active available transporter", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.NewTransporter(id, "driver_1", "$2a$10$hash", account.SpecialtyFragile)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.IsTransporter())
		assert.True(t, a.IsActive())
		assert.True(t, a.IsAvailable())
		assert.Equal(t, account.SpecialtyFragile, a.Specialty())
	})

	t.Run("should return error for invalid specialty", func(t *testing.T) {
		var invalid account.Specialty

		a, err := account.NewTransporter(kernel.NewUUID(), "driver_1", "$2a$10$hash", invalid)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("login validation", func(t *testing.T) {
		tests := []struct {
			name    string
			login   string
			wantErr bool
		}{
			{"minimum length", "abc", false},
			{"maximum length", strings.Repeat("a", 50), false},
			{"underscores and digits", "driver_42", false},
			{"too short", "ab", true},
			{"too long", strings.Repeat("a", 51), true},
			{"empty", "", true},
			{"spaces", "driver one", true},
			{"special characters", "driver-1!", true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a, err := account.NewTransporter(kernel.NewUUID(), tt.login, "$2a$10$hash", account.SpecialtyStandard)

				if tt.wantErr {
					require.Error(t, err)
					assert.Nil(t, a)
				} else {
					require.NoError(t, err)
					assert.Equal(t, tt.login, a.Login())
				}
			})
		}
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("should restore transporter with full state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()

		a, err := account.RestoreAccount(
			id, "driver_1", "$2a$10$hash",
			account.RoleTransporter, false,
			account.SpecialtyRefrigerated, account.OnDelivery,
			createdAt, updatedAt,
		)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.False(t, a.IsActive())
		assert.True(t, a.IsOnDelivery())
		assert.Equal(t, account.SpecialtyRefrigerated, a.Specialty())
		assert.Equal(t, createdAt, a.CreatedAt())
		assert.Equal(t, updatedAt, a.UpdatedAt())
	})

	t.Run("should restore admin without specialty or availability", func(t *testing.T) {
		var zeroSpecialty account.Specialty
		var zeroAvailability account.Availability

		a, err := account.RestoreAccount(
			kernel.NewUUID(), "admin", "$2a$10$hash",
			account.RoleAdmin, true,
			zeroSpecialty, zeroAvailability,
			time.Now().UTC(), time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.True(t, a.IsAdmin())
		assert.False(t, a.IsAvailable())
		assert.False(t, a.IsOnDelivery())
	})

	t.Run("should return error for transporter with invalid availability", func(t *testing.T) {
		var zeroAvailability account.Availability

		a, err := account.RestoreAccount(
			kernel.NewUUID(), "driver_1", "$2a$10$hash",
			account.RoleTransporter, true,
			account.SpecialtyStandard, zeroAvailability,
			time.Now().UTC(), time.Now().UTC(),
		)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestAccountValidate(t *testing.T) {
	t.Run("should fail for zero value account", func(t *testing.T) {
		var a account.Account

		assert.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
	})

	t.Run("should fail for nil account", func(t *testing.T) {
		var a *account.Account

		assert.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
	})
}

func TestAccountCanHandle(t *testing.T) {
	tests := []struct {
		name       string
		specialty  account.Specialty
		parcelType parcel.Type
		want       bool
	}{
		{"standard handles standard", account.SpecialtyStandard, parcel.TypeStandard, true},
		{"standard rejects fragile", account.SpecialtyStandard, parcel.TypeFragile, false},
		{"standard rejects refrigerated", account.SpecialtyStandard, parcel.TypeRefrigerated, false},
		{"fragile handles fragile", account.SpecialtyFragile, parcel.TypeFragile, true},
		{"fragile rejects standard", account.SpecialtyFragile, parcel.TypeStandard, false},
		{"refrigerated handles refrigerated", account.SpecialtyRefrigerated, parcel.TypeRefrigerated, true},
		{"refrigerated rejects fragile", account.SpecialtyRefrigerated, parcel.TypeFragile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := createValidTransporter(t, tt.specialty)

			assert.Equal(t, tt.want, a.CanHandle(tt.parcelType))
		})
	}

	t.Run("admin handles nothing", func(t *testing.T) {
		a := createValidAdmin(t)

		assert.False(t, a.CanHandle(parcel.TypeStandard))
	})
}

func TestAccountCanTakeNewParcel(t *testing.T) {
	t.Run("active available transporter can take parcel", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)

		assert.True(t, a.CanTakeNewParcel())
	})

	t.Run("transporter on delivery cannot take parcel", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)
		a.SetOnDelivery()

		assert.False(t, a.CanTakeNewParcel())
	})

	t.Run("deactivated transporter cannot take parcel", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)
		a.Deactivate()

		assert.False(t, a.CanTakeNewParcel())
	})

	t.Run("admin cannot take parcel", func(t *testing.T) {
		a := createValidAdmin(t)

		assert.False(t, a.CanTakeNewParcel())
	})
}

func TestAccountAvailabilityTransitions(t *testing.T) {
	t.Run("transporter cycles between available and on delivery", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)

		a.SetOnDelivery()
		assert.True(t, a.IsOnDelivery())
		assert.False(t, a.IsAvailable())

		a.SetAvailable()
		assert.True(t, a.IsAvailable())
		assert.False(t, a.IsOnDelivery())
	})

	t.Run("availability changes are no-ops for admins", func(t *testing.T) {
		a := createValidAdmin(t)

		a.SetOnDelivery()
		assert.False(t, a.IsOnDelivery())

		a.SetAvailable()
		assert.False(t, a.IsAvailable())
	})
}

func TestAccountActivation(t *testing.T) {
	a := createValidTransporter(t, account.SpecialtyStandard)

	a.Deactivate()
	assert.False(t, a.IsActive())

	a.Activate()
	assert.True(t, a.IsActive())
}

func TestAccountMutations(t *testing.T) {
	t.Run("should change login", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)

		require.NoError(t, a.ChangeLogin("driver_2"))
		assert.Equal(t, "driver_2", a.Login())
	})

	t.Run("should reject invalid login", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)

		require.Error(t, a.ChangeLogin("x"))
		assert.Equal(t, "driver_1", a.Login())
	})

	t.Run("should change password hash", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)

		require.NoError(t, a.ChangePasswordHash("$2a$10$other"))
		assert.Equal(t, "$2a$10$other", a.PasswordHash())
	})

	t.Run("should reject empty password hash", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)

		require.Error(t, a.ChangePasswordHash(""))
	})

	t.Run("should change specialty for transporter", func(t *testing.T) {
		a := createValidTransporter(t, account.SpecialtyStandard)

		require.NoError(t, a.ChangeSpecialty(account.SpecialtyFragile))
		assert.Equal(t, account.SpecialtyFragile, a.Specialty())
	})

	t.Run("should reject specialty change for admin", func(t *testing.T) {
		a := createValidAdmin(t)

		require.Error(t, a.ChangeSpecialty(account.SpecialtyFragile))
	})
}

func TestAccountIsEqual(t *testing.T) {
	a := createValidTransporter(t, account.SpecialtyStandard)
	b := createValidTransporter(t, account.SpecialtyStandard)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
