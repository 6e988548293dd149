package parcel_test

import (
	"testing"
	"time"

	"parcelcarrier/internal/core/domain/model/kernel"
	"parcelcarrier/internal/core/domain/model/parcel"
	"parcelcarrier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func newStandardParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		parcel.TypeStandard,
		12.5,
		"221B Baker Street, London",
		"",
		nil,
		nil,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("creates_pending_standard_parcel", func(t *testing.T) {
		p := newStandardParcel(t)

		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, parcel.TypeStandard, p.Type())
		assert.Nil(t, p.TransporterID())
		assert.False(t, p.IsAssigned())
		assert.True(t, p.CanBeAssigned())
		assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt(), time.Minute)
	})

	t.Run("creates_fragile_parcel_with_instructions", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeFragile,
			3.2,
			"10 Downing Street, London",
			"this side up, do not stack",
			nil,
			nil,
		)

		require.NoError(t, err)
		assert.True(t, p.IsFragile())
		assert.True(t, p.RequiresSpecialHandling())
	})

	t.Run("fragile_without_instructions_fails", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeFragile,
			3.2,
			"10 Downing Street, London",
			"   ",
			nil,
			nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("creates_refrigerated_parcel_with_valid_range", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeRefrigerated,
			40,
			"1 Harbour Road, Rotterdam",
			"",
			floatPtr(2),
			floatPtr(8),
		)

		require.NoError(t, err)
		assert.True(t, p.IsRefrigerated())
		assert.Equal(t, 2.0, *p.MinTemperature())
		assert.Equal(t, 8.0, *p.MaxTemperature())
	})

	t.Run("refrigerated_with_inverted_range_fails", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeRefrigerated,
			40,
			"1 Harbour Road, Rotterdam",
			"",
			floatPtr(10),
			floatPtr(5),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("refrigerated_without_range_fails", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeRefrigerated,
			40,
			"1 Harbour Road, Rotterdam",
			"",
			nil,
			nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("refrigerated_below_bound_fails", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeRefrigerated,
			40,
			"1 Harbour Road, Rotterdam",
			"",
			floatPtr(-45),
			floatPtr(5),
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("standard_parcel_ignores_temperature_rules", func(t *testing.T) {
		// Temperature validity is vacuous for non-refrigerated types.
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeStandard,
			5,
			"221B Baker Street, London",
			"",
			floatPtr(25),
			floatPtr(-10),
		)

		require.NoError(t, err)
	})

	t.Run("rejects_non_positive_weight", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), parcel.TypeStandard, 0, "221B Baker Street, London", "", nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_overweight", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), parcel.TypeStandard, 1000.5, "221B Baker Street, London", "", nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_short_address", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), parcel.TypeStandard, 5, "short", "", nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unconstructed_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := parcel.NewParcel(
			id, parcel.TypeStandard, 5, "221B Baker Street, London", "", nil, nil,
		)
		require.Error(t, err)
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("constructed_parcel_is_valid", func(t *testing.T) {
		p := newStandardParcel(t)
		require.NoError(t, p.Validate())
	})

	t.Run("zero_value_parcel_is_invalid", func(t *testing.T) {
		var p parcel.Parcel
		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})

	t.Run("nil_parcel_is_invalid", func(t *testing.T) {
		var p *parcel.Parcel
		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_Assign(t *testing.T) {
	t.Run("pending_parcel_moves_to_in_transit", func(t *testing.T) {
		p := newStandardParcel(t)
		transporterID := kernel.NewUUID()

		err := p.Assign(transporterID)

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusInTransit, p.Status())
		require.NotNil(t, p.TransporterID())
		assert.True(t, p.TransporterID().IsEqual(transporterID))
		assert.True(t, p.BelongsTo(transporterID))
	})

	t.Run("in_transit_parcel_cannot_be_assigned", func(t *testing.T) {
		p := newStandardParcel(t)
		require.NoError(t, p.Assign(kernel.NewUUID()))

		err := p.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, parcel.ErrNotAssignable)
	})

	t.Run("finished_parcel_cannot_be_assigned", func(t *testing.T) {
		p := newStandardParcel(t)
		require.NoError(t, p.ChangeStatus(parcel.StatusCancelled))

		err := p.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, parcel.ErrNotAssignable)
	})

	t.Run("unconstructed_transporter_id_fails", func(t *testing.T) {
		p := newStandardParcel(t)
		var id kernel.UUID

		err := p.Assign(id)

		require.Error(t, err)
		assert.Equal(t, parcel.StatusPending, p.Status())
	})
}

func TestParcel_ChangeStatus(t *testing.T) {
	t.Run("accepts_any_defined_status", func(t *testing.T) {
		// The setter is deliberately permissive: no transition graph is
		// enforced, only that the value is a defined status.
		p := newStandardParcel(t)

		require.NoError(t, p.ChangeStatus(parcel.StatusDelivered))
		assert.Equal(t, parcel.StatusDelivered, p.Status())

		// Moving backwards is allowed by the current contract.
		require.NoError(t, p.ChangeStatus(parcel.StatusPending))
		assert.Equal(t, parcel.StatusPending, p.Status())

		// Re-setting the same value is allowed too.
		require.NoError(t, p.ChangeStatus(parcel.StatusPending))
	})

	t.Run("rejects_undefined_status", func(t *testing.T) {
		p := newStandardParcel(t)

		err := p.ChangeStatus(parcel.StatusUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.StatusPending, p.Status())
	})

	t.Run("keeps_transporter_reference_on_finish", func(t *testing.T) {
		p := newStandardParcel(t)
		transporterID := kernel.NewUUID()
		require.NoError(t, p.Assign(transporterID))

		require.NoError(t, p.ChangeStatus(parcel.StatusDelivered))

		assert.True(t, p.IsFinished())
		require.NotNil(t, p.TransporterID())
		assert.True(t, p.TransporterID().IsEqual(transporterID))
	})
}

func TestParcel_ApplyUpdate(t *testing.T) {
	t.Run("updates_mutable_fields", func(t *testing.T) {
		p := newStandardParcel(t)

		err := p.ApplyUpdate(parcel.TypeStandard, 99, "742 Evergreen Terrace, Springfield", "", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 99.0, p.Weight())
		assert.Equal(t, "742 Evergreen Terrace, Springfield", p.DestinationAddress())
	})

	t.Run("type_is_immutable", func(t *testing.T) {
		p := newStandardParcel(t)

		err := p.ApplyUpdate(parcel.TypeFragile, 99, "742 Evergreen Terrace, Springfield", "careful", nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.TypeStandard, p.Type())
	})

	t.Run("re_runs_business_rules", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(),
			parcel.TypeRefrigerated,
			40,
			"1 Harbour Road, Rotterdam",
			"",
			floatPtr(2),
			floatPtr(8),
		)
		require.NoError(t, err)

		err = p.ApplyUpdate(parcel.TypeRefrigerated, 40, "1 Harbour Road, Rotterdam", "", floatPtr(10), floatPtr(5))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 2.0, *p.MinTemperature())
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("restores_assigned_parcel", func(t *testing.T) {
		id := kernel.NewUUID()
		transporterID := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()

		p, err := parcel.RestoreParcel(
			id,
			parcel.TypeFragile,
			7,
			"10 Downing Street, London",
			parcel.StatusInTransit,
			&transporterID,
			"keep upright",
			nil,
			nil,
			createdAt,
			updatedAt,
		)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, parcel.StatusInTransit, p.Status())
		assert.True(t, p.BelongsTo(transporterID))
		assert.Equal(t, createdAt, p.CreatedAt())
		assert.Equal(t, updatedAt, p.UpdatedAt())
	})

	t.Run("rejects_invalid_persisted_status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(),
			parcel.TypeStandard,
			7,
			"10 Downing Street, London",
			parcel.Status(77),
			nil,
			"",
			nil,
			nil,
			time.Now(),
			time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
