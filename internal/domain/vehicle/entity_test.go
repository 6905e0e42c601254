//go:build unit

package vehicle_test

import (
	"strings"
	"testing"

	"driveshare/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	ownerID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		v, err := vehicle.NewVehicle(ownerID, "  Honda Civic  ", "  reliable commuter  ", 4500)
		require.NoError(t, err)
		require.NotNil(t, v)

		assert.NotEqual(t, uuid.Nil, v.ID())
		assert.Equal(t, ownerID, v.OwnerID())
		assert.Equal(t, "Honda Civic", v.Name())
		assert.Equal(t, "reliable commuter", v.Description())
		assert.Equal(t, int32(4500), v.DailyRateCents())
		assert.False(t, v.IsArchived())
	})

	t.Run("name validation", func(t *testing.T) {
		cases := []struct {
			name    string
			input   string
			wantErr error
		}{
			{name: "empty", input: "", wantErr: vehicle.ErrEmptyName},
			{name: "whitespace only", input: "   ", wantErr: vehicle.ErrEmptyName},
			{name: "max length ok", input: strings.Repeat("a", vehicle.MaxNameLength)},
			{name: "too long", input: strings.Repeat("a", vehicle.MaxNameLength+1), wantErr: vehicle.ErrEmptyName},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := vehicle.NewVehicle(ownerID, c.input, "", 100)
				if c.wantErr == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.wantErr)
				}
			})
		}
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		_, err := vehicle.NewVehicle(ownerID, "Civic", "", -1)
		require.ErrorIs(t, err, vehicle.ErrNegativeRate)
	})

	t.Run("zero rate allowed", func(t *testing.T) {
		v, err := vehicle.NewVehicle(ownerID, "Civic", "", 0)
		require.NoError(t, err)
		assert.Equal(t, int32(0), v.DailyRateCents())
	})
}

func TestVehicleMutations(t *testing.T) {
	newVehicle := func(t *testing.T) *vehicle.Vehicle {
		t.Helper()
		v, err := vehicle.NewVehicle(uuid.New(), "Civic", "old", 4500)
		require.NoError(t, err)
		return v
	}

	t.Run("rename trims and validates", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.Rename("  Accord  "))
		assert.Equal(t, "Accord", v.Name())

		assert.ErrorIs(t, v.Rename("   "), vehicle.ErrEmptyName)
		assert.Equal(t, "Accord", v.Name(), "failed rename must not change the name")
	})

	t.Run("set daily rate", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.SetDailyRate(6000))
		assert.Equal(t, int32(6000), v.DailyRateCents())

		assert.ErrorIs(t, v.SetDailyRate(-100), vehicle.ErrNegativeRate)
		assert.Equal(t, int32(6000), v.DailyRateCents())
	})

	t.Run("archive is one way", func(t *testing.T) {
		v := newVehicle(t)
		require.NoError(t, v.Archive())
		assert.True(t, v.IsArchived())

		assert.ErrorIs(t, v.Archive(), vehicle.ErrAlreadyArchived)
	})
}
