//go:build unit

package booking_test

import (
	"testing"

	"driveshare/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	vehicleID := uuid.New()
	renterID := uuid.New()
	ownerID := uuid.New()

	mustRange := func(start, end string) booking.DateRange {
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		return r
	}

	t.Run("basic success case", func(t *testing.T) {
		res, err := booking.NewReservation(vehicleID, renterID, ownerID,
			mustRange("2026-07-01", "2026-07-03"), 5000, "weekend trip")
		require.NoError(t, err)
		require.NotNil(t, res)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, vehicleID, res.VehicleID())
		assert.Equal(t, renterID, res.RenterID())
		assert.Equal(t, booking.StatusPending, res.Status())
		assert.Equal(t, "weekend trip", res.Note())
		assert.True(t, res.Blocks())
	})

	t.Run("price is daily rate times inclusive days", func(t *testing.T) {
		cases := []struct {
			name  string
			start string
			end   string
			rate  int32
			want  int64
		}{
			{name: "single day", start: "2026-07-01", end: "2026-07-01", rate: 5000, want: 5000},
			{name: "three days", start: "2026-07-01", end: "2026-07-03", rate: 5000, want: 15000},
			{name: "free vehicle", start: "2026-07-01", end: "2026-07-03", rate: 0, want: 0},
			{name: "full month", start: "2026-07-01", end: "2026-07-31", rate: 12500, want: 387500},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				res, err := booking.NewReservation(vehicleID, renterID, ownerID,
					mustRange(c.start, c.end), c.rate, "")
				require.NoError(t, err)
				assert.Equal(t, c.want, res.PriceCents())
			})
		}
	})

	t.Run("owner cannot reserve own vehicle", func(t *testing.T) {
		_, err := booking.NewReservation(vehicleID, ownerID, ownerID,
			mustRange("2026-07-01", "2026-07-03"), 5000, "")
		require.ErrorIs(t, err, booking.ErrOwnVehicle)
	})

	t.Run("zero date range rejected", func(t *testing.T) {
		_, err := booking.NewReservation(vehicleID, renterID, ownerID,
			booking.DateRange{}, 5000, "")
		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("each reservation gets a fresh ID", func(t *testing.T) {
		dates := mustRange("2026-07-01", "2026-07-03")
		r1, err := booking.NewReservation(vehicleID, renterID, ownerID, dates, 5000, "")
		require.NoError(t, err)
		r2, err := booking.NewReservation(vehicleID, renterID, ownerID, dates, 5000, "")
		require.NoError(t, err)
		assert.NotEqual(t, r1.ID(), r2.ID())
	})
}

func TestStatusTransitions(t *testing.T) {
	all := []booking.Status{
		booking.StatusPending,
		booking.StatusConfirmed,
		booking.StatusCompleted,
		booking.StatusCancelled,
		booking.StatusDeclined,
	}

	allowed := map[booking.Status][]booking.Status{
		booking.StatusPending:   {booking.StatusConfirmed, booking.StatusDeclined, booking.StatusCancelled},
		booking.StatusConfirmed: {booking.StatusCompleted, booking.StatusCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			t.Run(string(from)+" to "+string(to), func(t *testing.T) {
				assert.Equal(t, want, from.CanTransitionTo(to))
			})
		}
	}
}

func TestReservationLifecycle(t *testing.T) {
	newPending := func(t *testing.T) *booking.Reservation {
		t.Helper()
		dates, err := booking.NewDateRange("2026-07-01", "2026-07-03")
		require.NoError(t, err)
		res, err := booking.NewReservation(uuid.New(), uuid.New(), uuid.New(), dates, 5000, "")
		require.NoError(t, err)
		return res
	}

	t.Run("approve then complete", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Approve())
		assert.Equal(t, booking.StatusConfirmed, res.Status())
		assert.True(t, res.Blocks())

		require.NoError(t, res.Complete())
		assert.Equal(t, booking.StatusCompleted, res.Status())
		assert.False(t, res.Blocks())
	})

	t.Run("decline releases the dates", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Decline())
		assert.Equal(t, booking.StatusDeclined, res.Status())
		assert.False(t, res.Blocks())
	})

	t.Run("cancel from pending and confirmed", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Cancel())
		assert.Equal(t, booking.StatusCancelled, res.Status())

		res = newPending(t)
		require.NoError(t, res.Approve())
		require.NoError(t, res.Cancel())
		assert.Equal(t, booking.StatusCancelled, res.Status())
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Decline())

		assert.ErrorIs(t, res.Approve(), booking.ErrInvalidTransition)
		assert.ErrorIs(t, res.Cancel(), booking.ErrInvalidTransition)
		assert.ErrorIs(t, res.Complete(), booking.ErrInvalidTransition)
	})

	t.Run("complete requires confirmation first", func(t *testing.T) {
		res := newPending(t)
		assert.ErrorIs(t, res.Complete(), booking.ErrInvalidTransition)
	})
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled", "declined"} {
		status, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := booking.NewStatus("expired")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}
