//go:build unit

package booking_test

import (
	"testing"
	"time"

	"driveshare/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMonthOf(t *testing.T) {
	cases := []struct {
		name      string
		anchor    time.Time
		wantStart string
		wantEnd   string
		wantDays  int
	}{
		{
			name:      "mid month",
			anchor:    time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC),
			wantStart: "2026-07-01",
			wantEnd:   "2026-07-31",
			wantDays:  31,
		},
		{
			name:      "february in leap year",
			anchor:    time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC),
			wantStart: "2028-02-01",
			wantEnd:   "2028-02-29",
			wantDays:  29,
		},
		{
			name:      "february in common year",
			anchor:    time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
			wantStart: "2026-02-01",
			wantEnd:   "2026-02-28",
			wantDays:  28,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			month := booking.MonthOf(c.anchor)
			assert.Equal(t, c.wantStart, month.StartString())
			assert.Equal(t, c.wantEnd, month.EndString())
			assert.Equal(t, c.wantDays, month.Days())
		})
	}
}

func TestAggregateMonth(t *testing.T) {
	anchor := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("buckets per day by status", func(t *testing.T) {
		entries := []booking.CalendarEntry{
			{StartDate: "2026-07-01", EndDate: "2026-07-02", Status: booking.StatusConfirmed},
			{StartDate: "2026-07-02", EndDate: "2026-07-03", Status: booking.StatusPending},
			{StartDate: "2026-07-03", EndDate: "2026-07-03", Status: booking.StatusCompleted},
		}

		got := booking.AggregateMonth(entries, anchor)
		want := map[string]booking.DayCounts{
			"2026-07-01": {Confirmed: 1},
			"2026-07-02": {Confirmed: 1, Pending: 1},
			"2026-07-03": {Pending: 1, Completed: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("aggregate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("clips spans at month boundaries", func(t *testing.T) {
		entries := []booking.CalendarEntry{
			{StartDate: "2026-06-29", EndDate: "2026-07-02", Status: booking.StatusConfirmed},
			{StartDate: "2026-07-30", EndDate: "2026-08-03", Status: booking.StatusPending},
		}

		got := booking.AggregateMonth(entries, anchor)
		want := map[string]booking.DayCounts{
			"2026-07-01": {Confirmed: 1},
			"2026-07-02": {Confirmed: 1},
			"2026-07-30": {Pending: 1},
			"2026-07-31": {Pending: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("aggregate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ignores non-tracked statuses", func(t *testing.T) {
		entries := []booking.CalendarEntry{
			{StartDate: "2026-07-01", EndDate: "2026-07-05", Status: booking.StatusCancelled},
			{StartDate: "2026-07-01", EndDate: "2026-07-05", Status: booking.StatusDeclined},
		}
		assert.Empty(t, booking.AggregateMonth(entries, anchor))
	})

	t.Run("skips malformed rows instead of failing", func(t *testing.T) {
		entries := []booking.CalendarEntry{
			{StartDate: "2026-02-30", EndDate: "2026-07-02", Status: booking.StatusConfirmed},
			{StartDate: "2026-07-10", EndDate: "2026-07-10", Status: booking.StatusConfirmed},
		}

		got := booking.AggregateMonth(entries, anchor)
		want := map[string]booking.DayCounts{
			"2026-07-10": {Confirmed: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("aggregate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reservation entirely outside the month", func(t *testing.T) {
		entries := []booking.CalendarEntry{
			{StartDate: "2026-06-01", EndDate: "2026-06-05", Status: booking.StatusConfirmed},
		}
		assert.Empty(t, booking.AggregateMonth(entries, anchor))
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		got := booking.AggregateMonth(nil, anchor)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
