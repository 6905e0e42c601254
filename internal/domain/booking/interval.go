package booking

import (
	"errors"
	"iter"
	"time"
)

// DayFormat is the wire and storage format for calendar dates.
const DayFormat = "2006-01-02"

var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is a calendar-date span at day granularity, both endpoints
// occupied. A single-day booking has start == end. Dates are anchored at
// UTC midnight purely as a canonical representation; they are parsed from
// their year/month/day components and never pass through a local-epoch
// conversion, so the calendar day can't shift across timezones.
type DateRange struct {
	start time.Time
	end   time.Time
}

// ParseDay parses a strict YYYY-MM-DD string. Impossible dates such as
// 2024-02-30 are rejected.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateRange
	}
	return t, nil
}

func NewDateRange(startStr, endStr string) (DateRange, error) {
	start, err := ParseDay(startStr)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDay(endStr)
	if err != nil {
		return DateRange{}, err
	}
	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

// DateRangeFromTimes rebuilds a range from time values (e.g. DATE columns),
// discarding any time-of-day and zone information.
func DateRangeFromTimes(start, end time.Time) DateRange {
	return DateRange{start: truncateToDay(start), end: truncateToDay(end)}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) StartString() string { return r.start.Format(DayFormat) }
func (r DateRange) EndString() string   { return r.end.Format(DayFormat) }

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Days is the inclusive day count: start == end yields 1. Degenerate
// ranges are clamped to 0.
func (r DateRange) Days() int {
	if r.IsZero() || r.end.Before(r.start) {
		return 0
	}
	return int(r.end.Sub(r.start)/(24*time.Hour)) + 1
}

// Overlaps reports whether the two ranges share at least one calendar day.
// Both endpoints count as occupied, so two bookings touching on the same
// boundary day conflict (no same-day handoff).
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.start.After(o.end) && !o.start.After(r.end)
}

func (r DateRange) Contains(day time.Time) bool {
	day = truncateToDay(day)
	return !day.Before(r.start) && !day.After(r.end)
}

// EachDay yields every calendar day from start to end inclusive, ascending.
func (r DateRange) EachDay() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if r.IsZero() {
			return
		}
		for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}
