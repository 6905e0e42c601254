package booking

import "time"

// DayCounts holds the per-day reservation counters shown on the owner
// calendar. Cancelled and declined reservations are not tracked.
type DayCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// CalendarEntry is a raw reservation row as read from storage. Dates stay
// strings here so a single malformed row degrades to a skipped entry
// instead of failing the whole aggregation.
type CalendarEntry struct {
	StartDate string
	EndDate   string
	Status    Status
}

// MonthOf returns the date range covering the calendar month containing t.
func MonthOf(t time.Time) DateRange {
	y, m, _ := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{start: first, end: first.AddDate(0, 1, -1)}
}

// AggregateMonth buckets per-day counts by status for the month containing
// anchor. Only days inside that month are counted; a reservation spanning a
// month boundary contributes only its in-month days. Pure and deterministic.
func AggregateMonth(entries []CalendarEntry, anchor time.Time) map[string]DayCounts {
	month := MonthOf(anchor)
	out := make(map[string]DayCounts)

	for _, e := range entries {
		switch e.Status {
		case StatusConfirmed, StatusPending, StatusCompleted:
		default:
			continue
		}

		rng, err := NewDateRange(e.StartDate, e.EndDate)
		if err != nil {
			continue
		}
		if !rng.Overlaps(month) {
			continue
		}

		for day := range rng.EachDay() {
			if day.Before(month.start) {
				continue
			}
			if day.After(month.end) {
				break
			}
			key := day.Format(DayFormat)
			counts := out[key]
			switch e.Status {
			case StatusConfirmed:
				counts.Confirmed++
			case StatusPending:
				counts.Pending++
			case StatusCompleted:
				counts.Completed++
			}
			out[key] = counts
		}
	}

	return out
}
