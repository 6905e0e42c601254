package queries

import (
	"context"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

// MonthFormat is the wire format for calendar month selectors.
const MonthFormat = "2006-01"

var ErrInvalidMonth = errs.New("invalid month")

type CalendarQueries interface {
	// GetMonth aggregates per-day status counts for a vehicle's calendar
	// month, e.g. month "2026-03".
	GetMonth(ctx context.Context, vehicleID uuid.UUID, month string) (*CalendarView, error)
}

type CalendarEntryRepo interface {
	FindEntriesForMonth(ctx context.Context, vehicleID uuid.UUID, month booking.DateRange) ([]booking.CalendarEntry, error)
}

type calendarQueriesImpl struct {
	repo        CalendarEntryRepo
	vehicleRepo VehicleViewRepo
}

func NewCalendarQueries(repo CalendarEntryRepo, vehicleRepo VehicleViewRepo) CalendarQueries {
	return &calendarQueriesImpl{repo: repo, vehicleRepo: vehicleRepo}
}

func (q *calendarQueriesImpl) GetMonth(ctx context.Context, vehicleID uuid.UUID, month string) (*CalendarView, error) {
	anchor, err := time.Parse(MonthFormat, month)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMonth)
	}

	if _, err := q.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	entries, err := q.repo.FindEntriesForMonth(ctx, vehicleID, booking.MonthOf(anchor))
	if err != nil {
		return nil, err
	}

	return &CalendarView{
		VehicleID: vehicleID,
		Month:     month,
		Days:      booking.AggregateMonth(entries, anchor),
	}, nil
}
