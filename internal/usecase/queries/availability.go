package queries

import (
	"context"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidDates = errs.New("invalid date range")

type AvailabilityQueries interface {
	// Check reports whether the vehicle is free for every day in the
	// range, listing the blocking reservations when it is not.
	Check(ctx context.Context, vehicleID uuid.UUID, startDate, endDate string) (*AvailabilityView, error)
}

type BlockingSpanRepo interface {
	BlockingSpans(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange) ([]shared.BlockingReservation, error)
}

type availabilityQueriesImpl struct {
	repo        BlockingSpanRepo
	vehicleRepo VehicleViewRepo
}

func NewAvailabilityQueries(repo BlockingSpanRepo, vehicleRepo VehicleViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, vehicleRepo: vehicleRepo}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, vehicleID uuid.UUID, startDate, endDate string) (*AvailabilityView, error) {
	dates, err := booking.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}

	if _, err := q.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	blocking, err := q.repo.BlockingSpans(ctx, vehicleID, dates)
	if err != nil {
		return nil, err
	}

	conflicts := make([]BlockingSpanView, 0, len(blocking))
	for _, b := range blocking {
		conflicts = append(conflicts, BlockingSpanView{
			ReservationID: b.ReservationID,
			StartDate:     b.Dates.Start().Format(booking.DayFormat),
			EndDate:       b.Dates.End().Format(booking.DayFormat),
			Status:        string(b.Status),
		})
	}

	return &AvailabilityView{
		VehicleID: vehicleID,
		StartDate: dates.Start().Format(booking.DayFormat),
		EndDate:   dates.End().Format(booking.DayFormat),
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
