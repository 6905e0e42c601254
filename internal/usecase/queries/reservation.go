package queries

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

type ReservationQueries interface {
	// GetByID enforces that only the renter, the vehicle owner, or an
	// admin may see a reservation.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem bypasses access checks for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationListItem, error)
	ListByVehicle(ctx context.Context, actorID uuid.UUID, actorRole string, vehicleID uuid.UUID) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationListItem, error)
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo        ReservationViewRepo
	vehicleRepo VehicleViewRepo
}

func NewReservationQueries(repo ReservationViewRepo, vehicleRepo VehicleViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, vehicleRepo: vehicleRepo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != "admin" && actorID != view.RenterID && actorID != view.OwnerID {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*ReservationListItem, error) {
	return q.repo.FindByRenter(ctx, renterID)
}

func (q *reservationQueriesImpl) ListByVehicle(ctx context.Context, actorID uuid.UUID, actorRole string, vehicleID uuid.UUID) ([]*ReservationListItem, error) {
	v, err := q.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	if actorRole != "admin" && v.OwnerID != actorID {
		return nil, ErrReservationAccess
	}
	return q.repo.FindByVehicle(ctx, vehicleID)
}
