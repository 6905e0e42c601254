package queries

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVehicleNotFound = errs.New("vehicle not found")

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListActive(ctx context.Context) ([]*VehicleView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
}

type VehicleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListActive(ctx context.Context) ([]*VehicleView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	repo VehicleViewRepo
}

func NewVehicleQueries(repo VehicleViewRepo) VehicleQueries {
	return &vehicleQueriesImpl{repo: repo}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *vehicleQueriesImpl) ListActive(ctx context.Context) ([]*VehicleView, error) {
	return q.repo.ListActive(ctx)
}

func (q *vehicleQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error) {
	return q.repo.ListByOwner(ctx, ownerID)
}
