package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ReviewView, error)
}

type ReviewViewRepo interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.ListByVehicle(ctx, vehicleID)
}
