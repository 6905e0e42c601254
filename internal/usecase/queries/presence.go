package queries

import (
	"context"

	"github.com/google/uuid"
)

type PresenceView struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Viewers   int       `json:"viewers"`
}

type PresenceQueries interface {
	Viewers(ctx context.Context, vehicleID uuid.UUID) (*PresenceView, error)
}

type PresenceCounter interface {
	CountViewers(ctx context.Context, vehicleID uuid.UUID) (int, error)
}

type presenceQueriesImpl struct {
	counter PresenceCounter
}

func NewPresenceQueries(counter PresenceCounter) PresenceQueries {
	return &presenceQueriesImpl{counter: counter}
}

func (q *presenceQueriesImpl) Viewers(ctx context.Context, vehicleID uuid.UUID) (*PresenceView, error) {
	count, err := q.counter.CountViewers(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return &PresenceView{VehicleID: vehicleID, Viewers: count}, nil
}
