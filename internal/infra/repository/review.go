package repository

import (
	"context"

	"driveshare/internal/domain/review"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, vehicle_id, renter_id, reservation_id, rating, comment)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

// Create inserts the review. reviews.reservation_id is unique, so a second
// review for the same reservation comes back as KindDuplicateKey.
func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rv *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createReviewSQL,
		rv.ID(),
		rv.VehicleID(),
		rv.RenterID(),
		rv.ReservationID(),
		int32(rv.Rating().Value()),
		rv.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err, infra.KindFromPgError(err))
	}

	return id, nil
}
