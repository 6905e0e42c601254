package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const listReviewsByVehicleSQL = `
SELECT rv.id, rv.vehicle_id, rv.renter_id, rv.reservation_id, rv.rating, rv.comment, rv.created_at
FROM reviews rv
WHERE rv.vehicle_id = $1
ORDER BY rv.created_at DESC, rv.id DESC`

func (s *ReviewReadStore) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, listReviewsByVehicleSQL, vehicleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var (
			view      queries.ReviewView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.VehicleID, &view.RenterID,
			&view.ReservationID, &view.Rating, &view.Comment, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}

	return result, nil
}
