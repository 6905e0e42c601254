package repository

import (
	"context"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (id, vehicle_id, renter_id, start_date, end_date, status, price_cents, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

// Create inserts the reservation. The reservations_no_overlap exclusion
// constraint is the backstop against concurrent overlapping writes; a
// violation surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.VehicleID(),
		res.RenterID(),
		pgconv.DateToPgtype(res.Dates().Start()),
		pgconv.DateToPgtype(res.Dates().End()),
		res.Status().String(),
		res.PriceCents(),
		pgconv.StringToPgtype(res.Note()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err, infra.KindFromPgError(err))
	}

	return id, nil
}

const updateReservationStatusSQL = `
UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
