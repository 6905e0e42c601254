package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(dbtx db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: dbtx}
}

const findIdempotencyByKeySQL = `
SELECT key, user_id, status, request_hash, result_reservation_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2`

func (s *IdempotencyReadStore) FindByKey(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		rec           shared.IdempotencyRecord
		reservationID pgtype.UUID
		expiresAt     pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, findIdempotencyByKeySQL, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &reservationID, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	rec.ResultReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
	rec.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &rec, nil
}
