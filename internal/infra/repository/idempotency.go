package repository

import (
	"context"
	"time"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

const tryInsertIdempotencySQL = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE
SET endpoint              = EXCLUDED.endpoint,
    request_hash          = EXCLUDED.request_hash,
    status                = 'processing',
    result_reservation_id = NULL,
    expires_at            = EXCLUDED.expires_at,
    updated_at            = now()
WHERE idempotency_keys.expires_at <= now()`

// TryInsert claims the key for this request. The bool result distinguishes
// "we claimed it" from "an earlier request already holds it". A row whose
// expires_at has passed no longer holds the key and is re-claimed in place.
func (r *IdempotencyRepository) TryInsert(
	ctx context.Context,
	dbtx db.DBTX,
	key, userID uuid.UUID,
	endpoint, requestHash string,
	expiresAt time.Time,
) (bool, error) {
	tag, err := dbtx.Exec(ctx, tryInsertIdempotencySQL,
		key, userID, endpoint, requestHash, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err, infra.KindFromPgError(err))
	}

	return tag.RowsAffected() > 0, nil
}

const completeIdempotencySQL = `
UPDATE idempotency_keys
SET status = 'completed', result_reservation_id = $3, updated_at = now()
WHERE key = $1 AND user_id = $2`

func (r *IdempotencyRepository) UpdateStatusCompleted(
	ctx context.Context,
	dbtx db.DBTX,
	key, userID uuid.UUID,
	resultReservationID uuid.UUID,
) error {
	tag, err := dbtx.Exec(ctx, completeIdempotencySQL, key, userID, resultReservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}

	return nil
}
