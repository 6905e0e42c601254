package shared

import (
	"context"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/domain/review"
	"driveshare/internal/domain/user"
	"driveshare/internal/domain/vehicle"
	"driveshare/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// Reads: command-side reads outside any explicit transaction.
	Reads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Vehicles() VehicleRepository
	Users() UserRepository
	Reviews() ReviewRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal snapshot reads the write path needs for
// validation. When obtained through Tx they observe the transaction's
// snapshot, which is what makes the availability check and the insert
// a single linearizable step.
type CommandReads interface {
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// BlockingReservations returns the pending/confirmed reservations for
	// the vehicle whose dates overlap the given range, ascending by start.
	BlockingReservations(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange) ([]BlockingReservation, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, db db.DBTX, res *booking.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status) error
}

type VehicleRepository interface {
	Create(ctx context.Context, db db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error)
	Update(ctx context.Context, db db.DBTX, v *vehicle.Vehicle) error
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, db db.DBTX, rv *review.Review) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key; it reports whether this call performed the
	// insert or an earlier request already holds it.
	TryInsert(ctx context.Context, db db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, db db.DBTX, key, userID uuid.UUID, resultReservationID uuid.UUID) error
}
