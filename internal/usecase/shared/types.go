package shared

import (
	"time"

	"driveshare/internal/domain/booking"

	"github.com/google/uuid"
)

type VehicleSnapshot struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Description    string
	DailyRateCents int32
	Archived       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	VehicleID  uuid.UUID
	RenterID   uuid.UUID
	OwnerID    uuid.UUID
	Dates      booking.DateRange
	Status     booking.Status
	PriceCents int64
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BlockingReservation identifies an existing reservation that occupies
// dates a caller asked about, so conflicts can be explained.
type BlockingReservation struct {
	ReservationID uuid.UUID
	Dates         booking.DateRange
	Status        booking.Status
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}
