package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOwnVehicle        = errors.New("cannot book own vehicle")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

type Reservation struct {
	id         uuid.UUID
	vehicleID  uuid.UUID
	renterID   uuid.UUID
	dates      DateRange
	status     Status
	priceCents int64
	note       string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation builds a renter request in pending status. The owner of
// the vehicle may not reserve it for themselves.
func NewReservation(
	vehicleID, renterID, ownerID uuid.UUID,
	dates DateRange,
	dailyRateCents int32,
	note string,
) (*Reservation, error) {
	if dates.IsZero() {
		return nil, ErrInvalidDateRange
	}
	if renterID == ownerID {
		return nil, ErrOwnVehicle
	}

	price := int64(dailyRateCents) * int64(dates.Days())
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:         uuid.New(),
		vehicleID:  vehicleID,
		renterID:   renterID,
		dates:      dates,
		status:     StatusPending,
		priceCents: price,
		note:       note,
	}, nil
}

func ReconstructReservation(
	id, vehicleID, renterID uuid.UUID,
	dates DateRange,
	status Status,
	priceCents int64,
	note string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		vehicleID:  vehicleID,
		renterID:   renterID,
		dates:      dates,
		status:     status,
		priceCents: priceCents,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Approve confirms a pending request (owner action).
func (r *Reservation) Approve() error {
	return r.transitionTo(StatusConfirmed)
}

// Decline rejects a pending request (owner action).
func (r *Reservation) Decline() error {
	return r.transitionTo(StatusDeclined)
}

// Cancel withdraws a pending or confirmed reservation.
func (r *Reservation) Cancel() error {
	return r.transitionTo(StatusCancelled)
}

// Complete marks a confirmed reservation as checked out (owner action).
func (r *Reservation) Complete() error {
	return r.transitionTo(StatusCompleted)
}

func (r *Reservation) transitionTo(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) Blocks() bool {
	return r.status.Blocks()
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) VehicleID() uuid.UUID { return r.vehicleID }
func (r *Reservation) RenterID() uuid.UUID  { return r.renterID }
func (r *Reservation) Dates() DateRange     { return r.dates }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) PriceCents() int64    { return r.priceCents }
func (r *Reservation) Note() string         { return r.note }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
