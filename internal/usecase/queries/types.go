package queries

import (
	"time"

	"driveshare/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side). Dates travel as YYYY-MM-DD strings.

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	OwnerID     uuid.UUID `json:"owner_id"`
	RenterID    uuid.UUID `json:"renter_id"`
	RenterEmail string    `json:"renter_email"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicle_id"`
	VehicleName string    `json:"vehicle_name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type VehicleView struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DailyRateCents int32     `json:"daily_rate_cents"`
	Archived       bool      `json:"archived"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	RenterID      uuid.UUID `json:"renter_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Rating        int32     `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// UserCredentials is the login read model; the hash never leaves the
// usecase layer.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type BlockingSpanView struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Status        string    `json:"status"`
}

type AvailabilityView struct {
	VehicleID uuid.UUID          `json:"vehicle_id"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Available bool               `json:"available"`
	Conflicts []BlockingSpanView `json:"conflicts"`
}

type CalendarView struct {
	VehicleID uuid.UUID                    `json:"vehicle_id"`
	Month     string                       `json:"month"`
	Days      map[string]booking.DayCounts `json:"days"`
}
