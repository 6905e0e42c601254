package response

import (
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicleId"`
	VehicleName string    `json:"vehicleName"`
	OwnerID     uuid.UUID `json:"ownerId"`
	RenterID    uuid.UUID `json:"renterId"`
	RenterEmail string    `json:"renterEmail"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	VehicleID   uuid.UUID `json:"vehicleId"`
	VehicleName string    `json:"vehicleName"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Status      string    `json:"status"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateReservationResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Replayed    bool                 `json:"replayed"`
}

type ConflictResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Status        string    `json:"status"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          rm.ID,
		VehicleID:   rm.VehicleID,
		VehicleName: rm.VehicleName,
		OwnerID:     rm.OwnerID,
		RenterID:    rm.RenterID,
		RenterEmail: rm.RenterEmail,
		StartDate:   rm.StartDate,
		EndDate:     rm.EndDate,
		Status:      rm.Status,
		PriceCents:  rm.PriceCents,
		Note:        rm.Note,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:          rm.ID,
		VehicleID:   rm.VehicleID,
		VehicleName: rm.VehicleName,
		StartDate:   rm.StartDate,
		EndDate:     rm.EndDate,
		Status:      rm.Status,
		PriceCents:  rm.PriceCents,
		CreatedAt:   rm.CreatedAt,
	}
}
