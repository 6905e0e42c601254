package response

import (
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleID     uuid.UUID `json:"vehicleId"`
	RenterID      uuid.UUID `json:"renterId"`
	ReservationID uuid.UUID `json:"reservationId"`
	Rating        int32     `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            rm.ID,
		VehicleID:     rm.VehicleID,
		RenterID:      rm.RenterID,
		ReservationID: rm.ReservationID,
		Rating:        rm.Rating,
		Comment:       rm.Comment,
		CreatedAt:     rm.CreatedAt,
	}
}
