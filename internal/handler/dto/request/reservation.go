package request

import (
	"driveshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Note      string    `json:"note" binding:"max=500"`
}

func (r *CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		VehicleID: r.VehicleID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Note:      r.Note,
	}
}
