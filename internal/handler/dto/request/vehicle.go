package request

import (
	"driveshare/internal/usecase/commands"
)

type CreateVehicleRequest struct {
	Name           string `json:"name" binding:"required,max=120"`
	Description    string `json:"description" binding:"max=2000"`
	DailyRateCents int32  `json:"daily_rate_cents" binding:"min=0"`
}

func (r *CreateVehicleRequest) ToCommand() commands.CreateVehicleRequest {
	return commands.CreateVehicleRequest{
		Name:           r.Name,
		Description:    r.Description,
		DailyRateCents: r.DailyRateCents,
	}
}

type UpdateVehicleRequest struct {
	Name           string `json:"name" binding:"required,max=120"`
	Description    string `json:"description" binding:"max=2000"`
	DailyRateCents int32  `json:"daily_rate_cents" binding:"min=0"`
}

func (r *UpdateVehicleRequest) ToCommand() commands.UpdateVehicleRequest {
	return commands.UpdateVehicleRequest{
		Name:           r.Name,
		Description:    r.Description,
		DailyRateCents: r.DailyRateCents,
	}
}
