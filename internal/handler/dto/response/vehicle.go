package response

import (
	"time"

	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"ownerId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DailyRateCents int32     `json:"dailyRateCents"`
	Archived       bool      `json:"archived"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	VehicleID uuid.UUID          `json:"vehicleId"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Available bool               `json:"available"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

type CalendarDayResponse struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type CalendarResponse struct {
	VehicleID uuid.UUID                      `json:"vehicleId"`
	Month     string                         `json:"month"`
	Days      map[string]CalendarDayResponse `json:"days"`
}

type PresenceResponse struct {
	VehicleID uuid.UUID `json:"vehicleId"`
	Viewers   int       `json:"viewers"`
}

func FromVehicleView(rm *queries.VehicleView) *VehicleResponse {
	return &VehicleResponse{
		ID:             rm.ID,
		OwnerID:        rm.OwnerID,
		Name:           rm.Name,
		Description:    rm.Description,
		DailyRateCents: rm.DailyRateCents,
		Archived:       rm.Archived,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, len(rm.Conflicts))
	for i, c := range rm.Conflicts {
		conflicts[i] = ConflictResponse{
			ReservationID: c.ReservationID,
			StartDate:     c.StartDate,
			EndDate:       c.EndDate,
			Status:        c.Status,
		}
	}
	return &AvailabilityResponse{
		VehicleID: rm.VehicleID,
		StartDate: rm.StartDate,
		EndDate:   rm.EndDate,
		Available: rm.Available,
		Conflicts: conflicts,
	}
}

func FromCalendarView(rm *queries.CalendarView) *CalendarResponse {
	days := make(map[string]CalendarDayResponse, len(rm.Days))
	for day, counts := range rm.Days {
		days[day] = CalendarDayResponse{
			Confirmed: counts.Confirmed,
			Pending:   counts.Pending,
			Completed: counts.Completed,
		}
	}
	return &CalendarResponse{
		VehicleID: rm.VehicleID,
		Month:     rm.Month,
		Days:      days,
	}
}

func FromPresenceView(rm *queries.PresenceView) *PresenceResponse {
	return &PresenceResponse{
		VehicleID: rm.VehicleID,
		Viewers:   rm.Viewers,
	}
}
