//go:build unit || e2e

package builder

import (
	"time"

	reqdto "driveshare/internal/handler/dto/request"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	VehicleID   uuid.UUID
	VehicleName string
	OwnerID     uuid.UUID
	RenterID    uuid.UUID
	RenterEmail string
	StartDate   string
	EndDate     string
	Status      string
	PriceCents  int64
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:          uuid.New(),
		VehicleID:   uuid.New(),
		VehicleName: "Honda Civic",
		OwnerID:     uuid.New(),
		RenterID:    uuid.New(),
		RenterEmail: "renter@example.com",
		StartDate:   "2026-07-10",
		EndDate:     "2026-07-12",
		Status:      "pending",
		PriceCents:  15000,
		Note:        "airport run",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		VehicleID: b.VehicleID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Note:      b.Note,
	}
}

func (b *ReservationBuilder) BuildCreateResult() *commands.CreateReservationResult {
	return &commands.CreateReservationResult{ReservationID: b.ID}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	note := b.Note
	return &queries.ReservationView{
		ID:          b.ID,
		VehicleID:   b.VehicleID,
		VehicleName: b.VehicleName,
		OwnerID:     b.OwnerID,
		RenterID:    b.RenterID,
		RenterEmail: b.RenterEmail,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      b.Status,
		PriceCents:  b.PriceCents,
		Note:        &note,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:          b.ID,
		VehicleID:   b.VehicleID,
		VehicleName: b.VehicleName,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Status:      b.Status,
		PriceCents:  b.PriceCents,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ReservationBuilder) WithVehicleID(id uuid.UUID) *ReservationBuilder {
	b.VehicleID = id
	return b
}

func (b *ReservationBuilder) WithRenterID(id uuid.UUID) *ReservationBuilder {
	b.RenterID = id
	return b
}

func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}
