package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("vehicle name cannot be empty")
	ErrNegativeRate    = errors.New("daily rate cannot be negative")
	ErrAlreadyArchived = errors.New("vehicle is already archived")
)

const MaxNameLength = 120

type Vehicle struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	name           string
	description    string
	dailyRateCents int32
	archived       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewVehicle(ownerID uuid.UUID, name, description string, dailyRateCents int32) (*Vehicle, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrEmptyName
	}
	if dailyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Vehicle{
		id:             uuid.New(),
		ownerID:        ownerID,
		name:           name,
		description:    strings.TrimSpace(description),
		dailyRateCents: dailyRateCents,
	}, nil
}

func ReconstructVehicle(
	id, ownerID uuid.UUID,
	name, description string,
	dailyRateCents int32,
	archived bool,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:             id,
		ownerID:        ownerID,
		name:           name,
		description:    description,
		dailyRateCents: dailyRateCents,
		archived:       archived,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (v *Vehicle) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return ErrEmptyName
	}
	v.name = name
	return nil
}

func (v *Vehicle) SetDescription(description string) {
	v.description = strings.TrimSpace(description)
}

func (v *Vehicle) SetDailyRate(cents int32) error {
	if cents < 0 {
		return ErrNegativeRate
	}
	v.dailyRateCents = cents
	return nil
}

// Archive hides the vehicle from new bookings. Existing reservations are
// untouched.
func (v *Vehicle) Archive() error {
	if v.archived {
		return ErrAlreadyArchived
	}
	v.archived = true
	return nil
}

func (v *Vehicle) ID() uuid.UUID         { return v.id }
func (v *Vehicle) OwnerID() uuid.UUID    { return v.ownerID }
func (v *Vehicle) Name() string          { return v.name }
func (v *Vehicle) Description() string   { return v.description }
func (v *Vehicle) DailyRateCents() int32 { return v.dailyRateCents }
func (v *Vehicle) IsArchived() bool      { return v.archived }
func (v *Vehicle) CreatedAt() time.Time  { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time  { return v.updatedAt }
