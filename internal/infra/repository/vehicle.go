package repository

import (
	"context"

	"driveshare/internal/domain/vehicle"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VehicleRepository struct{}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{}
}

const createVehicleSQL = `
INSERT INTO vehicles (id, owner_id, name, description, daily_rate_cents, archived)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *VehicleRepository) Create(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createVehicleSQL,
		v.ID(),
		v.OwnerID(),
		v.Name(),
		pgconv.StringToPgtype(v.Description()),
		v.DailyRateCents(),
		v.IsArchived(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create vehicle", err, infra.KindFromPgError(err))
	}

	return id, nil
}

const updateVehicleSQL = `
UPDATE vehicles
SET name = $2, description = $3, daily_rate_cents = $4, archived = $5, updated_at = now()
WHERE id = $1`

func (r *VehicleRepository) Update(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) error {
	tag, err := dbtx.Exec(ctx, updateVehicleSQL,
		v.ID(),
		v.Name(),
		pgconv.StringToPgtype(v.Description()),
		v.DailyRateCents(),
		v.IsArchived(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}

	return nil
}
