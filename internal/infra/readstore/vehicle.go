package readstore

import (
	"context"

	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

const findVehicleByIDSQL = `
SELECT id, owner_id, name, description, daily_rate_cents, archived, created_at, updated_at
FROM vehicles
WHERE id = $1`

func (s *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	view, err := scanVehicle(s.db.QueryRow(ctx, findVehicleByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return view, nil
}

// FindSnapshot is the command-side read; it honors the caller's
// transaction so stale vehicle state cannot slip past validation.
func (s *VehicleReadStore) FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	var (
		snap      shared.VehicleSnapshot
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, findVehicleByIDSQL, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Name, &snap.Description,
		&snap.DailyRateCents, &snap.Archived, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle snapshot", err)
	}
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

const listVehiclesSQL = `
SELECT id, owner_id, name, description, daily_rate_cents, archived, created_at, updated_at
FROM vehicles
WHERE archived = FALSE
ORDER BY created_at DESC, id DESC`

func (s *VehicleReadStore) ListActive(ctx context.Context) ([]*queries.VehicleView, error) {
	return s.list(ctx, listVehiclesSQL)
}

const listVehiclesByOwnerSQL = `
SELECT id, owner_id, name, description, daily_rate_cents, archived, created_at, updated_at
FROM vehicles
WHERE owner_id = $1
ORDER BY created_at DESC, id DESC`

func (s *VehicleReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.VehicleView, error) {
	return s.list(ctx, listVehiclesByOwnerSQL, ownerID)
}

func (s *VehicleReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.VehicleView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	var result []*queries.VehicleView
	for rows.Next() {
		view, err := scanVehicle(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vehicle rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*queries.VehicleView, error) {
	var (
		view      queries.VehicleView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &view.OwnerID, &view.Name, &view.Description,
		&view.DailyRateCents, &view.Archived, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
