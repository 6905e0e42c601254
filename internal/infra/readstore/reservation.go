package readstore

import (
	"context"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/pgconv"
	"driveshare/internal/usecase/queries"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const findReservationByIDSQL = `
SELECT r.id, r.vehicle_id, v.name, v.owner_id, r.renter_id, u.email,
       r.start_date, r.end_date, r.status, r.price_cents, r.note,
       r.created_at, r.updated_at
FROM reservations r
JOIN vehicles v ON v.id = r.vehicle_id
JOIN users u ON u.id = r.renter_id
WHERE r.id = $1`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return s.findByID(ctx, s.db, id)
}

func (s *ReservationReadStore) findByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		startDate pgtype.Date
		endDate   pgtype.Date
		note      pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&view.ID, &view.VehicleID, &view.VehicleName, &view.OwnerID,
		&view.RenterID, &view.RenterEmail,
		&startDate, &endDate, &view.Status, &view.PriceCents, &note,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.StartDate = pgconv.DateFromPgtype(startDate).Format(booking.DayFormat)
	view.EndDate = pgconv.DateFromPgtype(endDate).Format(booking.DayFormat)
	view.Note = pgconv.StringPtrFromPgtype(note)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

// FindSnapshot loads the command-side snapshot, including the vehicle
// owner needed for authorization.
func (s *ReservationReadStore) FindSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	view, err := s.findByID(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}

	dates, err := booking.NewDateRange(view.StartDate, view.EndDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has malformed dates", err)
	}

	var note string
	if view.Note != nil {
		note = *view.Note
	}

	return &shared.ReservationSnapshot{
		ID:         view.ID,
		VehicleID:  view.VehicleID,
		RenterID:   view.RenterID,
		OwnerID:    view.OwnerID,
		Dates:      dates,
		Status:     booking.Status(view.Status),
		PriceCents: view.PriceCents,
		Note:       note,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}, nil
}

// Closed-closed overlap: two bookings touching on a boundary day conflict.
const findBlockingOverlappingSQL = `
SELECT id, start_date, end_date, status
FROM reservations
WHERE vehicle_id = $1
  AND status IN ('pending', 'confirmed')
  AND start_date <= $3
  AND end_date >= $2
ORDER BY start_date`

// FindBlockingOverlapping is the availability index query. Run against a
// transaction it observes that transaction's snapshot.
func (s *ReservationReadStore) FindBlockingOverlapping(
	ctx context.Context,
	dbtx db.DBTX,
	vehicleID uuid.UUID,
	dates booking.DateRange,
) ([]shared.BlockingReservation, error) {
	rows, err := dbtx.Query(ctx, findBlockingOverlappingSQL,
		vehicleID,
		pgconv.DateToPgtype(dates.Start()),
		pgconv.DateToPgtype(dates.End()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query blocking reservations", err)
	}
	defer rows.Close()

	var result []shared.BlockingReservation
	for rows.Next() {
		var (
			id        uuid.UUID
			startDate pgtype.Date
			endDate   pgtype.Date
			status    string
		)
		if err := rows.Scan(&id, &startDate, &endDate, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking reservation", err)
		}
		result = append(result, shared.BlockingReservation{
			ReservationID: id,
			Dates:         booking.DateRangeFromTimes(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate)),
			Status:        booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blocking reservations", err)
	}

	return result, nil
}

// BlockingSpans is the pool-bound variant used by the availability query.
func (s *ReservationReadStore) BlockingSpans(ctx context.Context, vehicleID uuid.UUID, dates booking.DateRange) ([]shared.BlockingReservation, error) {
	return s.FindBlockingOverlapping(ctx, s.db, vehicleID, dates)
}

const findReservationsByRenterSQL = `
SELECT r.id, r.vehicle_id, v.name, r.start_date, r.end_date, r.status, r.price_cents, r.created_at
FROM reservations r
JOIN vehicles v ON v.id = r.vehicle_id
WHERE r.renter_id = $1
ORDER BY r.created_at DESC, r.id DESC`

func (s *ReservationReadStore) FindByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.ReservationListItem, error) {
	return s.list(ctx, findReservationsByRenterSQL, renterID)
}

const findReservationsByVehicleSQL = `
SELECT r.id, r.vehicle_id, v.name, r.start_date, r.end_date, r.status, r.price_cents, r.created_at
FROM reservations r
JOIN vehicles v ON v.id = r.vehicle_id
WHERE r.vehicle_id = $1
ORDER BY r.start_date, r.id`

func (s *ReservationReadStore) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*queries.ReservationListItem, error) {
	return s.list(ctx, findReservationsByVehicleSQL, vehicleID)
}

func (s *ReservationReadStore) list(ctx context.Context, sql string, arg any) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item      queries.ReservationListItem
			startDate pgtype.Date
			endDate   pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.VehicleID, &item.VehicleName,
			&startDate, &endDate, &item.Status, &item.PriceCents, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(startDate).Format(booking.DayFormat)
		item.EndDate = pgconv.DateFromPgtype(endDate).Format(booking.DayFormat)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

const findEntriesForMonthSQL = `
SELECT start_date, end_date, status
FROM reservations
WHERE vehicle_id = $1
  AND start_date <= $3
  AND end_date >= $2`

// FindEntriesForMonth loads the raw calendar rows intersecting the month.
// Dates come back as strings; the aggregator skips anything malformed.
func (s *ReservationReadStore) FindEntriesForMonth(
	ctx context.Context,
	vehicleID uuid.UUID,
	month booking.DateRange,
) ([]booking.CalendarEntry, error) {
	rows, err := s.db.Query(ctx, findEntriesForMonthSQL,
		vehicleID,
		pgconv.DateToPgtype(month.Start()),
		pgconv.DateToPgtype(month.End()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query calendar entries", err)
	}
	defer rows.Close()

	var result []booking.CalendarEntry
	for rows.Next() {
		var (
			startDate pgtype.Date
			endDate   pgtype.Date
			status    string
		)
		if err := rows.Scan(&startDate, &endDate, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar entry", err)
		}
		result = append(result, booking.CalendarEntry{
			StartDate: pgconv.DateFromPgtype(startDate).Format(booking.DayFormat),
			EndDate:   pgconv.DateFromPgtype(endDate).Format(booking.DayFormat),
			Status:    booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read calendar entries", err)
	}

	return result, nil
}
