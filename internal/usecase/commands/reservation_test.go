//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"maps"
	"testing"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/infra/db"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/usecase/commands"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUoW drives the command layer against in-memory state. Within
// snapshots the mutable stores and restores them when the closure fails,
// mirroring a rolled-back transaction.
type fakeUoW struct {
	vehicles     map[uuid.UUID]*shared.VehicleSnapshot
	reservations map[uuid.UUID]*shared.ReservationSnapshot
	blocking     []shared.BlockingReservation
	idem         map[string]*shared.IdempotencyRecord
	now          time.Time // drives idempotency expiry, mirrors the mock clock

	insertConflict bool // next reservation insert hits the exclusion constraint
	inserted       []uuid.UUID
	statusUpdates  map[uuid.UUID]booking.Status
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		vehicles:      make(map[uuid.UUID]*shared.VehicleSnapshot),
		reservations:  make(map[uuid.UUID]*shared.ReservationSnapshot),
		idem:          make(map[string]*shared.IdempotencyRecord),
		statusUpdates: make(map[uuid.UUID]booking.Status),
	}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	idemBefore := maps.Clone(f.idem)
	insertedBefore := len(f.inserted)

	if err := fn(ctx, &fakeTx{uow: f}); err != nil {
		f.idem = idemBefore
		f.inserted = f.inserted[:insertedBefore]
		return err
	}
	return nil
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) Reads() shared.CommandReads {
	return &fakeReads{uow: f}
}

type fakeTx struct {
	uow *fakeUoW
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservationRepo{uow: t.uow} }
func (t *fakeTx) Vehicles() shared.VehicleRepository         { return nil }
func (t *fakeTx) Users() shared.UserRepository               { return nil }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return nil }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository  { return &fakeIdemRepo{uow: t.uow} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{uow: t.uow} }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeReads struct {
	uow *fakeUoW
}

func (r *fakeReads) VehicleByID(_ context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	v, ok := r.uow.vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return v, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	res, ok := r.uow.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r *fakeReads) BlockingReservations(_ context.Context, _ uuid.UUID, dates booking.DateRange) ([]shared.BlockingReservation, error) {
	var out []shared.BlockingReservation
	for _, b := range r.uow.blocking {
		if b.Dates.Overlaps(dates) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.uow.idem[key.String()+"/"+userID.String()]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency record not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

type fakeReservationRepo struct {
	uow *fakeUoW
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	if r.uow.insertConflict {
		return uuid.Nil, infra.WrapRepoErr("insert rejected", nil, infra.KindConflict)
	}
	r.uow.inserted = append(r.uow.inserted, res.ID())
	return res.ID(), nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	r.uow.statusUpdates[id] = status
	return nil
}

type fakeIdemRepo struct {
	uow *fakeUoW
}

func (r *fakeIdemRepo) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, _ string, requestHash string, expiresAt time.Time) (bool, error) {
	k := key.String() + "/" + userID.String()
	if rec, exists := r.uow.idem[k]; exists && rec.ExpiresAt.After(r.uow.now) {
		return false, nil
	}
	r.uow.idem[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      "processing",
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *fakeIdemRepo) UpdateStatusCompleted(_ context.Context, _ db.DBTX, key, userID uuid.UUID, resultReservationID uuid.UUID) error {
	k := key.String() + "/" + userID.String()
	rec, ok := r.uow.idem[k]
	if !ok {
		return infra.WrapRepoErr("idempotency record not found", nil, infra.KindNotFound)
	}
	rec.Status = "completed"
	id := resultReservationID
	rec.ResultReservationID = &id
	return nil
}

func requestHashOf(t *testing.T, req commands.CreateReservationRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func mustRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	r, err := booking.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

type createFixture struct {
	uow      *fakeUoW
	clk      *clock.MockClock
	cmds     commands.ReservationCommands
	vehicle  *shared.VehicleSnapshot
	renterID uuid.UUID
}

// advance moves both the use case clock and the store's notion of now.
func (f *createFixture) advance(d time.Duration) {
	f.clk.Add(d)
	f.uow.now = f.clk.Now()
}

func newCreateFixture(t *testing.T) *createFixture {
	t.Helper()

	uow := newFakeUoW()
	v := &shared.VehicleSnapshot{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           "Honda Civic",
		DailyRateCents: 5000,
	}
	uow.vehicles[v.ID] = v

	clk := clock.NewMockClock(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	uow.now = clk.Now()
	return &createFixture{
		uow:      uow,
		clk:      clk,
		cmds:     commands.NewReservationUseCase(uow, clk),
		vehicle:  v,
		renterID: uuid.New(),
	}
}

func (f *createFixture) request() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		VehicleID: f.vehicle.ID,
		StartDate: "2026-07-10",
		EndDate:   "2026-07-12",
		Note:      "airport run",
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates pending reservation and completes the key", func(t *testing.T) {
		f := newCreateFixture(t)
		key := uuid.New()

		result, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.IsReplayed)
		assert.NotEqual(t, uuid.Nil, result.ReservationID)

		require.Len(t, f.uow.inserted, 1)
		assert.Equal(t, result.ReservationID, f.uow.inserted[0])

		rec := f.uow.idem[key.String()+"/"+f.renterID.String()]
		require.NotNil(t, rec)
		assert.Equal(t, "completed", rec.Status)
		require.NotNil(t, rec.ResultReservationID)
		assert.Equal(t, result.ReservationID, *rec.ResultReservationID)
	})

	t.Run("conflicting dates return the winning reservations", func(t *testing.T) {
		f := newCreateFixture(t)
		winner := shared.BlockingReservation{
			ReservationID: uuid.New(),
			Dates:         mustRange(t, "2026-07-11", "2026-07-14"),
			Status:        booking.StatusConfirmed,
		}
		f.uow.blocking = []shared.BlockingReservation{winner}

		_, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, uuid.New())
		require.ErrorIs(t, err, commands.ErrDatesUnavailable)

		var unavailable *commands.DatesUnavailableError
		require.ErrorAs(t, err, &unavailable)
		require.Len(t, unavailable.Conflicts, 1)
		assert.Equal(t, winner.ReservationID, unavailable.Conflicts[0].ReservationID)

		assert.Empty(t, f.uow.inserted, "no reservation may be written on conflict")
	})

	t.Run("boundary day touch is a conflict", func(t *testing.T) {
		f := newCreateFixture(t)
		f.uow.blocking = []shared.BlockingReservation{{
			ReservationID: uuid.New(),
			Dates:         mustRange(t, "2026-07-12", "2026-07-15"),
			Status:        booking.StatusPending,
		}}

		req := f.request() // ends 2026-07-12, same day the blocker starts
		_, err := f.cmds.CreateReservation(ctx, req, f.renterID, uuid.New())
		require.ErrorIs(t, err, commands.ErrDatesUnavailable)
	})

	t.Run("rejected key leaves no record so the request can be retried", func(t *testing.T) {
		f := newCreateFixture(t)
		f.uow.blocking = []shared.BlockingReservation{{
			ReservationID: uuid.New(),
			Dates:         mustRange(t, "2026-07-10", "2026-07-12"),
			Status:        booking.StatusPending,
		}}
		key := uuid.New()

		_, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.ErrorIs(t, err, commands.ErrDatesUnavailable)

		// The blocker cancels; the same key must now go through cleanly.
		f.uow.blocking = nil
		result, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.NoError(t, err)
		assert.False(t, result.IsReplayed)
	})

	t.Run("lost insert race is explained from a fresh read", func(t *testing.T) {
		f := newCreateFixture(t)
		f.uow.insertConflict = true
		winner := shared.BlockingReservation{
			ReservationID: uuid.New(),
			Dates:         mustRange(t, "2026-07-10", "2026-07-12"),
			Status:        booking.StatusPending,
		}

		// The pre-check sees no conflicts inside the transaction; the
		// winner only becomes visible to the post-abort re-read.
		f.uow.blocking = nil
		race := &raceUoW{fakeUoW: f.uow, revealOnPoolRead: []shared.BlockingReservation{winner}}
		cmds := commands.NewReservationUseCase(race, clock.NewMockClock(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)))

		_, err := cmds.CreateReservation(ctx, f.request(), f.renterID, uuid.New())
		require.ErrorIs(t, err, commands.ErrDatesUnavailable)

		var unavailable *commands.DatesUnavailableError
		require.ErrorAs(t, err, &unavailable)
		require.Len(t, unavailable.Conflicts, 1)
		assert.Equal(t, winner.ReservationID, unavailable.Conflicts[0].ReservationID)
	})

	t.Run("lost race with no visible winner still reports unavailable", func(t *testing.T) {
		f := newCreateFixture(t)
		f.uow.insertConflict = true

		_, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, uuid.New())
		require.ErrorIs(t, err, commands.ErrDatesUnavailable)

		var unavailable *commands.DatesUnavailableError
		assert.False(t, errors.As(err, &unavailable), "no conflict detail without a visible winner")
	})

	t.Run("replay returns the original reservation", func(t *testing.T) {
		f := newCreateFixture(t)
		key := uuid.New()

		first, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.NoError(t, err)

		second, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.NoError(t, err)
		assert.True(t, second.IsReplayed)
		assert.Equal(t, first.ReservationID, second.ReservationID)

		assert.Len(t, f.uow.inserted, 1, "replay must not insert again")
	})

	t.Run("expired key is claimed by a fresh request", func(t *testing.T) {
		f := newCreateFixture(t)
		key := uuid.New()

		first, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.NoError(t, err)

		f.advance(25 * time.Hour)

		second, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.NoError(t, err)
		assert.False(t, second.IsReplayed, "an expired record must not replay")
		assert.NotEqual(t, first.ReservationID, second.ReservationID)

		assert.Len(t, f.uow.inserted, 2)
		rec := f.uow.idem[key.String()+"/"+f.renterID.String()]
		require.NotNil(t, rec)
		assert.Equal(t, "completed", rec.Status)
		require.NotNil(t, rec.ResultReservationID)
		assert.Equal(t, second.ReservationID, *rec.ResultReservationID)
	})

	t.Run("key reuse with different body is rejected", func(t *testing.T) {
		f := newCreateFixture(t)
		key := uuid.New()

		_, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, key)
		require.NoError(t, err)

		other := f.request()
		other.EndDate = "2026-07-20"
		_, err = f.cmds.CreateReservation(ctx, other, f.renterID, key)
		require.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)
	})

	t.Run("key still processing is rejected", func(t *testing.T) {
		f := newCreateFixture(t)
		key := uuid.New()
		req := f.request()
		f.uow.idem[key.String()+"/"+f.renterID.String()] = &shared.IdempotencyRecord{
			Key:         key,
			UserID:      f.renterID,
			Status:      "processing",
			RequestHash: requestHashOf(t, req),
			ExpiresAt:   f.clk.Now().Add(24 * time.Hour),
		}

		_, err := f.cmds.CreateReservation(ctx, req, f.renterID, key)
		require.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("validation failures", func(t *testing.T) {
		f := newCreateFixture(t)

		t.Run("unknown vehicle", func(t *testing.T) {
			req := f.request()
			req.VehicleID = uuid.New()
			_, err := f.cmds.CreateReservation(ctx, req, f.renterID, uuid.New())
			require.ErrorIs(t, err, commands.ErrVehicleNotFound)
		})

		t.Run("archived vehicle", func(t *testing.T) {
			f := newCreateFixture(t)
			f.vehicle.Archived = true
			_, err := f.cmds.CreateReservation(ctx, f.request(), f.renterID, uuid.New())
			require.ErrorIs(t, err, commands.ErrVehicleArchived)
		})

		t.Run("own vehicle", func(t *testing.T) {
			_, err := f.cmds.CreateReservation(ctx, f.request(), f.vehicle.OwnerID, uuid.New())
			require.ErrorIs(t, err, commands.ErrOwnVehicle)
		})

		t.Run("end before start", func(t *testing.T) {
			req := f.request()
			req.StartDate, req.EndDate = req.EndDate, req.StartDate
			_, err := f.cmds.CreateReservation(ctx, req, f.renterID, uuid.New())
			require.ErrorIs(t, err, commands.ErrInvalidDates)
		})

		t.Run("malformed date", func(t *testing.T) {
			req := f.request()
			req.StartDate = "2026-02-30"
			_, err := f.cmds.CreateReservation(ctx, req, f.renterID, uuid.New())
			require.ErrorIs(t, err, commands.ErrInvalidDates)
		})
	})
}

// raceUoW hides conflicts from in-transaction reads but reveals them on
// pool reads, reproducing a concurrent writer that commits between the
// availability check and the insert.
type raceUoW struct {
	*fakeUoW
	revealOnPoolRead []shared.BlockingReservation
}

func (r *raceUoW) Reads() shared.CommandReads {
	revealed := newFakeUoW()
	revealed.blocking = r.revealOnPoolRead
	return &fakeReads{uow: revealed}
}

func TestReservationTransitions(t *testing.T) {
	ctx := context.Background()

	ownerID := uuid.New()
	renterID := uuid.New()
	adminID := uuid.New()

	seed := func(t *testing.T, status booking.Status) (*fakeUoW, commands.ReservationCommands, uuid.UUID) {
		t.Helper()
		uow := newFakeUoW()
		id := uuid.New()
		uow.reservations[id] = &shared.ReservationSnapshot{
			ID:         id,
			VehicleID:  uuid.New(),
			RenterID:   renterID,
			OwnerID:    ownerID,
			Dates:      mustRange(t, "2026-07-10", "2026-07-12"),
			Status:     status,
			PriceCents: 15000,
		}
		cmds := commands.NewReservationUseCase(uow, clock.NewRealClock())
		return uow, cmds, id
	}

	t.Run("owner approves pending", func(t *testing.T) {
		uow, cmds, id := seed(t, booking.StatusPending)
		require.NoError(t, cmds.Approve(ctx, id, ownerID, "owner"))
		assert.Equal(t, booking.StatusConfirmed, uow.statusUpdates[id])
	})

	t.Run("renter cannot approve", func(t *testing.T) {
		_, cmds, id := seed(t, booking.StatusPending)
		require.ErrorIs(t, cmds.Approve(ctx, id, renterID, "renter"), commands.ErrNotAllowed)
	})

	t.Run("admin can approve any reservation", func(t *testing.T) {
		uow, cmds, id := seed(t, booking.StatusPending)
		require.NoError(t, cmds.Approve(ctx, id, adminID, "admin"))
		assert.Equal(t, booking.StatusConfirmed, uow.statusUpdates[id])
	})

	t.Run("owner declines pending", func(t *testing.T) {
		uow, cmds, id := seed(t, booking.StatusPending)
		require.NoError(t, cmds.Decline(ctx, id, ownerID, "owner"))
		assert.Equal(t, booking.StatusDeclined, uow.statusUpdates[id])
	})

	t.Run("renter cancels own reservation", func(t *testing.T) {
		uow, cmds, id := seed(t, booking.StatusPending)
		require.NoError(t, cmds.Cancel(ctx, id, renterID, "renter"))
		assert.Equal(t, booking.StatusCancelled, uow.statusUpdates[id])
	})

	t.Run("owner cancels confirmed reservation", func(t *testing.T) {
		uow, cmds, id := seed(t, booking.StatusConfirmed)
		require.NoError(t, cmds.Cancel(ctx, id, ownerID, "owner"))
		assert.Equal(t, booking.StatusCancelled, uow.statusUpdates[id])
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		_, cmds, id := seed(t, booking.StatusPending)
		require.ErrorIs(t, cmds.Cancel(ctx, id, uuid.New(), "renter"), commands.ErrNotAllowed)
	})

	t.Run("owner completes confirmed", func(t *testing.T) {
		uow, cmds, id := seed(t, booking.StatusConfirmed)
		require.NoError(t, cmds.Complete(ctx, id, ownerID, "owner"))
		assert.Equal(t, booking.StatusCompleted, uow.statusUpdates[id])
	})

	t.Run("complete before approval is invalid", func(t *testing.T) {
		_, cmds, id := seed(t, booking.StatusPending)
		require.ErrorIs(t, cmds.Complete(ctx, id, ownerID, "owner"), commands.ErrInvalidTransition)
	})

	t.Run("approve on terminal status is invalid", func(t *testing.T) {
		_, cmds, id := seed(t, booking.StatusCancelled)
		require.ErrorIs(t, cmds.Approve(ctx, id, ownerID, "owner"), commands.ErrInvalidTransition)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, cmds, _ := seed(t, booking.StatusPending)
		require.ErrorIs(t, cmds.Approve(ctx, uuid.New(), ownerID, "owner"), commands.ErrReservationNotFound)
	})
}
