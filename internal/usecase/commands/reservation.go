package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"driveshare/internal/domain/booking"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/clock"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound       = errs.New("vehicle not found")
	ErrVehicleArchived       = errs.New("vehicle is archived")
	ErrInvalidDates          = errs.New("invalid date range")
	ErrOwnVehicle            = errs.New("cannot reserve own vehicle")
	ErrDatesUnavailable      = errs.New("requested dates are unavailable")
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrNotAllowed            = errs.New("actor not allowed to perform this action")
	ErrInvalidTransition     = errs.New("invalid status transition")
	ErrIdempotencyInProgress = errs.New("request with this idempotency key is in progress")
	ErrIdempotencyKeyReused  = errs.New("idempotency key reused with a different request")
	ErrStorageFailure        = errs.New("storage operation failed")
)

// errLostInsertRace signals that the exclusion constraint rejected the
// insert after the in-transaction availability check passed. The
// transaction is aborted at that point, so the conflict explanation is
// re-read outside of it.
var errLostInsertRace = errs.New("lost reservation insert race")

// DatesUnavailableError carries the reservations that occupy the
// requested dates so callers can show which bookings won.
type DatesUnavailableError struct {
	Conflicts []shared.BlockingReservation
}

func (e *DatesUnavailableError) Error() string {
	spans := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		spans = append(spans, fmt.Sprintf("%s..%s (%s)",
			c.Dates.Start().Format(booking.DayFormat),
			c.Dates.End().Format(booking.DayFormat),
			c.Status))
	}
	return "requested dates are unavailable: " + strings.Join(spans, ", ")
}

func (e *DatesUnavailableError) Is(target error) bool {
	return target == ErrDatesUnavailable
}

type CreateReservationRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Note      string    `json:"note"`
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
	IsReplayed    bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest, renterID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	Approve(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error
	Decline(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error
	Cancel(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error
	Complete(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req CreateReservationRequest,
	renterID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	dates, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDates)
	}

	requestHash := calculateRequestHash(req)
	expiresAt := uc.clock.Now().Add(24 * time.Hour)

	var result CreateReservationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, terr := tx.Idempotency().TryInsert(ctx, tx.DB(),
			idempotencyKey, renterID, "POST /reservations", requestHash, expiresAt)
		if terr != nil {
			return errs.Mark(terr, ErrStorageFailure)
		}
		if !inserted {
			replayed, terr := uc.resolveReplay(ctx, tx, idempotencyKey, renterID, requestHash)
			if terr != nil {
				return terr
			}
			result = *replayed
			return nil
		}

		vehicle, terr := tx.Reads().VehicleByID(ctx, req.VehicleID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(terr, ErrStorageFailure)
		}
		if vehicle.Archived {
			return ErrVehicleArchived
		}

		// The availability check and the insert below observe the same
		// transaction snapshot.
		conflicts, terr := tx.Reads().BlockingReservations(ctx, req.VehicleID, dates)
		if terr != nil {
			return errs.Mark(terr, ErrStorageFailure)
		}
		if len(conflicts) > 0 {
			return &DatesUnavailableError{Conflicts: conflicts}
		}

		res, terr := booking.NewReservation(req.VehicleID, renterID, vehicle.OwnerID, dates, vehicle.DailyRateCents, req.Note)
		if terr != nil {
			if errors.Is(terr, booking.ErrOwnVehicle) {
				return ErrOwnVehicle
			}
			return errs.Mark(terr, ErrInvalidDates)
		}

		id, terr := tx.Reservations().Create(ctx, tx.DB(), res)
		if terr != nil {
			if infra.IsKind(terr, infra.KindConflict) {
				return errLostInsertRace
			}
			return errs.Mark(terr, ErrStorageFailure)
		}

		if terr := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, renterID, id); terr != nil {
			return errs.Mark(terr, ErrStorageFailure)
		}

		result = CreateReservationResult{ReservationID: id}
		return nil
	})
	if err != nil {
		if errors.Is(err, errLostInsertRace) {
			return nil, uc.explainLostRace(ctx, req.VehicleID, dates)
		}
		return nil, err
	}

	return &result, nil
}

// resolveReplay handles a second request with an already-claimed key.
func (uc *reservationUseCaseImpl) resolveReplay(
	ctx context.Context,
	tx shared.Tx,
	idempotencyKey, renterID uuid.UUID,
	requestHash string,
) (*CreateReservationResult, error) {
	record, err := tx.Reads().IdempotencyByKey(ctx, idempotencyKey, renterID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if record.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch record.Status {
	case "completed":
		if record.ResultReservationID == nil {
			return nil, errs.New("completed idempotency record missing reservation ID")
		}
		return &CreateReservationResult{
			ReservationID: *record.ResultReservationID,
			IsReplayed:    true,
		}, nil
	case "processing":
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency record status")
	}
}

// explainLostRace reports which reservations won after the exclusion
// constraint rejected our insert. It runs outside the failed
// transaction on the pool.
func (uc *reservationUseCaseImpl) explainLostRace(
	ctx context.Context,
	vehicleID uuid.UUID,
	dates booking.DateRange,
) error {
	conflicts, err := uc.uow.Reads().BlockingReservations(ctx, vehicleID, dates)
	if err != nil || len(conflicts) == 0 {
		// The winner may already be cancelled again; still report the
		// rejection rather than a storage failure.
		return ErrDatesUnavailable
	}
	return &DatesUnavailableError{Conflicts: conflicts}
}

func (uc *reservationUseCaseImpl) Approve(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error {
	return uc.transition(ctx, reservationID, actorID, actorRole, ownerOnly, (*booking.Reservation).Approve)
}

func (uc *reservationUseCaseImpl) Decline(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error {
	return uc.transition(ctx, reservationID, actorID, actorRole, ownerOnly, (*booking.Reservation).Decline)
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error {
	return uc.transition(ctx, reservationID, actorID, actorRole, renterOrOwner, (*booking.Reservation).Cancel)
}

func (uc *reservationUseCaseImpl) Complete(ctx context.Context, reservationID, actorID uuid.UUID, actorRole string) error {
	return uc.transition(ctx, reservationID, actorID, actorRole, ownerOnly, (*booking.Reservation).Complete)
}

type actorRule int

const (
	ownerOnly actorRule = iota
	renterOrOwner
)

func (uc *reservationUseCaseImpl) transition(
	ctx context.Context,
	reservationID, actorID uuid.UUID,
	actorRole string,
	rule actorRule,
	apply func(*booking.Reservation) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		if !allowed(snap, actorID, actorRole, rule) {
			return ErrNotAllowed
		}

		res := booking.ReconstructReservation(
			snap.ID, snap.VehicleID, snap.RenterID,
			snap.Dates, snap.Status, snap.PriceCents, snap.Note,
			snap.CreatedAt, snap.UpdatedAt,
		)
		if err := apply(res); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), reservationID, res.Status()); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}

func allowed(snap *shared.ReservationSnapshot, actorID uuid.UUID, actorRole string, rule actorRule) bool {
	if actorRole == "admin" {
		return true
	}
	switch rule {
	case ownerOnly:
		return actorID == snap.OwnerID
	case renterOrOwner:
		return actorID == snap.RenterID || actorID == snap.OwnerID
	default:
		return false
	}
}

func calculateRequestHash(req CreateReservationRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
