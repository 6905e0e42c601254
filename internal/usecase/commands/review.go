package commands

import (
	"context"

	"driveshare/internal/domain/booking"
	domreview "driveshare/internal/domain/review"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotEligible = errs.New("reservation not eligible for review")
	ErrDuplicateReview        = errs.New("duplicate review for reservation")
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, renterID uuid.UUID) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewReviewUseCase(uow shared.UnitOfWork) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow}
}

// CreateReview allows one review per completed reservation, written by
// the renter who held it.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, renterID uuid.UUID) (*CreateReviewResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, terr := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(terr, ErrStorageFailure)
		}
		if snap.RenterID != renterID || snap.Status != booking.StatusCompleted {
			return ErrReservationNotEligible
		}

		rev, terr := domreview.NewReview(snap.VehicleID, renterID, req.ReservationID, req.Rating, req.Comment)
		if terr != nil {
			return terr
		}

		id, terr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if terr != nil {
			if infra.IsKind(terr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return errs.Mark(terr, ErrStorageFailure)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewResult{ReviewID: createdID}, nil
}
