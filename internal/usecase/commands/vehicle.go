package commands

import (
	"context"

	"driveshare/internal/domain/vehicle"
	"driveshare/internal/infra"
	"driveshare/internal/pkg/errs"
	"driveshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotVehicleOwner = errs.New("actor does not own this vehicle")

type CreateVehicleRequest struct {
	Name           string
	Description    string
	DailyRateCents int32
}

type UpdateVehicleRequest struct {
	Name           string
	Description    string
	DailyRateCents int32
}

type VehicleCommands interface {
	CreateVehicle(ctx context.Context, req CreateVehicleRequest, ownerID uuid.UUID) (uuid.UUID, error)
	UpdateVehicle(ctx context.Context, vehicleID uuid.UUID, req UpdateVehicleRequest, actorID uuid.UUID, actorRole string) error
	ArchiveVehicle(ctx context.Context, vehicleID, actorID uuid.UUID, actorRole string) error
}

type vehicleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewVehicleUseCase(uow shared.UnitOfWork) VehicleCommands {
	return &vehicleUseCaseImpl{uow: uow}
}

func (uc *vehicleUseCaseImpl) CreateVehicle(ctx context.Context, req CreateVehicleRequest, ownerID uuid.UUID) (uuid.UUID, error) {
	v, err := vehicle.NewVehicle(ownerID, req.Name, req.Description, req.DailyRateCents)
	if err != nil {
		return uuid.Nil, err
	}

	var vehicleID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, terr := tx.Vehicles().Create(ctx, tx.DB(), v)
		if terr != nil {
			return errs.Mark(terr, ErrStorageFailure)
		}
		vehicleID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return vehicleID, nil
}

func (uc *vehicleUseCaseImpl) UpdateVehicle(ctx context.Context, vehicleID uuid.UUID, req UpdateVehicleRequest, actorID uuid.UUID, actorRole string) error {
	return uc.mutate(ctx, vehicleID, actorID, actorRole, func(v *vehicle.Vehicle) error {
		if err := v.Rename(req.Name); err != nil {
			return err
		}
		v.SetDescription(req.Description)
		return v.SetDailyRate(req.DailyRateCents)
	})
}

func (uc *vehicleUseCaseImpl) ArchiveVehicle(ctx context.Context, vehicleID, actorID uuid.UUID, actorRole string) error {
	return uc.mutate(ctx, vehicleID, actorID, actorRole, (*vehicle.Vehicle).Archive)
}

func (uc *vehicleUseCaseImpl) mutate(
	ctx context.Context,
	vehicleID, actorID uuid.UUID,
	actorRole string,
	apply func(*vehicle.Vehicle) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VehicleByID(ctx, vehicleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		if actorRole != "admin" && snap.OwnerID != actorID {
			return ErrNotVehicleOwner
		}

		v := vehicle.ReconstructVehicle(snap.ID, snap.OwnerID, snap.Name, snap.Description,
			snap.DailyRateCents, snap.Archived, snap.CreatedAt, snap.UpdatedAt)
		if err := apply(v); err != nil {
			return err
		}

		if err := tx.Vehicles().Update(ctx, tx.DB(), v); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}
