package commands

import (
	"context"

	"driveshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPresenceUnavailable = errs.New("presence store unavailable")

// PresenceStore is the TTL-keyed viewer tracker behind listing pages.
type PresenceStore interface {
	Heartbeat(ctx context.Context, vehicleID, userID uuid.UUID) error
	Leave(ctx context.Context, vehicleID, userID uuid.UUID) error
}

type PresenceCommands interface {
	Heartbeat(ctx context.Context, vehicleID, userID uuid.UUID) error
	Leave(ctx context.Context, vehicleID, userID uuid.UUID) error
}

type presenceCommandsImpl struct {
	store PresenceStore
}

func NewPresenceCommands(store PresenceStore) PresenceCommands {
	return &presenceCommandsImpl{store: store}
}

func (p *presenceCommandsImpl) Heartbeat(ctx context.Context, vehicleID, userID uuid.UUID) error {
	if err := p.store.Heartbeat(ctx, vehicleID, userID); err != nil {
		return errs.Mark(err, ErrPresenceUnavailable)
	}
	return nil
}

func (p *presenceCommandsImpl) Leave(ctx context.Context, vehicleID, userID uuid.UUID) error {
	if err := p.store.Leave(ctx, vehicleID, userID); err != nil {
		return errs.Mark(err, ErrPresenceUnavailable)
	}
	return nil
}
