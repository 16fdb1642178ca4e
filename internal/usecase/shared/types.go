package shared

import (
	"context"
	"time"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. Profile comes from verified token claims.
type Actor struct {
	UserID  uuid.UUID
	Profile pricing.RoleProfile
}

func (a Actor) IsAdmin() bool {
	return a.Profile.IsAdmin
}

// StatusChange is published after a status transition has been committed.
type StatusChange struct {
	ReservationID uuid.UUID
	ResourceID    uuid.UUID
	UserID        uuid.UUID
	GroupID       *uuid.UUID
	From          reservation.Status
	To            reservation.Status
	Note          string
	ChangedBy     uuid.UUID
	ChangedAt     time.Time
}

type EventPublisher interface {
	PublishStatusChanges(ctx context.Context, changes []StatusChange) error
}
