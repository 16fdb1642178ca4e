package commands

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

func statusChange(r *reservation.Reservation, from reservation.Status, by uuid.UUID, at time.Time) shared.StatusChange {
	return shared.StatusChange{
		ReservationID: r.ID(),
		ResourceID:    r.ResourceID(),
		UserID:        r.UserID(),
		GroupID:       r.GroupID(),
		From:          from,
		To:            r.Status(),
		Note:          r.Note().String(),
		ChangedBy:     by,
		ChangedAt:     at,
	}
}

// publish runs after commit. The status change already happened, so a failed
// notification is logged and not returned.
func publish(ctx context.Context, p shared.EventPublisher, logger *slog.Logger, changes []shared.StatusChange) {
	if p == nil || len(changes) == 0 {
		return
	}
	if err := p.PublishStatusChanges(ctx, changes); err != nil {
		logger.Warn("failed to publish status changes",
			"count", len(changes),
			"reservation_id", changes[0].ReservationID.String(),
			"error", err.Error())
	}
}
