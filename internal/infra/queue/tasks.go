package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeStatusChanged  = "reservation:status_changed"
	QueueNotifications = "notifications"
)

type StatusChangedPayload struct {
	ReservationID uuid.UUID  `json:"reservation_id"`
	ResourceID    uuid.UUID  `json:"resource_id"`
	UserID        uuid.UUID  `json:"user_id"`
	GroupID       *uuid.UUID `json:"group_id,omitempty"`
	From          string     `json:"from"`
	To            string     `json:"to"`
	Note          string     `json:"note,omitempty"`
	ChangedBy     uuid.UUID  `json:"changed_by"`
	ChangedAt     time.Time  `json:"changed_at"`
}

func payloadFrom(c shared.StatusChange) StatusChangedPayload {
	return StatusChangedPayload{
		ReservationID: c.ReservationID,
		ResourceID:    c.ResourceID,
		UserID:        c.UserID,
		GroupID:       c.GroupID,
		From:          c.From.String(),
		To:            c.To.String(),
		Note:          c.Note,
		ChangedBy:     c.ChangedBy,
		ChangedAt:     c.ChangedAt,
	}
}

// NewStatusChangedTask builds the task for one committed transition. The task id is derived
// from the transition, so enqueueing the same change twice is rejected by asynq.
func NewStatusChangedTask(c shared.StatusChange) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payloadFrom(c))
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeStatusChanged, b)
	opts := []asynq.Option{
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(5),
		asynq.TaskID(fmt.Sprintf("%s:%s:%d", c.ReservationID, c.To, c.ChangedAt.UnixNano())),
		asynq.Retention(24 * time.Hour),
	}
	return task, opts, nil
}
