package queue

import (
	"context"
	"errors"

	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/hibiken/asynq"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Publisher struct {
	client Enqueuer
}

func NewPublisher(client Enqueuer) *Publisher {
	return &Publisher{client: client}
}

var _ shared.EventPublisher = (*Publisher)(nil)

// PublishStatusChanges enqueues one task per change and keeps going past failures.
// Duplicate task ids count as delivered.
func (p *Publisher) PublishStatusChanges(ctx context.Context, changes []shared.StatusChange) error {
	var failed []error
	for _, c := range changes {
		task, opts, err := NewStatusChangedTask(c)
		if err != nil {
			failed = append(failed, errs.Wrapf(err, "build task for %s", c.ReservationID))
			continue
		}
		if _, err := p.client.EnqueueContext(ctx, task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
			failed = append(failed, errs.Wrapf(err, "enqueue %s", c.ReservationID))
		}
	}
	return errors.Join(failed...)
}
