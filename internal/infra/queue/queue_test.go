//go:build unit

package queue_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra/queue"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func change() shared.StatusChange {
	groupID := uuid.New()
	return shared.StatusChange{
		ReservationID: uuid.New(),
		ResourceID:    uuid.New(),
		UserID:        uuid.New(),
		GroupID:       &groupID,
		From:          reservation.StatusPending,
		To:            reservation.StatusApproved,
		Note:          "see you there",
		ChangedBy:     uuid.New(),
		ChangedAt:     time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestNewStatusChangedTask(t *testing.T) {
	c := change()

	task, opts, err := queue.NewStatusChangedTask(c)

	require.NoError(t, err)
	assert.Equal(t, queue.TypeStatusChanged, task.Type())
	assert.Len(t, opts, 4)

	var p queue.StatusChangedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, c.ReservationID, p.ReservationID)
	assert.Equal(t, "pending", p.From)
	assert.Equal(t, "approved", p.To)
	assert.Equal(t, *c.GroupID, *p.GroupID)
	assert.True(t, c.ChangedAt.Equal(p.ChangedAt))
}

type recordingEnqueuer struct {
	tasks []*asynq.Task
	errs  []error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &asynq.TaskInfo{}, nil
}

func TestPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("one task per change", func(t *testing.T) {
		enq := &recordingEnqueuer{}
		err := queue.NewPublisher(enq).PublishStatusChanges(ctx, []shared.StatusChange{change(), change()})
		require.NoError(t, err)
		assert.Len(t, enq.tasks, 2)
	})

	t.Run("duplicate ids are not failures", func(t *testing.T) {
		enq := &recordingEnqueuer{errs: []error{asynq.ErrTaskIDConflict}}
		err := queue.NewPublisher(enq).PublishStatusChanges(ctx, []shared.StatusChange{change()})
		assert.NoError(t, err)
	})

	t.Run("failures are joined and later changes still sent", func(t *testing.T) {
		boom := errors.New("redis down")
		enq := &recordingEnqueuer{errs: []error{boom, nil}}
		err := queue.NewPublisher(enq).PublishStatusChanges(ctx, []shared.StatusChange{change(), change()})
		assert.ErrorIs(t, err, boom)
		assert.Len(t, enq.tasks, 2)
	})
}

type capturingNotifier struct {
	got []queue.StatusChangedPayload
}

func (c *capturingNotifier) NotifyStatusChanged(_ context.Context, p queue.StatusChangedPayload) error {
	c.got = append(c.got, p)
	return nil
}

func TestHandleStatusChanged(t *testing.T) {
	ctx := context.Background()
	n := &capturingNotifier{}
	handler := queue.HandleStatusChanged(n)

	task, _, err := queue.NewStatusChangedTask(change())
	require.NoError(t, err)
	require.NoError(t, handler.ProcessTask(ctx, task))
	require.Len(t, n.got, 1)
	assert.Equal(t, "approved", n.got[0].To)

	err = handler.ProcessTask(ctx, asynq.NewTask(queue.TypeStatusChanged, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Len(t, n.got, 1)
}
