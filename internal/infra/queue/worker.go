package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"facility-booking/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

// Notifier delivers a committed status change to the reservation owner.
type Notifier interface {
	NotifyStatusChanged(ctx context.Context, p StatusChangedPayload) error
}

// LogNotifier records notifications in the structured log. It stands in until a mail or push
// channel is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyStatusChanged(_ context.Context, p StatusChangedPayload) error {
	n.logger.Info("reservation status changed",
		"reservation_id", p.ReservationID.String(),
		"user_id", p.UserID.String(),
		"from", p.From,
		"to", p.To,
		"changed_by", p.ChangedBy.String())
	return nil
}

func NewServeMux(n Notifier) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeStatusChanged, HandleStatusChanged(n))
	return mux
}

func HandleStatusChanged(n Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p StatusChangedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			// a malformed payload never succeeds on retry
			return errs.Wrapf(asynq.SkipRetry, "invalid payload: %v", err)
		}
		return n.NotifyStatusChanged(ctx, p)
	}
}
