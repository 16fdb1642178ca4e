package queries

import (
	"context"
	"time"

	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/readmodel"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor string, limit int) (*ReservationPage, error)
}

// ReservationReadStore reads reservation views outside any transaction.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	// ListByUser returns up to limit reservations ordered by (start_time, id), strictly
	// after the given key when afterStart is non-nil.
	ListByUser(ctx context.Context, userID uuid.UUID, afterStart *time.Time, afterID uuid.UUID, limit int) ([]readmodel.ReservationRM, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && rm.UserID != actor.UserID {
		return nil, errs.Wrapf(errs.ErrForbidden, "reservation %s", id)
	}
	return rm, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor string, limit int) (*ReservationPage, error) {
	limit = ValidateLimit(limit)

	var (
		afterStart *time.Time
		afterID    uuid.UUID
	)
	if cursor != "" {
		t, id, err := DecodeAfterCursor(cursor)
		if err != nil {
			return nil, err
		}
		afterStart, afterID = &t, id
	}

	// one extra row tells whether another page exists
	rows, err := q.store.ListByUser(ctx, userID, afterStart, afterID, limit+1)
	if err != nil {
		return nil, err
	}

	page := &ReservationPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[limit-1]
		page.Next = EncodeAfterCursor(last.StartTime, last.ID)
	}
	return page, nil
}
