//go:build unit || integration

package fakes

import (
	"context"
	"slices"
	"strings"
	"sync"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork runs transactions against an in-memory store. A failing fn rolls the
// store back to its state before the call.
type UnitOfWork struct {
	Store *ReservationStore

	mu          sync.Mutex
	WithinCalls int
	ReadCalls   int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{Store: NewReservationStore()}
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.WithinCalls++

	backup := u.Store.snapshot()
	if err := fn(ctx, tx{store: u.Store}); err != nil {
		u.Store.restore(backup)
		return err
	}
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ReadCalls++
	return fn(ctx, tx{store: u.Store})
}

type tx struct {
	store *ReservationStore
}

func (t tx) Reservations() shared.ReservationRepository { return t.store }

// ReservationStore keeps copies so callers cannot mutate stored state behind the
// repository's back.
type ReservationStore struct {
	rows map[uuid.UUID]*reservation.Reservation

	// FailUpdateOn makes the n-th UpdateStatus call (1-based) fail.
	FailUpdateOn int
	updates      int
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{rows: map[uuid.UUID]*reservation.Reservation{}}
}

var _ shared.ReservationRepository = (*ReservationStore)(nil)

func (s *ReservationStore) Seed(rs ...*reservation.Reservation) {
	for _, r := range rs {
		s.rows[r.ID()] = clone(r)
	}
}

func (s *ReservationStore) Get(id uuid.UUID) *reservation.Reservation {
	r, ok := s.rows[id]
	if !ok {
		return nil
	}
	return clone(r)
}

func (s *ReservationStore) Len() int { return len(s.rows) }

func (s *ReservationStore) All() []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, clone(r))
	}
	sortByStart(out)
	return out
}

func (s *ReservationStore) ListActiveInWindow(_ context.Context, resourceID uuid.UUID, window reservation.Interval) ([]reservation.ReservedInterval, error) {
	var out []reservation.ReservedInterval
	for _, r := range s.inWindow(resourceID, window) {
		if r.Status().BlocksSlot() {
			out = append(out, r.Snapshot())
		}
	}
	return out, nil
}

func (s *ReservationStore) ListInWindow(_ context.Context, resourceID uuid.UUID, window reservation.Interval) ([]*reservation.Reservation, error) {
	return s.inWindow(resourceID, window), nil
}

func (s *ReservationStore) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, errs.Wrapf(errs.ErrReservationNotFound, "id %s", id)
	}
	return clone(r), nil
}

func (s *ReservationStore) FindByGroup(_ context.Context, groupID uuid.UUID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, r := range s.rows {
		if g := r.GroupID(); g != nil && *g == groupID {
			out = append(out, clone(r))
		}
	}
	sortByStart(out)
	return out, nil
}

func (s *ReservationStore) CreateBatch(_ context.Context, rs []*reservation.Reservation) error {
	for _, r := range rs {
		if _, dup := s.rows[r.ID()]; dup {
			return errs.Newf("duplicate reservation %s", r.ID())
		}
		s.rows[r.ID()] = clone(r)
	}
	return nil
}

func (s *ReservationStore) UpdateStatus(_ context.Context, r *reservation.Reservation) error {
	s.updates++
	if s.FailUpdateOn > 0 && s.updates == s.FailUpdateOn {
		return errs.ErrDatabaseOperationFailed
	}
	if _, ok := s.rows[r.ID()]; !ok {
		return errs.Wrapf(errs.ErrReservationNotFound, "id %s", r.ID())
	}
	s.rows[r.ID()] = clone(r)
	return nil
}

func (s *ReservationStore) inWindow(resourceID uuid.UUID, window reservation.Interval) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, r := range s.rows {
		if r.ResourceID() == resourceID && r.Interval().Overlaps(window) {
			out = append(out, clone(r))
		}
	}
	sortByStart(out)
	return out
}

func (s *ReservationStore) snapshot() map[uuid.UUID]*reservation.Reservation {
	backup := make(map[uuid.UUID]*reservation.Reservation, len(s.rows))
	for id, r := range s.rows {
		backup[id] = clone(r)
	}
	return backup
}

func (s *ReservationStore) restore(backup map[uuid.UUID]*reservation.Reservation) {
	s.rows = backup
}

func clone(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.ResourceID(), r.UnitID(), r.UserID(), r.Interval(), r.Status(),
		r.Price(), r.GroupID(), r.Note(), r.CreatedAt(), r.UpdatedAt(),
	)
}

func sortByStart(rs []*reservation.Reservation) {
	slices.SortFunc(rs, func(a, b *reservation.Reservation) int {
		if c := a.Interval().Start().Compare(b.Interval().Start()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
}
