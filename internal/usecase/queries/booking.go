package queries

import (
	"context"
	"time"

	"facility-booking/internal/domain/layout"
	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/recurrence"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/readmodel"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	CheckAvailability(ctx context.Context, in AvailabilityInput) (reservation.ConflictResult, error)
	Quote(ctx context.Context, actor shared.Actor, in QuoteInput) (*QuoteView, error)
	ListGroups(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]GroupView, error)
	DayLayout(ctx context.Context, resourceID uuid.UUID, day time.Time, unitID *uuid.UUID) (*DayLayoutView, error)
}

type bookingQueriesImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.CatalogReader
	location *time.Location
}

func NewBookingQueries(uow shared.UnitOfWork, catalog shared.CatalogReader, policy shared.BookingPolicy) BookingQueries {
	loc := policy.Location
	if loc == nil {
		loc = time.UTC
	}
	return &bookingQueriesImpl{uow: uow, catalog: catalog, location: loc}
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, in AvailabilityInput) (reservation.ConflictResult, error) {
	iv, err := reservation.NewInterval(in.Start, in.End)
	if err != nil {
		return reservation.ConflictResult{}, err
	}
	tree, _, err := shared.LoadCatalog(ctx, q.catalog, in.ResourceID)
	if err != nil {
		return reservation.ConflictResult{}, err
	}

	var result reservation.ConflictResult
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, ferr := tx.Reservations().ListActiveInWindow(ctx, in.ResourceID, iv)
		if ferr != nil {
			return ferr
		}
		result, ferr = reservation.DetectConflicts(tree, reservation.ConflictRequest{
			UnitID:               in.UnitID,
			Interval:             iv,
			ExcludeReservationID: in.ExcludeReservationID,
		}, existing)
		return ferr
	})
	return result, err
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, actor shared.Actor, in QuoteInput) (*QuoteView, error) {
	iv, err := reservation.NewInterval(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	_, rules, err := shared.LoadCatalog(ctx, q.catalog, in.ResourceID)
	if err != nil {
		return nil, err
	}

	result, rule, err := pricing.Quote(actor.Profile, rules, iv)
	if err != nil {
		return nil, err
	}
	view := &QuoteView{Result: result}
	if rule != nil {
		id := rule.ID
		view.RuleID = &id
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListGroups(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]GroupView, error) {
	window, err := reservation.NewInterval(from, to)
	if err != nil {
		return nil, err
	}
	tree, _, err := shared.LoadCatalog(ctx, q.catalog, resourceID)
	if err != nil {
		return nil, err
	}

	var rs []*reservation.Reservation
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ferr error
		rs, ferr = tx.Reservations().ListInWindow(ctx, resourceID, window)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*reservation.Reservation, len(rs))
	snaps := make([]reservation.ReservedInterval, 0, len(rs))
	for _, r := range rs {
		byID[r.ID()] = r
		snaps = append(snaps, r.Snapshot())
	}

	groups, _ := recurrence.GroupReservations(snaps)
	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		view := GroupView{ID: g.ID, Occurrences: make([]readmodel.ReservationRM, 0, g.Len())}
		for _, occ := range g.Occurrences {
			view.Occurrences = append(view.Occurrences, toRM(tree, byID[occ.ID]))
		}
		view.Representative = view.Occurrences[0]
		views = append(views, view)
	}
	return views, nil
}

// DayLayout places the slot-holding reservations of one calendar day (booking time zone)
// into columns. With a unit, only reservations that block that unit are shown.
func (q *bookingQueriesImpl) DayLayout(ctx context.Context, resourceID uuid.UUID, day time.Time, unitID *uuid.UUID) (*DayLayoutView, error) {
	tree, _, err := shared.LoadCatalog(ctx, q.catalog, resourceID)
	if err != nil {
		return nil, err
	}
	if unitID != nil && !tree.Has(*unitID) {
		return nil, errs.Wrapf(errs.ErrUnknownUnit, "unit %s", *unitID)
	}

	d := day.In(q.location)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, q.location)
	window := reservation.MustInterval(start, time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, q.location))

	var rs []*reservation.Reservation
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ferr error
		rs, ferr = tx.Reservations().ListInWindow(ctx, resourceID, window)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	shown := make([]*reservation.Reservation, 0, len(rs))
	items := make([]layout.Item, 0, len(rs))
	for _, r := range rs {
		if !r.Status().BlocksSlot() {
			continue
		}
		if unitID != nil && !tree.Relation(r.UnitID(), unitID).Blocks() {
			continue
		}
		shown = append(shown, r)
		items = append(items, layout.Item{ID: r.ID(), Start: r.Interval().Start(), End: r.Interval().End()})
	}

	placements := layout.Assign(items)
	view := &DayLayoutView{Day: start, UnitID: unitID, Entries: make([]LayoutEntry, 0, len(shown))}
	for _, r := range shown {
		view.Entries = append(view.Entries, LayoutEntry{
			Reservation: toRM(tree, r),
			Placement:   placements[r.ID()],
		})
	}
	return view, nil
}

func toRM(tree *resource.Tree, r *reservation.Reservation) readmodel.ReservationRM {
	return readmodel.FromReservation(r, tree.Name(r.UnitID()))
}
