package commands

import (
	"context"
	"log/slog"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/recurrence"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/readmodel"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*CreateReservationResult, error)
	ChangeStatus(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, action reservation.Action, note string) (*StatusChangeResult, error)
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	catalog   shared.CatalogReader
	publisher shared.EventPublisher
	factory   *reservation.Factory
	expander  *recurrence.Expander
	clock     clock.Clock
	logger    *slog.Logger
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	catalog shared.CatalogReader,
	publisher shared.EventPublisher,
	policy shared.BookingPolicy,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:       uow,
		catalog:   catalog,
		publisher: publisher,
		factory:   reservation.NewFactory(clk),
		expander:  recurrence.NewExpander(policy.Location, policy.MaxOccurrences),
		clock:     clk,
		logger:    logger,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	actor shared.Actor,
	in CreateReservationInput,
) (*CreateReservationResult, error) {
	anchor, err := reservation.NewInterval(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	tree, rules, err := shared.LoadCatalog(ctx, uc.catalog, in.ResourceID)
	if err != nil {
		return nil, err
	}
	if in.UnitID != nil {
		if !tree.Has(*in.UnitID) {
			return nil, errs.Wrapf(errs.ErrUnknownUnit, "unit %s", *in.UnitID)
		}
		if !tree.CanBookWhole(*in.UnitID) {
			return nil, errs.Wrapf(errs.ErrWholeUnitBookingForbidden, "unit %q", tree.Name(in.UnitID))
		}
	}

	slots, groupID, err := uc.expand(anchor, in.Recurrence)
	if err != nil {
		return nil, err
	}

	rule, err := pricing.Resolve(actor.Profile, rules)
	if err != nil {
		return nil, err
	}
	quote := pricing.Calculate(rule, slots[0], actor.Profile.IsMember)
	if quote.Warning != nil {
		uc.logger.Warn("pricing rule has no usable rate, booking priced as free",
			"resource_id", in.ResourceID.String(),
			"rule_id", rule.ID.String(),
			"error", quote.Warning.Error())
	}
	calc := pricing.BoundCalculator{Rule: rule, IsMember: actor.Profile.IsMember}

	var created []*reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, ferr := uc.factory.CreateReservations(reservation.BookingRequest{
			ResourceID: in.ResourceID,
			UnitID:     in.UnitID,
			UserID:     actor.UserID,
			Slots:      slots,
			GroupID:    groupID,
			Note:       reservation.NewNote(in.Note),
		}, calc)
		if ferr != nil {
			return ferr
		}

		existing, ferr := tx.Reservations().ListActiveInWindow(ctx, in.ResourceID, span(slots))
		if ferr != nil {
			return ferr
		}
		if ferr = checkNewReservations(tree, rs, existing); ferr != nil {
			return ferr
		}

		if ferr = tx.Reservations().CreateBatch(ctx, rs); ferr != nil {
			return ferr
		}
		created = rs
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &CreateReservationResult{
		GroupID:      groupID,
		Reservations: make([]readmodel.ReservationRM, 0, len(created)),
		Pricing:      quote,
		Total:        decimal.Zero,
	}
	for _, r := range created {
		result.Reservations = append(result.Reservations, readmodel.FromReservation(r, tree.Name(r.UnitID())))
		result.Total = result.Total.Add(r.Price())
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) expand(anchor reservation.Interval, rec *RecurrenceInput) ([]reservation.Interval, *uuid.UUID, error) {
	if rec == nil {
		return []reservation.Interval{anchor}, nil, nil
	}

	pattern, err := recurrence.ParsePattern(rec.Pattern)
	if err != nil {
		return nil, nil, err
	}
	exp, err := uc.expander.Expand(recurrence.Series{Anchor: anchor, Pattern: pattern, Until: rec.Until})
	if err != nil {
		return nil, nil, err
	}
	groupID := exp.GroupID
	return exp.Intervals(), &groupID, nil
}

// checkNewReservations runs the detector for every new reservation against the stored
// snapshot plus the occurrences of the same request accepted before it.
func checkNewReservations(tree *resource.Tree, rs []*reservation.Reservation, existing []reservation.ReservedInterval) error {
	snapshot := make([]reservation.ReservedInterval, 0, len(existing)+len(rs))
	snapshot = append(snapshot, existing...)

	for _, r := range rs {
		res, err := reservation.DetectConflicts(tree, reservation.ConflictRequest{
			UnitID:   r.UnitID(),
			Interval: r.Interval(),
		}, snapshot)
		if err != nil {
			return err
		}
		if !res.Allowed {
			return &ConflictError{Interval: r.Interval(), Blockers: res.Blockers}
		}
		snapshot = append(snapshot, r.Snapshot())
	}
	return nil
}

func (uc *reservationUseCaseImpl) ChangeStatus(
	ctx context.Context,
	actor shared.Actor,
	reservationID uuid.UUID,
	action reservation.Action,
	note string,
) (*StatusChangeResult, error) {
	if action != reservation.ActionCancel && !actor.IsAdmin() {
		return nil, errs.Wrapf(errs.ErrForbidden, "%s requires an administrator", action)
	}

	var (
		result *StatusChangeResult
		change shared.StatusChange
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, ferr := tx.Reservations().FindByID(ctx, reservationID)
		if ferr != nil {
			return ferr
		}
		if !actor.IsAdmin() && r.UserID() != actor.UserID {
			return errs.Wrapf(errs.ErrForbidden, "reservation %s", reservationID)
		}
		if !action.Applies(r.Status()) {
			return errs.Wrapf(reservation.ErrInvalidTransition, "%s from %s", action, r.Status())
		}

		tree, _, ferr := shared.LoadCatalog(ctx, uc.catalog, r.ResourceID())
		if ferr != nil {
			return ferr
		}
		if action == reservation.ActionApprove {
			if ferr = recheck(ctx, tx, tree, r); ferr != nil {
				return ferr
			}
		}

		from := r.Status()
		now := uc.clock.Now()
		if ferr = r.Apply(action, reservation.NewNote(note), now); ferr != nil {
			return ferr
		}
		if ferr = tx.Reservations().UpdateStatus(ctx, r); ferr != nil {
			return ferr
		}

		result = &StatusChangeResult{
			Reservation: readmodel.FromReservation(r, tree.Name(r.UnitID())),
			From:        from,
		}
		change = statusChange(r, from, actor.UserID, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, uc.publisher, uc.logger, []shared.StatusChange{change})
	return result, nil
}

// recheck re-runs the detector for r against the current snapshot, ignoring r itself.
func recheck(ctx context.Context, tx shared.Tx, tree *resource.Tree, r *reservation.Reservation) error {
	existing, err := tx.Reservations().ListActiveInWindow(ctx, r.ResourceID(), r.Interval())
	if err != nil {
		return err
	}
	id := r.ID()
	res, err := reservation.DetectConflicts(tree, reservation.ConflictRequest{
		UnitID:               r.UnitID(),
		Interval:             r.Interval(),
		ExcludeReservationID: &id,
	}, existing)
	if err != nil {
		return err
	}
	if !res.Allowed {
		return &ConflictError{Interval: r.Interval(), Blockers: res.Blockers}
	}
	return nil
}

// span is the smallest window covering every slot.
func span(slots []reservation.Interval) reservation.Interval {
	start, end := slots[0].Start(), slots[0].End()
	for _, s := range slots[1:] {
		if s.Start().Before(start) {
			start = s.Start()
		}
		if s.End().After(end) {
			end = s.End()
		}
	}
	return reservation.MustInterval(start, end)
}
