package commands

import (
	"context"
	"log/slog"

	"facility-booking/internal/domain/recurrence"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type GroupCommands interface {
	ApplyGroupAction(ctx context.Context, actor shared.Actor, groupID uuid.UUID, action reservation.Action, note string) (*GroupActionResult, error)
}

type groupUseCaseImpl struct {
	uow       shared.UnitOfWork
	catalog   shared.CatalogReader
	publisher shared.EventPublisher
	policy    recurrence.ElapsedPolicy
	clock     clock.Clock
	logger    *slog.Logger
}

func NewGroupUseCase(
	uow shared.UnitOfWork,
	catalog shared.CatalogReader,
	publisher shared.EventPublisher,
	policy shared.BookingPolicy,
	clk clock.Clock,
	logger *slog.Logger,
) GroupCommands {
	return &groupUseCaseImpl{
		uow:       uow,
		catalog:   catalog,
		publisher: publisher,
		policy:    policy.Elapsed,
		clock:     clk,
		logger:    logger,
	}
}

// ApplyGroupAction applies one cascade to every applicable occurrence of a series.
// All changes commit together; an approval blocked on any occurrence changes nothing.
func (uc *groupUseCaseImpl) ApplyGroupAction(
	ctx context.Context,
	actor shared.Actor,
	groupID uuid.UUID,
	action reservation.Action,
	note string,
) (*GroupActionResult, error) {
	if action != reservation.ActionCancel && !actor.IsAdmin() {
		return nil, errs.Wrapf(errs.ErrForbidden, "%s requires an administrator", action)
	}

	intent := recurrence.CascadeIntent{GroupID: groupID, Action: action, Note: reservation.NewNote(note)}

	var (
		result  *GroupActionResult
		changes []shared.StatusChange
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changes = nil

		rs, ferr := tx.Reservations().FindByGroup(ctx, groupID)
		if ferr != nil {
			return ferr
		}
		if len(rs) == 0 {
			return errs.Wrapf(errs.ErrGroupNotFound, "group %s", groupID)
		}
		if !actor.IsAdmin() && rs[0].UserID() != actor.UserID {
			return errs.Wrapf(errs.ErrForbidden, "group %s", groupID)
		}

		byID := make(map[uuid.UUID]*reservation.Reservation, len(rs))
		snaps := make([]reservation.ReservedInterval, 0, len(rs))
		for _, r := range rs {
			byID[r.ID()] = r
			snaps = append(snaps, r.Snapshot())
		}
		groups, _ := recurrence.GroupReservations(snaps)
		if len(groups) != 1 {
			return errs.Wrapf(errs.ErrGroupNotFound, "group %s", groupID)
		}

		now := uc.clock.Now()
		plan, ferr := recurrence.PlanCascade(intent, groups[0], now, uc.policy)
		if ferr != nil {
			return ferr
		}

		if action == reservation.ActionApprove && !plan.IsEmpty() {
			tree, _, ferr := shared.LoadCatalog(ctx, uc.catalog, rs[0].ResourceID())
			if ferr != nil {
				return ferr
			}
			for _, id := range plan.ChangedIDs() {
				if ferr = recheck(ctx, tx, tree, byID[id]); ferr != nil {
					return ferr
				}
			}
		}

		for _, c := range plan.Changes {
			r := byID[c.ReservationID]
			if ferr = r.Apply(action, c.Note, now); ferr != nil {
				return ferr
			}
			if ferr = tx.Reservations().UpdateStatus(ctx, r); ferr != nil {
				return ferr
			}
			changes = append(changes, statusChange(r, c.From, actor.UserID, now))
		}

		result = &GroupActionResult{
			GroupID: groupID,
			Action:  action,
			Changed: plan.Changes,
			Skipped: plan.Skipped,
			Atomic:  true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, uc.publisher, uc.logger, changes)
	return result, nil
}
