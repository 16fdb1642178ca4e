package recurrence

import (
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGroupMismatch = errs.New("recurrence: cascade targets a different group")

// ElapsedPolicy decides what a cascade does with occurrences that already started.
type ElapsedPolicy int

const (
	// SkipElapsed leaves occurrences whose start is at or before now untouched.
	SkipElapsed ElapsedPolicy = iota
	IncludeElapsed
)

func (p ElapsedPolicy) String() string {
	if p == IncludeElapsed {
		return "include_elapsed"
	}
	return "skip_elapsed"
}

// CascadeIntent is one group-wide action. It is applied as a unit by the storage layer.
type CascadeIntent struct {
	GroupID uuid.UUID
	Action  reservation.Action
	Note    reservation.Note
}

type Change struct {
	ReservationID uuid.UUID
	From          reservation.Status
	To            reservation.Status
	Note          reservation.Note
}

type SkipReason string

const (
	ReasonStatus  SkipReason = "status_not_applicable"
	ReasonElapsed SkipReason = "already_started"
)

type Skipped struct {
	ReservationID uuid.UUID
	Status        reservation.Status
	Reason        SkipReason
}

// CascadePlan lists which occurrences change and to what, in occurrence order.
type CascadePlan struct {
	GroupID uuid.UUID
	Action  reservation.Action
	Changes []Change
	Skipped []Skipped
}

func (p CascadePlan) IsEmpty() bool {
	return len(p.Changes) == 0
}

// ChangedIDs returns the reservation ids the plan transitions.
func (p CascadePlan) ChangedIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.Changes))
	for i, c := range p.Changes {
		ids[i] = c.ReservationID
	}
	return ids
}

// PlanCascade computes the changes for intent over group without touching it.
// Approve and reject act on pending occurrences; cancel acts on pending and approved ones.
func PlanCascade(intent CascadeIntent, group Group, now time.Time, policy ElapsedPolicy) (CascadePlan, error) {
	if intent.GroupID != group.ID {
		return CascadePlan{}, errs.Wrapf(ErrGroupMismatch, "intent %s, group %s", intent.GroupID, group.ID)
	}
	target := intent.Action.TargetStatus()
	if target == "" {
		return CascadePlan{}, errs.Wrapf(reservation.ErrInvalidTransition, "unknown action %q", intent.Action)
	}

	plan := CascadePlan{GroupID: group.ID, Action: intent.Action}
	for _, occ := range group.Occurrences {
		switch {
		case !intent.Action.Applies(occ.Status):
			plan.Skipped = append(plan.Skipped, Skipped{ReservationID: occ.ID, Status: occ.Status, Reason: ReasonStatus})
		case policy == SkipElapsed && !now.Before(occ.Interval.Start()):
			plan.Skipped = append(plan.Skipped, Skipped{ReservationID: occ.ID, Status: occ.Status, Reason: ReasonElapsed})
		default:
			plan.Changes = append(plan.Changes, Change{
				ReservationID: occ.ID,
				From:          occ.Status,
				To:            target,
				Note:          intent.Note,
			})
		}
	}
	return plan, nil
}
