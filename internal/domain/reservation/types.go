package reservation

import "facility-booking/internal/pkg/errs"

var ErrInvalidTransition = errs.ErrInvalidTransition

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// BlocksSlot reports whether a reservation in this status holds its interval.
// Pending holds the slot exactly like Approved: the first pending request wins.
func (s Status) BlocksSlot() bool {
	return s == StatusPending || s == StatusApproved
}

// Action is an administrative status change applied to one reservation or a whole group.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionApprove, ActionReject, ActionCancel:
		return a, nil
	default:
		return "", errs.Wrapf(ErrInvalidTransition, "unknown action %q", s)
	}
}

func (a Action) TargetStatus() Status {
	switch a {
	case ActionApprove:
		return StatusApproved
	case ActionReject:
		return StatusRejected
	case ActionCancel:
		return StatusCancelled
	default:
		return ""
	}
}

// Applies reports whether the action may move a reservation out of status s.
// Approve and reject only act on pending reservations; cancel also withdraws approved ones.
func (a Action) Applies(s Status) bool {
	switch a {
	case ActionApprove, ActionReject:
		return s == StatusPending
	case ActionCancel:
		return s == StatusPending || s == StatusApproved
	default:
		return false
	}
}
