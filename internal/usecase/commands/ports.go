package commands

//go:generate mockgen -destination=../../testutil/mock/usecase/commands.go -package=usecasemock facility-booking/internal/usecase/commands GroupCommands,ReservationCommands

import (
	"fmt"
	"time"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/recurrence"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecurrenceInput struct {
	Pattern string
	// Until is the last calendar day (booking time zone) an occurrence may start on.
	Until time.Time
}

// CreateReservationInput books one unit, or the whole resource when UnitID is nil.
type CreateReservationInput struct {
	ResourceID uuid.UUID
	UnitID     *uuid.UUID
	Start      time.Time
	End        time.Time
	Note       string
	Recurrence *RecurrenceInput
}

type CreateReservationResult struct {
	GroupID      *uuid.UUID
	Reservations []readmodel.ReservationRM
	// Pricing is the breakdown of the first occurrence; every occurrence shares its rule.
	Pricing pricing.PriceResult
	Total   decimal.Decimal
}

type StatusChangeResult struct {
	Reservation readmodel.ReservationRM
	From        reservation.Status
}

type GroupActionResult struct {
	GroupID uuid.UUID
	Action  reservation.Action
	Changed []recurrence.Change
	Skipped []recurrence.Skipped
	// Atomic is always true: a cascade commits every change or none.
	Atomic bool
}

// ConflictError is returned when a slot is held by other reservations. It matches
// errs.ErrReservationConflict.
type ConflictError struct {
	Interval reservation.Interval
	Blockers []reservation.Blocker
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s is blocked by %d reservation(s)", errs.ErrReservationConflict, e.Interval, len(e.Blockers))
}

func (e *ConflictError) Unwrap() error {
	return errs.ErrReservationConflict
}
