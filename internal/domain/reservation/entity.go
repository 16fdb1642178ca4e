package reservation

import (
	"time"

	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservedInterval is the read-only snapshot the conflict detector and cascades operate on.
// A nil UnitID reserves the whole resource.
type ReservedInterval struct {
	ID          uuid.UUID
	UnitID      *uuid.UUID
	Interval    Interval
	Status      Status
	IsRecurring bool
	GroupID     *uuid.UUID
}

type Reservation struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	unitID      *uuid.UUID
	userID      uuid.UUID
	interval    Interval
	status      Status
	price       decimal.Decimal
	isRecurring bool
	groupID     *uuid.UUID
	note        Note
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation creates a pending reservation. Conflict checks happen before this is called.
func NewReservation(
	resourceID uuid.UUID,
	unitID *uuid.UUID,
	userID uuid.UUID,
	interval Interval,
	price decimal.Decimal,
	groupID *uuid.UUID,
	note Note,
	now time.Time,
) (*Reservation, error) {
	if interval.IsZero() {
		return nil, ErrInvalidInterval
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:          uuid.New(),
		resourceID:  resourceID,
		unitID:      unitID,
		userID:      userID,
		interval:    interval,
		status:      StatusPending,
		price:       price,
		isRecurring: groupID != nil,
		groupID:     groupID,
		note:        note,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReservation(
	id, resourceID uuid.UUID,
	unitID *uuid.UUID,
	userID uuid.UUID,
	interval Interval,
	status Status,
	price decimal.Decimal,
	groupID *uuid.UUID,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		resourceID:  resourceID,
		unitID:      unitID,
		userID:      userID,
		interval:    interval,
		status:      status,
		price:       price,
		isRecurring: groupID != nil,
		groupID:     groupID,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

var ErrNegativePrice = errs.New("price cannot be negative")

// Apply moves the reservation to the action's target status.
func (r *Reservation) Apply(action Action, note Note, now time.Time) error {
	if !action.Applies(r.status) {
		return errs.Wrapf(ErrInvalidTransition, "%s from %s", action, r.status)
	}
	r.status = action.TargetStatus()
	if !note.IsEmpty() {
		r.note = note
	}
	r.updatedAt = now
	return nil
}

func (r *Reservation) Snapshot() ReservedInterval {
	return ReservedInterval{
		ID:          r.id,
		UnitID:      r.unitID,
		Interval:    r.interval,
		Status:      r.status,
		IsRecurring: r.isRecurring,
		GroupID:     r.groupID,
	}
}

func (r *Reservation) HasStarted(now time.Time) bool {
	return !now.Before(r.interval.Start())
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) ResourceID() uuid.UUID    { return r.resourceID }
func (r *Reservation) UnitID() *uuid.UUID       { return r.unitID }
func (r *Reservation) UserID() uuid.UUID        { return r.userID }
func (r *Reservation) Interval() Interval       { return r.interval }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) Price() decimal.Decimal   { return r.price }
func (r *Reservation) IsRecurring() bool        { return r.isRecurring }
func (r *Reservation) GroupID() *uuid.UUID      { return r.groupID }
func (r *Reservation) Note() Note               { return r.note }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
