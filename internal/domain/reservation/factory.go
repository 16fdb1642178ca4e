package reservation

import (
	"facility-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// BookingRequest describes reservations to create for one user on one unit.
// GroupID is set for recurring series; every slot then shares it.
type BookingRequest struct {
	ResourceID uuid.UUID
	UnitID     *uuid.UUID
	UserID     uuid.UUID
	Slots      []Interval
	GroupID    *uuid.UUID
	Note       Note
}

// CreateReservations builds one pending reservation per slot, priced by pc.
func (f *Factory) CreateReservations(req BookingRequest, pc PriceCalculator) ([]*Reservation, error) {
	if len(req.Slots) == 0 {
		return nil, ErrInvalidInterval
	}
	if pc == nil {
		pc = FreeCalculator{}
	}

	now := f.Clock.Now()
	out := make([]*Reservation, 0, len(req.Slots))
	for _, slot := range req.Slots {
		res, err := NewReservation(req.ResourceID, req.UnitID, req.UserID, slot, pc.PriceFor(slot), req.GroupID, req.Note, now)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
