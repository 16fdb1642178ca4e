//go:build unit || integration

package builder

import (
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	UnitID     *uuid.UUID
	UserID     uuid.UUID
	Start      time.Time
	End        time.Time
	Status     reservation.Status
	Price      decimal.Decimal
	GroupID    *uuid.UUID
	Note       string
	CreatedAt  time.Time
}

func NewReservationBuilder(resourceID uuid.UUID) *ReservationBuilder {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:         uuid.New(),
		ResourceID: resourceID,
		UserID:     uuid.New(),
		Start:      start,
		End:        start.Add(time.Hour),
		Status:     reservation.StatusPending,
		Price:      decimal.Zero,
		CreatedAt:  start.Add(-24 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) On(unitID uuid.UUID) *ReservationBuilder {
	b.UnitID = &unitID
	return b
}

func (b *ReservationBuilder) At(start time.Time, d time.Duration) *ReservationBuilder {
	b.Start, b.End = start, start.Add(d)
	return b
}

func (b *ReservationBuilder) Build() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.ResourceID, b.UnitID, b.UserID,
		reservation.MustInterval(b.Start, b.End),
		b.Status, b.Price, b.GroupID, reservation.NewNote(b.Note),
		b.CreatedAt, b.CreatedAt,
	)
}

// Series builds n weekly occurrences sharing one group id, starting at the builder's slot.
func (b *ReservationBuilder) Series(n int) []*reservation.Reservation {
	groupID := uuid.New()
	out := make([]*reservation.Reservation, 0, n)
	for i := range n {
		occ := *b
		occ.ID = uuid.New()
		occ.GroupID = &groupID
		occ.Start = b.Start.AddDate(0, 0, 7*i)
		occ.End = b.End.AddDate(0, 0, 7*i)
		out = append(out, occ.Build())
	}
	return out
}

func (b *ReservationBuilder) BuildReadModel(unitName string) readmodel.ReservationRM {
	return readmodel.FromReservation(b.Build(), unitName)
}

// BuildCreateRequest returns the JSON body of a create call for the builder's slot.
func (b *ReservationBuilder) BuildCreateRequest() map[string]any {
	body := map[string]any{
		"resource_id": b.ResourceID.String(),
		"start_time":  b.Start.Format(time.RFC3339),
		"end_time":    b.End.Format(time.RFC3339),
	}
	if b.UnitID != nil {
		body["unit_id"] = b.UnitID.String()
	}
	if b.Note != "" {
		body["note"] = b.Note
	}
	return body
}
