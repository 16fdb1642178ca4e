package request

import (
	"time"

	"facility-booking/internal/pkg/ptr"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	UnitID               string    `form:"unit_id" binding:"omitempty,uuid"`
	Start                time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	End                  time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	ExcludeReservationID string    `form:"exclude_reservation_id" binding:"omitempty,uuid"`
}

func (q AvailabilityQuery) ToInput(resourceID uuid.UUID) queries.AvailabilityInput {
	return queries.AvailabilityInput{
		ResourceID:           resourceID,
		UnitID:               optionalUUID(q.UnitID),
		Start:                q.Start,
		End:                  q.End,
		ExcludeReservationID: optionalUUID(q.ExcludeReservationID),
	}
}

type QuoteQuery struct {
	Start time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	End   time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
}

func (q QuoteQuery) ToInput(resourceID uuid.UUID) queries.QuoteInput {
	return queries.QuoteInput{ResourceID: resourceID, Start: q.Start, End: q.End}
}

type GroupsQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
}

type LayoutQuery struct {
	// Day is a calendar date (YYYY-MM-DD) in the booking time zone.
	Day    string `form:"day" binding:"required,datetime=2006-01-02"`
	UnitID string `form:"unit_id" binding:"omitempty,uuid"`
}

func (q LayoutQuery) Unit() *uuid.UUID {
	return optionalUUID(q.UnitID)
}

func (q LayoutQuery) ParseDay(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, q.Day, loc)
}

// optionalUUID expects a value already checked by the uuid binding rule.
func optionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return ptr.Of(id)
}
