package request

import (
	"strings"
	"time"

	"facility-booking/internal/pkg/ptr"
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecurrenceRequest struct {
	Pattern string `json:"pattern" binding:"required,oneof=weekly biweekly monthly"`
	// Until is a calendar date (YYYY-MM-DD) in the booking time zone.
	Until string `json:"until" binding:"required,datetime=2006-01-02"`
}

type CreateReservationRequest struct {
	ResourceID uuid.UUID          `json:"resource_id" binding:"required"`
	UnitID     *uuid.UUID         `json:"unit_id,omitempty"`
	StartTime  time.Time          `json:"start_time" binding:"required"`
	EndTime    time.Time          `json:"end_time" binding:"required"`
	Note       *string            `json:"note,omitempty" binding:"omitempty,max=1000"`
	Recurrence *RecurrenceRequest `json:"recurrence,omitempty"`
}

func (r CreateReservationRequest) GetNote() string {
	return strings.TrimSpace(ptr.Deref(r.Note, ""))
}

func (r CreateReservationRequest) ToInput(loc *time.Location) (commands.CreateReservationInput, error) {
	in := commands.CreateReservationInput{
		ResourceID: r.ResourceID,
		UnitID:     r.UnitID,
		Start:      r.StartTime,
		End:        r.EndTime,
		Note:       r.GetNote(),
	}
	if r.Recurrence != nil {
		until, err := time.ParseInLocation(time.DateOnly, r.Recurrence.Until, loc)
		if err != nil {
			return commands.CreateReservationInput{}, err
		}
		in.Recurrence = &commands.RecurrenceInput{Pattern: r.Recurrence.Pattern, Until: until}
	}
	return in, nil
}

// StatusActionRequest is the optional body of approve, reject and cancel calls.
type StatusActionRequest struct {
	Note string `json:"note" binding:"max=1000"`
}

type ListReservationsQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
