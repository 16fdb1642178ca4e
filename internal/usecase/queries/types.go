package queries

//go:generate mockgen -destination=../../testutil/mock/usecase/queries.go -package=usecasemock facility-booking/internal/usecase/queries BookingQueries,ReservationQueries

import (
	"time"

	"facility-booking/internal/domain/layout"
	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AvailabilityInput struct {
	ResourceID           uuid.UUID
	UnitID               *uuid.UUID
	Start                time.Time
	End                  time.Time
	ExcludeReservationID *uuid.UUID
}

type QuoteInput struct {
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
}

type QuoteView struct {
	Result pricing.PriceResult
	// RuleID is nil when no rule applies and the booking is free.
	RuleID *uuid.UUID
}

// GroupView lists the occurrences of one series that fall inside the queried window.
type GroupView struct {
	ID             uuid.UUID
	Representative readmodel.ReservationRM
	Occurrences    []readmodel.ReservationRM
}

type LayoutEntry struct {
	Reservation readmodel.ReservationRM
	Placement   layout.Placement
}

type DayLayoutView struct {
	Day     time.Time
	UnitID  *uuid.UUID
	Entries []LayoutEntry
}

type ReservationPage struct {
	Items []readmodel.ReservationRM
	// Next is empty on the last page.
	Next string
}
