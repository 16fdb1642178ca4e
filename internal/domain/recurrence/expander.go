package recurrence

import (
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultMaxOccurrences = 366

var (
	ErrInvalidInterval    = reservation.ErrInvalidInterval
	ErrUntilBeforeAnchor  = errs.New("recurrence: series end date is before the first occurrence")
	ErrTooManyOccurrences = errs.New("recurrence: series exceeds the occurrence limit")
)

// Series is a recurring booking: the anchor is the first occurrence, Until the last
// calendar day on which an occurrence may start.
type Series struct {
	Anchor  reservation.Interval
	Pattern Pattern
	Until   time.Time
}

type Occurrence struct {
	Start   time.Time
	End     time.Time
	GroupID uuid.UUID
}

func (o Occurrence) Interval() reservation.Interval {
	return reservation.MustInterval(o.Start, o.End)
}

// Expansion is an expanded series. Occurrences are in chronological order and the
// first one is the representative.
type Expansion struct {
	GroupID     uuid.UUID
	Occurrences []Occurrence
}

func (e Expansion) Intervals() []reservation.Interval {
	out := make([]reservation.Interval, len(e.Occurrences))
	for i, o := range e.Occurrences {
		out[i] = o.Interval()
	}
	return out
}

func (e Expansion) Representative() Occurrence {
	return e.Occurrences[0]
}

// Expander turns series into dated occurrences. Calendar arithmetic (day-of-month,
// the inclusive end date) happens in the expander's location.
type Expander struct {
	location       *time.Location
	maxOccurrences int
	newID          func() uuid.UUID
}

type Option func(*Expander)

// WithIDGenerator replaces uuid.New for group ids.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(e *Expander) {
		e.newID = fn
	}
}

// NewExpander uses UTC when loc is nil and DefaultMaxOccurrences when maxOccurrences <= 0.
func NewExpander(loc *time.Location, maxOccurrences int, opts ...Option) *Expander {
	if loc == nil {
		loc = time.UTC
	}
	if maxOccurrences <= 0 {
		maxOccurrences = DefaultMaxOccurrences
	}
	e := &Expander{location: loc, maxOccurrences: maxOccurrences, newID: uuid.New}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Expander) Location() *time.Location { return e.location }

func (e *Expander) Expand(s Series) (Expansion, error) {
	if s.Anchor.IsZero() {
		return Expansion{}, ErrInvalidInterval
	}
	if !s.Pattern.IsValid() {
		return Expansion{}, errs.Wrapf(ErrInvalidPattern, "%q", s.Pattern)
	}

	anchor := s.Anchor.Start().In(e.location)
	duration := s.Anchor.Duration()
	lastDay := dateOf(s.Until.In(e.location))
	if lastDay.Before(dateOf(anchor)) {
		return Expansion{}, errs.Wrapf(ErrUntilBeforeAnchor, "until=%s anchor=%s", lastDay.Format(time.DateOnly), anchor.Format(time.DateOnly))
	}

	groupID := e.newID()
	var occurrences []Occurrence
	for i := 0; ; i++ {
		start := s.Pattern.nth(anchor, i)
		if dateOf(start).After(lastDay) {
			break
		}
		if len(occurrences) == e.maxOccurrences {
			return Expansion{}, errs.Wrapf(ErrTooManyOccurrences, "limit %d", e.maxOccurrences)
		}
		occurrences = append(occurrences, Occurrence{
			Start:   start,
			End:     start.Add(duration),
			GroupID: groupID,
		})
	}

	return Expansion{GroupID: groupID, Occurrences: occurrences}, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
