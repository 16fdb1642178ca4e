package reservation

import (
	"fmt"
	"time"

	"facility-booking/internal/pkg/errs"
)

var ErrInvalidInterval = errs.ErrInvalidInterval

// Interval is a half-open time range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, errs.Wrapf(ErrInvalidInterval, "start=%s end=%s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return Interval{start: start, end: end}, nil
}

// MustInterval is NewInterval for literals known to be valid.
func MustInterval(start, end time.Time) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) Start() time.Time { return iv.start }
func (iv Interval) End() time.Time   { return iv.end }

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// IsZero reports an interval that was never constructed.
func (iv Interval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}

// Overlaps uses half-open semantics: touching edges do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && iv.end.After(other.start)
}

// Intersect returns the shared window; ok is false when the intervals do not overlap.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	start := iv.start
	if other.start.After(start) {
		start = other.start
	}
	end := iv.end
	if other.end.Before(end) {
		end = other.end
	}
	return Interval{start: start, end: end}, true
}

func (iv Interval) Shift(d time.Duration) Interval {
	return Interval{start: iv.start.Add(d), end: iv.end.Add(d)}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
