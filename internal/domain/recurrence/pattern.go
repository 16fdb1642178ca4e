package recurrence

import (
	"strings"
	"time"

	"facility-booking/internal/pkg/errs"
)

var ErrInvalidPattern = errs.New("recurrence: invalid pattern")

// Pattern is how far apart consecutive occurrences of a series are.
type Pattern string

const (
	PatternWeekly   Pattern = "weekly"
	PatternBiweekly Pattern = "biweekly"
	PatternMonthly  Pattern = "monthly"
)

func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", errs.Wrapf(ErrInvalidPattern, "%q", s)
	}
	return p, nil
}

func (p Pattern) IsValid() bool {
	switch p {
	case PatternWeekly, PatternBiweekly, PatternMonthly:
		return true
	default:
		return false
	}
}

func (p Pattern) String() string {
	return string(p)
}

// nth returns the start of occurrence i, always derived from the anchor so that a
// clamped month (Jan 31 -> Feb 28) does not shift later months.
func (p Pattern) nth(anchor time.Time, i int) time.Time {
	y, m, d := anchor.Date()
	hh, mm, ss := anchor.Clock()
	ns := anchor.Nanosecond()
	loc := anchor.Location()

	switch p {
	case PatternWeekly:
		return time.Date(y, m, d+7*i, hh, mm, ss, ns, loc)
	case PatternBiweekly:
		return time.Date(y, m, d+14*i, hh, mm, ss, ns, loc)
	case PatternMonthly:
		target := time.Date(y, m+time.Month(i), 1, hh, mm, ss, ns, loc)
		return time.Date(target.Year(), target.Month(), min(d, daysIn(target.Year(), target.Month(), loc)), hh, mm, ss, ns, loc)
	default:
		return time.Time{}
	}
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
