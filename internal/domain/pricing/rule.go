package pricing

import (
	"slices"

	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAmbiguousDefaultRule = errs.ErrAmbiguousDefaultRule
	ErrMissingRate          = errs.ErrMissingRate
	ErrInvalidModel         = errs.New("invalid pricing model")
	ErrNegativeRate         = errs.New("rate cannot be negative")
)

type Model string

const (
	ModelFree          Model = "free"
	ModelHourly        Model = "hourly"
	ModelDaily         Model = "daily"
	ModelFixedDuration Model = "fixed_duration"
)

func ParseModel(s string) (Model, error) {
	m := Model(s)
	switch m {
	case ModelFree, ModelHourly, ModelDaily, ModelFixedDuration:
		return m, nil
	default:
		return "", errs.Wrapf(ErrInvalidModel, "%q", s)
	}
}

// RatePair holds the member and non-member price for one billing unit. Either slot may be unset.
type RatePair struct {
	Member    *decimal.Decimal
	NonMember *decimal.Decimal
}

// Resolve picks the caller's own slot and falls back to the other one.
// A nil result means neither slot is configured.
func (p RatePair) Resolve(isMember bool) *decimal.Decimal {
	if isMember {
		return patch.FirstNonNil(p.Member, p.NonMember)
	}
	return patch.FirstNonNil(p.NonMember, p.Member)
}

func (p RatePair) IsEmpty() bool {
	return p.Member == nil && p.NonMember == nil
}

func (p RatePair) validate() error {
	for _, r := range []*decimal.Decimal{p.Member, p.NonMember} {
		if r != nil && r.IsNegative() {
			return errs.Wrapf(ErrNegativeRate, "%s", r)
		}
	}
	return nil
}

// Rule is one entry of a resource's ordered pricing rule set. An empty ForRoles marks
// the default rule.
type Rule struct {
	ID                   uuid.UUID
	ForRoles             []RoleTag
	Model                Model
	Hourly               RatePair
	Daily                RatePair
	Fixed                RatePair
	FixedDurationMinutes *int
}

func (r Rule) IsDefault() bool {
	return len(r.ForRoles) == 0
}

func (r Rule) AppliesTo(tag RoleTag) bool {
	return slices.Contains(r.ForRoles, tag)
}

func (r Rule) Validate() error {
	if _, err := ParseModel(string(r.Model)); err != nil {
		return err
	}
	for _, p := range []RatePair{r.Hourly, r.Daily, r.Fixed} {
		if err := p.validate(); err != nil {
			return errs.Wrapf(err, "rule %s", r.ID)
		}
	}
	if r.FixedDurationMinutes != nil && *r.FixedDurationMinutes <= 0 {
		return errs.Newf("rule %s: fixed duration must be positive", r.ID)
	}
	return nil
}

// ValidateRuleSet rejects rule sets an administrator must fix before they can be used.
func ValidateRuleSet(rules []Rule) error {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return checkSingleDefault(rules)
}

func checkSingleDefault(rules []Rule) error {
	defaults := 0
	for _, r := range rules {
		if r.IsDefault() {
			defaults++
		}
	}
	if defaults > 1 {
		return errs.Wrapf(ErrAmbiguousDefaultRule, "%d rules without roles", defaults)
	}
	return nil
}
