package readmodel

import (
	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResourceRM is the cacheable catalog entry of one resource: its unit tree and its ordered
// pricing rule set. Domain values are rebuilt from it on every use.
type ResourceRM struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Units []UnitRM  `json:"units"`
	Rules []RuleRM  `json:"rules"`
}

type UnitRM struct {
	ID                     uuid.UUID  `json:"id"`
	Name                   string     `json:"name"`
	ParentID               *uuid.UUID `json:"parent_id,omitempty"`
	AllowsWholeUnitBooking bool       `json:"allows_whole_unit_booking"`
}

type RuleRM struct {
	ID                   uuid.UUID        `json:"id"`
	Position             int              `json:"position"`
	ForRoles             []string         `json:"for_roles"`
	Model                string           `json:"model"`
	HourlyMember         *decimal.Decimal `json:"hourly_member,omitempty"`
	HourlyNonMember      *decimal.Decimal `json:"hourly_non_member,omitempty"`
	DailyMember          *decimal.Decimal `json:"daily_member,omitempty"`
	DailyNonMember       *decimal.Decimal `json:"daily_non_member,omitempty"`
	FixedMember          *decimal.Decimal `json:"fixed_member,omitempty"`
	FixedNonMember       *decimal.Decimal `json:"fixed_non_member,omitempty"`
	FixedDurationMinutes *int             `json:"fixed_duration_minutes,omitempty"`
}

func (r *ResourceRM) Tree() (*resource.Tree, error) {
	res, err := resource.NewResource(r.ID, r.Name)
	if err != nil {
		return nil, errs.Wrapf(err, "resource %s", r.ID)
	}

	units := make([]resource.Unit, 0, len(r.Units))
	for _, u := range r.Units {
		unit, err := resource.NewUnit(u.ID, u.Name, u.ParentID, u.AllowsWholeUnitBooking)
		if err != nil {
			return nil, errs.Wrapf(err, "unit %s", u.ID)
		}
		units = append(units, unit)
	}
	return resource.NewTree(res, units)
}

// PricingRules returns the rule set in position order. Rows are expected to arrive sorted.
func (r *ResourceRM) PricingRules() ([]pricing.Rule, error) {
	rules := make([]pricing.Rule, 0, len(r.Rules))
	for _, rm := range r.Rules {
		rule, err := rm.toDomain()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (rm RuleRM) toDomain() (pricing.Rule, error) {
	model, err := pricing.ParseModel(rm.Model)
	if err != nil {
		return pricing.Rule{}, errs.Wrapf(err, "rule %s", rm.ID)
	}
	roles, err := pricing.ParseRoleTags(rm.ForRoles)
	if err != nil {
		return pricing.Rule{}, errs.Wrapf(err, "rule %s", rm.ID)
	}

	return pricing.Rule{
		ID:                   rm.ID,
		ForRoles:             roles,
		Model:                model,
		Hourly:               pricing.RatePair{Member: rm.HourlyMember, NonMember: rm.HourlyNonMember},
		Daily:                pricing.RatePair{Member: rm.DailyMember, NonMember: rm.DailyNonMember},
		Fixed:                pricing.RatePair{Member: rm.FixedMember, NonMember: rm.FixedNonMember},
		FixedDurationMinutes: rm.FixedDurationMinutes,
	}, nil
}
