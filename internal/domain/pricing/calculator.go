package pricing

import (
	"fmt"
	"time"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const pricePlaces = 2

var (
	nanosPerHour = decimal.NewFromInt(int64(time.Hour))
	day          = 24 * time.Hour
)

type BillingUnit string

const (
	UnitNone  BillingUnit = ""
	UnitHour  BillingUnit = "hour"
	UnitDay   BillingUnit = "day"
	UnitFixed BillingUnit = "fixed"
)

// Breakdown shows how a price was reached: BaseRate per Unit times Quantity.
// FellBack is set when a fixed-duration booking ran over and was billed hourly.
type Breakdown struct {
	BaseRate decimal.Decimal
	Quantity decimal.Decimal
	Unit     BillingUnit
	FellBack bool
}

type PriceResult struct {
	Price     decimal.Decimal
	IsFree    bool
	Reason    string
	Model     Model
	Breakdown Breakdown
	// Warning wraps ErrMissingRate when a misconfigured rule was priced as free.
	Warning error
}

// Calculate prices iv under rule. It never fails: a rule without a usable rate prices the
// booking as free and explains why in Reason.
func Calculate(rule *Rule, iv reservation.Interval, isMember bool) PriceResult {
	if rule == nil {
		return PriceResult{Price: decimal.Zero, IsFree: true, Model: ModelFree, Reason: "no pricing rule applies"}
	}

	d := iv.Duration()
	switch rule.Model {
	case ModelHourly:
		return hourly(rule, d, isMember)
	case ModelDaily:
		return daily(rule, d, isMember)
	case ModelFixedDuration:
		return fixedDuration(rule, d, isMember)
	default:
		return PriceResult{Price: decimal.Zero, IsFree: true, Model: ModelFree}
	}
}

func hourly(rule *Rule, d time.Duration, isMember bool) PriceResult {
	rate := rule.Hourly.Resolve(isMember)
	if rate == nil {
		return missingRate(ModelHourly, "hourly")
	}
	return priced(ModelHourly, *rate, hoursOf(d), UnitHour)
}

func daily(rule *Rule, d time.Duration, isMember bool) PriceResult {
	rate := rule.Daily.Resolve(isMember)
	if rate == nil {
		return missingRate(ModelDaily, "daily")
	}
	days := (d + day - 1) / day
	return priced(ModelDaily, *rate, decimal.NewFromInt(int64(days)), UnitDay)
}

// fixedDuration charges the fixed price up to the threshold. Longer bookings are billed
// hourly over the whole duration when the rule has an hourly rate, and at the fixed price
// otherwise. A rule without a threshold always charges the fixed price.
func fixedDuration(rule *Rule, d time.Duration, isMember bool) PriceResult {
	fixed := rule.Fixed.Resolve(isMember)
	within := rule.FixedDurationMinutes == nil || d <= time.Duration(*rule.FixedDurationMinutes)*time.Minute

	if !within {
		if rate := rule.Hourly.Resolve(isMember); rate != nil {
			res := priced(ModelFixedDuration, *rate, hoursOf(d), UnitHour)
			res.Breakdown.FellBack = true
			return res
		}
	}
	if fixed == nil {
		return missingRate(ModelFixedDuration, "fixed")
	}
	return priced(ModelFixedDuration, *fixed, decimal.NewFromInt(1), UnitFixed)
}

func hoursOf(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d)).Div(nanosPerHour)
}

func priced(m Model, rate, qty decimal.Decimal, unit BillingUnit) PriceResult {
	price := rate.Mul(qty).Round(pricePlaces)
	return PriceResult{
		Price:  price,
		IsFree: price.IsZero(),
		Model:  m,
		Breakdown: Breakdown{
			BaseRate: rate,
			Quantity: qty,
			Unit:     unit,
		},
	}
}

func missingRate(m Model, kind string) PriceResult {
	return PriceResult{
		Price:   decimal.Zero,
		IsFree:  true,
		Model:   m,
		Reason:  fmt.Sprintf("no %s rate configured", kind),
		Warning: errs.Wrapf(ErrMissingRate, "%s rate", kind),
	}
}

// Quote resolves the governing rule for profile and prices iv with it.
func Quote(profile RoleProfile, rules []Rule, iv reservation.Interval) (PriceResult, *Rule, error) {
	rule, err := Resolve(profile, rules)
	if err != nil {
		return PriceResult{}, nil, err
	}
	return Calculate(rule, iv, profile.IsMember), rule, nil
}

// BoundCalculator prices slots for one caller under an already resolved rule.
type BoundCalculator struct {
	Rule     *Rule
	IsMember bool
}

var _ reservation.PriceCalculator = BoundCalculator{}

func (b BoundCalculator) PriceFor(slot reservation.Interval) decimal.Decimal {
	return Calculate(b.Rule, slot, b.IsMember).Price
}
