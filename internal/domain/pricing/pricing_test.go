//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func minutes(n int) *int { return &n }

func span(d time.Duration) reservation.Interval {
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	return reservation.MustInterval(start, start.Add(d))
}

func assertPrice(t *testing.T, want string, got pricing.PriceResult) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got.Price), "price: want %s, got %s", want, got.Price)
}

func strPtr(s string) *string { return &s }

func TestResolve_Cascade(t *testing.T) {
	adminRule := pricing.Rule{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.AdminTag()}, Model: pricing.ModelFree}
	coachRule := pricing.Rule{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.CustomRoleTag("coach")}, Model: pricing.ModelFree}
	userRule := pricing.Rule{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.StandardUserTag()}, Model: pricing.ModelHourly}
	defaultRule := pricing.Rule{ID: uuid.New(), Model: pricing.ModelHourly}
	all := []pricing.Rule{defaultRule, userRule, coachRule, adminRule}

	cases := []struct {
		name    string
		profile pricing.RoleProfile
		rules   []pricing.Rule
		want    *uuid.UUID
	}{
		{"admin wins over custom role", pricing.RoleProfile{IsAdmin: true, CustomRoleID: strPtr("coach"), SystemRole: pricing.SystemRoleAdmin}, all, &adminRule.ID},
		{"custom role before standard user", pricing.RoleProfile{CustomRoleID: strPtr("coach"), SystemRole: pricing.SystemRoleUser}, all, &coachRule.ID},
		{"plain user", pricing.RoleProfile{SystemRole: pricing.SystemRoleUser}, all, &userRule.ID},
		{"admin without admin rule falls to default", pricing.RoleProfile{IsAdmin: true, SystemRole: pricing.SystemRoleAdmin}, []pricing.Rule{userRule, defaultRule}, &defaultRule.ID},
		{"custom role user does not use standard user rule", pricing.RoleProfile{CustomRoleID: strPtr("guest"), SystemRole: pricing.SystemRoleUser}, []pricing.Rule{userRule, defaultRule}, &defaultRule.ID},
		{"unknown custom role without default", pricing.RoleProfile{CustomRoleID: strPtr("guest"), SystemRole: pricing.SystemRoleUser}, []pricing.Rule{userRule}, nil},
		{"empty rule set", pricing.RoleProfile{SystemRole: pricing.SystemRoleUser}, nil, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := pricing.Resolve(c.profile, c.rules)
			require.NoError(t, err)
			if c.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *c.want, got.ID)
		})
	}
}

func TestResolve_FirstMatchingRuleInOrderWins(t *testing.T) {
	first := pricing.Rule{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.StandardUserTag(), pricing.CustomRoleTag("x")}, Model: pricing.ModelFree}
	second := pricing.Rule{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.StandardUserTag()}, Model: pricing.ModelHourly}

	got, err := pricing.Resolve(pricing.RoleProfile{SystemRole: pricing.SystemRoleUser}, []pricing.Rule{first, second})
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestResolve_CustomRoleNamedLikeSystemRole(t *testing.T) {
	adminRule := pricing.Rule{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.AdminTag()}, Model: pricing.ModelFree}

	got, err := pricing.Resolve(pricing.RoleProfile{CustomRoleID: strPtr("admin"), SystemRole: pricing.SystemRoleUser}, []pricing.Rule{adminRule})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolve_AmbiguousDefault(t *testing.T) {
	rules := []pricing.Rule{{ID: uuid.New(), Model: pricing.ModelFree}, {ID: uuid.New(), Model: pricing.ModelHourly}}

	_, err := pricing.Resolve(pricing.RoleProfile{IsAdmin: true}, rules)
	require.ErrorIs(t, err, pricing.ErrAmbiguousDefaultRule)
	assert.True(t, errs.Is(err, errs.ErrAmbiguousDefaultRule))
}

func TestResolve_DeterministicForEveryProfile(t *testing.T) {
	rules := []pricing.Rule{
		{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.CustomRoleTag("coach")}, Model: pricing.ModelFree},
		{ID: uuid.New(), ForRoles: []pricing.RoleTag{pricing.AdminTag()}, Model: pricing.ModelFree},
		{ID: uuid.New(), Model: pricing.ModelHourly},
	}
	for _, isAdmin := range []bool{false, true} {
		for _, custom := range []*string{nil, strPtr("coach"), strPtr("other")} {
			for _, role := range []pricing.SystemRole{pricing.SystemRoleAdmin, pricing.SystemRoleUser} {
				for _, member := range []bool{false, true} {
					p := pricing.RoleProfile{IsAdmin: isAdmin, CustomRoleID: custom, SystemRole: role, IsMember: member}
					a, err := pricing.Resolve(p, rules)
					require.NoError(t, err)
					require.NotNil(t, a, "a default rule always exists")
					b, err := pricing.Resolve(p, rules)
					require.NoError(t, err)
					assert.Equal(t, a.ID, b.ID)
				}
			}
		}
	}
}

func TestScenario_CoachRuleWinsOverDefault(t *testing.T) {
	profile := pricing.RoleProfile{CustomRoleID: strPtr("coach"), SystemRole: pricing.SystemRoleUser, IsMember: true}
	rules := []pricing.Rule{
		{ForRoles: []pricing.RoleTag{pricing.CustomRoleTag("coach")}, Model: pricing.ModelFree},
		{Model: pricing.ModelHourly, Hourly: pricing.RatePair{Member: money("100")}},
	}

	got, _, err := pricing.Quote(profile, rules, span(2*time.Hour))
	require.NoError(t, err)
	assertPrice(t, "0", got)
	assert.True(t, got.IsFree)
	assert.Equal(t, pricing.ModelFree, got.Model)
}

func TestScenario_DefaultHourlyForMember(t *testing.T) {
	profile := pricing.RoleProfile{SystemRole: pricing.SystemRoleUser, IsMember: true}
	rules := []pricing.Rule{
		{ForRoles: []pricing.RoleTag{pricing.AdminTag()}, Model: pricing.ModelFree},
		{Model: pricing.ModelHourly, Hourly: pricing.RatePair{Member: money("100"), NonMember: money("150")}},
	}

	got, rule, err := pricing.Quote(profile, rules, span(2*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, rule)
	assert.True(t, rule.IsDefault())
	assertPrice(t, "200", got)
	assert.False(t, got.IsFree)
	assert.Equal(t, pricing.UnitHour, got.Breakdown.Unit)
	assert.True(t, decimal.NewFromInt(2).Equal(got.Breakdown.Quantity))
}

func TestScenario_FixedDuration(t *testing.T) {
	rule := &pricing.Rule{
		Model:                pricing.ModelFixedDuration,
		FixedDurationMinutes: minutes(120),
		Fixed:                pricing.RatePair{Member: money("500")},
		Hourly:               pricing.RatePair{Member: money("100")},
	}

	short := pricing.Calculate(rule, span(90*time.Minute), true)
	assertPrice(t, "500", short)
	assert.Equal(t, pricing.UnitFixed, short.Breakdown.Unit)
	assert.False(t, short.Breakdown.FellBack)

	atLimit := pricing.Calculate(rule, span(120*time.Minute), true)
	assertPrice(t, "500", atLimit)

	long := pricing.Calculate(rule, span(180*time.Minute), true)
	assertPrice(t, "300", long)
	assert.True(t, long.Breakdown.FellBack)
	assert.Equal(t, pricing.UnitHour, long.Breakdown.Unit)

	noHourly := *rule
	noHourly.Hourly = pricing.RatePair{}
	assertPrice(t, "500", pricing.Calculate(&noHourly, span(180*time.Minute), true))

	noThreshold := *rule
	noThreshold.FixedDurationMinutes = nil
	assertPrice(t, "500", pricing.Calculate(&noThreshold, span(10*time.Hour), true))
}

func TestCalculate_MissingRateDegradesToFree(t *testing.T) {
	cases := []struct {
		name   string
		rule   pricing.Rule
		reason string
	}{
		{"hourly", pricing.Rule{Model: pricing.ModelHourly, Daily: pricing.RatePair{Member: money("10")}}, "no hourly rate configured"},
		{"daily", pricing.Rule{Model: pricing.ModelDaily}, "no daily rate configured"},
		{"fixed", pricing.Rule{Model: pricing.ModelFixedDuration, FixedDurationMinutes: minutes(60)}, "no fixed rate configured"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := pricing.Calculate(&c.rule, span(time.Hour), false)
			assertPrice(t, "0", got)
			assert.True(t, got.IsFree)
			assert.Equal(t, c.reason, got.Reason)
			assert.ErrorIs(t, got.Warning, pricing.ErrMissingRate)
		})
	}

	got := pricing.Calculate(nil, span(time.Hour), true)
	assert.True(t, got.IsFree)
	assert.NoError(t, got.Warning)
}

// Every combination of membership and configured slots.
func TestRatePair_Resolve(t *testing.T) {
	m, n := money("80"), money("120")

	cases := []struct {
		name     string
		pair     pricing.RatePair
		isMember bool
		want     *decimal.Decimal
	}{
		{"member, both set", pricing.RatePair{Member: m, NonMember: n}, true, m},
		{"member, member only", pricing.RatePair{Member: m}, true, m},
		{"member, non-member only", pricing.RatePair{NonMember: n}, true, n},
		{"member, none", pricing.RatePair{}, true, nil},
		{"non-member, both set", pricing.RatePair{Member: m, NonMember: n}, false, n},
		{"non-member, member only", pricing.RatePair{Member: m}, false, m},
		{"non-member, non-member only", pricing.RatePair{NonMember: n}, false, n},
		{"non-member, none", pricing.RatePair{}, false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.pair.Resolve(c.isMember)
			if c.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, c.want, got)
		})
	}
}

func TestCalculate_Daily(t *testing.T) {
	rule := &pricing.Rule{Model: pricing.ModelDaily, Daily: pricing.RatePair{NonMember: money("1000")}}

	cases := []struct {
		d    time.Duration
		want string
	}{
		{time.Hour, "1000"},
		{24 * time.Hour, "1000"},
		{24*time.Hour + time.Minute, "2000"},
		{72 * time.Hour, "3000"},
	}
	for _, c := range cases {
		assertPrice(t, c.want, pricing.Calculate(rule, span(c.d), false))
	}
}

func TestCalculate_RoundsHalfUpToCents(t *testing.T) {
	rule := &pricing.Rule{Model: pricing.ModelHourly, Hourly: pricing.RatePair{Member: money("10.01")}}

	// 10.01 * 0.5 = 5.005
	got := pricing.Calculate(rule, span(30*time.Minute), true)
	assertPrice(t, "5.01", got)
	assert.Equal(t, int32(-2), got.Price.Exponent())

	// 10.01 / 3 = 3.33666...
	assertPrice(t, "3.34", pricing.Calculate(rule, span(20*time.Minute), true))
}

func TestCalculate_MonotonicInDuration(t *testing.T) {
	rules := []*pricing.Rule{
		{Model: pricing.ModelHourly, Hourly: pricing.RatePair{Member: money("33.33")}},
		{Model: pricing.ModelDaily, Daily: pricing.RatePair{Member: money("99.99")}},
	}
	for _, rule := range rules {
		prev := decimal.Zero
		for m := 1; m <= 4*24*60; m += 17 {
			got := pricing.Calculate(rule, span(time.Duration(m)*time.Minute), true).Price
			require.False(t, got.LessThan(prev), "%s: %d minutes priced %s after %s", rule.Model, m, got, prev)
			prev = got
		}
	}
}

func TestBoundCalculator(t *testing.T) {
	rule := &pricing.Rule{Model: pricing.ModelHourly, Hourly: pricing.RatePair{Member: money("40"), NonMember: money("60")}}

	var pc reservation.PriceCalculator = pricing.BoundCalculator{Rule: rule, IsMember: false}
	assert.True(t, decimal.NewFromInt(90).Equal(pc.PriceFor(span(90*time.Minute))))
}
