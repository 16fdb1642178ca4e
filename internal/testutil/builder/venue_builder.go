//go:build unit || integration

package builder

import (
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venue is a sports hall: Hall A (bookable whole) split into Court 1 and Court 2,
// plus a separate Hall B.
type Venue struct {
	ResourceID uuid.UUID
	HallA      uuid.UUID
	Court1     uuid.UUID
	Court2     uuid.UUID
	HallB      uuid.UUID
	Rules      []readmodel.RuleRM
}

func NewVenue() *Venue {
	return &Venue{
		ResourceID: uuid.New(),
		HallA:      uuid.New(),
		Court1:     uuid.New(),
		Court2:     uuid.New(),
		HallB:      uuid.New(),
	}
}

func (v *Venue) With(mutate func(*Venue)) *Venue {
	mutate(v)
	return v
}

// WithHourlyDefault adds a default hourly rule: 20 for members, 30 otherwise.
func (v *Venue) WithHourlyDefault() *Venue {
	v.Rules = append(v.Rules, readmodel.RuleRM{
		ID:              uuid.New(),
		Position:        len(v.Rules),
		Model:           "hourly",
		HourlyMember:    Money("20"),
		HourlyNonMember: Money("30"),
	})
	return v
}

// WithAdminFree adds a free rule for administrators.
func (v *Venue) WithAdminFree() *Venue {
	v.Rules = append(v.Rules, readmodel.RuleRM{
		ID:       uuid.New(),
		Position: len(v.Rules),
		ForRoles: []string{"system:admin"},
		Model:    "free",
	})
	return v
}

func (v *Venue) BuildReadModel() *readmodel.ResourceRM {
	hallA := v.HallA
	return &readmodel.ResourceRM{
		ID:   v.ResourceID,
		Name: "Sports Centre",
		Units: []readmodel.UnitRM{
			{ID: v.HallA, Name: "Hall A", AllowsWholeUnitBooking: true},
			{ID: v.Court1, Name: "Court 1", ParentID: &hallA},
			{ID: v.Court2, Name: "Court 2", ParentID: &hallA},
			{ID: v.HallB, Name: "Hall B"},
		},
		Rules: v.Rules,
	}
}

func Money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
