package postgres

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Resources struct {
	ID        uuid.UUID          `db:"id"`
	Name      string             `db:"name"`
	CreatedAt pgtype.Timestamptz `db:"created_at"`
}

type ResourceUnits struct {
	ID                     uuid.UUID   `db:"id"`
	ResourceID             uuid.UUID   `db:"resource_id"`
	ParentID               pgtype.UUID `db:"parent_id"`
	Name                   string      `db:"name"`
	AllowsWholeUnitBooking bool        `db:"allows_whole_unit_booking"`
}

type PricingRules struct {
	ID                   uuid.UUID      `db:"id"`
	ResourceID           uuid.UUID      `db:"resource_id"`
	Position             int32          `db:"position"`
	ForRoles             []string       `db:"for_roles"`
	Model                string         `db:"model"`
	HourlyMember         pgtype.Numeric `db:"hourly_member"`
	HourlyNonMember      pgtype.Numeric `db:"hourly_non_member"`
	DailyMember          pgtype.Numeric `db:"daily_member"`
	DailyNonMember       pgtype.Numeric `db:"daily_non_member"`
	FixedMember          pgtype.Numeric `db:"fixed_member"`
	FixedNonMember       pgtype.Numeric `db:"fixed_non_member"`
	FixedDurationMinutes pgtype.Int4    `db:"fixed_duration_minutes"`
}

type Reservations struct {
	ID          uuid.UUID          `db:"id"`
	ResourceID  uuid.UUID          `db:"resource_id"`
	UnitID      pgtype.UUID        `db:"unit_id"`
	UserID      uuid.UUID          `db:"user_id"`
	StartTime   pgtype.Timestamptz `db:"start_time"`
	EndTime     pgtype.Timestamptz `db:"end_time"`
	Status      string             `db:"status"`
	Price       pgtype.Numeric     `db:"price"`
	IsRecurring bool               `db:"is_recurring"`
	GroupID     pgtype.UUID        `db:"group_id"`
	Note        string             `db:"note"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz `db:"updated_at"`
}

// ReservationViewRow is a reservation joined with its unit name. UnitName is NULL for
// whole-resource bookings.
type ReservationViewRow struct {
	Reservations
	UnitName pgtype.Text `db:"unit_name"`
}
