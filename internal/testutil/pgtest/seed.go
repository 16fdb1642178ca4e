//go:build integration

package pgtest

import (
	"context"
	"testing"

	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/testutil/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedVenue writes the venue's resource, unit tree and pricing rules.
func SeedVenue(t *testing.T, pool *pgxpool.Pool, v *builder.Venue) {
	t.Helper()
	ctx := context.Background()
	rm := v.BuildReadModel()

	_, err := pool.Exec(ctx, `INSERT INTO resources (id, name) VALUES ($1, $2)`, rm.ID, rm.Name)
	require.NoError(t, err)

	// parents first; the builder lists them before their children
	for _, u := range rm.Units {
		_, err := pool.Exec(ctx,
			`INSERT INTO resource_units (id, resource_id, parent_id, name, allows_whole_unit_booking) VALUES ($1, $2, $3, $4, $5)`,
			u.ID, rm.ID, pgconv.UUIDPtrToPgtype(u.ParentID), u.Name, u.AllowsWholeUnitBooking)
		require.NoError(t, err)
	}

	for _, r := range rm.Rules {
		roles := r.ForRoles
		if roles == nil {
			roles = []string{}
		}
		_, err := pool.Exec(ctx, `INSERT INTO pricing_rules (
				id, resource_id, position, for_roles, model,
				hourly_member, hourly_non_member, daily_member, daily_non_member,
				fixed_member, fixed_non_member, fixed_duration_minutes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			r.ID, rm.ID, r.Position, roles, r.Model,
			pgconv.DecimalPtrToNumeric(r.HourlyMember), pgconv.DecimalPtrToNumeric(r.HourlyNonMember),
			pgconv.DecimalPtrToNumeric(r.DailyMember), pgconv.DecimalPtrToNumeric(r.DailyNonMember),
			pgconv.DecimalPtrToNumeric(r.FixedMember), pgconv.DecimalPtrToNumeric(r.FixedNonMember),
			pgconv.IntPtrToPgtype(r.FixedDurationMinutes))
		require.NoError(t, err)
	}
}
