package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const getResourceByID = `SELECT id, name, created_at FROM resources WHERE id = $1`

func (q *Queries) GetResourceByID(ctx context.Context, db DBTX, id uuid.UUID) (Resources, error) {
	rows, err := db.Query(ctx, getResourceByID, id)
	if err != nil {
		return Resources{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Resources])
}

const listUnitsByResource = `SELECT id, resource_id, parent_id, name, allows_whole_unit_booking
FROM resource_units
WHERE resource_id = $1
ORDER BY name, id`

func (q *Queries) ListUnitsByResource(ctx context.Context, db DBTX, resourceID uuid.UUID) ([]ResourceUnits, error) {
	rows, err := db.Query(ctx, listUnitsByResource, resourceID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ResourceUnits])
}

const listPricingRulesByResource = `SELECT id, resource_id, position, for_roles, model,
	hourly_member, hourly_non_member, daily_member, daily_non_member,
	fixed_member, fixed_non_member, fixed_duration_minutes
FROM pricing_rules
WHERE resource_id = $1
ORDER BY position, id`

func (q *Queries) ListPricingRulesByResource(ctx context.Context, db DBTX, resourceID uuid.UUID) ([]PricingRules, error) {
	rows, err := db.Query(ctx, listPricingRulesByResource, resourceID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[PricingRules])
}
