package readstore

//go:generate mockgen -source=catalog.go -destination=../../testutil/mock/readstore/catalog.go -package=readstoremock

import (
	"context"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/postgres"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetResourceByID(ctx context.Context, db postgres.DBTX, id uuid.UUID) (postgres.Resources, error)
	ListUnitsByResource(ctx context.Context, db postgres.DBTX, resourceID uuid.UUID) ([]postgres.ResourceUnits, error)
	ListPricingRulesByResource(ctx context.Context, db postgres.DBTX, resourceID uuid.UUID) ([]postgres.PricingRules, error)
}

// CatalogReadStore loads a resource with its unit tree and pricing rules straight from Postgres.
type CatalogReadStore struct {
	queries CatalogReadQueries
	db      postgres.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db postgres.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CatalogReadStore) ResourceCatalog(ctx context.Context, resourceID uuid.UUID) (*readmodel.ResourceRM, error) {
	res, err := s.queries.GetResourceByID(ctx, s.db, resourceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("resource not found", err, errs.ErrResourceNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	units, err := s.queries.ListUnitsByResource(ctx, s.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list units", err)
	}
	rules, err := s.queries.ListPricingRulesByResource(ctx, s.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}

	rm := &readmodel.ResourceRM{
		ID:    res.ID,
		Name:  res.Name,
		Units: make([]readmodel.UnitRM, 0, len(units)),
		Rules: make([]readmodel.RuleRM, 0, len(rules)),
	}
	for _, u := range units {
		rm.Units = append(rm.Units, readmodel.UnitRM{
			ID:                     u.ID,
			Name:                   u.Name,
			ParentID:               pgconv.UUIDPtrFromPgtype(u.ParentID),
			AllowsWholeUnitBooking: u.AllowsWholeUnitBooking,
		})
	}
	for _, r := range rules {
		rule, err := toRuleRM(r)
		if err != nil {
			return nil, err
		}
		rm.Rules = append(rm.Rules, rule)
	}
	return rm, nil
}

func toRuleRM(row postgres.PricingRules) (readmodel.RuleRM, error) {
	rule := readmodel.RuleRM{
		ID:                   row.ID,
		Position:             int(row.Position),
		ForRoles:             row.ForRoles,
		Model:                row.Model,
		FixedDurationMinutes: pgconv.IntPtrFromPgtype(row.FixedDurationMinutes),
	}

	var err error
	if rule.HourlyMember, err = pgconv.DecimalPtrFromNumeric(row.HourlyMember); err != nil {
		return rule, errs.Wrapf(err, "rule %s hourly_member", row.ID)
	}
	if rule.HourlyNonMember, err = pgconv.DecimalPtrFromNumeric(row.HourlyNonMember); err != nil {
		return rule, errs.Wrapf(err, "rule %s hourly_non_member", row.ID)
	}
	if rule.DailyMember, err = pgconv.DecimalPtrFromNumeric(row.DailyMember); err != nil {
		return rule, errs.Wrapf(err, "rule %s daily_member", row.ID)
	}
	if rule.DailyNonMember, err = pgconv.DecimalPtrFromNumeric(row.DailyNonMember); err != nil {
		return rule, errs.Wrapf(err, "rule %s daily_non_member", row.ID)
	}
	if rule.FixedMember, err = pgconv.DecimalPtrFromNumeric(row.FixedMember); err != nil {
		return rule, errs.Wrapf(err, "rule %s fixed_member", row.ID)
	}
	if rule.FixedNonMember, err = pgconv.DecimalPtrFromNumeric(row.FixedNonMember); err != nil {
		return rule, errs.Wrapf(err, "rule %s fixed_non_member", row.ID)
	}
	return rule, nil
}
