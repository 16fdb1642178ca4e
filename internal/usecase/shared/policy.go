package shared

import (
	"context"
	"time"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/recurrence"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingPolicy carries the deployment-level choices the booking use cases depend on.
type BookingPolicy struct {
	Location       *time.Location
	MaxOccurrences int
	Elapsed        recurrence.ElapsedPolicy
}

func NewBookingPolicy(cfg config.Config) BookingPolicy {
	p := BookingPolicy{
		Location:       cfg.Booking.Location(),
		MaxOccurrences: cfg.Booking.MaxOccurrences,
		Elapsed:        recurrence.SkipElapsed,
	}
	if cfg.Booking.CascadeIncludeElapsed {
		p.Elapsed = recurrence.IncludeElapsed
	}
	return p
}

// LoadCatalog reads a resource's catalog entry and rebuilds its tree and pricing rules.
func LoadCatalog(ctx context.Context, reader CatalogReader, resourceID uuid.UUID) (*resource.Tree, []pricing.Rule, error) {
	rm, err := reader.ResourceCatalog(ctx, resourceID)
	if err != nil {
		return nil, nil, err
	}
	tree, err := rm.Tree()
	if err != nil {
		return nil, nil, errs.Wrap(err, "build resource tree")
	}
	rules, err := rm.PricingRules()
	if err != nil {
		return nil, nil, errs.Wrap(err, "load pricing rules")
	}
	return tree, rules, nil
}
