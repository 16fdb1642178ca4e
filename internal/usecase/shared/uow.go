package shared

import (
	"context"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serializable transaction for write operations with retry logic.
	// fn may run more than once and must not leak side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for consistent snapshot reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
}

type ReservationRepository interface {
	// ListActiveInWindow returns the pending and approved reservations of a resource that
	// overlap window, as conflict detector snapshots.
	ListActiveInWindow(ctx context.Context, resourceID uuid.UUID, window reservation.Interval) ([]reservation.ReservedInterval, error)
	ListInWindow(ctx context.Context, resourceID uuid.UUID, window reservation.Interval) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*reservation.Reservation, error)
	CreateBatch(ctx context.Context, rs []*reservation.Reservation) error
	UpdateStatus(ctx context.Context, r *reservation.Reservation) error
}

// CatalogReader serves the slow-changing part of a resource: its unit tree and pricing rules.
type CatalogReader interface {
	ResourceCatalog(ctx context.Context, resourceID uuid.UUID) (*readmodel.ResourceRM, error)
}
