package repository

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/repository/reservation.go -package=repositorymock

import (
	"context"

	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/postgres"
	"facility-booking/internal/infra/repository/converter"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	InsertReservations(ctx context.Context, db postgres.DBTX, arg []postgres.Reservations) (int64, error)
	ListReservationsInWindow(ctx context.Context, db postgres.DBTX, arg postgres.ListReservationsInWindowParams) ([]postgres.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db postgres.DBTX, id uuid.UUID) (postgres.Reservations, error)
	ListReservationsByGroup(ctx context.Context, db postgres.DBTX, groupID uuid.UUID) ([]postgres.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db postgres.DBTX, arg postgres.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      postgres.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db postgres.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

var slotHoldingStatuses = []string{
	reservation.StatusPending.String(),
	reservation.StatusApproved.String(),
}

func (r *ReservationRepository) ListActiveInWindow(ctx context.Context, resourceID uuid.UUID, window reservation.Interval) ([]reservation.ReservedInterval, error) {
	rows, err := r.queries.ListReservationsInWindow(ctx, r.db, windowParams(resourceID, window, slotHoldingStatuses))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}

	out := make([]reservation.ReservedInterval, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Snapshot())
	}
	return out, nil
}

func (r *ReservationRepository) ListInWindow(ctx context.Context, resourceID uuid.UUID, window reservation.Interval) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsInWindow(ctx, r.db, windowParams(resourceID, window, nil))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return converter.ReservationsFromRows(rows)
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("reservation not found", err, errs.ErrReservationNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return converter.ReservationFromRow(row)
}

// FindByGroup returns the group's occurrences in start order, locked for update.
// An unknown group yields an empty slice.
func (r *ReservationRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByGroup(ctx, r.db, groupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by group", err)
	}
	return converter.ReservationsFromRows(rows)
}

func (r *ReservationRepository) CreateBatch(ctx context.Context, rs []*reservation.Reservation) error {
	if len(rs) == 0 {
		return nil
	}
	rows := make([]postgres.Reservations, len(rs))
	for i, res := range rs {
		rows[i] = converter.ReservationToRow(res)
	}

	n, err := r.queries.InsertReservations(ctx, r.db, rows)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservations", err)
	}
	if int(n) != len(rows) {
		return infra.WrapRepoErr("failed to create reservations", errs.Newf("inserted %d of %d rows", n, len(rows)))
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationStatus(ctx, r.db, postgres.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		Note:      res.Note().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.NotFound("reservation not found", errs.Newf("no row for %s", res.ID()), errs.ErrReservationNotFound)
	}
	return nil
}

func windowParams(resourceID uuid.UUID, window reservation.Interval, statuses []string) postgres.ListReservationsInWindowParams {
	return postgres.ListReservationsInWindowParams{
		ResourceID:  resourceID,
		WindowStart: pgconv.TimeToPgtype(window.Start()),
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
		Statuses:    statuses,
	}
}
