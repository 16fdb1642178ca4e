package readstore

//go:generate mockgen -source=reservation.go -destination=../../testutil/mock/readstore/reservation.go -package=readstoremock

import (
	"context"
	"time"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/postgres"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db postgres.DBTX, id uuid.UUID) (postgres.ReservationViewRow, error)
	ListReservationViewsByUser(ctx context.Context, db postgres.DBTX, arg postgres.ListReservationViewsByUserParams) ([]postgres.ReservationViewRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      postgres.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db postgres.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound("reservation not found", err, errs.ErrReservationNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	rm, err := toReservationRM(row)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, afterStart *time.Time, afterID uuid.UUID, limit int) ([]readmodel.ReservationRM, error) {
	params := postgres.ListReservationViewsByUserParams{
		UserID:  userID,
		AfterID: afterID,
		Limit:   int32(limit), // #nosec G115 -- bounded by queries.MaxListLimit
	}
	if afterStart != nil {
		params.AfterStart = pgconv.TimeToPgtype(*afterStart)
	}

	rows, err := r.queries.ListReservationViewsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	out := make([]readmodel.ReservationRM, 0, len(rows))
	for _, row := range rows {
		rm, err := toReservationRM(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, nil
}

func toReservationRM(row postgres.ReservationViewRow) (readmodel.ReservationRM, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return readmodel.ReservationRM{}, errs.Wrapf(err, "stored reservation %s", row.ID)
	}
	return readmodel.ReservationRM{
		ID:          row.ID,
		ResourceID:  row.ResourceID,
		UnitID:      pgconv.UUIDPtrFromPgtype(row.UnitID),
		UnitName:    row.UnitName.String,
		UserID:      row.UserID,
		StartTime:   pgconv.TimeFromPgtype(row.StartTime),
		EndTime:     pgconv.TimeFromPgtype(row.EndTime),
		Status:      row.Status,
		Price:       price,
		IsRecurring: row.IsRecurring,
		GroupID:     pgconv.UUIDPtrFromPgtype(row.GroupID),
		Note:        row.Note,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
