package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `r.id, r.resource_id, r.unit_id, r.user_id, r.start_time, r.end_time, r.status,
	r.price, r.is_recurring, r.group_id, r.note, r.created_at, r.updated_at`

var insertReservationColumns = []string{
	"id", "resource_id", "unit_id", "user_id", "start_time", "end_time", "status",
	"price", "is_recurring", "group_id", "note", "created_at", "updated_at",
}

// InsertReservations bulk-loads rows with COPY. It runs inside the caller's transaction.
func (q *Queries) InsertReservations(ctx context.Context, db DBTX, arg []Reservations) (int64, error) {
	return db.CopyFrom(ctx, pgx.Identifier{"reservations"}, insertReservationColumns, pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
		r := arg[i]
		return []any{
			r.ID, r.ResourceID, r.UnitID, r.UserID, r.StartTime, r.EndTime, r.Status,
			r.Price, r.IsRecurring, r.GroupID, r.Note, r.CreatedAt, r.UpdatedAt,
		}, nil
	}))
}

type ListReservationsInWindowParams struct {
	ResourceID  uuid.UUID
	WindowStart pgtype.Timestamptz
	WindowEnd   pgtype.Timestamptz
	// Statuses limits the result when non-empty.
	Statuses []string
}

const listReservationsInWindow = `SELECT ` + reservationColumns + `
FROM reservations r
WHERE r.resource_id = $1
  AND r.start_time < $3
  AND r.end_time > $2
  AND (cardinality($4::text[]) = 0 OR r.status = ANY($4::text[]))
ORDER BY r.start_time, r.id`

func (q *Queries) ListReservationsInWindow(ctx context.Context, db DBTX, arg ListReservationsInWindowParams) ([]Reservations, error) {
	statuses := arg.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := db.Query(ctx, listReservationsInWindow, arg.ResourceID, arg.WindowStart, arg.WindowEnd, statuses)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Reservations])
}

const getReservationByID = `SELECT ` + reservationColumns + `
FROM reservations r
WHERE r.id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	rows, err := db.Query(ctx, getReservationByID, id)
	if err != nil {
		return Reservations{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Reservations])
}

// GetReservationForUpdate locks the row for the rest of the transaction.
func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	rows, err := db.Query(ctx, getReservationByID+` FOR UPDATE`, id)
	if err != nil {
		return Reservations{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Reservations])
}

const listReservationsByGroup = `SELECT ` + reservationColumns + `
FROM reservations r
WHERE r.group_id = $1
ORDER BY r.start_time, r.id
FOR UPDATE`

func (q *Queries) ListReservationsByGroup(ctx context.Context, db DBTX, groupID uuid.UUID) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByGroup, groupID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Reservations])
}

type UpdateReservationStatusParams struct {
	ID        uuid.UUID
	Status    string
	Note      string
	UpdatedAt pgtype.Timestamptz
}

const updateReservationStatus = `UPDATE reservations
SET status = $2, note = $3, updated_at = $4
WHERE id = $1`

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.Note, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const reservationViewSelect = `SELECT ` + reservationColumns + `, u.name AS unit_name
FROM reservations r
LEFT JOIN resource_units u ON u.id = r.unit_id`

func (q *Queries) GetReservationView(ctx context.Context, db DBTX, id uuid.UUID) (ReservationViewRow, error) {
	rows, err := db.Query(ctx, reservationViewSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return ReservationViewRow{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[ReservationViewRow])
}

type ListReservationViewsByUserParams struct {
	UserID uuid.UUID
	// AfterStart and AfterID form the keyset; an invalid AfterStart starts from the beginning.
	AfterStart pgtype.Timestamptz
	AfterID    uuid.UUID
	Limit      int32
}

const listReservationViewsByUser = reservationViewSelect + `
WHERE r.user_id = $1
  AND ($2::timestamptz IS NULL OR (r.start_time, r.id) > ($2::timestamptz, $3::uuid))
ORDER BY r.start_time, r.id
LIMIT $4`

func (q *Queries) ListReservationViewsByUser(ctx context.Context, db DBTX, arg ListReservationViewsByUserParams) ([]ReservationViewRow, error) {
	rows, err := db.Query(ctx, listReservationViewsByUser, arg.UserID, arg.AfterStart, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ReservationViewRow])
}
