package converter

import (
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/infra/postgres"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/pgconv"
)

func ReservationToRow(res *reservation.Reservation) postgres.Reservations {
	return postgres.Reservations{
		ID:          res.ID(),
		ResourceID:  res.ResourceID(),
		UnitID:      pgconv.UUIDPtrToPgtype(res.UnitID()),
		UserID:      res.UserID(),
		StartTime:   pgconv.TimeToPgtype(res.Interval().Start()),
		EndTime:     pgconv.TimeToPgtype(res.Interval().End()),
		Status:      res.Status().String(),
		Price:       pgconv.DecimalToNumeric(res.Price()),
		IsRecurring: res.IsRecurring(),
		GroupID:     pgconv.UUIDPtrToPgtype(res.GroupID()),
		Note:        res.Note().String(),
		CreatedAt:   pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromRow(row postgres.Reservations) (*reservation.Reservation, error) {
	interval, err := reservation.NewInterval(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s", row.ID)
	}
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("stored reservation %s: unknown status %q", row.ID, row.Status)
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "stored reservation %s", row.ID)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.ResourceID,
		pgconv.UUIDPtrFromPgtype(row.UnitID),
		row.UserID,
		interval,
		status,
		price,
		pgconv.UUIDPtrFromPgtype(row.GroupID),
		reservation.NewNote(row.Note),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsFromRows(rows []postgres.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
