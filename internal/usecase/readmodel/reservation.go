package readmodel

import (
	"time"

	"facility-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationRM struct {
	ID          uuid.UUID       `json:"id"`
	ResourceID  uuid.UUID       `json:"resource_id"`
	UnitID      *uuid.UUID      `json:"unit_id,omitempty"`
	UnitName    string          `json:"unit_name"`
	UserID      uuid.UUID       `json:"user_id"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	Status      string          `json:"status"`
	Price       decimal.Decimal `json:"price"`
	IsRecurring bool            `json:"is_recurring"`
	GroupID     *uuid.UUID      `json:"group_id,omitempty"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func FromReservation(r *reservation.Reservation, unitName string) ReservationRM {
	return ReservationRM{
		ID:          r.ID(),
		ResourceID:  r.ResourceID(),
		UnitID:      r.UnitID(),
		UnitName:    unitName,
		UserID:      r.UserID(),
		StartTime:   r.Interval().Start(),
		EndTime:     r.Interval().End(),
		Status:      r.Status().String(),
		Price:       r.Price(),
		IsRecurring: r.IsRecurring(),
		GroupID:     r.GroupID(),
		Note:        r.Note().String(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}
