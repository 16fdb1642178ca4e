package response

import (
	"time"

	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
	"facility-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
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

func FromReservationRM(rm *readmodel.ReservationRM) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationRMs(rms []readmodel.ReservationRM) ([]ReservationResponse, error) {
	out := make([]ReservationResponse, 0, len(rms))
	if len(rms) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &rms); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateReservationResponse struct {
	GroupID      *uuid.UUID            `json:"group_id,omitempty"`
	Reservations []ReservationResponse `json:"reservations"`
	Pricing      PriceResponse         `json:"pricing"`
	Total        decimal.Decimal       `json:"total"`
}

func FromCreateResult(res *commands.CreateReservationResult) (*CreateReservationResponse, error) {
	items, err := FromReservationRMs(res.Reservations)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResponse{
		GroupID:      res.GroupID,
		Reservations: items,
		Pricing:      newPriceResponse(res.Pricing, nil),
		Total:        res.Total,
	}, nil
}

type StatusChangeResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	From        string              `json:"from"`
}

func FromStatusChange(res *commands.StatusChangeResult) (*StatusChangeResponse, error) {
	rm, err := FromReservationRM(&res.Reservation)
	if err != nil {
		return nil, err
	}
	return &StatusChangeResponse{Reservation: *rm, From: res.From.String()}, nil
}

type ReservationPageResponse struct {
	Items      []ReservationResponse `json:"items"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func FromReservationPage(page *queries.ReservationPage) (*ReservationPageResponse, error) {
	items, err := FromReservationRMs(page.Items)
	if err != nil {
		return nil, err
	}
	return &ReservationPageResponse{Items: items, NextCursor: page.Next}, nil
}
