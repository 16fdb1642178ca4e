package response

import (
	"time"

	"facility-booking/internal/domain/pricing"
	"facility-booking/internal/domain/reservation"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BlockerResponse struct {
	ReservationID    uuid.UUID `json:"reservation_id"`
	BlockingUnitName string    `json:"blocking_unit_name"`
	Relation         string    `json:"relation"`
	OverlapStart     time.Time `json:"overlap_start"`
	OverlapEnd       time.Time `json:"overlap_end"`
}

func FromBlockers(bs []reservation.Blocker) []BlockerResponse {
	out := make([]BlockerResponse, 0, len(bs))
	if len(bs) == 0 {
		return out
	}
	// field names and underlying kinds match one to one
	_ = copier.Copy(&out, &bs)
	return out
}

type AvailabilityResponse struct {
	Allowed  bool              `json:"allowed"`
	Blockers []BlockerResponse `json:"blockers"`
}

func FromConflictResult(res reservation.ConflictResult) *AvailabilityResponse {
	return &AvailabilityResponse{Allowed: res.Allowed, Blockers: FromBlockers(res.Blockers)}
}

type BreakdownResponse struct {
	BaseRate decimal.Decimal `json:"base_rate"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	FellBack bool            `json:"fell_back"`
}

type PriceResponse struct {
	Price     decimal.Decimal   `json:"price"`
	IsFree    bool              `json:"is_free"`
	Reason    string            `json:"reason,omitempty"`
	Model     string            `json:"model,omitempty"`
	Breakdown BreakdownResponse `json:"breakdown"`
	Warning   string            `json:"warning,omitempty"`
	RuleID    *uuid.UUID        `json:"rule_id,omitempty"`
}

func newPriceResponse(res pricing.PriceResult, ruleID *uuid.UUID) PriceResponse {
	resp := PriceResponse{
		Price:  res.Price,
		IsFree: res.IsFree,
		Reason: res.Reason,
		Model:  string(res.Model),
		Breakdown: BreakdownResponse{
			BaseRate: res.Breakdown.BaseRate,
			Quantity: res.Breakdown.Quantity,
			Unit:     string(res.Breakdown.Unit),
			FellBack: res.Breakdown.FellBack,
		},
		RuleID: ruleID,
	}
	if res.Warning != nil {
		resp.Warning = res.Warning.Error()
	}
	return resp
}

func FromQuoteView(v *queries.QuoteView) *PriceResponse {
	resp := newPriceResponse(v.Result, v.RuleID)
	return &resp
}

type GroupResponse struct {
	ID             uuid.UUID             `json:"id"`
	Representative ReservationResponse   `json:"representative"`
	Occurrences    []ReservationResponse `json:"occurrences"`
	Count          int                   `json:"count"`
}

func FromGroupViews(groups []queries.GroupView) ([]GroupResponse, error) {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		rep, err := FromReservationRM(&g.Representative)
		if err != nil {
			return nil, err
		}
		occ, err := FromReservationRMs(g.Occurrences)
		if err != nil {
			return nil, err
		}
		out = append(out, GroupResponse{ID: g.ID, Representative: *rep, Occurrences: occ, Count: len(occ)})
	}
	return out, nil
}

type LayoutEntryResponse struct {
	Reservation  ReservationResponse `json:"reservation"`
	Column       int                 `json:"column"`
	TotalColumns int                 `json:"total_columns"`
}

type DayLayoutResponse struct {
	Day     string                `json:"day"`
	UnitID  *uuid.UUID            `json:"unit_id,omitempty"`
	Entries []LayoutEntryResponse `json:"entries"`
}

func FromDayLayout(v *queries.DayLayoutView) (*DayLayoutResponse, error) {
	resp := &DayLayoutResponse{
		Day:     v.Day.Format(time.DateOnly),
		UnitID:  v.UnitID,
		Entries: make([]LayoutEntryResponse, 0, len(v.Entries)),
	}
	for _, e := range v.Entries {
		rm, err := FromReservationRM(&e.Reservation)
		if err != nil {
			return nil, err
		}
		resp.Entries = append(resp.Entries, LayoutEntryResponse{
			Reservation:  *rm,
			Column:       e.Placement.Column,
			TotalColumns: e.Placement.TotalColumns,
		})
	}
	return resp, nil
}
