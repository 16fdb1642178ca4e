package response

import (
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ChangeResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Note          string    `json:"note,omitempty"`
}

type SkippedResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason"`
}

type GroupActionResponse struct {
	GroupID uuid.UUID         `json:"group_id"`
	Action  string            `json:"action"`
	Changed []ChangeResponse  `json:"changed"`
	Skipped []SkippedResponse `json:"skipped"`
	Atomic  bool              `json:"atomic"`
}

func FromGroupActionResult(res *commands.GroupActionResult) *GroupActionResponse {
	resp := &GroupActionResponse{
		GroupID: res.GroupID,
		Action:  string(res.Action),
		Changed: make([]ChangeResponse, 0, len(res.Changed)),
		Skipped: make([]SkippedResponse, 0, len(res.Skipped)),
		Atomic:  res.Atomic,
	}
	for _, c := range res.Changed {
		resp.Changed = append(resp.Changed, ChangeResponse{
			ReservationID: c.ReservationID,
			From:          c.From.String(),
			To:            c.To.String(),
			Note:          c.Note.String(),
		})
	}
	for _, s := range res.Skipped {
		resp.Skipped = append(resp.Skipped, SkippedResponse{
			ReservationID: s.ReservationID,
			Status:        s.Status.String(),
			Reason:        string(s.Reason),
		})
	}
	return resp
}
