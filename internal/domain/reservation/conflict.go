package reservation

import (
	"bytes"
	"slices"
	"time"

	"facility-booking/internal/domain/resource"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownUnit = errs.ErrUnknownUnit

// ConflictRequest is a proposed booking. A nil UnitID requests the whole resource.
// ExcludeReservationID skips the reservation being edited or approved.
type ConflictRequest struct {
	UnitID               *uuid.UUID
	Interval             Interval
	ExcludeReservationID *uuid.UUID
}

// Blocker is an existing reservation that prevents the request.
type Blocker struct {
	ReservationID    uuid.UUID
	BlockingUnitName string
	Relation         resource.Relation
	OverlapStart     time.Time
	OverlapEnd       time.Time
}

type ConflictResult struct {
	Allowed  bool
	Blockers []Blocker
}

// DetectConflicts checks req against a snapshot of reservations on the tree's resource.
// It never modifies existing and returns the same result for the same inputs, so callers can
// re-run it inside a transaction retry loop.
func DetectConflicts(tree *resource.Tree, req ConflictRequest, existing []ReservedInterval) (ConflictResult, error) {
	if req.Interval.IsZero() || !req.Interval.End().After(req.Interval.Start()) {
		return ConflictResult{}, ErrInvalidInterval
	}
	if req.UnitID != nil && !tree.Has(*req.UnitID) {
		return ConflictResult{}, errs.Wrapf(ErrUnknownUnit, "requested unit %s", *req.UnitID)
	}

	var blockers []Blocker
	for _, r := range existing {
		if !r.Status.BlocksSlot() {
			continue
		}
		if req.ExcludeReservationID != nil && r.ID == *req.ExcludeReservationID {
			continue
		}
		if r.UnitID != nil && !tree.Has(*r.UnitID) {
			return ConflictResult{}, errs.Wrapf(ErrUnknownUnit, "unit %s of reservation %s", *r.UnitID, r.ID)
		}

		overlap, ok := req.Interval.Intersect(r.Interval)
		if !ok {
			continue
		}
		rel := tree.Relation(r.UnitID, req.UnitID)
		if !rel.Blocks() {
			continue
		}

		blockers = append(blockers, Blocker{
			ReservationID:    r.ID,
			BlockingUnitName: tree.Name(r.UnitID),
			Relation:         rel,
			OverlapStart:     overlap.Start(),
			OverlapEnd:       overlap.End(),
		})
	}

	slices.SortStableFunc(blockers, func(a, b Blocker) int {
		if c := a.OverlapStart.Compare(b.OverlapStart); c != 0 {
			return c
		}
		return bytes.Compare(a.ReservationID[:], b.ReservationID[:])
	})

	return ConflictResult{
		Allowed:  len(blockers) == 0,
		Blockers: blockers,
	}, nil
}
