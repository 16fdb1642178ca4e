package recurrence

import (
	"bytes"
	"slices"

	"facility-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Group is every stored occurrence of one series, ordered by start.
type Group struct {
	ID          uuid.UUID
	Occurrences []reservation.ReservedInterval
}

// Representative is the occurrence with the earliest start.
func (g Group) Representative() reservation.ReservedInterval {
	return g.Occurrences[0]
}

func (g Group) Len() int { return len(g.Occurrences) }

// GroupReservations buckets reservations by group id. Reservations without a group are
// returned as standalone in their input order. Groups are ordered by representative start.
func GroupReservations(rs []reservation.ReservedInterval) ([]Group, []reservation.ReservedInterval) {
	byID := make(map[uuid.UUID][]reservation.ReservedInterval)
	var standalone []reservation.ReservedInterval
	for _, r := range rs {
		if r.GroupID == nil {
			standalone = append(standalone, r)
			continue
		}
		byID[*r.GroupID] = append(byID[*r.GroupID], r)
	}

	groups := make([]Group, 0, len(byID))
	for id, occ := range byID {
		slices.SortStableFunc(occ, compareByStart)
		groups = append(groups, Group{ID: id, Occurrences: occ})
	}
	slices.SortFunc(groups, func(a, b Group) int {
		if c := compareByStart(a.Representative(), b.Representative()); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	return groups, standalone
}

func compareByStart(a, b reservation.ReservedInterval) int {
	if c := a.Interval.Start().Compare(b.Interval.Start()); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}
