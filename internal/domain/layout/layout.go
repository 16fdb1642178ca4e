// Package layout places concurrent bookings of one display day side by side.
package layout

import (
	"bytes"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID    uuid.UUID
	Start time.Time
	End   time.Time
}

// Placement is a column index and the number of columns its overlap cluster needs.
type Placement struct {
	Column       int
	TotalColumns int
}

// Assign colours the interval graph greedily: items sorted by start take the lowest column
// that is free again (its last end <= this start). TotalColumns is computed per cluster of
// transitively overlapping items, so separate clusters on the same day can differ.
func Assign(items []Item) map[uuid.UUID]Placement {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b Item) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		if c := a.End.Compare(b.End); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	out := make(map[uuid.UUID]Placement, len(sorted))
	var (
		columnEnds []time.Time
		cluster    []uuid.UUID
		clusterEnd time.Time
		clusterMax int
	)

	closeCluster := func() {
		for _, id := range cluster {
			p := out[id]
			p.TotalColumns = clusterMax + 1
			out[id] = p
		}
		cluster = cluster[:0]
		clusterMax = 0
	}

	for _, it := range sorted {
		if len(cluster) > 0 && !it.Start.Before(clusterEnd) {
			closeCluster()
		}

		col := slices.IndexFunc(columnEnds, func(end time.Time) bool { return !end.After(it.Start) })
		if col < 0 {
			col = len(columnEnds)
			columnEnds = append(columnEnds, it.End)
		} else {
			columnEnds[col] = it.End
		}

		out[it.ID] = Placement{Column: col}
		cluster = append(cluster, it.ID)
		clusterMax = max(clusterMax, col)
		if len(cluster) == 1 || it.End.After(clusterEnd) {
			clusterEnd = it.End
		}
	}
	closeCluster()

	return out
}
