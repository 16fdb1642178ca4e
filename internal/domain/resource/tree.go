package resource

import (
	"slices"

	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownUnit   = errs.ErrUnknownUnit
	ErrDuplicateUnit = errs.New("duplicate unit id")
	ErrCyclicTree    = errs.New("unit hierarchy contains a cycle")
)

// Relation describes how an existing reservation's unit relates to a requested unit.
type Relation string

const (
	RelationNone       Relation = "none"
	RelationSame       Relation = "same"
	RelationAncestor   Relation = "ancestor"
	RelationDescendant Relation = "descendant"
	// RelationWhole: one side covers the whole resource.
	RelationWhole Relation = "whole"
)

func (r Relation) Blocks() bool {
	return r != RelationNone
}

const noParent = -1

type node struct {
	unit     Unit
	parent   int
	children []int
	depth    int
}

// Tree is an arena of units built once per snapshot. Ancestor queries walk parent
// indices, so they cost O(depth).
type Tree struct {
	resourceID   uuid.UUID
	resourceName string
	nodes        []node
	index        map[uuid.UUID]int
}

// NewTree indexes units of one resource. The input slice is not retained or modified.
// A resource without declared units yields an empty tree: the resource itself is the only unit.
func NewTree(res *Resource, units []Unit) (*Tree, error) {
	t := &Tree{
		resourceID:   res.ID(),
		resourceName: res.Name(),
		nodes:        make([]node, len(units)),
		index:        make(map[uuid.UUID]int, len(units)),
	}

	for i, u := range units {
		if _, dup := t.index[u.ID]; dup {
			return nil, errs.Wrapf(ErrDuplicateUnit, "unit %s", u.ID)
		}
		t.index[u.ID] = i
		t.nodes[i] = node{unit: u, parent: noParent}
	}

	for i := range t.nodes {
		parentID := t.nodes[i].unit.ParentID
		if parentID == nil {
			continue
		}
		p, ok := t.index[*parentID]
		if !ok {
			return nil, errs.Wrapf(ErrUnknownUnit, "parent %s of unit %s", *parentID, t.nodes[i].unit.ID)
		}
		t.nodes[i].parent = p
		t.nodes[p].children = append(t.nodes[p].children, i)
	}

	if err := t.computeDepths(); err != nil {
		return nil, err
	}

	return t, nil
}

// computeDepths walks down from the roots; any node left unvisited sits on a cycle.
func (t *Tree) computeDepths() error {
	visited := make([]bool, len(t.nodes))
	stack := make([]int, 0, len(t.nodes))
	for i := range t.nodes {
		if t.nodes[i].parent == noParent {
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited[n] = true
		for _, c := range t.nodes[n].children {
			t.nodes[c].depth = t.nodes[n].depth + 1
			stack = append(stack, c)
		}
	}

	for i, ok := range visited {
		if !ok {
			return errs.Wrapf(ErrCyclicTree, "unit %s", t.nodes[i].unit.ID)
		}
	}
	return nil
}

func (t *Tree) ResourceID() uuid.UUID { return t.resourceID }
func (t *Tree) ResourceName() string  { return t.resourceName }
func (t *Tree) Len() int              { return len(t.nodes) }

func (t *Tree) Has(id uuid.UUID) bool {
	_, ok := t.index[id]
	return ok
}

func (t *Tree) Unit(id uuid.UUID) (Unit, bool) {
	i, ok := t.index[id]
	if !ok {
		return Unit{}, false
	}
	return t.nodes[i].unit, true
}

// Name returns the display name of a unit; a nil id names the whole resource.
func (t *Tree) Name(id *uuid.UUID) string {
	if id == nil {
		return t.resourceName
	}
	if u, ok := t.Unit(*id); ok {
		return u.Name
	}
	return ""
}

// IsAncestor reports whether a is a strict ancestor of b.
func (t *Tree) IsAncestor(a, b uuid.UUID) bool {
	ai, ok := t.index[a]
	if !ok {
		return false
	}
	bi, ok := t.index[b]
	if !ok {
		return false
	}
	for cur := t.nodes[bi].parent; cur != noParent; cur = t.nodes[cur].parent {
		if cur == ai {
			return true
		}
		if t.nodes[cur].depth < t.nodes[ai].depth {
			return false
		}
	}
	return false
}

// Relation classifies existing relative to target. A nil id means the whole resource.
func (t *Tree) Relation(existing, target *uuid.UUID) Relation {
	switch {
	case existing == nil || target == nil:
		return RelationWhole
	case *existing == *target:
		return RelationSame
	case t.IsAncestor(*existing, *target):
		return RelationAncestor
	case t.IsAncestor(*target, *existing):
		return RelationDescendant
	default:
		return RelationNone
	}
}

// Ancestors lists ids from the parent up to the root.
func (t *Tree) Ancestors(id uuid.UUID) []uuid.UUID {
	i, ok := t.index[id]
	if !ok {
		return nil
	}
	var out []uuid.UUID
	for cur := t.nodes[i].parent; cur != noParent; cur = t.nodes[cur].parent {
		out = append(out, t.nodes[cur].unit.ID)
	}
	return out
}

// Descendants lists every unit below id in depth-first order.
func (t *Tree) Descendants(id uuid.UUID) []uuid.UUID {
	i, ok := t.index[id]
	if !ok {
		return nil
	}
	var out []uuid.UUID
	stack := slices.Clone(t.nodes[i].children)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, t.nodes[n].unit.ID)
		stack = append(stack, t.nodes[n].children...)
	}
	return out
}

// CanBookWhole reports whether a unit may be reserved as one block. Leaves always can;
// units with parts only when they allow whole-unit booking.
func (t *Tree) CanBookWhole(id uuid.UUID) bool {
	i, ok := t.index[id]
	if !ok {
		return false
	}
	n := t.nodes[i]
	return len(n.children) == 0 || n.unit.AllowsWholeUnitBooking
}
