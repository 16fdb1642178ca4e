//go:build unit

package resource_test

import (
	"testing"

	"facility-booking/internal/domain/resource"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hall
// ├── courtA
// │   ├── halfA1
// │   └── halfA2
// └── courtB
// annex (separate root)
type fixture struct {
	hall, courtA, halfA1, halfA2, courtB, annex uuid.UUID
	tree                                        *resource.Tree
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		hall: uuid.New(), courtA: uuid.New(), halfA1: uuid.New(),
		halfA2: uuid.New(), courtB: uuid.New(), annex: uuid.New(),
	}
	res, err := resource.NewResource(uuid.New(), "Sports Centre")
	require.NoError(t, err)

	units := []resource.Unit{
		{ID: f.halfA2, Name: "Court A / Half 2", ParentID: &f.courtA},
		{ID: f.hall, Name: "Hall", AllowsWholeUnitBooking: true},
		{ID: f.courtA, Name: "Court A", ParentID: &f.hall},
		{ID: f.halfA1, Name: "Court A / Half 1", ParentID: &f.courtA},
		{ID: f.courtB, Name: "Court B", ParentID: &f.hall},
		{ID: f.annex, Name: "Annex"},
	}
	f.tree, err = resource.NewTree(res, units)
	require.NoError(t, err)
	return f
}

func TestNewTree(t *testing.T) {
	res, err := resource.NewResource(uuid.New(), "Pool")
	require.NoError(t, err)

	t.Run("no parts yields an empty tree", func(t *testing.T) {
		tree, err := resource.NewTree(res, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, tree.Len())
		assert.Equal(t, "Pool", tree.Name(nil))
	})

	t.Run("unknown parent", func(t *testing.T) {
		missing := uuid.New()
		_, err := resource.NewTree(res, []resource.Unit{{ID: uuid.New(), Name: "Lane", ParentID: &missing}})
		require.ErrorIs(t, err, resource.ErrUnknownUnit)
	})

	t.Run("duplicate id", func(t *testing.T) {
		id := uuid.New()
		_, err := resource.NewTree(res, []resource.Unit{{ID: id, Name: "a"}, {ID: id, Name: "b"}})
		require.ErrorIs(t, err, resource.ErrDuplicateUnit)
	})

	t.Run("cycle", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		_, err := resource.NewTree(res, []resource.Unit{
			{ID: a, Name: "a", ParentID: &b},
			{ID: b, Name: "b", ParentID: &a},
		})
		require.ErrorIs(t, err, resource.ErrCyclicTree)
	})

	t.Run("input is not modified", func(t *testing.T) {
		parent := uuid.New()
		units := []resource.Unit{{ID: parent, Name: "p"}, {ID: uuid.New(), Name: "c", ParentID: &parent}}
		before := append([]resource.Unit(nil), units...)

		_, err := resource.NewTree(res, units)
		require.NoError(t, err)
		if diff := cmp.Diff(before, units); diff != "" {
			t.Errorf("units mutated (-want +got):\n%s", diff)
		}
	})
}

func TestTree_Relation(t *testing.T) {
	f := newFixture(t)
	ptr := func(id uuid.UUID) *uuid.UUID { return &id }

	cases := []struct {
		name     string
		existing *uuid.UUID
		target   *uuid.UUID
		want     resource.Relation
	}{
		{"same unit", ptr(f.courtA), ptr(f.courtA), resource.RelationSame},
		{"parent blocks child", ptr(f.hall), ptr(f.halfA1), resource.RelationAncestor},
		{"child blocks parent", ptr(f.halfA2), ptr(f.hall), resource.RelationDescendant},
		{"siblings are unrelated", ptr(f.halfA1), ptr(f.halfA2), resource.RelationNone},
		{"cousins are unrelated", ptr(f.halfA1), ptr(f.courtB), resource.RelationNone},
		{"separate roots are unrelated", ptr(f.annex), ptr(f.hall), resource.RelationNone},
		{"whole resource reservation", nil, ptr(f.annex), resource.RelationWhole},
		{"whole resource request", ptr(f.courtB), nil, resource.RelationWhole},
		{"whole against whole", nil, nil, resource.RelationWhole},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := f.tree.Relation(c.existing, c.target)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.want != resource.RelationNone, got.Blocks())
		})
	}
}

func TestTree_Queries(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []uuid.UUID{f.courtA, f.hall}, f.tree.Ancestors(f.halfA1))
	assert.Empty(t, f.tree.Ancestors(f.hall))
	assert.ElementsMatch(t, []uuid.UUID{f.courtA, f.halfA1, f.halfA2, f.courtB}, f.tree.Descendants(f.hall))
	assert.Empty(t, f.tree.Descendants(f.annex))

	assert.True(t, f.tree.IsAncestor(f.hall, f.halfA2))
	assert.False(t, f.tree.IsAncestor(f.halfA2, f.hall))
	assert.False(t, f.tree.IsAncestor(f.courtB, f.halfA1))
	assert.False(t, f.tree.IsAncestor(uuid.New(), f.halfA1))

	assert.Equal(t, "Court A", f.tree.Name(&f.courtA))
	assert.True(t, f.tree.Has(f.annex))
	assert.False(t, f.tree.Has(uuid.New()))
}

func TestTree_CanBookWhole(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.tree.CanBookWhole(f.hall), "parent allowing whole booking")
	assert.False(t, f.tree.CanBookWhole(f.courtA), "parent without whole booking")
	assert.True(t, f.tree.CanBookWhole(f.halfA1), "leaf")
	assert.False(t, f.tree.CanBookWhole(uuid.New()), "unknown")
}

func TestNewUnit(t *testing.T) {
	id := uuid.New()

	_, err := resource.NewUnit(id, "  ", nil, false)
	assert.ErrorIs(t, err, resource.ErrEmptyUnitName)

	_, err = resource.NewUnit(id, "Loop", &id, false)
	assert.ErrorIs(t, err, resource.ErrSelfParent)

	u, err := resource.NewUnit(id, " Court 1 ", nil, true)
	require.NoError(t, err)
	assert.Equal(t, "Court 1", u.Name)
}
