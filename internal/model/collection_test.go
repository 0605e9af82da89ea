package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cs []Country) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestCollectionRemoveKeepsOrder(t *testing.T) {
	c, dupes := NewCollection([]Country{{Name: "Austria"}, {Name: "Belgium"}, {Name: "Chad"}, {Name: "Denmark"}})
	require.Zero(t, dupes)

	assert.True(t, c.Remove("Belgium"))
	assert.Equal(t, []string{"Austria", "Chad", "Denmark"}, names(c.Snapshot()))
	assert.Equal(t, 3, c.Len())

	// index stays consistent after the shift
	got, ok := c.Get("Denmark")
	require.True(t, ok)
	assert.Equal(t, "Denmark", got.Name)
	assert.True(t, c.Remove("Denmark"))
	assert.Equal(t, []string{"Austria", "Chad"}, names(c.Snapshot()))
}

func TestCollectionRemoveMissingIsNoop(t *testing.T) {
	c, _ := NewCollection([]Country{{Name: "Chad"}})
	assert.False(t, c.Remove("Narnia"))
	assert.True(t, c.Remove("Chad"))
	assert.False(t, c.Remove("Chad"))
	assert.Zero(t, c.Len())

	var nilColl *Collection
	assert.False(t, nilColl.Remove("Chad"))
	assert.Nil(t, nilColl.Snapshot())
}

func TestCollectionDuplicateNames(t *testing.T) {
	c, dupes := NewCollection([]Country{
		{Name: "Chad", Population: 1},
		{Name: "Belgium"},
		{Name: "Chad", Population: 2},
	})
	assert.Equal(t, 1, dupes)
	assert.Equal(t, []string{"Chad", "Belgium"}, names(c.Snapshot()))
	got, _ := c.Get("Chad")
	assert.EqualValues(t, 2, got.Population)
}

func TestCollectionSnapshotIsCopy(t *testing.T) {
	c, _ := NewCollection([]Country{{Name: "Chad"}})
	snap := c.Snapshot()
	snap[0].Name = "changed"
	assert.Equal(t, []string{"Chad"}, names(c.Snapshot()))
}

func TestParseSortKeyAndDirection(t *testing.T) {
	cases := map[string]SortKey{"": SortByName, "Population": SortByPopulation, "area": SortByArea, "borders": SortByBorderCount, "borderCount": SortByBorderCount}
	for in, want := range cases {
		got, err := ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSortKey("gdp")
	assert.Error(t, err)

	d, err := ParseSortDirection("descending")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)
	assert.Equal(t, Ascending, d.Toggle())
	_, err = ParseSortDirection("sideways")
	assert.Error(t, err)
}

func TestQueryMinBordersClamp(t *testing.T) {
	q := DefaultQuery().WithMinBorders(-3)
	assert.Equal(t, 0, q.MinBorders)
	assert.Equal(t, 2, q.WithMinBorders(2).MinBorders)
	assert.Equal(t, SortByPopulation, SortByName.Next())
	assert.Equal(t, SortByName, SortByBorderCount.Next())
}
