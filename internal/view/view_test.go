package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldcountries/internal/model"
	"worldcountries/internal/order"
)

func engine() *Engine { return NewEngine(order.MustNew("en")) }

func names(cs []model.Country) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func fixture() []model.Country {
	return []model.Country{
		{Name: "Chad", Population: 16, Area: 1284000, Borders: []string{"a", "b"}},
		{Name: "Belgium", Population: 11, Area: 30528, Borders: []string{}},
		{Name: "Austria", Population: 9, Area: 83871, Borders: []string{"a", "b", "c"}},
		{Name: "Denmark", Population: 6, Area: 43094, Borders: []string{"a"}},
		{Name: "Iceland", Population: 0, Area: 103000, Borders: []string{}},
	}
}

func TestEndToEndScenario(t *testing.T) {
	all := []model.Country{
		{Name: "Chad", Population: 16, Area: 1284000, Borders: []string{"a", "b"}},
		{Name: "Belgium", Population: 11, Area: 30528, Borders: []string{}},
	}
	q := model.Query{MinBorders: 1, SortKey: model.SortByName, Direction: model.Ascending}
	got, err := engine().Derive(all, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chad"}, names(got))
}

func TestFilterIsReevaluatedFromFullCollection(t *testing.T) {
	e := engine()
	all := fixture()
	q := model.DefaultQuery().WithMinBorders(3)
	narrow, err := e.Derive(all, q)
	require.NoError(t, err)
	assert.Equal(t, []string{"Austria"}, names(narrow))

	wide, err := e.Derive(all, q.WithMinBorders(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"Austria", "Belgium", "Chad", "Denmark", "Iceland"}, names(wide))
}

func TestMinBordersSubsetProperty(t *testing.T) {
	e := engine()
	all := fixture()
	for n := -2; n <= 4; n++ {
		got, err := e.Derive(all, model.DefaultQuery().WithMinBorders(n))
		require.NoError(t, err)
		want := 0
		for _, c := range all {
			if c.BorderCount() >= max(n, 0) {
				want++
			}
		}
		assert.Len(t, got, want, "minBorders=%d", n)
		for _, c := range got {
			assert.GreaterOrEqual(t, c.BorderCount(), max(n, 0))
		}
	}
}

func TestBorderCountTieBreak(t *testing.T) {
	all := []model.Country{
		{Name: "B", Borders: []string{"x", "y"}},
		{Name: "A", Borders: []string{"x", "y"}},
	}
	got, err := engine().Derive(all, model.Query{SortKey: model.SortByBorderCount, Direction: model.Ascending})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(got))

	got, err = engine().Derive(all, model.Query{SortKey: model.SortByBorderCount, Direction: model.Descending})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, names(got))
}

func TestDescendingReversesAscending(t *testing.T) {
	e := engine()
	all := fixture()
	for _, key := range model.SortKeys {
		asc, err := e.Derive(all, model.Query{SortKey: key, Direction: model.Ascending})
		require.NoError(t, err)
		desc, err := e.Derive(all, model.Query{SortKey: key, Direction: model.Descending})
		require.NoError(t, err)
		rev := names(asc)
		for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
			rev[i], rev[j] = rev[j], rev[i]
		}
		if diff := cmp.Diff(rev, names(desc)); diff != "" {
			t.Fatalf("key=%s reversed ascending != descending (-want +got):\n%s", key, diff)
		}
	}
}

func TestDeriveIsIdempotent(t *testing.T) {
	e := engine()
	all := fixture()
	q := model.Query{Search: "a", MinBorders: 1, SortKey: model.SortByPopulation, Direction: model.Descending}
	first, err := e.Derive(all, q)
	require.NoError(t, err)
	second, err := e.Derive(all, q)
	require.NoError(t, err)
	again, err := e.Derive(first, q)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeat derive differs:\n%s", diff)
	}
	if diff := cmp.Diff(first, again); diff != "" {
		t.Fatalf("derive of derived output differs:\n%s", diff)
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	all := fixture()
	before := names(all)
	_, err := engine().Derive(all, model.Query{SortKey: model.SortByArea, Direction: model.Descending})
	require.NoError(t, err)
	assert.Equal(t, before, names(all))
}

func TestEmptyCollection(t *testing.T) {
	got, err := engine().Derive(nil, model.DefaultQuery())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInvalidWhere(t *testing.T) {
	_, err := engine().Derive(fixture(), model.Query{Where: "population > ("})
	assert.Error(t, err)

	got, err := engine().Derive(fixture(), model.Query{Where: "population >= 11", SortKey: model.SortByName})
	require.NoError(t, err)
	assert.Equal(t, []string{"Belgium", "Chad"}, names(got))
}
