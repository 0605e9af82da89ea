package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldcountries/internal/model"
)

func names(cs []model.Country) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestNameSortIsCaseInsensitive(t *testing.T) {
	cs := []model.Country{{Name: "belgium"}, {Name: "Chad"}, {Name: "Austria"}, {Name: "Åland Islands"}, {Name: "Zambia"}}
	MustNew("en").ByName(cs)
	assert.Equal(t, []string{"Åland Islands", "Austria", "belgium", "Chad", "Zambia"}, names(cs))
}

func TestLocaleChangesCollation(t *testing.T) {
	cs := []model.Country{{Name: "Åland Islands"}, {Name: "Zambia"}, {Name: "Austria"}}
	// Swedish sorts Å after Z.
	MustNew("sv").ByName(cs)
	assert.Equal(t, []string{"Austria", "Zambia", "Åland Islands"}, names(cs))
}

func TestBorderCountTieBreaksByName(t *testing.T) {
	cs := []model.Country{
		{Name: "B", Borders: []string{"x", "y"}},
		{Name: "A", Borders: []string{"x", "y"}},
	}
	s := MustNew("")
	s.Sort(cs, model.SortByBorderCount, model.Ascending)
	assert.Equal(t, []string{"A", "B"}, names(cs))

	s.Sort(cs, model.SortByBorderCount, model.Descending)
	assert.Equal(t, []string{"B", "A"}, names(cs))
}

func TestDescendingIsExactReverse(t *testing.T) {
	base := []model.Country{
		{Name: "Chad", Population: 16, Area: 1284000, Borders: []string{"a", "b"}},
		{Name: "Belgium", Population: 11, Area: 30528},
		{Name: "Austria", Population: 9, Area: 83871, Borders: []string{"a", "b", "c"}},
		{Name: "Denmark", Population: 6, Area: 43094, Borders: []string{"a"}},
	}
	s := MustNew("en")
	for _, key := range model.SortKeys {
		asc := append([]model.Country(nil), base...)
		desc := append([]model.Country(nil), base...)
		s.Sort(asc, key, model.Ascending)
		s.Sort(desc, key, model.Descending)
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name, "key=%s", key)
		}
	}
}

func TestNumericKeys(t *testing.T) {
	cs := []model.Country{{Name: "a", Population: 30, Area: 1.5}, {Name: "b", Population: 10, Area: 0.5}, {Name: "c", Population: 20, Area: 2.5}}
	s := MustNew("en")
	s.Sort(cs, model.SortByPopulation, model.Ascending)
	assert.Equal(t, []string{"b", "c", "a"}, names(cs))
	s.Sort(cs, model.SortByArea, model.Descending)
	assert.Equal(t, []string{"c", "a", "b"}, names(cs))
}

func TestInvalidLocale(t *testing.T) {
	_, err := New("not a locale!")
	assert.Error(t, err)
	s, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "en", s.Locale())
}
