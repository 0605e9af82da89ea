// Package order sorts countries by the view's sort keys.
//
// Ascending order is total: every key falls back to the country name
// (locale collation, case-insensitive, then byte order) when the primary
// values are equal. Descending order is the exact reverse of ascending.
package order

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"worldcountries/internal/model"
)

// Sorter is not safe for concurrent use; the collator keeps internal buffers.
type Sorter struct {
	tag  language.Tag
	coll *collate.Collator
}

func New(locale string) (*Sorter, error) {
	tag := language.English
	if s := strings.TrimSpace(locale); s != "" {
		t, err := language.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("order: invalid locale %q: %w", locale, err)
		}
		tag = t
	}
	return &Sorter{tag: tag, coll: collate.New(tag, collate.IgnoreCase)}, nil
}

// MustNew is New for locales known to be valid (tests, defaults).
func MustNew(locale string) *Sorter {
	s, err := New(locale)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Sorter) Locale() string { return s.tag.String() }

// CompareNames orders names case-insensitively for the locale and breaks
// collation ties by byte order.
func (s *Sorter) CompareNames(a, b string) int {
	if c := s.coll.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Compare returns the ascending comparison for key.
func (s *Sorter) Compare(key model.SortKey) func(a, b model.Country) int {
	byName := func(a, b model.Country) int { return s.CompareNames(a.Name, b.Name) }
	var primary func(a, b model.Country) int
	switch key {
	case model.SortByPopulation:
		primary = func(a, b model.Country) int { return cmp.Compare(a.Population, b.Population) }
	case model.SortByArea:
		primary = func(a, b model.Country) int { return cmp.Compare(a.Area, b.Area) }
	case model.SortByBorderCount:
		primary = func(a, b model.Country) int { return cmp.Compare(a.BorderCount(), b.BorderCount()) }
	default:
		return byName
	}
	return func(a, b model.Country) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return byName(a, b)
	}
}

// Sort orders cs in place.
func (s *Sorter) Sort(cs []model.Country, key model.SortKey, dir model.SortDirection) {
	slices.SortStableFunc(cs, s.Compare(key))
	if dir == model.Descending {
		slices.Reverse(cs)
	}
}

// ByName is the default load order: name ascending.
func (s *Sorter) ByName(cs []model.Country) {
	s.Sort(cs, model.SortByName, model.Ascending)
}
