package model

import (
	"fmt"
	"strings"
)

// Country is one normalized record of the country directory.
type Country struct {
	Name         string   `json:"name"`
	OfficialName string   `json:"officialName,omitempty"`
	CCA3         string   `json:"cca3,omitempty"`
	Region       string   `json:"region,omitempty"`
	Population   int64    `json:"population"`
	Area         float64  `json:"area"`
	Borders      []string `json:"borders"`
	FlagURL      string   `json:"flagUrl,omitempty"`
}

func (c Country) BorderCount() int { return len(c.Borders) }

func (c Country) HasFlag() bool { return c.FlagURL != "" }

type SortKey string

const (
	SortByName        SortKey = "name"
	SortByPopulation  SortKey = "population"
	SortByArea        SortKey = "area"
	SortByBorderCount SortKey = "borderCount"
)

// SortKeys lists the keys in the order the UI offers them.
var SortKeys = []SortKey{SortByName, SortByPopulation, SortByArea, SortByBorderCount}

func (k SortKey) Label() string {
	switch k {
	case SortByPopulation:
		return "Population"
	case SortByArea:
		return "Area"
	case SortByBorderCount:
		return "No. of borders"
	default:
		return "Name"
	}
}

// Next cycles through SortKeys.
func (k SortKey) Next() SortKey {
	for i, s := range SortKeys {
		if s == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortByName
}

func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "population", "pop":
		return SortByPopulation, nil
	case "area":
		return SortByArea, nil
	case "borders", "bordercount", "border-count", "border_count":
		return SortByBorderCount, nil
	}
	return "", fmt.Errorf("unknown sort key %q (name|population|area|borders)", s)
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) Toggle() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

func (d SortDirection) Label() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort direction %q (asc|desc)", s)
}

// Query is the complete view state the derived rows depend on.
type Query struct {
	Search     string
	MinBorders int
	SortKey    SortKey
	Direction  SortDirection
	Where      string
}

func DefaultQuery() Query {
	return Query{SortKey: SortByName, Direction: Ascending}
}

// WithMinBorders returns q with MinBorders set to n, floored at 0.
func (q Query) WithMinBorders(n int) Query {
	if n < 0 {
		n = 0
	}
	q.MinBorders = n
	return q
}

func (q Query) String() string {
	return fmt.Sprintf("search=%q minBorders=%d sort=%s order=%s where=%q", q.Search, q.MinBorders, q.SortKey, q.Direction, q.Where)
}
