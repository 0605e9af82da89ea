// Package parse normalizes the upstream country payload into model.Country.
//
// Upstream shapes drift between API versions: the name is a string or an
// object, the population a number or {currentYear}, borders may be missing,
// and the flag image lives under flags.svg, flags.png, flags.img or flag.
// All of that is absorbed here so nothing downstream sees the variants.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"worldcountries/internal/detect"
	"worldcountries/internal/model"
)

var ErrNotArray = errors.New("payload is not a JSON array")

type Stats struct {
	Records int // records in the payload
	Skipped int // records without a usable name
	Guess   detect.Guess
}

// Countries decodes a payload and normalizes every record. Records that
// cannot be keyed (no name) are skipped and counted, never returned as errors.
func Countries(data []byte) ([]model.Country, Stats, error) {
	var st Stats
	switch detect.Kind(data) {
	case '[':
	case '{':
		return nil, st, upstreamError(data)
	case 0:
		return nil, st, fmt.Errorf("empty payload: %w", ErrNotArray)
	default:
		return nil, st, ErrNotArray
	}
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, st, fmt.Errorf("decode payload: %w", err)
	}
	st.Records = len(records)
	st.Guess = detect.Shape(records)
	out := make([]model.Country, 0, len(records))
	for _, r := range records {
		c, ok := Record(r)
		if !ok {
			st.Skipped++
			continue
		}
		out = append(out, c)
	}
	return out, st, nil
}

// upstreamError turns an object payload ({"status":404,"message":"Not Found"}) into an error.
func upstreamError(data []byte) error {
	var e struct {
		Status  any    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &e); err == nil && e.Message != "" {
		return fmt.Errorf("upstream error %v: %s: %w", e.Status, e.Message, ErrNotArray)
	}
	return ErrNotArray
}

func Record(r map[string]json.RawMessage) (model.Country, bool) {
	c := model.Country{Borders: []string{}}
	c.Name, c.OfficialName = names(r["name"])
	if c.Name == "" {
		return model.Country{}, false
	}
	c.Population = population(r["population"])
	c.Area = nonNegative(number(r["area"]))
	c.Borders = borders(r["borders"])
	c.FlagURL = flagURL(r)
	c.CCA3 = str(r["cca3"])
	if c.CCA3 == "" {
		c.CCA3 = str(r["alpha3Code"])
	}
	c.Region = str(r["region"])
	return c, true
}

func names(raw json.RawMessage) (common, official string) {
	switch detect.Kind(raw) {
	case '"':
		return strings.TrimSpace(str(raw)), ""
	case '{':
		var n struct {
			Common   string `json:"common"`
			Official string `json:"official"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", ""
		}
		common, official = strings.TrimSpace(n.Common), strings.TrimSpace(n.Official)
		if common == "" {
			common = official
		}
		return common, official
	}
	return "", ""
}

func population(raw json.RawMessage) int64 {
	if detect.Kind(raw) == '{' {
		var p struct {
			CurrentYear json.RawMessage `json:"currentYear"`
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return 0
		}
		raw = p.CurrentYear
	}
	f := nonNegative(number(raw))
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}

// number reads a JSON number or numeric string; anything else is 0.
func number(raw json.RawMessage) float64 {
	switch detect.Kind(raw) {
	case '0':
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			return f
		}
	case '"':
		if f, err := strconv.ParseFloat(strings.TrimSpace(str(raw)), 64); err == nil {
			return f
		}
	}
	return 0
}

func nonNegative(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func borders(raw json.RawMessage) []string {
	out := []string{}
	if detect.Kind(raw) != '[' {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, it := range items {
		if s := str(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func flagURL(r map[string]json.RawMessage) string {
	flags := r["flags"]
	switch detect.Kind(flags) {
	case '{':
		var f map[string]json.RawMessage
		if err := json.Unmarshal(flags, &f); err == nil {
			for _, k := range []string{"svg", "png", "img"} {
				if u := str(f[k]); u != "" {
					return u
				}
			}
		}
	case '"':
		if u := str(flags); u != "" {
			return u
		}
	}
	// v2 carries a URL in "flag"; v3 uses the same key for an emoji.
	if u := str(r["flag"]); isURL(u) {
		return u
	}
	return ""
}

func isURL(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "https://") || strings.HasPrefix(l, "http://")
}

func str(raw json.RawMessage) string {
	if detect.Kind(raw) != '"' {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
