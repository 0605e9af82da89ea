package detect

import (
	"bytes"
	"encoding/json"
)

// Variant names one upstream payload shape.
type Variant string

const (
	VariantV31       Variant = "v3.1"      // name{common,official}, flags{svg,png}, population number
	VariantV2        Variant = "v2"        // name string, flag URL string
	VariantChallenge Variant = "challenge" // flags{img}, population{currentYear}
	VariantUnknown   Variant = "unknown"
)

type Guess struct {
	Variant    Variant
	Confidence float64
	Counts     map[Variant]int
}

// Shape classifies records by voting per record.
func Shape(records []map[string]json.RawMessage) Guess {
	counts := map[Variant]int{}
	for _, r := range records {
		counts[classify(r)]++
	}
	g := Guess{Variant: VariantUnknown, Counts: counts}
	best := 0
	for _, v := range []Variant{VariantV31, VariantV2, VariantChallenge} {
		if counts[v] > best {
			best = counts[v]
			g.Variant = v
		}
	}
	if len(records) > 0 {
		g.Confidence = float64(best) / float64(len(records))
	}
	return g
}

func classify(r map[string]json.RawMessage) Variant {
	if Kind(r["population"]) == '{' {
		return VariantChallenge
	}
	if flags := r["flags"]; Kind(flags) == '{' {
		var f map[string]json.RawMessage
		if err := json.Unmarshal(flags, &f); err == nil {
			if _, ok := f["img"]; ok {
				return VariantChallenge
			}
		}
	}
	switch Kind(r["name"]) {
	case '{':
		return VariantV31
	case '"':
		return VariantV2
	}
	return VariantUnknown
}

// Kind returns the first significant byte of a raw JSON value: '{', '[', '"',
// 'n' for null, '0' for numbers, 't'/'f' for booleans, or 0 when absent.
func Kind(raw json.RawMessage) byte {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return 0
	}
	switch c := b[0]; {
	case c == '-' || (c >= '0' && c <= '9'):
		return '0'
	default:
		return c
	}
}
