package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

const (
	shapeV31       = "v3.1"
	shapeV2        = "v2"
	shapeChallenge = "challenge"
	shapeMixed     = "mixed"
)

func isSupported(s string) bool {
	switch s {
	case shapeV31, shapeV2, shapeChallenge, shapeMixed:
		return true
	}
	return false
}

var (
	syllables = []string{"ar", "bel", "cor", "dan", "el", "fa", "gor", "ha", "is", "ka", "lu", "mor", "na", "or", "pa", "qua", "ri", "sa", "tan", "ur", "va", "wen", "xi", "yo", "za"}
	suffixes  = []string{"ia", "land", "stan", "a", "ora", "ey", "is"}
	regions   = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}
)

type country struct {
	name       string
	official   string
	code       string
	region     string
	population int64
	area       float64
	borders    []string
	flag       string
}

type generator struct {
	r    *rand.Rand
	used map[string]bool
}

func newGenerator(seed int64) *generator {
	return &generator{r: rand.New(rand.NewPCG(uint64(seed), 0x5eed)), used: map[string]bool{}}
}

func (g *generator) name() string {
	for {
		var b strings.Builder
		for i := 0; i < 1+g.r.IntN(3); i++ {
			b.WriteString(syllables[g.r.IntN(len(syllables))])
		}
		b.WriteString(suffixes[g.r.IntN(len(suffixes))])
		n := strings.ToUpper(b.String()[:1]) + b.String()[1:]
		if !g.used[n] {
			g.used[n] = true
			return n
		}
	}
}

func (g *generator) countries(n int) []country {
	out := make([]country, 0, n)
	for i := 0; i < n; i++ {
		name := g.name()
		c := country{
			name:       name,
			official:   "Republic of " + name,
			code:       fmt.Sprintf("X%02d", i%100) + string(rune('A'+i/100%26)),
			region:     regions[g.r.IntN(len(regions))],
			population: int64(g.r.ExpFloat64() * 2e7),
			area:       float64(g.r.IntN(5_000_000)) + float64(g.r.IntN(100))/100,
		}
		if g.r.IntN(20) > 0 {
			c.flag = fmt.Sprintf("https://flags.example.org/%s.svg", strings.ToLower(c.code))
		}
		out = append(out, c)
	}
	// islands have no borders; everyone else gets up to 8 neighbours
	for i := range out {
		if g.r.IntN(6) == 0 || len(out) < 2 {
			continue
		}
		for k := g.r.IntN(9); k > 0; k-- {
			j := g.r.IntN(len(out))
			if j != i {
				out[i].borders = append(out[i].borders, out[j].code)
			}
		}
	}
	return out
}

func (g *generator) record(c country, shape string) map[string]any {
	if shape == shapeMixed {
		shape = []string{shapeV31, shapeV2, shapeChallenge}[g.r.IntN(3)]
	}
	borders := c.borders
	if borders == nil {
		borders = []string{}
	}
	switch shape {
	case shapeV2:
		r := map[string]any{"name": c.name, "alpha3Code": c.code, "region": c.region, "population": c.population, "area": c.area, "borders": borders}
		if c.flag != "" {
			r["flag"] = c.flag
		}
		return r
	case shapeChallenge:
		r := map[string]any{"name": c.name, "population": map[string]any{"currentYear": c.population}, "area": c.area, "borders": borders}
		if c.flag != "" {
			r["flags"] = map[string]any{"img": c.flag}
		}
		return r
	default:
		r := map[string]any{
			"name": map[string]any{"common": c.name, "official": c.official},
			"cca3": c.code, "region": c.region, "population": c.population, "area": c.area,
		}
		// v3.1 omits borders for islands
		if len(borders) > 0 {
			r["borders"] = borders
		}
		if c.flag != "" {
			r["flags"] = map[string]any{"svg": c.flag, "png": strings.TrimSuffix(c.flag, ".svg") + ".png"}
		}
		return r
	}
}

// write emits count unique countries followed by dupes records that reuse
// earlier names with fresh figures.
func (g *generator) write(w io.Writer, shape string, count, dupes int, pretty bool) error {
	cs := g.countries(count)
	recs := make([]map[string]any, 0, count+dupes)
	for _, c := range cs {
		recs = append(recs, g.record(c, shape))
	}
	for i := 0; i < dupes && len(cs) > 0; i++ {
		c := cs[g.r.IntN(len(cs))]
		c.population += int64(g.r.IntN(1000))
		recs = append(recs, g.record(c, shape))
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	return enc.Encode(recs)
}
