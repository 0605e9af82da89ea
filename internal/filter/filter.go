package filter

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
	"golang.org/x/text/cases"

	"worldcountries/internal/model"
)

type Criteria struct {
	Search     string // case-insensitive substring of the name; empty matches all
	MinBorders int    // inclusive lower bound on the border count
	Expr       string // optional govaluate expression
}

func FromQuery(q model.Query) Criteria {
	return Criteria{Search: q.Search, MinBorders: q.MinBorders, Expr: q.Where}
}

// ExprParams lists the parameters a where expression can reference.
var ExprParams = []string{"name", "population", "area", "borders", "region", "hasFlag"}

// Evaluator is not safe for concurrent use.
type Evaluator struct {
	c      Criteria
	fold   cases.Caser
	needle string
	expr   *govaluate.EvaluableExpression
}

func NewEvaluator(c Criteria) (*Evaluator, error) {
	if c.MinBorders < 0 {
		c.MinBorders = 0
	}
	e := &Evaluator{c: c, fold: cases.Fold()}
	e.needle = e.fold.String(c.Search)
	if strings.TrimSpace(c.Expr) != "" {
		expr, err := Compile(c.Expr)
		if err != nil {
			return nil, err
		}
		e.expr = expr
	}
	return e, nil
}

// Compile parses a where expression and checks it only references known parameters.
func Compile(s string) (*govaluate.EvaluableExpression, error) {
	expr, err := govaluate.NewEvaluableExpression(s)
	if err != nil {
		return nil, fmt.Errorf("filter: invalid expression %q: %w", s, err)
	}
	known := map[string]bool{}
	for _, p := range ExprParams {
		known[p] = true
	}
	for _, v := range expr.Vars() {
		if !known[v] {
			return nil, fmt.Errorf("filter: unknown parameter %q in expression (use %s)", v, strings.Join(ExprParams, ", "))
		}
	}
	return expr, nil
}

func (e *Evaluator) Match(c model.Country) bool {
	if c.BorderCount() < e.c.MinBorders {
		return false
	}
	if e.needle != "" && !strings.Contains(e.fold.String(c.Name), e.needle) {
		return false
	}
	if e.expr != nil {
		params := map[string]any{
			"name":       c.Name,
			"population": float64(c.Population),
			"area":       c.Area,
			"borders":    float64(c.BorderCount()),
			"region":     c.Region,
			"hasFlag":    c.HasFlag(),
		}
		result, err := e.expr.Evaluate(params)
		if err != nil {
			return false
		}
		b, ok := result.(bool)
		if !ok || !b {
			return false
		}
	}
	return true
}

// Apply keeps the countries matching the criteria, preserving input order.
func (e *Evaluator) Apply(cs []model.Country) []model.Country {
	out := make([]model.Country, 0, len(cs))
	for _, c := range cs {
		if e.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
