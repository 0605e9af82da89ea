// Package view derives the rows to display from the full collection and the
// current query. Derive never reads previously derived output, so relaxing a
// filter always brings hidden rows back.
package view

import (
	"worldcountries/internal/filter"
	"worldcountries/internal/model"
	"worldcountries/internal/order"
)

type Engine struct {
	sorter *order.Sorter
}

func NewEngine(sorter *order.Sorter) *Engine {
	return &Engine{sorter: sorter}
}

func (e *Engine) Sorter() *order.Sorter { return e.sorter }

// Derive filters and sorts all according to q. The input slice is not modified.
func (e *Engine) Derive(all []model.Country, q model.Query) ([]model.Country, error) {
	ev, err := filter.NewEvaluator(filter.FromQuery(q))
	if err != nil {
		return nil, err
	}
	out := ev.Apply(all)
	e.sorter.Sort(out, q.SortKey, q.Direction)
	return out, nil
}
