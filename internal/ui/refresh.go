package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"worldcountries/internal/export"
	"worldcountries/internal/model"
	"worldcountries/internal/util/logx"
)

const (
	colFlag = iota
	colName
	colPopulation
	colArea
	colBorders
	numCols
)

var colKeys = [numCols]model.SortKey{
	colName:       model.SortByName,
	colPopulation: model.SortByPopulation,
	colArea:       model.SortByArea,
	colBorders:    model.SortByBorderCount,
}

var colTitles = [numCols]string{
	colFlag:       "⚑",
	colName:       "Name",
	colPopulation: "Population",
	colArea:       "Area (km²)",
	colBorders:    "No. of borders",
}

// refresh recomputes the visible rows from the full collection and the
// current query. On an invalid query the previous rows stay in place.
func (m *Model) refresh() {
	rows, err := m.engine.Derive(m.all.Snapshot(), m.query)
	if err != nil {
		m.lastMsg = err.Error()
		logx.Warnf("ui: derive failed: %v", err)
		return
	}
	m.derived = rows
	widths := m.applyColumns()

	trs := make([]table.Row, 0, len(rows))
	for _, c := range rows {
		trs = append(trs, table.Row{
			fit(export.FlagMarker(c), widths[colFlag]),
			fit(c.Name, widths[colName]),
			alignRight(export.Population(c.Population), widths[colPopulation]),
			alignRight(export.Area(c.Area), widths[colArea]),
			alignRight(strconv.Itoa(c.BorderCount()), widths[colBorders]),
		})
	}
	m.tbl.SetRows(trs)
	if n := len(trs); n > 0 && m.tbl.Cursor() >= n {
		m.tbl.SetCursor(n - 1)
	}
}

func (m *Model) columnTitle(i int) string {
	t := colTitles[i]
	if i != colFlag && colKeys[i] == m.query.SortKey {
		if m.query.Direction == model.Descending {
			t += " ▼"
		} else {
			t += " ▲"
		}
	}
	return t
}

func (m *Model) applyColumns() []int {
	widths := m.computeWidths()
	cs := make([]table.Column, numCols)
	for i := range cs {
		cs[i] = table.Column{Title: m.columnTitle(i), Width: widths[i]}
	}
	m.tbl.SetColumns(cs)
	return widths
}

// computeWidths sizes the numeric columns to their content and gives the
// rest of the terminal width to the name column.
func (m *Model) computeWidths() []int {
	widths := make([]int, numCols)
	widths[colFlag] = maxWidth(m.columnTitle(colFlag))
	widths[colPopulation] = maxWidth(m.columnTitle(colPopulation))
	widths[colArea] = maxWidth(m.columnTitle(colArea))
	widths[colBorders] = maxWidth(m.columnTitle(colBorders))
	nameW := maxWidth(m.columnTitle(colName))
	for _, c := range m.derived {
		widths[colPopulation] = max(widths[colPopulation], maxWidth(export.Population(c.Population)))
		widths[colArea] = max(widths[colArea], maxWidth(export.Area(c.Area)))
		nameW = max(nameW, maxWidth(c.Name))
	}

	tableW := m.termWidth
	if tableW <= 0 {
		tableW = 100
	}
	// one cell of right padding per column
	avail := tableW - numCols
	for i, w := range widths {
		if i != colName {
			avail -= w
		}
	}
	if avail < 8 {
		avail = 8
	}
	widths[colName] = avail
	if m.termWidth <= 0 {
		widths[colName] = min(nameW, avail)
	}
	return widths
}

// selected returns the country under the cursor.
func (m *Model) selected() (model.Country, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.derived) {
		return model.Country{}, false
	}
	return m.derived[i], true
}
