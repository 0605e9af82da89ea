package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"worldcountries/internal/model"
)

var columns = []string{"name", "population", "area", "borders", "flag"}

// Write renders countries in the given format: table, csv or json.
func Write(w io.Writer, format string, countries []model.Country) error {
	switch format {
	case "csv":
		return ToCSV(w, countries)
	case "json":
		return ToJSON(w, countries)
	case "table", "":
		return ToTable(w, countries)
	}
	return fmt.Errorf("export: unknown format %q", format)
}

func ToCSV(w io.Writer, countries []model.Country) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, c := range countries {
		row := []string{
			c.Name,
			strconv.FormatInt(c.Population, 10),
			strconv.FormatFloat(c.Area, 'f', -1, 64),
			strconv.Itoa(c.BorderCount()),
			c.FlagURL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ToJSON(w io.Writer, countries []model.Country) error {
	if countries == nil {
		countries = []model.Country{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(countries)
}

func ToTable(w io.Writer, countries []model.Country) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	right := cell.Align(lipgloss.Right)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Flag", "Name", "Population", "Area (km²)", "No. of borders").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col >= 2 {
				return right
			}
			return cell
		})
	for _, c := range countries {
		t.Row(FlagMarker(c), c.Name, Population(c.Population), Area(c.Area), strconv.Itoa(c.BorderCount()))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// FlagMarker stands in for the flag image a terminal cannot draw.
func FlagMarker(c model.Country) string {
	if c.HasFlag() {
		return "⚑"
	}
	return ""
}

func Population(n int64) string { return humanize.Comma(n) }

func Area(a float64) string {
	if a == float64(int64(a)) {
		return humanize.Comma(int64(a))
	}
	return humanize.CommafWithDigits(a, 2)
}
