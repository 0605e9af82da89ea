package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Choice     lipgloss.Style
	ChoiceOn   lipgloss.Style
	Status     lipgloss.Style
	StatusErr  lipgloss.Style
	ErrorBox   lipgloss.Style
	Help       lipgloss.Style
	PopupBox   lipgloss.Style
	PopupTitle lipgloss.Style
	Table      table.Styles
	Markdown   string // glamour standard style name
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
		s.Choice = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		s.ChoiceOn = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Markdown = "dark"
	} else {
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Value = lipgloss.NewStyle().Bold(true)
		s.Choice = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.ChoiceOn = lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Bold(true)
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.PopupBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Markdown = "light"
	}
	s.StatusErr = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Padding(0, 1)
	s.ErrorBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("160")).Foreground(lipgloss.Color("196")).Padding(0, 1)

	// One cell of right padding per column; computeWidths reserves it.
	ts := table.DefaultStyles()
	ts.Header = lipgloss.NewStyle().Bold(true).PaddingRight(1)
	ts.Cell = lipgloss.NewStyle().PaddingRight(1)
	ts.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220"))
	s.Table = ts
	return s
}
