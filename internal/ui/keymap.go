package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Search          key.Binding
	Where           key.Binding
	MoreBorders     key.Binding
	FewerBorders    key.Binding
	SortName        key.Binding
	SortPopulation  key.Binding
	SortArea        key.Binding
	SortBorders     key.Binding
	CycleSort       key.Binding
	Ascending       key.Binding
	Descending      key.Binding
	ToggleDirection key.Binding
	Remove          key.Binding
	Details         key.Binding
	Copy            key.Binding
	ClearFilters    key.Binding
	AppLogs         key.Binding
	Help            key.Binding
	Quit            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search:          key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Where:           key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "where")),
		MoreBorders:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "min borders")),
		FewerBorders:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer borders")),
		SortName:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "order by name")),
		SortPopulation:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "order by population")),
		SortArea:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "order by area")),
		SortBorders:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "order by no. of borders")),
		CycleSort:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order by")),
		Ascending:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ascending")),
		Descending:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "descending")),
		ToggleDirection: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "direction")),
		Remove:          key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Details:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Copy:            key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy name")),
		ClearFilters:    key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "clear filters")),
		AppLogs:         key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "app logs")),
		Help:            key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.MoreBorders, k.CycleSort, k.ToggleDirection, k.Remove, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Where, k.MoreBorders, k.FewerBorders, k.ClearFilters},
		{k.SortName, k.SortPopulation, k.SortArea, k.SortBorders, k.CycleSort},
		{k.Ascending, k.Descending, k.ToggleDirection},
		{k.Remove, k.Details, k.Copy, k.AppLogs, k.Help, k.Quit},
	}
}
