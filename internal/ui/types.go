package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"worldcountries/internal/config"
	"worldcountries/internal/model"
	"worldcountries/internal/source"
	"worldcountries/internal/view"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalDetail
	modalLogs
)

type inlineMode int

const (
	inlineNone inlineMode = iota
	inlineSearch
	inlineWhere
)

type loadState int

const (
	loadPending loadState = iota
	loadDone
	loadFailed
)

// loadFunc is the data loader the model runs once on start.
type loadFunc func(ctx context.Context) (source.Result, error)

type Model struct {
	ctx  context.Context
	cfg  *config.Config
	load loadFunc

	// Load
	loadSeq   int
	loadState loadState
	loadErr   error
	result    source.Result

	// Data: all is the only source of truth, derived is recomputed from it.
	all     *model.Collection
	engine  *view.Engine
	query   model.Query
	derived []model.Country

	// UI
	tbl        table.Model
	styles     Styles
	search     textinput.Model
	where      textinput.Model
	spin       spinner.Model
	help       help.Model
	keymap     KeyMap
	inlineMode inlineMode
	inlinePrev string // value restored when an inline edit is cancelled
	termWidth  int
	termHeight int
	lastMsg    string

	// Modal popup
	modalActive bool
	modalKind   modalKind
	modalVP     viewport.Model
	modalTitle  string
	modalBody   string
}

type loadedMsg struct {
	seq int
	res source.Result
	err error
}
