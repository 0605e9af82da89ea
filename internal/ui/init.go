package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"worldcountries/internal/config"
	"worldcountries/internal/model"
	"worldcountries/internal/order"
	"worldcountries/internal/source"
	"worldcountries/internal/view"
)

func initialModel(ctx context.Context, cfg *config.Config, load loadFunc) (*Model, error) {
	sorter, err := order.New(cfg.Locale)
	if err != nil {
		return nil, err
	}
	q, err := cfg.InitialQuery()
	if err != nil {
		return nil, err
	}
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		load:   load,
		engine: view.NewEngine(sorter),
		query:  q,
		styles: NewStyles(cfg.Theme != config.ThemeLight),
		keymap: DefaultKeyMap(),
		help:   help.New(),
		search: textinput.New(),
		where:  textinput.New(),
		spin:   spinner.New(),
	}
	m.all, _ = model.NewCollection(nil)
	m.spin.Spinner = spinner.Dot
	m.search.Placeholder = "country name"
	m.search.Prompt = ""
	m.search.CharLimit = 64
	m.search.SetValue(q.Search)
	m.where.Placeholder = "population > 1e6 && region == 'Europe'"
	m.where.Prompt = "where: "
	m.where.CharLimit = 256
	m.where.SetValue(q.Where)
	m.modalVP = viewport.New(80, 20)

	m.tbl = table.New(table.WithFocused(true), table.WithHeight(20))
	m.tbl.KeyMap = table.KeyMap{
		LineUp:       key.NewBinding(key.WithKeys("up", "k")),
		LineDown:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		GotoTop:      key.NewBinding(key.WithKeys("home", "g")),
		GotoBottom:   key.NewBinding(key.WithKeys("end", "G")),
	}
	m.tbl.SetStyles(m.styles.Table)
	m.applyColumns()
	return m, nil
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	opts := cfg.SourceOptions()
	m, err := initialModel(ctx, cfg, nil)
	if err != nil {
		return err
	}
	opts.Sorter = m.engine.Sorter()
	m.load = func(ctx context.Context) (source.Result, error) { return source.Load(ctx, opts) }
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startLoad(), m.spin.Tick)
}

// startLoad issues the single load of the session. The sequence number lets
// Update drop a result that is not the latest one.
func (m *Model) startLoad() tea.Cmd {
	m.loadSeq++
	seq := m.loadSeq
	m.loadState = loadPending
	m.loadErr = nil
	load, ctx := m.load, m.ctx
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{seq: seq, err: &source.LoadError{Source: "none", Err: source.ErrPayload}}
		}
		res, err := load(ctx)
		return loadedMsg{seq: seq, res: res, err: err}
	}
}
