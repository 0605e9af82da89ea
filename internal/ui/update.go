package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"worldcountries/internal/filter"
	"worldcountries/internal/model"
	"worldcountries/internal/util/logx"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.layout()
		m.refresh()
		if m.modalActive {
			m.resizeModal()
		}
		return m, nil
	case loadedMsg:
		m.onLoaded(msg)
		return m, nil
	case spinner.TickMsg:
		if m.loadState != loadPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.modalActive {
			return m.updateModal(msg)
		}
		switch m.inlineMode {
		case inlineSearch:
			return m.updateSearch(msg)
		case inlineWhere:
			return m.updateWhere(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *Model) onLoaded(msg loadedMsg) {
	if msg.seq != m.loadSeq {
		logx.Debugf("ui: dropping stale load result seq=%d current=%d", msg.seq, m.loadSeq)
		return
	}
	if msg.err != nil {
		m.loadState = loadFailed
		m.loadErr = msg.err
		m.all, _ = model.NewCollection(nil)
		m.lastMsg = msg.err.Error()
		logx.Errorf("ui: %v", msg.err)
		m.layout()
		m.refresh()
		return
	}
	m.loadState = loadDone
	m.loadErr = nil
	m.result = msg.res
	m.all, _ = model.NewCollection(msg.res.Countries)
	m.lastMsg = fmt.Sprintf("loaded in %s", msg.res.Elapsed.Round(time.Millisecond))
	m.layout()
	m.refresh()
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Search):
		m.inlineMode = inlineSearch
		m.inlinePrev = m.query.Search
		m.search.SetValue(m.query.Search)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, km.Where):
		m.inlineMode = inlineWhere
		m.inlinePrev = m.query.Where
		m.where.SetValue(m.query.Where)
		m.where.CursorEnd()
		return m, m.where.Focus()
	case key.Matches(msg, km.MoreBorders):
		m.setQuery(m.query.WithMinBorders(m.query.MinBorders + 1))
	case key.Matches(msg, km.FewerBorders):
		m.setQuery(m.query.WithMinBorders(m.query.MinBorders - 1))
	case key.Matches(msg, km.SortName):
		m.setSortKey(model.SortByName)
	case key.Matches(msg, km.SortPopulation):
		m.setSortKey(model.SortByPopulation)
	case key.Matches(msg, km.SortArea):
		m.setSortKey(model.SortByArea)
	case key.Matches(msg, km.SortBorders):
		m.setSortKey(model.SortByBorderCount)
	case key.Matches(msg, km.CycleSort):
		m.setSortKey(m.query.SortKey.Next())
	case key.Matches(msg, km.Ascending):
		m.setDirection(model.Ascending)
	case key.Matches(msg, km.Descending):
		m.setDirection(model.Descending)
	case key.Matches(msg, km.ToggleDirection):
		m.setDirection(m.query.Direction.Toggle())
	case key.Matches(msg, km.Remove):
		m.removeSelected()
	case key.Matches(msg, km.Details):
		m.openDetailModal()
	case key.Matches(msg, km.Copy):
		if c, ok := m.selected(); ok {
			m.copyText(c.Name)
		}
	case key.Matches(msg, km.ClearFilters):
		q := m.query
		q.Search, q.Where, q.MinBorders = "", "", 0
		m.search.SetValue("")
		m.where.SetValue("")
		m.setQuery(q)
		m.lastMsg = "filters cleared"
	case key.Matches(msg, km.AppLogs):
		m.openAppLogsModal()
	case key.Matches(msg, km.Help):
		m.openHelpModal()
	default:
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.inlineMode = inlineNone
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.inlineMode = inlineNone
		m.search.Blur()
		m.search.SetValue(m.inlinePrev)
		q := m.query
		q.Search = m.inlinePrev
		m.setQuery(q)
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.query.Search {
		q := m.query
		q.Search = v
		m.setQuery(q)
	}
	return m, cmd
}

func (m *Model) updateWhere(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		expr := strings.TrimSpace(m.where.Value())
		if expr != "" {
			if _, err := filter.Compile(expr); err != nil {
				m.lastMsg = err.Error()
				logx.Warnf("ui: %v", err)
				return m, nil
			}
		}
		m.inlineMode = inlineNone
		m.where.Blur()
		q := m.query
		q.Where = expr
		m.setQuery(q)
		return m, nil
	case tea.KeyEsc:
		m.inlineMode = inlineNone
		m.where.Blur()
		m.where.SetValue(m.inlinePrev)
		return m, nil
	}
	var cmd tea.Cmd
	m.where, cmd = m.where.Update(msg)
	return m, cmd
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, msg.Type == tea.KeyEnter, key.Matches(msg, m.keymap.Quit):
		m.closeModal()
		return m, nil
	case key.Matches(msg, m.keymap.Copy) && m.modalKind != modalHelp:
		if c, ok := m.selected(); ok && m.modalKind == modalDetail {
			m.copyText(countryMarkdown(c))
		} else {
			m.copyText(m.modalBody)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.modalVP, cmd = m.modalVP.Update(msg)
	return m, cmd
}

func (m *Model) setQuery(q model.Query) {
	m.query = q
	logx.Debugf("ui: query %s", q)
	m.refresh()
}

func (m *Model) setSortKey(k model.SortKey) {
	q := m.query
	q.SortKey = k
	m.setQuery(q)
}

func (m *Model) setDirection(d model.SortDirection) {
	q := m.query
	q.Direction = d
	m.setQuery(q)
}

func (m *Model) removeSelected() {
	c, ok := m.selected()
	if !ok {
		return
	}
	if m.all.Remove(c.Name) {
		m.lastMsg = "removed " + c.Name
		logx.Infof("ui: removed %q", c.Name)
	}
	m.refresh()
}

func (m *Model) copyText(s string) {
	if err := copyToClipboard(s); err != nil {
		m.lastMsg = "copy failed: " + err.Error()
		logx.Warnf("ui: copy failed: %v", err)
		return
	}
	m.lastMsg = "copied"
}
