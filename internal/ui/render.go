package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"worldcountries/internal/model"
	"worldcountries/internal/util/logx"
)

func (m *Model) View() string {
	v := m.renderMain()
	if m.modalActive {
		dimmed := lipgloss.NewStyle().Faint(true).Render(v)
		v = overlay(dimmed, m.renderModal())
	}
	return v
}

func (m *Model) renderMain() string {
	parts := []string{m.renderTitle(), m.renderControls(), m.renderWhere()}
	if m.loadState == loadFailed && m.loadErr != nil {
		parts = append(parts, m.styles.ErrorBox.Render("Failed to load countries: "+m.loadErr.Error()))
	}
	parts = append(parts, m.tbl.View(), m.renderStatus(), m.help.View(m.keymap))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderTitle() string {
	t := m.styles.Title.Render("World Countries")
	if m.loadState == loadPending {
		t += " " + m.spin.View() + m.styles.Label.Render(" loading…")
	}
	return t
}

func (m *Model) renderControls() string {
	var search string
	if m.inlineMode == inlineSearch {
		search = m.search.View()
	} else if m.query.Search != "" {
		search = m.styles.Value.Render(m.query.Search)
	} else {
		search = m.styles.Choice.Render("(none)")
	}
	stepper := fmt.Sprintf("[-] %s [+]", m.styles.Value.Render(fmt.Sprint(m.query.MinBorders)))
	line1 := m.styles.Label.Render("Search: ") + search + "   " + m.styles.Label.Render("Min borders: ") + stepper

	keys := make([]string, 0, len(model.SortKeys))
	for _, k := range model.SortKeys {
		keys = append(keys, m.radio(k.Label(), k == m.query.SortKey))
	}
	dirs := []string{
		m.radio(model.Ascending.Label(), m.query.Direction != model.Descending),
		m.radio(model.Descending.Label(), m.query.Direction == model.Descending),
	}
	line2 := m.styles.Label.Render("Order by: ") + strings.Join(keys, " ") + "   " + strings.Join(dirs, " ")
	return line1 + "\n" + line2
}

func (m *Model) radio(label string, on bool) string {
	if on {
		return m.styles.ChoiceOn.Render("(•) " + label)
	}
	return m.styles.Choice.Render("( ) " + label)
}

func (m *Model) renderWhere() string {
	switch {
	case m.inlineMode == inlineWhere:
		return m.where.View() + m.styles.Help.Render("    [enter]=apply [esc]=cancel")
	case m.query.Where != "":
		return m.styles.Label.Render("where: ") + m.query.Where + m.styles.Help.Render("    [F]=clear filters")
	}
	return ""
}

func (m *Model) renderStatus() string {
	if m.loadState == loadFailed {
		return m.styles.StatusErr.Render("ERROR") + " " + m.styles.Status.Render(fmt.Sprintf("rows:0 | %s", m.lastMsg))
	}
	state := "Ready"
	if m.loadState == loadPending {
		state = "Loading"
	}
	status := fmt.Sprintf("[%s] rows:%d/%d", state, len(m.derived), m.all.Len())
	if m.result.Variant != "" {
		status += fmt.Sprintf(" | format:%s", m.result.Variant)
	}
	if m.lastMsg != "" {
		status += " | " + m.lastMsg
	}
	return m.styles.Status.Render(status)
}

// layout fits the table between the fixed chrome above and below it.
func (m *Model) layout() {
	if m.termHeight <= 0 {
		return
	}
	chrome := 6 // title, two control lines, where, status, help
	if m.loadState == loadFailed {
		chrome += 3
	}
	m.tbl.SetHeight(max(m.termHeight-chrome, 3))
	m.tbl.SetWidth(m.termWidth)
	m.help.Width = m.termWidth
}

func (m *Model) openHelpModal() {
	m.openModal(modalHelp, "Help", renderMarkdown(helpMarkdown(m.keymap), m.styles.Markdown, m.modalWidth()))
}

func (m *Model) openDetailModal() {
	c, ok := m.selected()
	if !ok {
		return
	}
	m.openModal(modalDetail, c.Name, renderMarkdown(countryMarkdown(c), m.styles.Markdown, m.modalWidth()))
}

func (m *Model) openAppLogsModal() {
	body := logx.Dump()
	if body == "" {
		body = "(no log lines yet)"
	}
	m.openModal(modalLogs, "Application Logs", body)
}

func (m *Model) openModal(kind modalKind, title, body string) {
	m.modalActive = true
	m.modalKind = kind
	m.modalTitle = title
	m.modalBody = body
	m.resizeModal()
	if kind == modalLogs {
		m.modalVP.GotoBottom()
	}
}

func (m *Model) closeModal() {
	m.modalActive = false
	m.modalKind = modalNone
	m.modalBody = ""
}

func (m *Model) modalWidth() int {
	return max(m.termWidth-14, 20)
}

func (m *Model) resizeModal() {
	w := max(m.termWidth-6, 20)
	h := max(m.termHeight-6, 5)
	m.modalVP = viewport.New(w-4, h-4)
	m.modalVP.SetContent(m.modalBody)
}

func (m *Model) renderModal() string {
	hint := "[esc/enter]=close  [↑/↓]=scroll"
	if m.modalKind == modalDetail || m.modalKind == modalLogs {
		hint += "  [c]=copy"
	}
	boxW := max(m.termWidth-6, 20)
	title := m.styles.PopupTitle.Render(m.modalTitle)
	body := m.styles.PopupBox.Width(boxW).Render(title + "\n" + m.modalVP.View() + "\n" + m.styles.Help.Render(hint))
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, body)
}
