package ui

import (
	"encoding/base64"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"

	"worldcountries/internal/export"
	"worldcountries/internal/filter"
	"worldcountries/internal/model"
)

func overlay(base, top string) string {
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(top, "\n")
	n := max(len(bLines), len(oLines))
	for len(bLines) < n {
		bLines = append(bLines, "")
	}
	for len(oLines) < n {
		oLines = append(oLines, "")
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		// whitespace-only overlay lines are transparent
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}

// copyToClipboard uses the system clipboard and falls back to OSC52, which
// works over SSH in most terminals.
func copyToClipboard(s string) error {
	s = stripANSI(s)
	if err := clipboard.WriteAll(s); err == nil {
		return nil
	}
	payload := fmt.Sprintf("\x1b]52;c;%s\x07", base64.StdEncoding.EncodeToString([]byte(s)))
	f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(payload)
	return err
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// renderMarkdown renders md with glamour, returning md unchanged if the
// renderer cannot be built.
func renderMarkdown(md, style string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func countryMarkdown(c model.Country) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	if c.OfficialName != "" && c.OfficialName != c.Name {
		fmt.Fprintf(&b, "_%s_\n\n", c.OfficialName)
	}
	b.WriteString("| | |\n|---|---|\n")
	row := func(k, v string) {
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", k, v)
	}
	row("Code", c.CCA3)
	row("Region", c.Region)
	row("Population", export.Population(c.Population))
	row("Area (km²)", export.Area(c.Area))
	row("No. of borders", strconv.Itoa(c.BorderCount()))
	if c.BorderCount() > 0 {
		row("Borders", strings.Join(c.Borders, ", "))
	}
	row("Flag", c.FlagURL)
	return b.String()
}

func helpMarkdown(km KeyMap) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	groups := []string{"Filter", "Order", "Direction", "Actions"}
	for i, col := range km.FullHelp() {
		fmt.Fprintf(&b, "## %s\n\n", groups[i])
		for _, k := range col {
			h := k.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", strings.Join(k.Keys(), "`, `"), h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString("## Table\n\n- `↑`/`k`, `↓`/`j` move\n- `pgup`, `pgdown`, `home`/`g`, `end`/`G` jump\n\n")
	b.WriteString("## Where expressions\n\n")
	fmt.Fprintf(&b, "Variables: `%s`.\n\n", strings.Join(filter.ExprParams, "`, `"))
	b.WriteString("Example: `population > 1e7 && region == 'Africa'`\n")
	return b.String()
}
