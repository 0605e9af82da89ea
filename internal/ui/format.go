package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fit truncates s to w display cells, marking the cut with an ellipsis.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

// alignRight left-pads s to w display cells.
func alignRight(s string, w int) string {
	s = fit(s, w)
	if pad := w - runewidth.StringWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func maxWidth(ss ...string) int {
	w := 0
	for _, s := range ss {
		if sw := runewidth.StringWidth(s); sw > w {
			w = sw
		}
	}
	return w
}
