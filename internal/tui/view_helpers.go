package tui

import (
	"strings"
)

const (
	minDividerWidth = 20
	maxDividerWidth = 120
)

// divider returns a horizontal rule sized to the terminal, clamped so the
// frame stays readable before the first WindowSizeMsg arrives.
func divider(width int) string {
	w := min(max(width-4, minDividerWidth), maxDividerWidth)
	return strings.Repeat("─", w)
}

// renderPage frames body between a title and a help line.
func renderPage(title, body, hotKeys string, width int) string {
	rule := divider(width)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(rule)
	b.WriteString("\n\n")

	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(rule)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
	}

	return appStyle.Render(b.String())
}

// fitText shortens v to at most limit runes, marking the cut with "...".
func fitText(v string, limit int) string {
	runes := []rune(v)
	if limit <= 0 || len(runes) <= limit {
		return v
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
