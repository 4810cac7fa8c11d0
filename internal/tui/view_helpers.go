package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minDividerWidth = 40
	maxDividerWidth = 100
)

// renderPage lays out a screen as title, divider, body, divider, key help.
// The dividers follow the widest body line within fixed bounds.
func renderPage(title, data, hotKeys string) string {
	body := strings.TrimRight(data, "\n")
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	divider := strings.Repeat("─", dividerWidth(title, body))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(divider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys + "  ctrl+c quit"))
	}

	return b.String()
}

func dividerWidth(blocks ...string) int {
	width := minDividerWidth
	for _, block := range blocks {
		width = max(width, lipgloss.Width(block))
	}

	return min(width, maxDividerWidth)
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
