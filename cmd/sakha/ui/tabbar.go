package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// RenderTabBar renders a bottom navigation row with the active entry highlighted.
// Labels are truncated when the row would not fit in width.
func RenderTabBar(styles Styles, labels []string, active, width int) string {
	if len(labels) == 0 {
		return ""
	}
	cell := width / len(labels)
	if cell < 4 {
		cell = 4
	}

	parts := make([]string, len(labels))
	for i, label := range labels {
		label = truncate.StringWithTail(label, uint(cell-2), "…")
		style := styles.TabInactive
		if i == active {
			style = styles.TabActive
			label = "● " + label
		}
		parts[i] = style.Width(cell).Align(lipgloss.Center).Render(label)
	}
	return styles.TabBar.Width(width).Render(strings.Join(parts, ""))
}

// Wrap word-wraps text to width. Widths below 10 leave the text unwrapped.
func Wrap(text string, width int) string {
	if width < 10 {
		return text
	}
	return wordwrap.String(text, width)
}

// RenderCard draws a bordered card with a bold title over body.
func RenderCard(style lipgloss.Style, styles Styles, title, body string, width int) string {
	content := styles.Bold.Render(title)
	if body != "" {
		content += "\n" + body
	}
	if width > 0 {
		style = style.Width(PanelContentWidth(width) + PanelPaddingH*2)
	}
	return style.Render(content)
}
