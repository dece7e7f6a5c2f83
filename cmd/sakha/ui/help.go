package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownStyle picks the glamour style matching the theme.
func MarkdownStyle(theme Theme) string {
	if theme.IsDark {
		return "dark"
	}
	return "light"
}

// RenderMarkdown renders markdown with the named glamour style
// ("dark", "light" or "notty") wrapped at width.
func RenderMarkdown(markdown, style string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

// HelpOverlay renders help markdown for the theme, falling back to the raw
// markdown if glamour fails.
func HelpOverlay(markdown string, theme Theme, width int) string {
	out, err := RenderMarkdown(markdown, MarkdownStyle(theme), width)
	if err != nil {
		return markdown
	}
	return out
}
