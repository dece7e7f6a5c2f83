// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for panel sizing
const (
	// Viewport padding
	ViewportHorizontalPadding = 4
	ViewportVerticalPadding   = 6

	// Panel borders and spacing
	PanelBorderWidth = 1
	PanelPaddingH    = 1
	ContentIndent    = 2

	// Control areas
	HeaderHeight = 2
	FooterHeight = 1
	TabBarHeight = 2

	// Chart dimensions
	ChartHeight   = 8
	BarMaxWidth   = 40
	BarLabelWidth = 12

	// Responsive breakpoints
	MinimumTerminalWidth = 40
	CompactModeWidth     = 80
	DefaultWidth         = 80
	DefaultHeight        = 24
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size.
// Sizes below the minimum are clamped so renderers never see a negative width.
func NewLayoutConfig(width, height int) LayoutConfig {
	if width < MinimumTerminalWidth {
		width = MinimumTerminalWidth
	}
	if height < 1 {
		height = DefaultHeight
	}
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < CompactModeWidth,
	}
}

// ContentWidth returns the usable content width
func (l LayoutConfig) ContentWidth() int {
	return l.TerminalWidth - ViewportHorizontalPadding
}

// ContentHeight returns the usable content height between header and tab bar
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - HeaderHeight - TabBarHeight - FooterHeight
	if h < 1 {
		return 1
	}
	return h
}

// PanelContentWidth returns the content width inside a bordered panel
func PanelContentWidth(panelWidth int) int {
	w := panelWidth - (PanelBorderWidth * 2) - (PanelPaddingH * 2)
	if w < 1 {
		return 1
	}
	return w
}

// CardWidth returns the width of one card when n cards share a row.
// Compact layouts stack cards, so each gets the full width.
func (l LayoutConfig) CardWidth(n int) int {
	if n < 1 || l.IsCompact {
		return l.ContentWidth()
	}
	return l.ContentWidth()/n - 1
}
