// Package ui provides the visual styling for the Krishi-Sakha terminal screens.
// Uses a field-green palette with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f3f4f6") // gray-100
	LightForeground = lipgloss.Color("#111827") // gray-900
	LightPrimary    = lipgloss.Color("#16a34a") // green-600
	LightAccent     = lipgloss.Color("#22c55e") // green-500
	LightSecondary  = lipgloss.Color("#f0fdf4") // green-50
	LightMuted      = lipgloss.Color("#6b7280") // gray-500
	LightBorder     = lipgloss.Color("#e5e7eb") // gray-200
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#0f1a14")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#4ade80") // green-400
	DarkAccent     = lipgloss.Color("#22c55e")
	DarkSecondary  = lipgloss.Color("#14291c")
	DarkMuted      = lipgloss.Color("#9ca3af")
	DarkBorder     = lipgloss.Color("#2f4a39")
	DarkCard       = lipgloss.Color("#17231b")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#ef4444") // red-500
	Success     = lipgloss.Color("#22c55e")
	Warning     = lipgloss.Color("#ca8a04") // yellow-600
	Info        = lipgloss.Color("#3b82f6") // blue-500

	// Chart series
	ChartTemperature = lipgloss.Color("#ef4444")
	ChartHumidity    = lipgloss.Color("#3b82f6")
	ChartSoil        = lipgloss.Color("#22c55e")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; 0-6 and 8 are dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("SAKHA_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// ThemeByName resolves a configured theme name; anything but light/dark auto-detects.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header    lipgloss.Style
	HeaderSub lipgloss.Style
	Footer    lipgloss.Style
	Content   lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardActive  lipgloss.Style
	AlertBox    lipgloss.Style
	Button      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style
	Spinner     lipgloss.Style
	Divider     lipgloss.Style
	Badge       lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		HeaderSub: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),

		CardActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		AlertBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Warning).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 3).
			Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		TabInactive: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		TabBar: lipgloss.NewStyle().
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		Spinner: lipgloss.NewStyle().
			Foreground(Info),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultStyles returns styles with the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
