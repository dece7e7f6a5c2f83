// Package farmer implements the single-page farmer screen with its
// English/Hindi language selector.
//
// Only the bottom navigation is translated. Every other section renders the
// same English text whichever language is selected.
package farmer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/logging"
	"krishisakha/internal/sample"
)

type keyMap struct {
	Toggle, English, Hindi, Quit key.Binding
}

var keys = keyMap{
	Toggle:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle language")),
	English: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "English")),
	Hindi:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "हिंदी")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.English, k.Hindi, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Options configures a new farmer screen.
type Options struct {
	Styles   ui.Styles
	Language sample.Language
	Width    int
	Height   int
}

// Model is the farmer screen's bubbletea model.
type Model struct {
	styles ui.Styles
	layout ui.LayoutConfig
	lang   sample.Language
	help   help.Model
	log    *logging.Logger
}

// New creates a farmer screen. An unknown language falls back to English.
func New(opts Options) Model {
	if opts.Styles.Theme.Primary == "" {
		opts.Styles = ui.DefaultStyles()
	}
	lang, err := sample.ParseLanguage(string(opts.Language))
	if err != nil {
		lang = sample.English
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = ui.DefaultWidth
	}
	if height <= 0 {
		height = ui.DefaultHeight
	}
	h := help.New()
	h.Width = width
	return Model{
		styles: opts.Styles,
		layout: ui.NewLayoutConfig(width, height),
		lang:   lang,
		help:   h,
		log:    logging.Get(logging.CategoryUI),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Language returns the selected language.
func (m Model) Language() sample.Language { return m.lang }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayoutConfig(msg.Width, msg.Height)
		m.help.Width = m.layout.TerminalWidth
	case ui.ConfigReloadMsg:
		if msg.Err == nil {
			m.styles = ui.NewStyles(ui.ThemeByName(msg.Config.UI.Theme))
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			m.setLanguage(m.lang.Other())
		case key.Matches(msg, keys.English):
			m.setLanguage(sample.English)
		case key.Matches(msg, keys.Hindi):
			m.setLanguage(sample.Hindi)
		}
	}
	return m, nil
}

func (m *Model) setLanguage(l sample.Language) {
	if m.lang != l {
		m.log.Debug("language %s -> %s", m.lang, l)
	}
	m.lang = l
}

// NavLabels returns the bottom navigation labels in the selected language.
func (m Model) NavLabels() []string {
	t := sample.Translate(m.lang)
	return []string{t.Weather, t.Soil, t.Alerts, t.Settings}
}

// View renders the selector, the static sections and the navigation bar.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderSelector())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Content.Render(m.Content()))
	sb.WriteString("\n")
	// The first entry stays highlighted; navigation is decorative.
	sb.WriteString(ui.RenderTabBar(m.styles, m.NavLabels(), 0, m.layout.TerminalWidth))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render(m.help.View(keys)))
	return sb.String()
}

func (m Model) renderSelector() string {
	parts := make([]string, 0, len(sample.Languages))
	for _, l := range sample.Languages {
		if l == m.lang {
			parts = append(parts, m.styles.Badge.Render(l.DisplayName()))
		} else {
			parts = append(parts, m.styles.Muted.Render(l.DisplayName()))
		}
	}
	selector := strings.Join(parts, " ")
	bell := m.styles.Muted.Render("🔔")
	gap := m.layout.TerminalWidth - lipgloss.Width(selector) - lipgloss.Width(bell) - 4
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Render(selector + strings.Repeat(" ", gap) + bell)
}

// Content renders every section between the selector and the navigation.
func (m Model) Content() string {
	width := m.layout.ContentWidth()
	inner := ui.PanelContentWidth(width)

	banner := m.styles.AlertBox.Width(inner + ui.PanelPaddingH*2).
		Render(m.styles.Warning.Render("⚠ ") + ui.Wrap(sample.FarmerBanner, inner-2))

	var conditions strings.Builder
	for i, r := range sample.FarmerConditions() {
		if i > 0 {
			conditions.WriteString("\n")
		}
		conditions.WriteString(fmt.Sprintf("%s  %s", m.styles.Muted.Render(r.Label), m.styles.Bold.Render(r.Value)))
	}

	var recs strings.Builder
	for i, r := range sample.FarmerRecommendations() {
		if i > 0 {
			recs.WriteString("\n")
		}
		recs.WriteString("• " + ui.Wrap(r, inner-2))
	}

	var prices strings.Builder
	for i, p := range sample.MarketPrices() {
		if i > 0 {
			prices.WriteString("\n")
		}
		price := p.Price
		style := m.styles.Bold
		if p.Trending {
			price += " ↑"
			style = m.styles.Success
		}
		prices.WriteString(fmt.Sprintf("%-8s %s", p.Commodity, style.Render(price)))
	}

	return strings.Join([]string{
		banner,
		ui.RenderCard(m.styles.Card, m.styles, "Current Conditions", conditions.String(), width),
		ui.RenderCard(m.styles.Card, m.styles, "Recommendations", recs.String(), width),
		ui.RenderCard(m.styles.Card, m.styles, "Market Prices", prices.String(), width),
	}, "\n")
}
