// Package shell implements the tabbed Krishi-Sakha shell: dashboard, crop
// analysis, alerts and weather panels behind a bottom tab bar.
package shell

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/analysis"
	"krishisakha/internal/config"
	"krishisakha/internal/logging"
	"krishisakha/internal/sample"
)

// tickMsg fires the wizard transition scheduled under gen.
type tickMsg struct {
	gen uint64
}

// Options configures a new shell.
type Options struct {
	Styles      ui.Styles
	StartTab    sample.Tab
	StepDelay   time.Duration
	RevealDelay time.Duration
	Width       int
	Height      int
}

// OptionsFromConfig builds shell options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	tab, err := sample.ParseTab(cfg.UI.StartTab)
	if err != nil {
		tab = sample.TabDashboard
	}
	return Options{
		Styles:      ui.NewStyles(ui.ThemeByName(cfg.UI.Theme)),
		StartTab:    tab,
		StepDelay:   cfg.GetStepDelay(),
		RevealDelay: cfg.GetRevealDelay(),
	}
}

// renderBudget is the static panel render time above which a warning is logged.
const renderBudget = 50 * time.Millisecond

// Model is the shell's bubbletea model. The wizard is created once and
// survives tab switches; only "new analysis" resets it.
type Model struct {
	styles ui.Styles
	layout ui.LayoutConfig
	tab    sample.Tab

	wizard *analysis.Wizard
	cursor int
	follow bool // scroll the focused crop card into view on the next sync

	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	showHelp bool
	status   string

	// after schedules wizard ticks; tea.Tick outside tests.
	after func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	cache *ui.RenderCache
	log   *logging.Logger
}

// New creates a shell model. The analysis starts with Init.
func New(opts Options) Model {
	if opts.Styles.Theme.Primary == "" {
		opts.Styles = ui.DefaultStyles()
	}
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = ui.DefaultWidth
	}
	if height <= 0 {
		height = ui.DefaultHeight
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Spinner

	h := help.New()
	h.Width = width - opts.Styles.Footer.GetHorizontalPadding()

	m := Model{
		styles:   opts.Styles,
		layout:   ui.NewLayoutConfig(width, height),
		tab:      opts.StartTab,
		wizard:   analysis.New(analysis.WithDelays(opts.StepDelay, opts.RevealDelay)),
		viewport: viewport.New(width, height),
		spinner:  sp,
		help:     h,
		after:    tea.Tick,
		cache:    ui.NewRenderCache(32),
		log:      logging.Get(logging.CategoryUI),
	}
	m.syncViewport()
	return m
}

// Init starts the spinner and schedules the first analysis step.
func (m Model) Init() tea.Cmd {
	m.log.Info("shell started on tab %s", m.tab.Key())
	return tea.Batch(m.spinner.Tick, m.scheduleNext())
}

// scheduleNext returns a tick for the wizard's pending transition, or nil once revealed.
func (m Model) scheduleNext() tea.Cmd {
	next, ok := m.wizard.Next()
	if !ok {
		return nil
	}
	gen := next.Gen
	return m.after(next.Delay, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Tab returns the visible tab.
func (m Model) Tab() sample.Tab { return m.tab }

// Analysis returns a snapshot of the wizard state.
func (m Model) Analysis() analysis.State { return m.wizard.State() }

// FastForward applies every pending wizard transition immediately.
func (m Model) FastForward() Model {
	for {
		next, ok := m.wizard.Next()
		if !ok {
			m.syncViewport()
			return m
		}
		m.wizard.Fire(next.Gen)
	}
}

// syncViewport sizes the scrollable body to the space between the header and
// the tab bar and loads the visible panel into it.
func (m *Model) syncViewport() {
	height := m.layout.ContentHeight() - m.styles.Content.GetVerticalPadding()
	if m.status != "" {
		height--
	}
	if height < 1 {
		height = 1
	}
	m.viewport.Width = m.layout.ContentWidth()
	m.viewport.Height = height

	switch {
	case m.showHelp:
		m.viewport.SetContent(ui.HelpOverlay(helpMarkdown, m.styles.Theme, m.layout.ContentWidth()))
	case m.tab == sample.TabAnalysis && m.wizard.Revealed():
		body, top, bottom := m.renderResults()
		m.viewport.SetContent(body)
		if m.follow {
			m.scrollIntoView(top, bottom)
		}
	default:
		m.viewport.SetContent(m.Panel())
	}
	m.follow = false
}

// scrollIntoView moves the viewport so lines [top, bottom) are visible,
// preferring the top line when the range is taller than the viewport.
func (m *Model) scrollIntoView(top, bottom int) {
	offset := m.viewport.YOffset
	if bottom > offset+m.viewport.Height {
		offset = bottom - m.viewport.Height
	}
	if top < offset {
		offset = top
	}
	m.viewport.SetYOffset(offset)
}
