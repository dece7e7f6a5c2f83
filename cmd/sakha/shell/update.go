package shell

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/sample"
)

// Update handles key presses, wizard ticks, resizes and config reloads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncViewport()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayoutConfig(msg.Width, msg.Height)
		m.help.Width = m.layout.TerminalWidth - m.styles.Footer.GetHorizontalPadding()
		return m, nil

	case tickMsg:
		ev, ok := m.wizard.Fire(msg.gen)
		if !ok {
			m.log.Debug("dropped stale tick gen=%d (current %d)", msg.gen, m.wizard.Generation())
			return m, nil
		}
		m.log.Debug("analysis %s step=%d revealed=%t", ev.Kind, ev.Step, ev.Revealed)
		if ev.Revealed && m.tab == sample.TabAnalysis {
			m.viewport.GotoTop()
		}
		return m, m.scheduleNext()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ui.ConfigReloadMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("config reload failed: %v", msg.Err)
			return m, nil
		}
		m.status = ""
		m.styles = ui.NewStyles(ui.ThemeByName(msg.Config.UI.Theme))
		m.spinner.Style = m.styles.Spinner
		m.cache.Clear()
		m.log.Info("theme switched to %s", msg.Config.UI.Theme)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		m.viewport.GotoTop()
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.PageUp):
		m.viewport.PageUp()
		return m, nil
	case key.Matches(msg, keys.PageDown):
		m.viewport.PageDown()
		return m, nil
	}
	if m.showHelp {
		if msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Tab1):
		m.switchTab(sample.TabDashboard)
	case key.Matches(msg, keys.Tab2):
		m.switchTab(sample.TabAnalysis)
	case key.Matches(msg, keys.Tab3):
		m.switchTab(sample.TabAlerts)
	case key.Matches(msg, keys.Tab4):
		m.switchTab(sample.TabWeather)
	case key.Matches(msg, keys.NextTab):
		m.switchTab(m.tab.Next())
	case key.Matches(msg, keys.PrevTab):
		m.switchTab(m.tab.Prev())

	case m.tab != sample.TabAnalysis:
		return m, nil

	case key.Matches(msg, keys.NewAnalysis):
		m.wizard.Reset()
		m.cursor = 0
		m.viewport.GotoTop()
		m.log.Info("new analysis started")
		return m, m.scheduleNext()
	case !m.wizard.Revealed():
		return m, nil
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.follow = true
	case key.Matches(msg, keys.Down):
		if m.cursor < sample.CropCount()-1 {
			m.cursor++
		}
		m.follow = true
	case key.Matches(msg, keys.Tap):
		m.follow = true
		if _, err := m.wizard.Select(m.cursor); err != nil {
			m.log.Warn("select crop %d: %v", m.cursor, err)
		}
	}
	return m, nil
}

func (m *Model) switchTab(t sample.Tab) {
	if t == m.tab {
		return
	}
	m.log.With("from", m.tab.Key(), "to", t.Key()).Debug("tab switched")
	m.tab = t
	m.viewport.GotoTop()
}
