package shell

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Tab1, Tab2, Tab3, Tab4 key.Binding
	NextTab, PrevTab       key.Binding
	Up, Down, Tap          key.Binding
	PageUp, PageDown       key.Binding
	NewAnalysis            key.Binding
	Help, Quit             key.Binding
}

var keys = keyMap{
	Tab1:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "tabs")),
	Tab2:        key.NewBinding(key.WithKeys("2")),
	Tab3:        key.NewBinding(key.WithKeys("3")),
	Tab4:        key.NewBinding(key.WithKeys("4")),
	NextTab:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next tab")),
	PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab/←", "prev tab")),
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tap:         key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
	PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
	PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll down")),
	NewAnalysis: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new analysis")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab1, k.NextTab, k.Tap, k.NewAnalysis, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.Tap},
		{k.PageUp, k.PageDown},
		{k.NewAnalysis, k.Help, k.Quit},
	}
}

const helpMarkdown = `# Krishi-Sakha

## Navigation

* **1-4** jump to Dashboard, Analysis, Alerts or Weather
* **tab** / **→** next tab, **shift+tab** / **←** previous tab
* **pgup** / **pgdn** scroll a panel taller than the window

## Analysis

The analysis runs through four steps and then shows crop recommendations.

* **↑** / **↓** move between crops
* **enter** expands a crop; pressing it again on the same crop collapses it
* **n** starts a new analysis from the first step

## General

* **?** toggles this help
* **q** quits
`
