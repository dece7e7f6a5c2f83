package farmer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/config"
	"krishisakha/internal/sample"
)

func newTestModel(lang sample.Language) Model {
	return New(Options{Styles: ui.NewStyles(ui.LightTheme()), Language: lang, Width: 80, Height: 40})
}

func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	result, ok := next.(Model)
	require.True(t, ok)
	return result
}

func TestNew_DefaultsToEnglish(t *testing.T) {
	assert.Equal(t, sample.English, newTestModel("").Language())
	assert.Equal(t, sample.English, newTestModel("klingon").Language())
	assert.Equal(t, sample.Hindi, newTestModel("hi").Language())
}

func TestLanguageKeys(t *testing.T) {
	m := newTestModel(sample.English)

	m = press(t, m, "l")
	assert.Equal(t, sample.Hindi, m.Language())
	m = press(t, m, "l")
	assert.Equal(t, sample.English, m.Language())

	m = press(t, m, "h")
	assert.Equal(t, sample.Hindi, m.Language())
	m = press(t, m, "h")
	assert.Equal(t, sample.Hindi, m.Language(), "choosing the selected language is a no-op")
	m = press(t, m, "e")
	assert.Equal(t, sample.English, m.Language())
}

func TestToggleChangesOnlyNavigation(t *testing.T) {
	en := newTestModel(sample.English)
	hi := press(t, en, "l")

	assert.Equal(t, en.Content(), hi.Content(), "section text is never translated")
	assert.Equal(t, []string{"Weather", "Soil Health", "Alerts", "Settings"}, en.NavLabels())
	assert.Equal(t, []string{"मौसम", "मिट्टी की सेहत", "चेतावनी", "सेटिंग"}, hi.NavLabels())

	view := hi.View()
	assert.Contains(t, view, "मौसम")
	assert.NotContains(t, view, "Soil Health")
	assert.Contains(t, view, "Current Conditions")
	assert.Contains(t, view, "Market Prices", "the market heading stays English")
}

func TestContentSections(t *testing.T) {
	content := newTestModel(sample.English).Content()
	for _, want := range []string{
		"Rain expected tomorrow.",
		"Current Conditions",
		"75%",
		"28°C",
		"Best time to irrigate: Early morning tomorrow",
		"₹2,100/quintal ↑",
		"₹1,900/quintal",
	} {
		assert.Contains(t, content, want)
	}
}

func TestFirstNavItemHighlighted(t *testing.T) {
	view := newTestModel(sample.English).View()
	assert.Contains(t, view, "● Weather")
	assert.NotContains(t, view, "● Settings")
}

func TestQuit(t *testing.T) {
	m := newTestModel(sample.English)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestConfigReloadSwitchesTheme(t *testing.T) {
	m := newTestModel(sample.English)
	cfg := config.DefaultConfig()
	cfg.UI.Theme = config.ThemeDark

	next, _ := m.Update(ui.ConfigReloadMsg{Config: cfg})
	m = next.(Model)
	assert.True(t, m.styles.Theme.IsDark)

	next, _ = m.Update(ui.ConfigReloadMsg{Err: assert.AnError})
	assert.True(t, next.(Model).styles.Theme.IsDark)
	assert.Equal(t, sample.English, next.(Model).Language(), "a reload never changes the selected language")
}
