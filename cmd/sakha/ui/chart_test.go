package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "▁█", Sparkline([]int{1, 9}))
	assert.Equal(t, "▄▄▄", Sparkline([]int{5, 5, 5}))

	got := []rune(Sparkline([]int{32, 30, 31, 33, 35}))
	require.Len(t, got, 5)
	assert.Equal(t, '▁', got[1])
	assert.Equal(t, '█', got[4])
}

func TestBarChart(t *testing.T) {
	styles := NewStyles(LightTheme())
	out := BarChart(styles, []Bar{
		{Label: "Cotton", Value: 92},
		{Label: "Soybean", Value: 85},
		{Label: "Over", Value: 150},
	}, 100, 60)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Cotton")
	assert.Contains(t, lines[0], "92")
	assert.True(t, strings.Count(lines[0], "█") > strings.Count(lines[1], "█"))
	assert.NotContains(t, lines[2], "░", "values above max fill the bar")

	assert.Equal(t, "", BarChart(styles, nil, 100, 60))
}

func TestTrendChart(t *testing.T) {
	out := TrendChart(NewStyles(LightTheme()), []Series{
		{Label: "Temp", Unit: "°C", Values: []int{32, 35}},
		{Label: "Empty"},
	})
	assert.Contains(t, out, "Temp")
	assert.Contains(t, out, "32°C → 35°C")
	assert.NotContains(t, out, "Empty")
}

func TestRenderTabBar(t *testing.T) {
	styles := NewStyles(LightTheme())
	out := RenderTabBar(styles, []string{"Dashboard", "Analysis"}, 1, 40)
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "● Analysis")
	assert.NotContains(t, out, "● Dashboard")
	assert.Equal(t, "", RenderTabBar(styles, nil, 0, 40))
}

func TestWrap(t *testing.T) {
	text := "Increased pest activity reported in the region"
	wrapped := Wrap(text, 20)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, text, Wrap(text, 5))
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Keys\n\n* `n` start a new analysis\n", "notty", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "start a new analysis")

	assert.Equal(t, "light", MarkdownStyle(LightTheme()))
	assert.Equal(t, "dark", MarkdownStyle(DarkTheme()))
}
