package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value int
	Color lipgloss.Color
}

// BarChart renders labelled horizontal bars scaled against ceiling.
// Values above ceiling are clamped; a non-positive ceiling scales against the largest value.
func BarChart(styles Styles, bars []Bar, ceiling, width int) string {
	if len(bars) == 0 {
		return ""
	}
	if ceiling <= 0 {
		for _, b := range bars {
			if b.Value > ceiling {
				ceiling = b.Value
			}
		}
		if ceiling <= 0 {
			ceiling = 1
		}
	}

	barWidth := width - BarLabelWidth - 5
	if barWidth > BarMaxWidth {
		barWidth = BarMaxWidth
	}
	if barWidth < 1 {
		barWidth = 1
	}

	var sb strings.Builder
	for _, b := range bars {
		v := b.Value
		if v > ceiling {
			v = ceiling
		}
		if v < 0 {
			v = 0
		}
		filled := v * barWidth / ceiling
		color := b.Color
		if color == "" {
			color = styles.Theme.Primary
		}
		fill := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
		empty := styles.Divider.Render(strings.Repeat("░", barWidth-filled))
		label := styles.Body.Width(BarLabelWidth).Render(b.Label)
		sb.WriteString(fmt.Sprintf("%s %s%s %3d\n", label, fill, empty, b.Value))
	}
	return sb.String()
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a one-line block sparkline scaled between
// their own minimum and maximum. A flat series renders at mid height.
func Sparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]rune, len(values))
	top := len(sparkRunes) - 1
	for i, v := range values {
		if hi == lo {
			out[i] = sparkRunes[top/2]
			continue
		}
		out[i] = sparkRunes[(v-lo)*top/(hi-lo)]
	}
	return string(out)
}

// Series is one labelled sparkline of a trend panel.
type Series struct {
	Label  string
	Unit   string
	Values []int
	Color  lipgloss.Color
}

// TrendChart stacks one sparkline per series with its first and last value.
func TrendChart(styles Styles, series []Series) string {
	var sb strings.Builder
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		line := lipgloss.NewStyle().Foreground(s.Color).Render(Sparkline(s.Values))
		first, last := s.Values[0], s.Values[len(s.Values)-1]
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			styles.Body.Width(BarLabelWidth).Render(s.Label),
			line,
			styles.Muted.Render(fmt.Sprintf("%d%s → %d%s", first, s.Unit, last, s.Unit)),
		))
	}
	return sb.String()
}
