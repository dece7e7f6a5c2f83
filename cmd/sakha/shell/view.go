package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"krishisakha/cmd/sakha/ui"
	"krishisakha/internal/analysis"
	"krishisakha/internal/logging"
	"krishisakha/internal/sample"
)

const (
	appTitle    = "Krishi-Sakha Smart Farming Assistant"
	appSubtitle = "AI-Powered Crop Recommendations"
)

// View renders the header, the scrollable panel, the tab bar and the key help.
// The output never exceeds the terminal height.
func (m Model) View() string {
	width := m.layout.TerminalWidth

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Width(width).Render(appTitle))
	sb.WriteString("\n")
	sb.WriteString(m.styles.HeaderSub.Width(width).Render(appSubtitle))
	sb.WriteString("\n")

	sb.WriteString(m.styles.Content.Render(m.viewport.View()))
	sb.WriteString("\n")

	tabs := sample.Tabs()
	labels := make([]string, len(tabs))
	for i, t := range tabs {
		labels[i] = t.String()
	}
	sb.WriteString(ui.RenderTabBar(m.styles, labels, int(m.tab), width))
	sb.WriteString("\n")

	if m.status != "" {
		sb.WriteString(m.styles.Error.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Footer.Render(m.help.View(keys)))
	return sb.String()
}

// Panel renders only the body of the visible tab.
func (m Model) Panel() string {
	switch m.tab {
	case sample.TabAnalysis:
		return m.renderAnalysis()
	case sample.TabAlerts:
		return m.cached(m.renderAlerts)
	case sample.TabWeather:
		return m.cached(m.renderWeather)
	default:
		return m.cached(m.renderDashboard)
	}
}

// cached renders a static panel once per tab, width and theme.
func (m Model) cached(render func() string) string {
	theme := m.styles.Theme
	key := ui.ComputeKey(m.tab.Key(), m.layout.TerminalWidth, theme.IsDark, string(theme.Primary))
	return m.cache.GetOrCompute(key, func() string {
		defer logging.StartTimer(logging.CategoryUI, "render "+m.tab.Key()).StopWithThreshold(renderBudget)
		return render()
	})
}

func (m Model) renderDashboard() string {
	width := m.layout.ContentWidth()
	readings := sample.DashboardReadings()
	cardWidth := m.layout.CardWidth(len(readings))

	cards := make([]string, len(readings))
	for i, r := range readings {
		value := m.styles.Bold.Render(r.Value)
		cards[i] = m.styles.Card.Width(cardWidth).Render(m.styles.Muted.Render(r.Label) + "\n" + value)
	}
	var row string
	if m.layout.IsCompact {
		row = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	points := sample.WeatherPoints()
	temp := make([]int, len(points))
	humidity := make([]int, len(points))
	soil := make([]int, len(points))
	days := make([]string, len(points))
	for i, p := range points {
		temp[i], humidity[i], soil[i], days[i] = p.TemperatureC, p.HumidityPct, p.SoilPct, p.Label
	}
	trend := ui.TrendChart(m.styles, []ui.Series{
		{Label: "Temperature", Unit: "°C", Values: temp, Color: ui.ChartTemperature},
		{Label: "Humidity", Unit: "%", Values: humidity, Color: ui.ChartHumidity},
		{Label: "Soil Moisture", Unit: "%", Values: soil, Color: ui.ChartSoil},
	})
	axis := m.styles.Muted.Render(strings.Repeat(" ", ui.BarLabelWidth+1) + strings.Join(days, " "))

	return row + "\n\n" + ui.RenderCard(m.styles.Card, m.styles, "Weekly Weather Trends", trend+axis, width)
}

func (m Model) renderAlerts() string {
	width := m.layout.ContentWidth()
	inner := ui.PanelContentWidth(width)

	boxes := make([]string, 0, len(sample.Alerts()))
	for _, a := range sample.Alerts() {
		boxes = append(boxes, ui.RenderCard(m.styles.AlertBox, m.styles, a.Title, ui.Wrap(a.Description, inner), width))
	}
	return strings.Join(boxes, "\n")
}

func (m Model) renderWeather() string {
	table := ui.NewSimpleTable("5-Day Weather Forecast", []string{"Day", "Temperature", "Humidity", "Trend"})
	points := sample.WeatherPoints()
	for i, p := range points {
		arrow := "·"
		if i > 0 {
			switch {
			case p.TemperatureC > points[i-1].TemperatureC:
				arrow = "↑"
			case p.TemperatureC < points[i-1].TemperatureC:
				arrow = "↓"
			}
		}
		table.AddRow(p.Label, fmt.Sprintf("%d°C", p.TemperatureC), fmt.Sprintf("%d%%", p.HumidityPct), arrow)
	}

	o := sample.TodayOverview()
	overview := fmt.Sprintf("Max Temperature: %d°C\nMin Temperature: %d°C\nHumidity: %d%%\nWind Speed: %d km/h",
		o.MaxTempC, o.MinTempC, o.HumidityPct, o.WindKmh)

	cardWidth := m.layout.CardWidth(2)
	todayCard := ui.RenderCard(m.styles.Card, m.styles, "Today's Overview", overview, cardWidth)
	advisory := ui.RenderCard(m.styles.Card, m.styles, "Weather Advisory",
		m.styles.Muted.Render(ui.Wrap(sample.WeatherAdvisory, ui.PanelContentWidth(cardWidth))), cardWidth)

	var cards string
	if m.layout.IsCompact {
		cards = lipgloss.JoinVertical(lipgloss.Left, todayCard, advisory)
	} else {
		cards = lipgloss.JoinHorizontal(lipgloss.Top, todayCard, " ", advisory)
	}
	return table.View(m.styles) + "\n" + cards
}

func (m Model) renderAnalysis() string {
	if !m.wizard.Revealed() {
		return m.renderProgress()
	}
	body, _, _ := m.renderResults()
	return body
}

func (m Model) renderProgress() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Crop Analysis in Progress"))
	sb.WriteString("\n")

	for i, step := range sample.AnalysisSteps() {
		var mark, label string
		switch m.wizard.StepStatus(i) {
		case analysis.StepDone:
			mark = m.styles.Success.Render("✓")
			label = m.styles.Body.Render(step.Label)
		case analysis.StepActive:
			mark = m.spinner.View()
			label = m.styles.Info.Render(step.Label)
		default:
			mark = m.styles.Muted.Render("·")
			label = m.styles.Muted.Render(step.Label)
		}
		sb.WriteString(fmt.Sprintf(" %s %s\n", mark, label))
	}
	return sb.String()
}

// renderResults returns the results body and the line range [top, bottom)
// of the card under the cursor.
func (m Model) renderResults() (body string, top, bottom int) {
	width := m.layout.ContentWidth()
	crops := sample.CropScores()

	bars := make([]ui.Bar, len(crops))
	for i, c := range crops {
		bars[i] = ui.Bar{Label: c.Name, Value: c.Score, Color: ui.Success}
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Crop Recommendations"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Compatibility Score"))
	sb.WriteString("\n")
	sb.WriteString(ui.BarChart(m.styles, bars, 100, width))
	sb.WriteString("\n")

	selected, hasSelection := m.wizard.Selected()
	for i, c := range crops {
		expanded := hasSelection && selected == i
		style := m.styles.Card
		switch {
		case expanded:
			style = m.styles.CardActive
		case i == m.cursor:
			style = m.styles.CardFocused
		}

		pointer, chevron := "  ", "▸"
		if i == m.cursor {
			pointer = "› "
		}
		if expanded {
			chevron = "▾"
		}
		detail := m.styles.Muted.Render(fmt.Sprintf("Compatibility Score: %d%%", c.Score))
		if expanded {
			detail += "\n\n" + fmt.Sprintf("Market Demand: %s\nWater Requirement: %s\nGrowing Season: %s\n\n%s",
				c.Demand, c.WaterReq, c.Season,
				m.styles.Success.Render(ui.Wrap(sample.RecommendationRationale, ui.PanelContentWidth(width))))
		}
		card := ui.RenderCard(style, m.styles, pointer+c.Name+" "+chevron, detail, width)
		if i == m.cursor {
			top = strings.Count(sb.String(), "\n")
			bottom = top + lipgloss.Height(card)
		}
		sb.WriteString(card)
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.RenderDivider(width))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Button.Render("Start New Analysis"))
	sb.WriteString(m.styles.Muted.Render("  press n"))
	return sb.String(), top, bottom
}
