package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows, such as the weather trend or market prices.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table. Extra cells beyond the headers are dropped
// at render time; missing cells render blank.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Bold.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := t.columnWidths()
	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sep := styles.Muted.Render("│")

	cells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = headerStyle.Width(widths[i]).Render(h)
	}
	sb.WriteString(strings.Join(cells, sep))
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i := range t.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = rowStyle.Width(widths[i]).Render(cell)
		}
		sb.WriteString(strings.Join(cells, sep))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *SimpleTable) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	// lipgloss Width includes padding
	for i := range widths {
		widths[i] += 2
	}
	return widths
}
