// Package weights shows the weight histogram and lets the user pick a row
// to shift.
package weights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/watchlit/internal/ranking"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).MarginTop(1)
)

type Model struct {
	counts []ranking.WeightCount
	cursor int
}

func New() Model {
	return Model{}
}

// SetCounts replaces the histogram, keeping the cursor in range.
func (m *Model) SetCounts(counts []ranking.WeightCount) {
	m.counts = counts
	m.cursor = min(m.cursor, max(len(counts)-1, 0))
}

func (m Model) Cursor() int {
	return m.cursor
}

// Move shifts the cursor by delta rows, clamped to the histogram.
func (m *Model) Move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.counts)-1, 0))
}

// Follow moves the cursor to the row now holding weight.
func (m *Model) Follow(weight int) {
	for i, wc := range m.counts {
		if wc.Weight == weight {
			m.cursor = i
			return
		}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Weights"))
	b.WriteString("\n")

	if len(m.counts) == 0 {
		b.WriteString(rowStyle.Render("No shows yet."))
		return b.String()
	}

	for i, wc := range m.counts {
		line := fmt.Sprintf("%5d  %s", wc.Weight, plural(wc.Count))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("+ raises this row and every heavier one, - lowers this row and every lighter one"))
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return "1 show"
	}
	return fmt.Sprintf("%d shows", n)
}
