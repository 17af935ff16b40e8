package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/models"
)

type Model struct {
	settings models.Settings
	width    int
	height   int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(28)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

func New(settings models.Settings, width, height int) Model {
	return Model{
		settings: settings,
		width:    width,
		height:   height,
	}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	s := m.settings
	grace := fmt.Sprintf("%dh", s.ReleaseGracePeriod)
	if s.ReleaseGracePeriod == 0 {
		grace = "until dismissed"
	} else if s.ReleaseGracePeriod%constants.HoursPerDay == 0 {
		grace = fmt.Sprintf("%dd", s.ReleaseGracePeriod/constants.HoursPerDay)
	}

	swatches := make([]string, len(s.TextColors))
	for i, c := range s.TextColors {
		swatches[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(fmt.Sprintf("%d:%s", i, c))
	}

	sections := []string{
		section("Releases",
			row("Grace period:", grace),
			row("Send notifications:", fmt.Sprintf("%t", s.SendNotifications)),
		),
		section("Ordering",
			row("Move released to top:", fmt.Sprintf("%t", s.MoveRecentlyReleasedToTop)),
			row("Weight to add:", fmt.Sprintf("%d", s.WeightToAdd)),
			row("Sort by upcoming:", fmt.Sprintf("%t", s.SortByUpcoming)),
		),
		section("Display",
			row("Show time till release:", fmt.Sprintf("%t", s.ShowTillRelease)),
			row("Precise countdown:", fmt.Sprintf("%t", s.RemainingTimePrecise)),
			row("Display hidden:", fmt.Sprintf("%t", s.DisplayHidden)),
			row("Max title length:", fmt.Sprintf("%d", s.MaxTitleDisplayLen)),
			row("Shorten with ellipsis:", fmt.Sprintf("%t", s.ShortenWithEllipsis)),
			row("Colors:", strings.Join(swatches, " ")),
			row("New show color:", fmt.Sprintf("%d", s.InitialShowColorIndex)),
			row("Purge color:", fmt.Sprintf("%d", s.PurgeColorIndex)),
			row("Refresh every:", fmt.Sprintf("%ds", s.UpdateIntervalSec)),
		),
	}

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(1).
		Render("Press 'e' to edit settings")
	sections = append(sections, helpText)

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func section(title string, rows ...string) string {
	return sectionStyle.Render(titleStyle.Render(title) + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	return labelStyle.Render(label) + " " + valueStyle.Render(value)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
