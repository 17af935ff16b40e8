package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/watchlit/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateShows:
		content = docStyle.Render(m.ShowList.View())
	case constants.StateWeights:
		content = docStyle.Render(m.WeightsModel.View())
	case constants.StateSettings:
		content = m.SettingsModel.View()
	default:
		if m.Form != nil {
			content = docStyle.Render(m.Form.View())
		}
	}

	var banner string
	if m.ValidationWarning != "" {
		banner = bannerStyle.Render(m.ValidationWarning)
	}

	var status string
	if m.StatusMessage != "" {
		status = statusStyle.Render(m.StatusMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		status,
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.State
	if active >= constants.MainViewCount {
		active = m.PreviousState
	}

	tabTitles := []string{"Shows", "Weights", "Settings"}
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	if m.Settings.SortByUpcoming {
		tabs = append(tabs, modeStyle.Render("by upcoming"))
	}
	if m.Settings.DisplayHidden {
		tabs = append(tabs, modeStyle.Render("showing hidden"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
