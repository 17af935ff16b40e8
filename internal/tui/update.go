package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/tui/handlers"
	"github.com/julianstephens/watchlit/internal/tui/state"
)

// chromeHeight is the space taken by tabs, banner, status and help.
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.ShowList.SetSize(msg.Width-4, max(msg.Height-chromeHeight, 1))
		m.SettingsModel.SetSize(msg.Width, msg.Height-chromeHeight)
		return m, nil

	case state.TickMsg:
		// Forms keep their own state; the list refreshes once they close.
		if !m.inForm() {
			m.Refresh(true)
		}
		return m, m.TickCmd()
	}

	switch m.State {
	case constants.StateEditShow:
		return m, handlers.HandleShowFormState(m.Model, msg)
	case constants.StateEditSettings:
		return m, handlers.HandleSettingsFormState(m.Model, msg)
	case constants.StatePurge:
		return m, handlers.HandlePurgeState(m.Model, msg)
	case constants.StateConfirmation:
		return m, handlers.HandleConfirmationState(m.Model, msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateShowList(msg)
	}

	// While filtering every key belongs to the filter input.
	if m.State == constants.StateShows && m.ShowList.Filtering() {
		return m.updateShowList(msg)
	}

	if handled, cmd := handlers.HandleGlobalKeys(m.Model, keyMsg); handled {
		return m, cmd
	}

	var handled bool
	switch m.State {
	case constants.StateShows:
		handled = handlers.HandleShowKeys(m.Model, keyMsg)
	case constants.StateWeights:
		handled = handlers.HandleWeightKeys(m.Model, keyMsg)
	case constants.StateSettings:
		handled = handlers.HandleSettingsKeys(m.Model, keyMsg)
	}

	if m.inForm() {
		return m, m.Form.Init()
	}
	if handled || m.State != constants.StateShows {
		return m, nil
	}
	return m.updateShowList(msg)
}

func (m Model) updateShowList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.ShowList, cmd = m.ShowList.Update(msg)
	return m, cmd
}

func (m Model) inForm() bool {
	return m.State >= constants.MainViewCount && m.Form != nil
}
