package handlers

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/tui/state"
)

// HandleGlobalKeys handles key presses shared by every main view
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case key.Matches(msg, m.Keys.Tab):
		m.State = (m.State + 1) % constants.MainViewCount
		return true, nil
	case key.Matches(msg, m.Keys.ShiftTab):
		m.State = (m.State + constants.MainViewCount - 1) % constants.MainViewCount
		return true, nil
	}
	return false, nil
}

// HandleShowKeys handles actions on the show list. Unhandled keys fall
// through to the list for navigation and filtering.
func HandleShowKeys(m *state.Model, msg tea.KeyMsg) bool {
	k := m.Keys
	switch {
	case key.Matches(msg, k.Dismiss):
		m.Dismiss(false)
	case key.Matches(msg, k.DismissNext):
		m.Dismiss(true)
	case key.Matches(msg, k.Undismiss):
		m.Undismiss()
	case key.Matches(msg, k.EpisodeUp):
		m.AdjustEpisode(1)
	case key.Matches(msg, k.EpisodeDown):
		m.AdjustEpisode(-1)
	case key.Matches(msg, k.SeasonUp):
		m.AdjustSeason(1)
	case key.Matches(msg, k.SeasonDown):
		m.AdjustSeason(-1)
	case key.Matches(msg, k.WeightUp):
		m.AdjustWeight(1)
	case key.Matches(msg, k.WeightDown):
		m.AdjustWeight(-1)
	case key.Matches(msg, k.Hide):
		m.ToggleHide()
	case key.Matches(msg, k.ToggleHidden):
		m.ToggleDisplayHidden()
	case key.Matches(msg, k.ToggleUpcoming):
		m.ToggleSortByUpcoming()
	case key.Matches(msg, k.Color):
		m.CycleColor()
	case key.Matches(msg, k.Add):
		openShowForm(m, nil)
	case key.Matches(msg, k.Edit):
		if s := m.Selected(); s != nil {
			openShowForm(m, s)
		}
	case key.Matches(msg, k.Delete):
		if s := m.Selected(); s != nil {
			id := s.ID
			openConfirmation(m, fmt.Sprintf("Delete %q and its notification history?", s.Title), func() tea.Cmd {
				m.DeleteShow(id)
				return nil
			})
		}
	case key.Matches(msg, k.Purge):
		if s := m.Selected(); s != nil {
			m.PurgeForm = &state.PurgeFormModel{Weight: strconv.Itoa(s.Weight)}
			m.PurgingShowID = s.ID
			openForm(m, NewPurgeForm(m.PurgeForm, s.Title), constants.StatePurge)
		}
	default:
		return false
	}
	return true
}

// HandleWeightKeys handles the weights view
func HandleWeightKeys(m *state.Model, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.WeightsModel.Move(-1)
	case key.Matches(msg, m.Keys.Down):
		m.WeightsModel.Move(1)
	case key.Matches(msg, m.Keys.ShiftUp):
		m.ShiftWeights(1)
	case key.Matches(msg, m.Keys.ShiftDown):
		m.ShiftWeights(-1)
	default:
		return false
	}
	return true
}

// HandleSettingsKeys handles the settings view
func HandleSettingsKeys(m *state.Model, msg tea.KeyMsg) bool {
	if key.Matches(msg, m.Keys.Edit) {
		m.SettingsForm = SettingsFormFrom(m.Settings)
		openForm(m, NewSettingsForm(m.SettingsForm), constants.StateEditSettings)
		return true
	}
	return false
}

func openForm(m *state.Model, form *huh.Form, st constants.SessionState) {
	m.PreviousState = m.State
	m.State = st
	m.Form = form
}

// openShowForm edits show, or adds a new one when show is nil.
func openShowForm(m *state.Model, show *models.Show) {
	if show == nil {
		m.ShowForm = &state.ShowFormModel{Episode: "0", Season: "0", Weight: "0"}
	} else {
		m.ShowForm = ShowFormFrom(show)
	}
	m.EditingShow = show
	openForm(m, NewShowForm(m.ShowForm, show != nil), constants.StateEditShow)
}

func openConfirmation(m *state.Model, message string, action func() tea.Cmd) {
	m.ConfirmationForm = &state.ConfirmationFormModel{Message: message}
	m.PendingAction = action
	openForm(m, NewConfirmationForm(m.ConfirmationForm), constants.StateConfirmation)
}
