package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/tui/state"
)

// updateForm forwards msg to the active form. It reports false when the user
// pressed esc and the form was abandoned.
func updateForm(m *state.Model, msg tea.Msg) (tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		closeForm(m)
		return nil, false
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	return cmd, true
}

func closeForm(m *state.Model) {
	m.Form = nil
	m.ShowForm = nil
	m.SettingsForm = nil
	m.PurgeForm = nil
	m.ConfirmationForm = nil
	m.PendingAction = nil
	m.EditingShow = nil
	m.State = m.PreviousState
}

// HandleShowFormState handles the add/edit show form
func HandleShowFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd, open := updateForm(m, msg)
	if !open {
		return nil
	}

	switch m.Form.State {
	case huh.StateCompleted:
		isNew := m.EditingShow == nil
		show := m.EditingShow
		if isNew {
			show = &models.Show{Color: m.Settings.InitialShowColorIndex}
		}
		before := *show
		ApplyShowForm(m.ShowForm, show)
		if err := m.SaveShow(show, isNew); err != nil {
			// Keep the list consistent with the store when an edit fails.
			*show = before
			m.StatusMessage = "Could not save show: " + err.Error()
		}
		closeForm(m)
	case huh.StateAborted:
		closeForm(m)
	}
	return cmd
}

// HandleSettingsFormState handles the settings form
func HandleSettingsFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd, open := updateForm(m, msg)
	if !open {
		return nil
	}

	switch m.Form.State {
	case huh.StateCompleted:
		updated, err := ApplySettingsForm(m.SettingsForm, m.Settings)
		if err != nil {
			m.StatusMessage = "Invalid settings: " + err.Error()
		} else {
			m.SaveSettings(updated)
		}
		closeForm(m)
	case huh.StateAborted:
		closeForm(m)
	}
	return cmd
}

// HandlePurgeState handles the purge weight prompt
func HandlePurgeState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd, open := updateForm(m, msg)
	if !open {
		return nil
	}

	switch m.Form.State {
	case huh.StateCompleted:
		m.Purge(m.PurgingShowID, atoi(m.PurgeForm.Weight))
		closeForm(m)
	case huh.StateAborted:
		closeForm(m)
	}
	return cmd
}

// HandleConfirmationState handles the generic confirmation state
func HandleConfirmationState(m *state.Model, msg tea.Msg) tea.Cmd {
	cmd, open := updateForm(m, msg)
	if !open {
		return nil
	}

	cmds := []tea.Cmd{cmd}
	switch m.Form.State {
	case huh.StateCompleted:
		if m.ConfirmationForm.Confirmed && m.PendingAction != nil {
			cmds = append(cmds, m.PendingAction())
		}
		closeForm(m)
	case huh.StateAborted:
		closeForm(m)
	}
	return tea.Batch(cmds...)
}
