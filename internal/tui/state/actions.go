package state

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/logger"
	"github.com/julianstephens/watchlit/internal/models"
)

// Refresh runs a watchlist tick and pushes the result into the views. With
// announce set, due releases are announced when the settings allow it.
func (m *Model) Refresh(announce bool) {
	now := m.Clock()
	result := m.Watchlist.Tick(m.Store, m.Announcer, m.Settings, now, announce && m.Notify)
	if n := len(result.Announced); n > 0 {
		m.StatusMessage = fmt.Sprintf("Announced %d release(s)", n)
	}

	m.ShowList.SetShows(m.Watchlist.Visible(m.Settings.DisplayHidden), m.Settings, now)
	m.WeightsModel.SetCounts(m.Watchlist.Weights())
	m.SettingsModel.SetSettings(m.Settings)
}

// Selected returns the highlighted show, or nil.
func (m *Model) Selected() *models.Show {
	return m.ShowList.Selected()
}

func (m *Model) persist(shows ...*models.Show) error {
	for _, s := range shows {
		if err := m.Store.UpdateShow(s); err != nil {
			logger.Error("Failed to save show", "id", s.ID, "error", err)
			m.StatusMessage = fmt.Sprintf("Failed to save %q: %v", s.Title, err)
			return err
		}
	}
	m.StatusMessage = ""
	return nil
}

// mutateSelected applies fn to the selected show, saves it and refreshes.
func (m *Model) mutateSelected(fn func(s *models.Show) error) {
	s := m.Selected()
	if s == nil {
		return
	}
	before := *s
	if err := fn(s); err != nil {
		*s = before
		m.StatusMessage = err.Error()
		return
	}
	if err := m.persist(s); err != nil {
		*s = before
		return
	}
	m.Refresh(false)
}

func (m *Model) Dismiss(nextEpisode bool) {
	m.mutateSelected(func(s *models.Show) error {
		_, err := m.Watchlist.Dismiss(s.ID, m.Clock(), nextEpisode)
		return err
	})
}

func (m *Model) Undismiss() {
	m.mutateSelected(func(s *models.Show) error {
		_, err := m.Watchlist.ClearDismissal(s.ID)
		return err
	})
}

// AdjustEpisode changes the episode counter, never going below zero.
func (m *Model) AdjustEpisode(delta int) {
	m.mutateSelected(func(s *models.Show) error {
		if !s.ShowDetails {
			return fmt.Errorf("episode tracking is off for %q", s.Title)
		}
		s.Episode = max(s.Episode+delta, 0)
		return nil
	})
}

// AdjustSeason changes the season counter, never going below zero.
func (m *Model) AdjustSeason(delta int) {
	m.mutateSelected(func(s *models.Show) error {
		if !s.ShowDetails {
			return fmt.Errorf("episode tracking is off for %q", s.Title)
		}
		s.Season = max(s.Season+delta, 0)
		return nil
	})
}

func (m *Model) AdjustWeight(delta int) {
	m.mutateSelected(func(s *models.Show) error {
		s.Weight += delta
		return nil
	})
}

func (m *Model) ToggleHide() {
	m.mutateSelected(func(s *models.Show) error {
		s.Hidden = !s.Hidden
		return nil
	})
}

// CycleColor paints the selected show with the next palette color.
func (m *Model) CycleColor() {
	m.mutateSelected(func(s *models.Show) error {
		if len(m.Settings.TextColors) == 0 {
			return fmt.Errorf("no colors configured")
		}
		s.Color = (s.Color + 1) % len(m.Settings.TextColors)
		return nil
	})
}

func (m *Model) ToggleDisplayHidden() {
	updated := m.Settings
	updated.DisplayHidden = !updated.DisplayHidden
	m.SaveSettings(updated)
}

func (m *Model) ToggleSortByUpcoming() {
	updated := m.Settings
	updated.SortByUpcoming = !updated.SortByUpcoming
	m.SaveSettings(updated)
}

// SaveSettings stores settings and re-renders with them.
func (m *Model) SaveSettings(s models.Settings) {
	if err := m.Store.SaveSettings(s); err != nil {
		logger.Error("Failed to save settings", "error", err)
		m.StatusMessage = fmt.Sprintf("Failed to save settings: %v", err)
		return
	}
	m.Settings = s
	m.StatusMessage = ""
	m.Refresh(false)
	m.UpdateValidationStatus()
}

// ShiftWeights moves the weight row under the cursor, and the rows beyond it,
// by delta.
func (m *Model) ShiftWeights(delta int) {
	counts := m.Watchlist.Weights()
	index := m.WeightsModel.Cursor()
	if index >= len(counts) {
		return
	}
	target := counts[index].Weight + delta

	weights := make(map[*models.Show]int, m.Watchlist.Len())
	for _, s := range m.Watchlist.All() {
		weights[s] = s.Weight
	}

	changed, err := m.Watchlist.ShiftWeight(index, delta)
	if err != nil {
		m.StatusMessage = err.Error()
		return
	}
	if err := m.persist(changed...); err != nil {
		// Shows saved before the failure are written back at their old weight.
		for _, s := range changed {
			s.Weight = weights[s]
			if err := m.Store.UpdateShow(s); err != nil {
				logger.Warn("Failed to roll back weight", "id", s.ID, "error", err)
			}
		}
		return
	}
	m.Refresh(false)
	m.WeightsModel.Follow(target)
}

// SaveShow stores a show from the edit form. A show without an id yet is
// added to the list first.
func (m *Model) SaveShow(show *models.Show, isNew bool) error {
	if err := show.Validate(); err != nil {
		return err
	}
	if isNew {
		m.Watchlist.Add(show)
		if err := m.Store.AddShow(show); err != nil {
			_ = m.Watchlist.Remove(show.ID)
			return err
		}
	} else if err := m.Store.UpdateShow(show); err != nil {
		return err
	}
	m.StatusMessage = ""
	m.Refresh(false)
	m.UpdateValidationStatus()
	return nil
}

func (m *Model) DeleteShow(id int) {
	if err := m.Store.DeleteShow(id); err != nil {
		logger.Error("Failed to delete show", "id", id, "error", err)
		m.StatusMessage = fmt.Sprintf("Failed to delete show: %v", err)
		return
	}
	_ = m.Watchlist.Remove(id)
	m.StatusMessage = ""
	m.Refresh(false)
	m.UpdateValidationStatus()
}

// Purge retires a show at weight, applying the configured purge color.
func (m *Model) Purge(id, weight int) {
	current, err := m.Watchlist.FromID(id)
	if err != nil {
		m.StatusMessage = err.Error()
		return
	}
	before := *current

	s, err := m.Watchlist.Purge(id, weight, m.Settings.PurgeColorIndex)
	if err != nil {
		m.StatusMessage = err.Error()
		return
	}
	if err := m.persist(s); err != nil {
		*s = before
		return
	}
	m.Refresh(false)
}
