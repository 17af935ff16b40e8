package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a periodic watchlist refresh.
type TickMsg time.Time

// TickCmd schedules the next refresh using the configured interval.
func (m *Model) TickCmd() tea.Cmd {
	interval := time.Duration(max(m.Settings.UpdateIntervalSec, 1)) * time.Second
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
