package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/storage"
	"github.com/julianstephens/watchlit/internal/tui/state"
	"github.com/julianstephens/watchlit/internal/watchlist"
)

// Model is the bubbletea model. The shared state is held by pointer so
// pending actions and handlers always see the current values.
type Model struct {
	*state.Model
}

// NewModel loads the watchlist from store. announcer may be nil, in which
// case releases are only flagged, never announced.
func NewModel(store storage.Provider, announcer watchlist.Announcer, clock func() time.Time, notify bool) (Model, error) {
	s, err := state.New(store, announcer, clock, notify)
	if err != nil {
		return Model{}, err
	}
	return Model{Model: &s}, nil
}

func (m Model) ShortHelp() []key.Binding {
	k := m.Keys
	keys := []key.Binding{k.Tab, k.Quit, k.Help}
	switch m.State {
	case constants.StateShows:
		keys = append(keys, k.Dismiss, k.DismissNext, k.EpisodeUp, k.WeightUp, k.Add)
	case constants.StateWeights:
		keys = append(keys, k.ShiftUp, k.ShiftDown)
	case constants.StateSettings:
		keys = append(keys, k.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	k := m.Keys
	global := []key.Binding{k.Tab, k.ShiftTab, k.Quit, k.Help}
	navigation := []key.Binding{k.Up, k.Down}

	switch m.State {
	case constants.StateShows:
		return [][]key.Binding{
			global,
			navigation,
			{k.Dismiss, k.DismissNext, k.Undismiss, k.EpisodeUp, k.EpisodeDown, k.SeasonUp, k.SeasonDown},
			{k.WeightUp, k.WeightDown, k.Hide, k.ToggleHidden, k.ToggleUpcoming, k.Color},
			{k.Add, k.Edit, k.Delete, k.Purge},
		}
	case constants.StateWeights:
		return [][]key.Binding{global, navigation, {k.ShiftUp, k.ShiftDown}}
	case constants.StateSettings:
		return [][]key.Binding{global, {k.Edit}}
	}
	return [][]key.Binding{global}
}

func (m Model) Init() tea.Cmd {
	return m.TickCmd()
}
