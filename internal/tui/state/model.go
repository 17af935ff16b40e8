package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/storage"
	"github.com/julianstephens/watchlit/internal/tui/components/settings"
	"github.com/julianstephens/watchlit/internal/tui/components/showlist"
	"github.com/julianstephens/watchlit/internal/tui/components/weights"
	"github.com/julianstephens/watchlit/internal/validation"
	"github.com/julianstephens/watchlit/internal/watchlist"
)

// ShowFormModel represents the form model for adding or editing a show
type ShowFormModel struct {
	Title    string
	Schedule string
	Episode  string
	Season   string
	Weight   string
	Links    string
	Details  bool
	Hidden   bool
	Ended    bool
}

// SettingsFormModel represents the form model for settings
type SettingsFormModel struct {
	ReleaseGracePeriod        string
	WeightToAdd               string
	MoveRecentlyReleasedToTop bool
	SortByUpcoming            bool
	SendNotifications         bool
	ShowTillRelease           bool
	RemainingTimePrecise      bool
	ShortenWithEllipsis       bool
	MaxTitleDisplayLen        string
	UpdateIntervalSec         string
	TextColors                string
}

// PurgeFormModel holds the weight a purged show is moved to
type PurgeFormModel struct {
	Weight string
}

// ConfirmationFormModel represents a yes/no question
type ConfirmationFormModel struct {
	Message   string
	Confirmed bool
}

// Model represents the shared state for the TUI
type Model struct {
	Store     storage.Provider
	Announcer watchlist.Announcer
	Clock     func() time.Time
	// Notify allows ticks to send release announcements.
	Notify bool

	Watchlist *watchlist.Watchlist
	Settings  models.Settings

	State         constants.SessionState
	PreviousState constants.SessionState
	Keys          KeyMap
	Help          help.Model
	ShowList      showlist.Model
	WeightsModel  weights.Model
	SettingsModel settings.Model

	Form             *huh.Form
	ShowForm         *ShowFormModel
	SettingsForm     *SettingsFormModel
	PurgeForm        *PurgeFormModel
	ConfirmationForm *ConfirmationFormModel
	PendingAction    func() tea.Cmd
	EditingShow      *models.Show // nil while adding
	PurgingShowID    int

	Quitting            bool
	Width               int
	Height              int
	StatusMessage       string
	ValidationWarning   string
	ValidationConflicts []validation.Conflict
}

// New loads the watchlist from store and builds the initial view state.
func New(store storage.Provider, announcer watchlist.Announcer, clock func() time.Time, notify bool) (Model, error) {
	if clock == nil {
		clock = time.Now
	}

	s, err := store.GetSettings()
	if err != nil {
		return Model{}, err
	}
	shows, err := store.GetAllShows()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		Store:         store,
		Announcer:     announcer,
		Clock:         clock,
		Notify:        notify,
		Watchlist:     watchlist.New(shows),
		Settings:      s,
		State:         constants.StateShows,
		Keys:          DefaultKeyMap(),
		Help:          help.New(),
		ShowList:      showlist.New(0, 0),
		WeightsModel:  weights.New(),
		SettingsModel: settings.New(s, 0, 0),
	}
	m.Refresh(false)
	m.UpdateValidationStatus()
	return m, nil
}
