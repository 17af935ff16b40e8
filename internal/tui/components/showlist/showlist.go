// Package showlist renders the watchlist as a navigable bubbles list.
package showlist

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/utils"
)

var (
	indexStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right)
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(7).Align(lipgloss.Right)
	counterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("109")).Width(10)
	markerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	endedStyle     = lipgloss.NewStyle().Faint(true)
)

// Item wraps a show for the list.
type Item struct {
	Show *models.Show
}

func (i Item) FilterValue() string { return i.Show.Title }

// RenderRow formats a single show line: position, title in the show's color,
// countdown, episode counters and the release marker.
func RenderRow(position int, show *models.Show, settings models.Settings, now time.Time, selected bool) string {
	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("> ")
	}

	title := utils.TruncateTitle(show.Title, settings.MaxTitleDisplayLen, settings.ShortenWithEllipsis)
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(settings.Color(show.Color))).
		Width(settings.MaxTitleDisplayLen + 1).
		Bold(selected).
		Italic(show.Hidden)
	if show.Ended {
		titleStyle = titleStyle.Inherit(endedStyle)
	}

	var countdown string
	if settings.ShowTillRelease {
		countdown = show.TimeTillRelease(now, settings.RemainingTimePrecise)
	}

	var counters string
	if show.ShowDetails {
		counters = fmt.Sprintf("E%d", show.Episode)
		if show.Season > 0 {
			counters += fmt.Sprintf(" S%d", show.Season)
		}
	}

	var marker string
	if show.IsRecentlyReleased() {
		marker = markerStyle.Render(constants.RecentlyReleasedMarker)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cursor,
		indexStyle.Render(fmt.Sprintf("%d", position)),
		"  ",
		titleStyle.Render(title),
		countdownStyle.Render(countdown),
		"  ",
		counterStyle.Render(counters),
		marker,
	)
}

// RenderRows renders shows as a block, one line per show, positions starting
// at 1.
func RenderRows(shows []*models.Show, settings models.Settings, now time.Time) string {
	lines := make([]string, len(shows))
	for i, s := range shows {
		lines[i] = RenderRow(i+1, s, settings, now, false)
	}
	return strings.Join(lines, "\n")
}

// delegate draws one row per item. It is shared by pointer with the Model so
// settings and clock changes apply on the next render.
type delegate struct {
	settings models.Settings
	now      time.Time
}

func (d *delegate) Height() int { return 1 }
func (d *delegate) Spacing() int { return 0 }
func (d *delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d *delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	fmt.Fprint(w, RenderRow(index+1, it.Show, d.settings, d.now, index == m.Index()))
}

type Model struct {
	list     list.Model
	delegate *delegate
}

func New(width, height int) Model {
	d := &delegate{settings: models.DefaultSettings()}
	l := list.New(nil, d, width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetStatusBarItemName("show", "shows")
	l.DisableQuitKeybindings()
	// Letters are taken by show actions; paging stays on arrows and page keys.
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←/pgup", "prev page"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"), key.WithHelp("→/pgdn", "next page"))
	l.KeyMap.CursorUp = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	l.KeyMap.CursorDown = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	l.KeyMap.ShowFullHelp = key.NewBinding()
	l.KeyMap.CloseFullHelp = key.NewBinding()

	return Model{list: l, delegate: d}
}

// SetShows replaces the rows. The selection follows the previously selected
// show when it is still listed.
func (m *Model) SetShows(shows []*models.Show, settings models.Settings, now time.Time) {
	m.delegate.settings = settings
	m.delegate.now = now

	selectedID := -1
	if s := m.Selected(); s != nil {
		selectedID = s.ID
	}

	items := make([]list.Item, len(shows))
	for i, s := range shows {
		items[i] = Item{Show: s}
	}
	m.list.SetItems(items)

	if i := slices.IndexFunc(shows, func(s *models.Show) bool { return s.ID == selectedID }); i >= 0 {
		m.list.Select(i)
	}
}

// Selected returns the highlighted show, or nil for an empty list.
func (m Model) Selected() *models.Show {
	if it, ok := m.list.SelectedItem().(Item); ok {
		return it.Show
	}
	return nil
}

// Filtering reports whether the user is typing a filter, in which case keys
// must not be treated as actions.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Len() == 0 {
		return endedStyle.Render("No shows yet. Press 'a' to add one.")
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
