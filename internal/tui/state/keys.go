package state

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Tab            key.Binding
	ShiftTab       key.Binding
	Dismiss        key.Binding
	DismissNext    key.Binding
	Undismiss      key.Binding
	EpisodeUp      key.Binding
	EpisodeDown    key.Binding
	SeasonUp       key.Binding
	SeasonDown     key.Binding
	WeightUp       key.Binding
	WeightDown     key.Binding
	Hide           key.Binding
	ToggleHidden   key.Binding
	ToggleUpcoming key.Binding
	Color          key.Binding
	Add            key.Binding
	Edit           key.Binding
	Delete         key.Binding
	Purge          key.Binding
	ShiftUp        key.Binding
	ShiftDown      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Tab:            key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		ShiftTab:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Dismiss:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
		DismissNext:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "dismiss + next ep")),
		Undismiss:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "undo dismiss")),
		EpisodeUp:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "episode +1")),
		EpisodeDown:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "episode -1")),
		SeasonUp:       key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "season +1")),
		SeasonDown:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "season -1")),
		WeightUp:       key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "weight +1")),
		WeightDown:     key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "weight -1")),
		Hide:           key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide/unhide")),
		ToggleHidden:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "display hidden")),
		ToggleUpcoming: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "sort by upcoming")),
		Color:          key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next color")),
		Add:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:           key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:         key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Purge:          key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "purge")),
		ShiftUp:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "shift up")),
		ShiftDown:      key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shift down")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
