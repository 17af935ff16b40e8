package models

import "github.com/julianstephens/watchlit/internal/constants"

// Settings represents the user preferences that drive release tracking and display
type Settings struct {
	ReleaseGracePeriod        int      `json:"release_grace_period"`          // hours a release stays flagged, 0 = until dismissed
	WeightToAdd               int      `json:"weight_to_add"`                 // weight bonus for recently released shows
	MoveRecentlyReleasedToTop bool     `json:"move_recently_released_to_top"` // whether WeightToAdd is applied
	SortByUpcoming            bool     `json:"sort_by_upcoming"`              // order by next release instead of title
	SendNotifications         bool     `json:"send_notifications"`            // announce releases through the tray app
	ShowTillRelease           bool     `json:"show_till_release"`             // render the countdown column
	DisplayHidden             bool     `json:"display_hidden"`                // list hidden shows too
	PurgeColorIndex           int      `json:"purge_color_index"`             // color applied on purge, -1 = keep
	InitialShowColorIndex     int      `json:"initial_show_color_index"`      // color for newly added shows
	RemainingTimePrecise      bool     `json:"remaining_time_precise"`        // two-unit countdowns
	TextColors                []string `json:"text_colors"`                   // hex colors shows can be painted with
	MaxTitleDisplayLen        int      `json:"max_title_display_len"`         // titles are truncated past this
	ShortenWithEllipsis       bool     `json:"shorten_with_ellipsis"`         // append "..." to truncated titles
	UpdateIntervalSec         int      `json:"update_interval_sec"`           // TUI refresh interval
}

// DefaultSettings returns the settings used when nothing has been saved.
func DefaultSettings() Settings {
	colors := make([]string, len(constants.DefaultTextColors))
	copy(colors, constants.DefaultTextColors)

	return Settings{
		ReleaseGracePeriod:        constants.DefaultReleaseGracePeriod,
		WeightToAdd:               constants.DefaultWeightToAdd,
		MoveRecentlyReleasedToTop: constants.DefaultMoveRecentlyReleasedToTop,
		SortByUpcoming:            constants.DefaultSortByUpcoming,
		SendNotifications:         constants.DefaultSendNotifications,
		ShowTillRelease:           constants.DefaultShowTillRelease,
		DisplayHidden:             constants.DefaultDisplayHidden,
		PurgeColorIndex:           constants.DefaultPurgeColorIndex,
		InitialShowColorIndex:     constants.DefaultInitialShowColorIndex,
		RemainingTimePrecise:      constants.DefaultRemainingTimePrecise,
		TextColors:                colors,
		MaxTitleDisplayLen:        constants.DefaultMaxTitleDisplayLen,
		ShortenWithEllipsis:       constants.DefaultShortenWithEllipsis,
		UpdateIntervalSec:         constants.DefaultUpdateIntervalSec,
	}
}

// Color returns the hex color for a show color index, falling back to the
// first palette entry when the index is out of range.
func (s Settings) Color(index int) string {
	if index >= 0 && index < len(s.TextColors) {
		return s.TextColors[index]
	}
	if len(s.TextColors) > 0 {
		return s.TextColors[0]
	}
	return ""
}
