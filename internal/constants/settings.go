package constants

const (
	// Release Settings
	SettingReleaseGracePeriod        = "release_grace_period"
	SettingWeightToAdd               = "weight_to_add"
	SettingMoveRecentlyReleasedToTop = "move_recently_released_to_top"
	SettingSortByUpcoming            = "sort_by_upcoming"
	SettingSendNotifications         = "send_notifications"

	// Display Settings
	SettingShowTillRelease       = "show_till_release"
	SettingDisplayHidden         = "display_hidden"
	SettingPurgeColorIndex       = "purge_color_index"
	SettingInitialShowColorIndex = "initial_show_color_index"
	SettingRemainingTimePrecise  = "remaining_time_precise"
	SettingTextColors            = "text_colors"
	SettingMaxTitleDisplayLen    = "max_title_display_len"
	SettingShortenWithEllipsis   = "shorten_with_ellipsis"
	SettingUpdateIntervalSec     = "update_interval_sec"

	// Default Settings Values
	DefaultReleaseGracePeriod        = 72 // 0 keeps a released show flagged until dismissed
	DefaultWeightToAdd               = 5
	DefaultMoveRecentlyReleasedToTop = true
	DefaultSortByUpcoming            = false
	DefaultSendNotifications         = false
	DefaultShowTillRelease           = true
	DefaultDisplayHidden             = false
	DefaultPurgeColorIndex           = -1 // -1 leaves the color untouched on purge
	DefaultInitialShowColorIndex     = 0
	DefaultRemainingTimePrecise      = false
	DefaultMaxTitleDisplayLen        = 44
	DefaultShortenWithEllipsis       = true
	DefaultUpdateIntervalSec         = 30
)

// DefaultTextColors is the palette shows are colored from, by index.
var DefaultTextColors = []string{"#f3f3f3", "#404040"}
