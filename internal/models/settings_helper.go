package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/utils"
)

// SettingKeys lists every persisted setting key in display order.
var SettingKeys = []string{
	constants.SettingReleaseGracePeriod,
	constants.SettingWeightToAdd,
	constants.SettingMoveRecentlyReleasedToTop,
	constants.SettingSortByUpcoming,
	constants.SettingSendNotifications,
	constants.SettingShowTillRelease,
	constants.SettingDisplayHidden,
	constants.SettingPurgeColorIndex,
	constants.SettingInitialShowColorIndex,
	constants.SettingRemainingTimePrecise,
	constants.SettingTextColors,
	constants.SettingMaxTitleDisplayLen,
	constants.SettingShortenWithEllipsis,
	constants.SettingUpdateIntervalSec,
}

// IsSettingKey reports whether key names a known setting.
func IsSettingKey(key string) bool {
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Keys that are absent keep their default; present keys always win, so an
// explicit zero is preserved.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		var err error
		switch key {
		case constants.SettingReleaseGracePeriod:
			settings.ReleaseGracePeriod, err = parseInt(key, value)
		case constants.SettingWeightToAdd:
			settings.WeightToAdd, err = parseInt(key, value)
		case constants.SettingMoveRecentlyReleasedToTop:
			settings.MoveRecentlyReleasedToTop, err = parseBool(key, value)
		case constants.SettingSortByUpcoming:
			settings.SortByUpcoming, err = parseBool(key, value)
		case constants.SettingSendNotifications:
			settings.SendNotifications, err = parseBool(key, value)
		case constants.SettingShowTillRelease:
			settings.ShowTillRelease, err = parseBool(key, value)
		case constants.SettingDisplayHidden:
			settings.DisplayHidden, err = parseBool(key, value)
		case constants.SettingPurgeColorIndex:
			settings.PurgeColorIndex, err = parseInt(key, value)
		case constants.SettingInitialShowColorIndex:
			settings.InitialShowColorIndex, err = parseInt(key, value)
		case constants.SettingRemainingTimePrecise:
			settings.RemainingTimePrecise, err = parseBool(key, value)
		case constants.SettingTextColors:
			settings.TextColors = utils.SplitList(value)
		case constants.SettingMaxTitleDisplayLen:
			settings.MaxTitleDisplayLen, err = parseInt(key, value)
		case constants.SettingShortenWithEllipsis:
			settings.ShortenWithEllipsis, err = parseBool(key, value)
		case constants.SettingUpdateIntervalSec:
			settings.UpdateIntervalSec, err = parseInt(key, value)
		}
		if err != nil {
			return Settings{}, err
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingReleaseGracePeriod:        strconv.Itoa(settings.ReleaseGracePeriod),
		constants.SettingWeightToAdd:               strconv.Itoa(settings.WeightToAdd),
		constants.SettingMoveRecentlyReleasedToTop: strconv.FormatBool(settings.MoveRecentlyReleasedToTop),
		constants.SettingSortByUpcoming:            strconv.FormatBool(settings.SortByUpcoming),
		constants.SettingSendNotifications:         strconv.FormatBool(settings.SendNotifications),
		constants.SettingShowTillRelease:           strconv.FormatBool(settings.ShowTillRelease),
		constants.SettingDisplayHidden:             strconv.FormatBool(settings.DisplayHidden),
		constants.SettingPurgeColorIndex:           strconv.Itoa(settings.PurgeColorIndex),
		constants.SettingInitialShowColorIndex:     strconv.Itoa(settings.InitialShowColorIndex),
		constants.SettingRemainingTimePrecise:      strconv.FormatBool(settings.RemainingTimePrecise),
		constants.SettingTextColors:                strings.Join(settings.TextColors, ","),
		constants.SettingMaxTitleDisplayLen:        strconv.Itoa(settings.MaxTitleDisplayLen),
		constants.SettingShortenWithEllipsis:       strconv.FormatBool(settings.ShortenWithEllipsis),
		constants.SettingUpdateIntervalSec:         strconv.Itoa(settings.UpdateIntervalSec),
	}
}

// WithValue returns a copy of settings with key set to value. The result is
// validated.
func WithValue(settings Settings, key, value string) (Settings, error) {
	if !IsSettingKey(key) {
		return Settings{}, fmt.Errorf("unknown setting %q", key)
	}
	data := SettingsToMap(settings)
	data[key] = value
	updated, err := MapToSettings(data)
	if err != nil {
		return Settings{}, err
	}
	if err := updated.Validate(); err != nil {
		return Settings{}, err
	}
	return updated, nil
}

func (s Settings) Validate() error {
	if s.ReleaseGracePeriod < 0 {
		return fmt.Errorf("%s cannot be negative", constants.SettingReleaseGracePeriod)
	}
	if s.UpdateIntervalSec < 1 {
		return fmt.Errorf("%s must be at least 1", constants.SettingUpdateIntervalSec)
	}
	if s.MaxTitleDisplayLen < 1 {
		return fmt.Errorf("%s must be at least 1", constants.SettingMaxTitleDisplayLen)
	}
	if len(s.TextColors) == 0 {
		return fmt.Errorf("%s cannot be empty", constants.SettingTextColors)
	}
	for _, c := range s.TextColors {
		if !utils.IsValidColor(c) {
			return fmt.Errorf("invalid color %q in %s", c, constants.SettingTextColors)
		}
	}
	if s.PurgeColorIndex < -1 || s.PurgeColorIndex >= len(s.TextColors) {
		return fmt.Errorf("%s must be -1 or a valid color index", constants.SettingPurgeColorIndex)
	}
	if s.InitialShowColorIndex < 0 || s.InitialShowColorIndex >= len(s.TextColors) {
		return fmt.Errorf("%s must be a valid color index", constants.SettingInitialShowColorIndex)
	}
	return nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}
	return b, nil
}
