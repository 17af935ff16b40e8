package models

import (
	"reflect"
	"testing"

	"github.com/julianstephens/watchlit/internal/constants"
)

func TestMapToSettings_Defaults(t *testing.T) {
	got, err := MapToSettings(map[string]string{})
	if err != nil {
		t.Fatalf("MapToSettings() error = %v", err)
	}
	if !reflect.DeepEqual(got, DefaultSettings()) {
		t.Errorf("MapToSettings(empty) = %+v, want defaults %+v", got, DefaultSettings())
	}
}

func TestMapToSettings_ExplicitZeroWins(t *testing.T) {
	got, err := MapToSettings(map[string]string{
		constants.SettingReleaseGracePeriod: "0",
		constants.SettingWeightToAdd:        "0",
		constants.SettingShowTillRelease:    "false",
	})
	if err != nil {
		t.Fatalf("MapToSettings() error = %v", err)
	}
	if got.ReleaseGracePeriod != 0 {
		t.Errorf("ReleaseGracePeriod = %d, want 0", got.ReleaseGracePeriod)
	}
	if got.WeightToAdd != 0 {
		t.Errorf("WeightToAdd = %d, want 0", got.WeightToAdd)
	}
	if got.ShowTillRelease {
		t.Error("ShowTillRelease = true, want false")
	}
	if got.MaxTitleDisplayLen != constants.DefaultMaxTitleDisplayLen {
		t.Errorf("MaxTitleDisplayLen = %d, want default %d", got.MaxTitleDisplayLen, constants.DefaultMaxTitleDisplayLen)
	}
}

func TestMapToSettings_Errors(t *testing.T) {
	tests := []struct {
		name string
		data map[string]string
	}{
		{"bad int", map[string]string{constants.SettingReleaseGracePeriod: "three"}},
		{"bad bool", map[string]string{constants.SettingSortByUpcoming: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MapToSettings(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.ReleaseGracePeriod = 0
	s.SortByUpcoming = true
	s.TextColors = []string{"#fff", "#ff0000", "#00ff00"}
	s.PurgeColorIndex = 2

	data := SettingsToMap(s)
	if len(data) != len(SettingKeys) {
		t.Errorf("SettingsToMap() has %d keys, want %d", len(data), len(SettingKeys))
	}

	got, err := MapToSettings(data)
	if err != nil {
		t.Fatalf("MapToSettings() error = %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}

func TestWithValue(t *testing.T) {
	base := DefaultSettings()

	updated, err := WithValue(base, constants.SettingWeightToAdd, "9")
	if err != nil {
		t.Fatalf("WithValue() error = %v", err)
	}
	if updated.WeightToAdd != 9 {
		t.Errorf("WeightToAdd = %d, want 9", updated.WeightToAdd)
	}
	if base.WeightToAdd != constants.DefaultWeightToAdd {
		t.Error("WithValue() should not modify its input")
	}

	failures := []struct {
		name, key, value string
	}{
		{"unknown key", "no_such_setting", "1"},
		{"negative grace", constants.SettingReleaseGracePeriod, "-1"},
		{"invalid color", constants.SettingTextColors, "#fff,blue"},
		{"empty palette", constants.SettingTextColors, ""},
		{"purge color out of range", constants.SettingPurgeColorIndex, "5"},
		{"zero interval", constants.SettingUpdateIntervalSec, "0"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := WithValue(base, tt.key, tt.value); err == nil {
				t.Errorf("WithValue(%q, %q) expected error", tt.key, tt.value)
			}
		})
	}
}

func TestSettings_Color(t *testing.T) {
	s := DefaultSettings()
	if got := s.Color(1); got != "#404040" {
		t.Errorf("Color(1) = %q, want #404040", got)
	}
	if got := s.Color(9); got != "#f3f3f3" {
		t.Errorf("Color(9) = %q, want fallback #f3f3f3", got)
	}
	if got := (Settings{}).Color(0); got != "" {
		t.Errorf("Color() on empty palette = %q, want empty", got)
	}
}
