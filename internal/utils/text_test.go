package utils

import (
	"reflect"
	"testing"
)

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		maxLen   int
		ellipsis bool
		want     string
	}{
		{
			name:   "short title untouched",
			title:  "Severance",
			maxLen: 44,
			want:   "Severance",
		},
		{
			name:     "exact length untouched",
			title:    "Andor",
			maxLen:   5,
			ellipsis: true,
			want:     "Andor",
		},
		{
			name:   "cut without ellipsis",
			title:  "The Lord of the Rings",
			maxLen: 7,
			want:   "The Lor",
		},
		{
			name:     "cut with ellipsis",
			title:    "The Lord of the Rings",
			maxLen:   10,
			ellipsis: true,
			want:     "The Lor...",
		},
		{
			name:     "trailing space trimmed before ellipsis",
			title:    "The Lord of the Rings",
			maxLen:   12,
			ellipsis: true,
			want:     "The Lord...",
		},
		{
			name:     "limit smaller than ellipsis",
			title:    "Frieren",
			maxLen:   2,
			ellipsis: true,
			want:     "Fr",
		},
		{
			name:   "multibyte runes",
			title:  "進撃の巨人 The Final Season",
			maxLen: 5,
			want:   "進撃の巨人",
		},
		{
			name:   "non-positive limit disables truncation",
			title:  "Dark",
			maxLen: 0,
			want:   "Dark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateTitle(tt.title, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("TruncateTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValidColor(t *testing.T) {
	valid := []string{"#fff", "#F3F3F3", "#404040"}
	invalid := []string{"", "fff", "#ffff", "#gggggg", "red", "#1234567"}

	for _, c := range valid {
		if !IsValidColor(c) {
			t.Errorf("IsValidColor(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidColor(c) {
			t.Errorf("IsValidColor(%q) = true, want false", c)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" #fff, ,#000 ,")
	want := []string{"#fff", "#000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitList() = %v, want %v", got, want)
	}
	if got := SplitList(""); got != nil {
		t.Errorf("SplitList(\"\") = %v, want nil", got)
	}
}
