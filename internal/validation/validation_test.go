package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/watchlit/internal/models"
)

func show(id int, title, schedule string) *models.Show {
	s := models.NewShow(title, schedule)
	s.ID = id
	return s
}

func conflictTypes(result ValidationResult) []ConflictType {
	var types []ConflictType
	for _, c := range result.Conflicts {
		types = append(types, c.Type)
	}
	return types
}

func TestValidateShows(t *testing.T) {
	settings := models.DefaultSettings()

	tests := []struct {
		name  string
		shows []*models.Show
		want  []ConflictType
	}{
		{
			name: "clean watchlist",
			shows: []*models.Show{
				show(0, "Andor", "wed 03:00"),
				show(1, "Severance", ""),
			},
		},
		{
			name:  "unparseable schedule",
			shows: []*models.Show{show(0, "Andor", "someday")},
			want:  []ConflictType{ConflictInvalidSchedule},
		},
		{
			name: "duplicate id",
			shows: []*models.Show{
				show(2, "Andor", ""),
				show(2, "Severance", ""),
			},
			want: []ConflictType{ConflictDuplicateShowID},
		},
		{
			name: "duplicate title ignores case",
			shows: []*models.Show{
				show(0, "Andor", ""),
				show(1, " andor", ""),
			},
			want: []ConflictType{ConflictDuplicateTitle},
		},
		{
			name: "color out of range",
			shows: []*models.Show{
				func() *models.Show { s := show(0, "Andor", ""); s.Color = 5; return s }(),
			},
			want: []ConflictType{ConflictColorOutOfRange},
		},
		{
			name: "negative counters",
			shows: []*models.Show{
				func() *models.Show { s := show(0, "Andor", ""); s.Episode = -1; return s }(),
			},
			want: []ConflictType{ConflictNegativeCounters},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().ValidateShows(tt.shows, settings)
			got := conflictTypes(result)
			if len(got) != len(tt.want) {
				t.Fatalf("conflicts = %v, want %v\n%s", got, tt.want, result.FormatReport())
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("conflict %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateShows_InvalidSettings(t *testing.T) {
	settings := models.DefaultSettings()
	settings.UpdateIntervalSec = 0

	result := New().ValidateShows(nil, settings)
	if len(result.Conflicts) != 1 || result.Conflicts[0].Type != ConflictInvalidSettings {
		t.Errorf("expected a single settings conflict, got %v", conflictTypes(result))
	}
}

func TestFormatReport(t *testing.T) {
	var empty ValidationResult
	if empty.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected empty report: %q", empty.FormatReport())
	}

	result := New().ValidateShows([]*models.Show{show(0, "Andor", ""), show(1, "Andor", "")}, models.DefaultSettings())
	report := result.FormatReport()
	if !strings.Contains(report, "Title \"Andor\" appears 2 times") || !strings.Contains(report, "Shows: Andor, Andor") {
		t.Errorf("unexpected report:\n%s", report)
	}
}

func TestAutoFix(t *testing.T) {
	colorful := show(0, "Andor", "")
	colorful.Color = 9
	negative := show(1, "Severance", "")
	negative.Episode = -2
	negative.Season = -1
	dupA := show(2, "Frieren", "")
	dupB := show(3, "Frieren", "")
	broken := show(4, "Pluribus", "")
	broken.Color = 7

	shows := []*models.Show{colorful, negative, dupA, dupB, broken}
	result := New().ValidateShows(shows, models.DefaultSettings())

	var saved []int
	actions := AutoFix(result.Conflicts, shows, 1, func(s *models.Show) error {
		if s.ID == 4 {
			return errors.New("disk full")
		}
		saved = append(saved, s.ID)
		return nil
	})

	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3: %+v", len(actions), actions)
	}
	if colorful.Color != 1 {
		t.Errorf("color = %d, want fallback 1", colorful.Color)
	}
	if negative.Episode != 0 || negative.Season != 0 {
		t.Errorf("counters = %d/%d, want 0/0", negative.Episode, negative.Season)
	}
	if len(saved) != 2 || saved[0] != 0 || saved[1] != 1 {
		t.Errorf("saved = %v, want [0 1]", saved)
	}
	if !strings.Contains(actions[2].Action, "Failed to fix") {
		t.Errorf("expected failure to be reported, got %q", actions[2].Action)
	}
}
