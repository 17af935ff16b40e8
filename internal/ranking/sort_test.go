package ranking

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/watchlit/internal/models"
)

// Monday 2025-01-06 12:00.
var now = time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC)

func newShow(title string, weight int, schedule string) *models.Show {
	s := models.NewShow(title, schedule)
	s.Weight = weight
	return s
}

// released returns a show that CheckRelease flags as recently released.
func released(title string, weight int) *models.Show {
	s := newShow(title, weight, "mon 10:00")
	s.CheckRelease(72, now)
	return s
}

func titles(shows []*models.Show) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.Title
	}
	return out
}

func assertOrder(t *testing.T, got []*models.Show, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, titles(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_WeightDominates(t *testing.T) {
	shows := []*models.Show{
		newShow("Alpha", 3, ""),
		newShow("Zeta", 5, ""),
		newShow("Mid", 4, ""),
	}

	assertOrder(t, Sort(shows, Options{WeightToAdd: 5}, now), "Zeta", "Mid", "Alpha")
}

func TestSort_TitleBreaksTies(t *testing.T) {
	shows := []*models.Show{
		newShow("alpha", 1, ""),
		newShow("Beta", 1, ""),
		newShow("Alpha", 1, ""),
	}

	// Titles compare case-sensitively.
	assertOrder(t, Sort(shows, Options{}, now), "Alpha", "Beta", "alpha")
}

func TestSort_ReleaseBoost(t *testing.T) {
	tests := []struct {
		name        string
		weightToAdd int
		want        []string
	}{
		{"bonus larger than gap", 3, []string{"Zulu", "Alpha"}},
		{"bonus equal to gap falls back to title", 2, []string{"Alpha", "Zulu"}},
		{"bonus smaller than gap", 1, []string{"Alpha", "Zulu"}},
		{"no bonus", 0, []string{"Alpha", "Zulu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shows := []*models.Show{
				newShow("Alpha", 5, ""),
				released("Zulu", 3),
			}
			assertOrder(t, Sort(shows, Options{WeightToAdd: tt.weightToAdd}, now), tt.want...)
		})
	}
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	shows := []*models.Show{
		newShow("B", 1, ""),
		newShow("A", 2, ""),
	}
	_ = Sort(shows, Options{}, now)
	assertOrder(t, shows, "B", "A")
}

func TestSort_Stable(t *testing.T) {
	first := newShow("Same", 1, "")
	second := newShow("Same", 1, "")
	got := Sort([]*models.Show{first, second}, Options{}, now)
	if got[0] != first || got[1] != second {
		t.Error("shows with equal keys should keep their input order")
	}
}

func TestSort_ByUpcoming(t *testing.T) {
	oneHourAgo := now.Add(-time.Hour).Unix()

	recent := released("Recent", 0)

	nextTuesday := newShow("Tuesday", 0, "tue 12:00")
	nextTuesday.LastDismissal = oneHourAgo
	nextTuesday.CheckRelease(72, now)

	nextWednesday := newShow("Wednesday", 0, "wed 10:00")
	nextWednesday.LastDismissal = oneHourAgo
	nextWednesday.CheckRelease(72, now)

	unscheduled := newShow("Unscheduled", 0, "")
	unscheduled.CheckRelease(72, now)

	shows := []*models.Show{unscheduled, nextWednesday, recent, nextTuesday}
	got := Sort(shows, Options{SortByUpcoming: true}, now)

	assertOrder(t, got, "Recent", "Tuesday", "Wednesday", "Unscheduled")

	if k := KeyFor(nextTuesday, Options{SortByUpcoming: true}, now); k.Bucket != BucketUpcoming || k.Secondary != 24 {
		t.Errorf("KeyFor(Tuesday) = %+v, want upcoming bucket with 24 hours", k)
	}
	if k := KeyFor(unscheduled, Options{SortByUpcoming: true}, now); k.Bucket != BucketOverdue {
		t.Errorf("KeyFor(Unscheduled) = %+v, want overdue bucket", k)
	}
}

func TestKeyFor_ZeroSecondarySentinel(t *testing.T) {
	show := newShow("Now", 0, "mon 12:00")
	show.LastDismissal = now.Unix()
	if !show.CheckRelease(72, now) {
		t.Fatal("expected show to be recently released")
	}

	key := KeyFor(show, Options{SortByUpcoming: true}, now)
	if key.Bucket != BucketRecentlyReleased {
		t.Errorf("Bucket = %d, want %d", key.Bucket, BucketRecentlyReleased)
	}
	if key.Secondary != math.MaxFloat64 {
		t.Errorf("Secondary = %v, want MaxFloat64", key.Secondary)
	}
}

func TestKeyFor_TitleModeIgnoresSchedule(t *testing.T) {
	show := released("Show", 4)
	key := KeyFor(show, Options{WeightToAdd: 2}, now)
	want := Key{SortWeight: -6, Title: "Show"}
	if key != want {
		t.Errorf("KeyFor() = %+v, want %+v", key, want)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{"weight first", Key{SortWeight: -5, Title: "Z"}, Key{SortWeight: -3, Title: "A"}, -1},
		{"bucket second", Key{Bucket: 2}, Key{Bucket: 1, Secondary: -10}, 1},
		{"secondary third", Key{Bucket: 1, Secondary: 3, Title: "Z"}, Key{Bucket: 1, Secondary: 4, Title: "A"}, -1},
		{"title last", Key{Title: "A"}, Key{Title: "B"}, -1},
		{"equal", Key{Title: "A"}, Key{Title: "A"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOptionsFromSettings(t *testing.T) {
	s := models.DefaultSettings()
	s.WeightToAdd = 7
	s.SortByUpcoming = true

	if got := OptionsFromSettings(s); got != (Options{WeightToAdd: 7, SortByUpcoming: true}) {
		t.Errorf("OptionsFromSettings() = %+v", got)
	}

	s.MoveRecentlyReleasedToTop = false
	if got := OptionsFromSettings(s); got.WeightToAdd != 0 {
		t.Errorf("WeightToAdd = %d, want 0 when recently released shows stay in place", got.WeightToAdd)
	}
}
