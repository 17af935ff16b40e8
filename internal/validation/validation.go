package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/watchlit/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateShowID  ConflictType = "duplicate_show_id"
	ConflictDuplicateTitle   ConflictType = "duplicate_title"
	ConflictInvalidSchedule  ConflictType = "invalid_schedule"
	ConflictColorOutOfRange  ConflictType = "color_out_of_range"
	ConflictNegativeCounters ConflictType = "negative_counters"
	ConflictInvalidSettings  ConflictType = "invalid_settings"
)

// Conflict represents a problem detected in the watchlist
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // titles involved
	ShowIDs     []int    // ids involved, for fixing
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
		if len(c.Items) > 0 {
			fmt.Fprintf(&b, "  Shows: %s\n", strings.Join(c.Items, ", "))
		}
	}
	return b.String()
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateShows checks the watchlist against itself and the color palette
// in settings.
func (v *Validator) ValidateShows(shows []*models.Show, settings models.Settings) ValidationResult {
	var result ValidationResult

	if err := settings.Validate(); err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidSettings,
			Description: fmt.Sprintf("Settings are invalid: %v", err),
		})
	}

	byID := make(map[int][]*models.Show)
	byTitle := make(map[string][]*models.Show)
	for _, show := range shows {
		byID[show.ID] = append(byID[show.ID], show)
		key := strings.ToLower(strings.TrimSpace(show.Title))
		byTitle[key] = append(byTitle[key], show)

		if show.Schedule() != "" && !show.Release.IsDefined() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidSchedule,
				Description: fmt.Sprintf("Show %d has an unparseable release schedule %q", show.ID, show.Schedule()),
				Items:       []string{show.Title},
				ShowIDs:     []int{show.ID},
			})
		}
		if show.Color < 0 || show.Color >= len(settings.TextColors) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictColorOutOfRange,
				Description: fmt.Sprintf("Show %d uses color %d but only %d colors are configured", show.ID, show.Color, len(settings.TextColors)),
				Items:       []string{show.Title},
				ShowIDs:     []int{show.ID},
			})
		}
		if show.Episode < 0 || show.Season < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeCounters,
				Description: fmt.Sprintf("Show %d has negative episode or season counters", show.ID),
				Items:       []string{show.Title},
				ShowIDs:     []int{show.ID},
			})
		}
	}

	for _, id := range sortedKeys(byID) {
		if group := byID[id]; len(group) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateShowID,
				Description: fmt.Sprintf("Show id %d is used %d times", id, len(group)),
				Items:       titles(group),
				ShowIDs:     ids(group),
			})
		}
	}
	for _, title := range sortedKeys(byTitle) {
		if group := byTitle[title]; len(group) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTitle,
				Description: fmt.Sprintf("Title %q appears %d times", group[0].Title, len(group)),
				Items:       titles(group),
				ShowIDs:     ids(group),
			})
		}
	}

	return result
}

// AutoFix repairs what can be repaired without user input: colors outside
// the palette are reset to fallbackColor and negative counters to zero.
// save is called for every modified show.
func AutoFix(conflicts []Conflict, shows []*models.Show, fallbackColor int, save func(*models.Show) error) []FixAction {
	var actions []FixAction

	find := func(id int) *models.Show {
		i := slices.IndexFunc(shows, func(s *models.Show) bool { return s.ID == id })
		if i < 0 {
			return nil
		}
		return shows[i]
	}

	for _, c := range conflicts {
		if len(c.ShowIDs) != 1 {
			continue
		}
		show := find(c.ShowIDs[0])
		if show == nil {
			continue
		}

		var action string
		switch c.Type {
		case ConflictColorOutOfRange:
			show.Color = fallbackColor
			action = fmt.Sprintf("Reset color of %q to %d", show.Title, fallbackColor)
		case ConflictNegativeCounters:
			show.Episode = max(show.Episode, 0)
			show.Season = max(show.Season, 0)
			action = fmt.Sprintf("Reset negative counters of %q", show.Title)
		default:
			continue
		}

		if err := save(show); err != nil {
			action = fmt.Sprintf("Failed to fix %q: %v", show.Title, err)
		}
		actions = append(actions, FixAction{Action: action, SourceConflict: c})
	}

	return actions
}

func sortedKeys[K int | string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func titles(shows []*models.Show) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.Title
	}
	return out
}

func ids(shows []*models.Show) []int {
	out := make([]int, len(shows))
	for i, s := range shows {
		out[i] = s.ID
	}
	return out
}
