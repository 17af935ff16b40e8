package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/release"
	"github.com/julianstephens/watchlit/internal/tui/state"
	"github.com/julianstephens/watchlit/internal/utils"
)

func validateNonNegative(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		if n < 0 {
			return fmt.Errorf("%s cannot be negative", field)
		}
		return nil
	}
}

func validateInt(field string) func(string) error {
	return func(s string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		return nil
	}
}

func validateSchedule(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !release.Parse(s).IsDefined() {
		return fmt.Errorf("unrecognized schedule, try 'fri 21:00' or '.15 /6 <2025 20:00'")
	}
	return nil
}

// NewShowForm creates a new form for adding or editing shows
func NewShowForm(fm *state.ShowFormModel, editing bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Value(&fm.Title).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("title cannot be empty")
				}
				return nil
			}),
		huh.NewInput().
			Title("Release schedule").
			Description("Weekly 'fri 21:00', daily '21:00', or a date '.15 /6 <2025 20:00'. Empty for none.").
			Value(&fm.Schedule).
			Validate(validateSchedule),
		huh.NewConfirm().
			Title("Track episodes").
			Value(&fm.Details),
		huh.NewInput().
			Title("Episode").
			Value(&fm.Episode).
			Validate(validateNonNegative("episode")),
		huh.NewInput().
			Title("Season").
			Value(&fm.Season).
			Validate(validateNonNegative("season")),
		huh.NewInput().
			Title("Weight").
			Value(&fm.Weight).
			Validate(validateInt("weight")),
		huh.NewInput().
			Title("Links").
			Description("Comma-separated").
			Value(&fm.Links),
		huh.NewConfirm().
			Title("Hidden").
			Value(&fm.Hidden),
	}
	if editing {
		fields = append(fields, huh.NewConfirm().
			Title("Ended").
			Value(&fm.Ended))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeDracula())
}

// ShowFormFrom fills a form model from a show.
func ShowFormFrom(s *models.Show) *state.ShowFormModel {
	return &state.ShowFormModel{
		Title:    s.Title,
		Schedule: s.Schedule(),
		Episode:  strconv.Itoa(s.Episode),
		Season:   strconv.Itoa(s.Season),
		Weight:   strconv.Itoa(s.Weight),
		Links:    strings.Join(s.Links, ", "),
		Details:  s.ShowDetails,
		Hidden:   s.Hidden,
		Ended:    s.Ended,
	}
}

// ApplyShowForm copies validated form values onto show.
func ApplyShowForm(fm *state.ShowFormModel, show *models.Show) {
	show.Title = strings.TrimSpace(fm.Title)
	show.Release.Set(strings.TrimSpace(fm.Schedule))
	show.Episode = atoi(fm.Episode)
	show.Season = atoi(fm.Season)
	show.Weight = atoi(fm.Weight)
	show.Links = utils.SplitList(fm.Links)
	show.ShowDetails = fm.Details
	show.Hidden = fm.Hidden
	show.Ended = fm.Ended
}

// NewSettingsForm creates a new form for editing settings
func NewSettingsForm(fm *state.SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Release grace period (hours)").
				Description("0 keeps a release flagged until dismissed").
				Value(&fm.ReleaseGracePeriod).
				Validate(validateNonNegative("grace period")),
			huh.NewConfirm().
				Title("Send notifications").
				Value(&fm.SendNotifications),
			huh.NewConfirm().
				Title("Move released shows to top").
				Value(&fm.MoveRecentlyReleasedToTop),
			huh.NewInput().
				Title("Weight to add").
				Value(&fm.WeightToAdd).
				Validate(validateInt("weight to add")),
			huh.NewConfirm().
				Title("Sort by upcoming release").
				Value(&fm.SortByUpcoming),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show time till release").
				Value(&fm.ShowTillRelease),
			huh.NewConfirm().
				Title("Precise countdown").
				Value(&fm.RemainingTimePrecise),
			huh.NewInput().
				Title("Max title length").
				Value(&fm.MaxTitleDisplayLen).
				Validate(validateInt("max title length")),
			huh.NewConfirm().
				Title("Shorten with ellipsis").
				Value(&fm.ShortenWithEllipsis),
			huh.NewInput().
				Title("Text colors").
				Description("Comma-separated hex colors").
				Value(&fm.TextColors).
				Validate(func(s string) error {
					colors := utils.SplitList(s)
					if len(colors) == 0 {
						return fmt.Errorf("at least one color is required")
					}
					for _, c := range colors {
						if !utils.IsValidColor(c) {
							return fmt.Errorf("invalid color %q", c)
						}
					}
					return nil
				}),
			huh.NewInput().
				Title("Refresh interval (seconds)").
				Value(&fm.UpdateIntervalSec).
				Validate(validateInt("refresh interval")),
		),
	).WithTheme(huh.ThemeDracula())
}

// SettingsFormFrom fills a form model from settings.
func SettingsFormFrom(s models.Settings) *state.SettingsFormModel {
	return &state.SettingsFormModel{
		ReleaseGracePeriod:        strconv.Itoa(s.ReleaseGracePeriod),
		WeightToAdd:               strconv.Itoa(s.WeightToAdd),
		MoveRecentlyReleasedToTop: s.MoveRecentlyReleasedToTop,
		SortByUpcoming:            s.SortByUpcoming,
		SendNotifications:         s.SendNotifications,
		ShowTillRelease:           s.ShowTillRelease,
		RemainingTimePrecise:      s.RemainingTimePrecise,
		ShortenWithEllipsis:       s.ShortenWithEllipsis,
		MaxTitleDisplayLen:        strconv.Itoa(s.MaxTitleDisplayLen),
		UpdateIntervalSec:         strconv.Itoa(s.UpdateIntervalSec),
		TextColors:                strings.Join(s.TextColors, ", "),
	}
}

// ApplySettingsForm returns base updated with the form values, validated.
func ApplySettingsForm(fm *state.SettingsFormModel, base models.Settings) (models.Settings, error) {
	s := base
	s.ReleaseGracePeriod = atoi(fm.ReleaseGracePeriod)
	s.WeightToAdd = atoi(fm.WeightToAdd)
	s.MoveRecentlyReleasedToTop = fm.MoveRecentlyReleasedToTop
	s.SortByUpcoming = fm.SortByUpcoming
	s.SendNotifications = fm.SendNotifications
	s.ShowTillRelease = fm.ShowTillRelease
	s.RemainingTimePrecise = fm.RemainingTimePrecise
	s.ShortenWithEllipsis = fm.ShortenWithEllipsis
	s.MaxTitleDisplayLen = atoi(fm.MaxTitleDisplayLen)
	s.UpdateIntervalSec = atoi(fm.UpdateIntervalSec)
	s.TextColors = utils.SplitList(fm.TextColors)
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// NewPurgeForm asks for the weight a purged show moves to
func NewPurgeForm(fm *state.PurgeFormModel, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Purge %q", title)).
				Description("The show is marked ended and moved to this weight").
				Value(&fm.Weight).
				Validate(validateInt("weight")),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmationForm creates a yes/no confirmation form
func NewConfirmationForm(fm *state.ConfirmationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Message).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}

// atoi parses a form value that has already been validated. Blank is zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
