package shows

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/constants"
	apperrors "github.com/julianstephens/watchlit/internal/errors"
	"github.com/julianstephens/watchlit/internal/models"
)

type ShowAddCmd struct {
	Title    string   `arg:"" help:"Show title."`
	Schedule string   `short:"s" help:"Release schedule, e.g. 'fri 21:00' or '.24 /9 10:10'."`
	Weight   int      `short:"w" help:"Ranking weight; heavier shows sort first." default:"0"`
	Episode  int      `short:"e" help:"Current episode." default:"0"`
	Season   int      `help:"Current season." default:"0"`
	Link     []string `short:"l" help:"Link to the show (repeatable)."`
	Details  bool     `short:"d" help:"Track episode and season."`
	Hidden   bool     `help:"Hide the show from the default list."`
	Color    *int     `short:"c" help:"Color index into text_colors. Defaults to initial_show_color_index."`
}

func (c *ShowAddCmd) Run(ctx *cli.Context) error {
	wl, settings, err := ctx.LoadWatchlist()
	if err != nil {
		return err
	}

	show := models.NewShow(c.Title, c.Schedule)
	show.Weight = c.Weight
	show.Episode = c.Episode
	show.Season = c.Season
	show.Links = c.Link
	show.ShowDetails = c.Details
	show.Hidden = c.Hidden
	show.Color = settings.InitialShowColorIndex
	if c.Color != nil {
		if err := checkColor(*c.Color, settings); err != nil {
			return err
		}
		show.Color = *c.Color
	}

	if err := validateShow(show); err != nil {
		return err
	}

	wl.Add(show)

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.AddShow(show); err != nil {
		return fmt.Errorf("failed to save show: %w", err)
	}

	fmt.Printf("Added show: %s (ID: %d)\n", show.Title, show.ID)
	return nil
}

func validateShow(show *models.Show) error {
	if err := show.Validate(); err != nil {
		if show.Schedule() != "" && !show.Release.IsDefined() {
			return apperrors.WithHint(err, fmt.Sprintf("run '%s schedule parse \"%s\"' to check a schedule", constants.AppName, show.Schedule()))
		}
		return err
	}
	return nil
}

func checkColor(index int, settings models.Settings) error {
	if index < 0 || index >= len(settings.TextColors) {
		return apperrors.WithHint(
			fmt.Errorf("color index %d is out of range", index),
			fmt.Sprintf("text_colors has %d entries; valid indexes are 0 to %d", len(settings.TextColors), len(settings.TextColors)-1),
		)
	}
	return nil
}
