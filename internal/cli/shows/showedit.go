package shows

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
)

type ShowEditCmd struct {
	ID         int      `arg:"" help:"Show ID to edit."`
	Title      *string  `short:"t" help:"New title."`
	Schedule   *string  `short:"s" help:"New release schedule. An empty value clears it."`
	Weight     *int     `short:"w" help:"New ranking weight."`
	Episode    *int     `short:"e" help:"New episode."`
	Season     *int     `help:"New season."`
	Link       []string `short:"l" help:"Replace links (repeatable)."`
	ClearLinks bool     `help:"Remove all links."`
	Details    bool     `short:"d" help:"Track episode and season." xor:"details"`
	NoDetails  bool     `help:"Stop tracking episode and season." xor:"details"`
	Hide       bool     `help:"Hide the show from the default list." xor:"hidden"`
	Unhide     bool     `help:"Show the show in the default list again." xor:"hidden"`
	Ended      bool     `help:"Mark the show as ended." xor:"ended"`
	Airing     bool     `help:"Mark an ended show as airing again." xor:"ended"`
	Color      *int     `short:"c" help:"Color index into text_colors."`
}

func (c *ShowEditCmd) Run(ctx *cli.Context) error {
	show, err := ctx.FindShow(c.ID)
	if err != nil {
		return err
	}

	if c.Title != nil {
		show.Title = *c.Title
	}
	if c.Schedule != nil {
		show.Release.Set(*c.Schedule)
	}
	if c.Weight != nil {
		show.Weight = *c.Weight
	}
	if c.Episode != nil {
		show.Episode = *c.Episode
	}
	if c.Season != nil {
		show.Season = *c.Season
	}
	if c.ClearLinks {
		show.Links = nil
	}
	if len(c.Link) > 0 {
		show.Links = c.Link
	}
	if c.Details || c.NoDetails {
		show.ShowDetails = c.Details
	}
	if c.Hide || c.Unhide {
		show.Hidden = c.Hide
	}
	if c.Ended || c.Airing {
		show.Ended = c.Ended
	}
	if c.Color != nil {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if err := checkColor(*c.Color, settings); err != nil {
			return err
		}
		show.Color = *c.Color
	}

	if err := validateShow(show); err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.UpdateShow(show); err != nil {
		return fmt.Errorf("failed to update show: %w", err)
	}

	fmt.Printf("Updated show: %s (ID: %d)\n", show.Title, show.ID)
	return nil
}
