package shows

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
)

// ShowPurgeCmd retires a finished show: it is marked ended, moved to the
// given weight and, when purge_color_index is set, recolored.
type ShowPurgeCmd struct {
	ID     int `arg:"" help:"Show ID to purge."`
	Weight int `arg:"" help:"Weight to move the show to."`
}

func (c *ShowPurgeCmd) Run(ctx *cli.Context) error {
	wl, settings, err := ctx.LoadWatchlist()
	if err != nil {
		return err
	}
	if _, err := ctx.FindShow(c.ID); err != nil {
		return err
	}

	show, err := wl.Purge(c.ID, c.Weight, settings.PurgeColorIndex)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.UpdateShow(show); err != nil {
		return fmt.Errorf("failed to update show: %w", err)
	}

	fmt.Printf("Purged %s to weight %d\n", show.Title, show.Weight)
	return nil
}
