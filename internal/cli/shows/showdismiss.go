package shows

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
)

type ShowDismissCmd struct {
	ID          int  `arg:"" help:"Show ID to dismiss."`
	NextEpisode bool `short:"n" help:"Also advance to the next episode when details are tracked."`
}

func (c *ShowDismissCmd) Run(ctx *cli.Context) error {
	wl, _, err := ctx.LoadWatchlist()
	if err != nil {
		return err
	}
	if _, err := ctx.FindShow(c.ID); err != nil {
		return err
	}

	show, err := wl.Dismiss(c.ID, ctx.Clock(), c.NextEpisode)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.UpdateShow(show); err != nil {
		return fmt.Errorf("failed to update show: %w", err)
	}

	fmt.Printf("Dismissed release of %s\n", show.Title)
	return nil
}

type ShowUndismissCmd struct {
	ID int `arg:"" help:"Show ID whose dismissal to clear."`
}

func (c *ShowUndismissCmd) Run(ctx *cli.Context) error {
	wl, _, err := ctx.LoadWatchlist()
	if err != nil {
		return err
	}
	if _, err := ctx.FindShow(c.ID); err != nil {
		return err
	}

	show, err := wl.ClearDismissal(c.ID)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.UpdateShow(show); err != nil {
		return fmt.Errorf("failed to update show: %w", err)
	}

	fmt.Printf("Cleared dismissal of %s\n", show.Title)
	return nil
}
