package shows

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
)

type ShowDeleteCmd struct {
	ID  int  `arg:"" help:"Show ID to delete."`
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ShowDeleteCmd) Run(ctx *cli.Context) error {
	show, err := ctx.FindShow(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := cli.Confirm(fmt.Sprintf("Delete %q?", show.Title), "Its notification history is removed too.")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.DeleteShow(c.ID); err != nil {
		return fmt.Errorf("failed to delete show: %w", err)
	}

	fmt.Printf("Deleted show: %s (ID: %d)\n", show.Title, c.ID)
	return nil
}
