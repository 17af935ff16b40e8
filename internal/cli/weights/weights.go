package weights

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
)

type WeightsListCmd struct{}

func (c *WeightsListCmd) Run(ctx *cli.Context) error {
	wl, _, err := ctx.LoadWatchlist()
	if err != nil {
		return err
	}

	counts := wl.Weights()
	if len(counts) == 0 {
		fmt.Println("No shows found.")
		return nil
	}

	fmt.Printf("%-6s %-8s %s\n", "Index", "Weight", "Shows")
	for i, wc := range counts {
		fmt.Printf("%-6d %-8d %d\n", i, wc.Weight, wc.Count)
	}
	return nil
}

// WeightsShiftCmd moves a histogram row together with every row on the far
// side of it, so the relative order of the rest of the list is kept.
type WeightsShiftCmd struct {
	Index     int    `arg:"" help:"Row index from 'weights list'."`
	Direction string `arg:"" enum:"up,down" help:"Shift direction (up|down)."`
	By        int    `help:"Amount to shift by." default:"1"`
}

func (c *WeightsShiftCmd) Validate() error {
	if c.By < 1 {
		return fmt.Errorf("--by must be at least 1")
	}
	return nil
}

func (c *WeightsShiftCmd) Run(ctx *cli.Context) error {
	wl, _, err := ctx.LoadWatchlist()
	if err != nil {
		return err
	}

	delta := c.By
	if c.Direction == "down" {
		delta = -delta
	}

	changed, err := wl.ShiftWeight(c.Index, delta)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		fmt.Println("No weights changed.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	for _, show := range changed {
		if err := ctx.Store.UpdateShow(show); err != nil {
			return fmt.Errorf("failed to update %s: %w", show.Title, err)
		}
	}

	fmt.Printf("Shifted %d show(s) %s by %d\n", len(changed), c.Direction, c.By)
	return nil
}
