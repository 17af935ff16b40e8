package system

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Repair out-of-range colors and negative counters."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	shows, err := ctx.Store.GetAllShows()
	if err != nil {
		return fmt.Errorf("failed to load shows: %w", err)
	}

	fmt.Println("Validating shows...")
	result := validation.New().ValidateShows(shows, settings)

	fmt.Println()
	fmt.Println(result.FormatReport())

	if !c.Fix || !result.HasConflicts() {
		return nil
	}

	ctx.PerformAutomaticBackup()
	actions := validation.AutoFix(result.Conflicts, shows, settings.InitialShowColorIndex, ctx.Store.UpdateShow)
	if len(actions) == 0 {
		fmt.Println("Nothing could be fixed automatically.")
		return nil
	}

	fmt.Println("Applied fixes:")
	for _, a := range actions {
		fmt.Printf("  - %s\n", a.Action)
	}
	return nil
}
