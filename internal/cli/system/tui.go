package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/notifier"
	"github.com/julianstephens/watchlit/internal/tui"
)

type TuiCmd struct {
	NoNotify bool `help:"Do not send release announcements while the TUI runs."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	model, err := tui.NewModel(ctx.Store, notifier.New(), ctx.Clock, !c.NoNotify)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
