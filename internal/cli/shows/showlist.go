package shows

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/ranking"
	"github.com/julianstephens/watchlit/internal/tui/components/showlist"
)

type ShowListCmd struct {
	All      bool `short:"a" help:"Include hidden shows."`
	Upcoming bool `short:"u" help:"Order by next release instead of title."`
	IDs      bool `help:"Print show IDs instead of list positions."`
}

func (c *ShowListCmd) Run(ctx *cli.Context) error {
	wl, settings, err := ctx.LoadWatchlist()
	if err != nil {
		return err
	}

	now := ctx.Clock()
	if c.Upcoming && !settings.SortByUpcoming {
		settings.SortByUpcoming = true
		wl.Sort(ranking.OptionsFromSettings(settings), now)
	}

	shows := wl.Visible(c.All || settings.DisplayHidden)
	if len(shows) == 0 {
		fmt.Println("No shows found.")
		return nil
	}

	if c.IDs {
		for _, s := range shows {
			fmt.Println(showlist.RenderRow(s.ID, s, settings, now, false))
		}
		return nil
	}
	fmt.Println(showlist.RenderRows(shows, settings, now))
	return nil
}
