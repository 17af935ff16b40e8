package system

import (
	"fmt"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/notifier"
	"github.com/julianstephens/watchlit/internal/watchlist"
)

// newAnnouncer is replaced in tests.
var newAnnouncer = func() watchlist.Announcer { return notifier.New() }

type NotifyCmd struct {
	DryRun  bool `help:"Print due announcements instead of sending and logging them."`
	History int  `help:"Show the N most recent logged announcements and exit." default:"0"`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if c.History > 0 {
		return c.printHistory(ctx)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.SendNotifications {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	shows, err := ctx.Store.GetAllShows()
	if err != nil {
		return fmt.Errorf("failed to get shows: %w", err)
	}

	var log watchlist.NotificationLog = ctx.Store
	announcer := newAnnouncer()
	if c.DryRun {
		log = dryRunLog{ctx.Store}
		announcer = printAnnouncer{}
	}

	result := watchlist.New(shows).Tick(log, announcer, settings, ctx.Clock(), true)

	if c.DryRun && len(result.Announced) == 0 {
		fmt.Println("No releases due for announcement.")
	}
	return nil
}

func (c *NotifyCmd) printHistory(ctx *cli.Context) error {
	notifications, err := ctx.Store.GetNotifications(min(c.History, constants.NotificationHistoryMax))
	if err != nil {
		return fmt.Errorf("failed to get notifications: %w", err)
	}
	if len(notifications) == 0 {
		fmt.Println("No announcements logged yet.")
		return nil
	}

	titles := make(map[int]string)
	if shows, err := ctx.Store.GetAllShows(); err == nil {
		for _, s := range shows {
			titles[s.ID] = s.Title
		}
	}

	for _, n := range notifications {
		title, ok := titles[n.ShowID]
		if !ok {
			title = fmt.Sprintf("show %d (deleted)", n.ShowID)
		}
		fmt.Printf("  %s  %-24s %s\n", n.SentAt.Local().Format(constants.DateTimeFormat), title, n.Message)
	}
	return nil
}

// dryRunLog reads announcement history but never records anything.
type dryRunLog struct {
	watchlist.NotificationLog
}

func (dryRunLog) AddNotification(models.Notification) error { return nil }

type printAnnouncer struct{}

func (printAnnouncer) Notify(text string) error {
	fmt.Println("[DryRun] " + text)
	return nil
}
