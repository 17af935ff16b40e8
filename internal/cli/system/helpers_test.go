package system

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/storage/sqlite"
)

// testNow is a Monday noon; a "sun 00:00" show released 36 hours earlier.
var testNow = time.Date(2025, time.January, 6, 12, 0, 0, 0, time.Local)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return &cli.Context{
		Store: store,
		Now:   func() time.Time { return testNow },
	}
}

func addShows(t *testing.T, ctx *cli.Context, shows ...*models.Show) {
	t.Helper()
	for i, s := range shows {
		s.ID = i
		if err := ctx.Store.AddShow(s); err != nil {
			t.Fatalf("failed to add show %q: %v", s.Title, err)
		}
	}
}

func enableNotifications(t *testing.T, ctx *cli.Context) {
	t.Helper()
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.SendNotifications = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
}
