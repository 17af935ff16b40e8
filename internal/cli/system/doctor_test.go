package system

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/watchlit/internal/backup"
	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/storage/sqlite"
)

func stubTray(t *testing.T, err error) {
	t.Helper()
	orig := checkTray
	checkTray = func() error { return err }
	t.Cleanup(func() { checkTray = orig })
}

func setSchemaVersion(t *testing.T, ctx *cli.Context, version int) {
	t.Helper()
	db := ctx.Store.(*sqlite.Store).GetDB()
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatalf("failed to clear schema version: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		t.Fatalf("failed to set schema version: %v", err)
	}
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx := setupTestContext(t)
	addShows(t, ctx, models.NewShow("Severance", "fri 03:00"))
	// Missing backups and tray app are warnings only.
	stubTray(t, errors.New("not running"))

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, ctx *cli.Context)
	}{
		{
			name:  "newer schema",
			setup: func(t *testing.T, ctx *cli.Context) { setSchemaVersion(t, ctx, 999) },
		},
		{
			name:  "pending migrations",
			setup: func(t *testing.T, ctx *cli.Context) { setSchemaVersion(t, ctx, 0) },
		},
		{
			name: "duplicate titles",
			setup: func(t *testing.T, ctx *cli.Context) {
				addShows(t, ctx, models.NewShow("Andor", ""), models.NewShow("andor", ""))
			},
		},
		{
			name: "invalid settings",
			setup: func(t *testing.T, ctx *cli.Context) {
				db := ctx.Store.(*sqlite.Store).GetDB()
				if _, err := db.Exec("UPDATE settings SET value = '0' WHERE key = 'update_interval_sec'"); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "clock out of range",
			setup: func(t *testing.T, ctx *cli.Context) {
				ctx.Now = func() time.Time { return time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC) }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestContext(t)
			stubTray(t, nil)
			tt.setup(t, ctx)

			if err := (&DoctorCmd{}).Run(ctx); err == nil {
				t.Error("doctor command should fail")
			}
		})
	}
}

func TestDoctorCmd_UnreachableDB(t *testing.T) {
	ctx, _ := newUninitializedContext(t)
	stubTray(t, nil)

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor command should fail without a database")
	}
}

func TestCheckBackupsPresent(t *testing.T) {
	ctx := setupTestContext(t)

	if err := checkBackupsPresent(ctx); err == nil {
		t.Error("expected a warning with no backups")
	}

	if _, err := backup.NewManager(ctx.Store.GetConfigPath()).CreateBackup(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if err := checkBackupsPresent(ctx); err != nil {
		t.Errorf("checkBackupsPresent() with a backup = %v", err)
	}
}

func TestCheckNotificationLog(t *testing.T) {
	ctx := setupTestContext(t)
	addShows(t, ctx, models.NewShow("Severance", "fri 03:00"))

	if err := checkNotificationLog(ctx); err != nil {
		t.Fatalf("checkNotificationLog() on empty log = %v", err)
	}

	n := models.Notification{ID: "orphan", ShowID: 7, Message: "gone", SentAt: testNow}
	if err := ctx.Store.AddNotification(n); err != nil {
		t.Fatal(err)
	}
	if err := checkNotificationLog(ctx); err == nil {
		t.Error("expected orphaned notifications to be reported")
	}
}
