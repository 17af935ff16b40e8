package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/watchlit/internal/backup"
	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/constants"
	"github.com/julianstephens/watchlit/internal/keyring"
	"github.com/julianstephens/watchlit/internal/notifier"
	"github.com/julianstephens/watchlit/internal/storage"
	"github.com/julianstephens/watchlit/internal/storage/sqlite"
	"github.com/julianstephens/watchlit/internal/validation"
)

// checkTray is replaced in tests.
var checkTray = notifier.CheckTray

type DoctorCmd struct{}

type doctorCheck struct {
	name string
	// needsDB checks are skipped when the database cannot be reached.
	needsDB bool
	// warnOnly checks print a warning instead of failing the run.
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var doctorChecks = []doctorCheck{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Settings", needsDB: true, run: checkSettings},
	{name: "Show list", needsDB: true, run: checkValidation},
	{name: "Notification log", needsDB: true, run: checkNotificationLog},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Tray app", warnOnly: true, run: checkTrayApp},
	{name: "Keyring", warnOnly: true, run: checkKeyring},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	for _, check := range doctorChecks {
		if check.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", check.name)
			continue
		}
		err := check.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", check.name)
		case check.warnOnly:
			fmt.Printf("⚠ %s: WARNING\n", check.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", check.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func schemaStatus(ctx *cli.Context) (int, int, error) {
	reporter, ok := ctx.Store.(storage.SchemaReporter)
	if !ok {
		return 0, 0, nil
	}
	return reporter.SchemaStatus()
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := schemaStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d) - please upgrade %s", current, latest, constants.AppName)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	current, latest, err := schemaStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d - run '%s migrate'", current, latest, constants.AppName)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Validate()
}

func checkValidation(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	shows, err := ctx.Store.GetAllShows()
	if err != nil {
		return fmt.Errorf("failed to get shows: %w", err)
	}

	result := validation.New().ValidateShows(shows, settings)
	if result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found - run '%s validate' for details", len(result.Conflicts), constants.AppName)
	}
	return nil
}

// checkNotificationLog flags logged announcements that point at shows which
// no longer exist.
func checkNotificationLog(ctx *cli.Context) error {
	lastSent, err := ctx.Store.GetLastNotificationTimes()
	if err != nil {
		return fmt.Errorf("failed to read notification log: %w", err)
	}
	shows, err := ctx.Store.GetAllShows()
	if err != nil {
		return fmt.Errorf("failed to get shows: %w", err)
	}

	known := make(map[int]bool, len(shows))
	for _, s := range shows {
		known[s.ID] = true
	}
	orphaned := 0
	for id := range lastSent {
		if !known[id] {
			orphaned++
		}
	}
	if orphaned > 0 {
		return fmt.Errorf("found notifications for %d show(s) that no longer exist", orphaned)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !ctx.IsSQLite() {
		return fmt.Errorf("backups are only managed for sqlite databases")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := ctx.Clock()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkTrayApp(*cli.Context) error {
	if err := checkTray(); err != nil {
		return fmt.Errorf("release notifications cannot be delivered: %w", err)
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if ctx.IsSQLite() {
		return nil
	}
	if !keyring.IsAvailable() {
		return fmt.Errorf("system keyring is unavailable; set %s instead", constants.EnvDBConnection)
	}
	return nil
}
