package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/watchlit/internal/cli"
	"github.com/julianstephens/watchlit/internal/cli/backups"
	"github.com/julianstephens/watchlit/internal/cli/schedule"
	"github.com/julianstephens/watchlit/internal/cli/settings"
	"github.com/julianstephens/watchlit/internal/cli/shows"
	"github.com/julianstephens/watchlit/internal/cli/system"
	"github.com/julianstephens/watchlit/internal/cli/weights"
	"github.com/julianstephens/watchlit/internal/constants"
	apperrors "github.com/julianstephens/watchlit/internal/errors"
	"github.com/julianstephens/watchlit/internal/logger"
	"github.com/julianstephens/watchlit/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path, PostgreSQL connection string, or 'keyring'. PostgreSQL credentials belong in the OS keyring, WATCHLIT_DB_CONNECTION or .pgpass, not in the connection string." type:"string" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd     `cmd:"" help:"Initialize watchlit storage."`
	Migrate  system.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check the watchlist for conflicts."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Notify   system.NotifyCmd   `cmd:"" help:"Announce new releases through the tray app."`
	Show     struct {
		Add       shows.ShowAddCmd       `cmd:"" help:"Add a show."`
		Edit      shows.ShowEditCmd      `cmd:"" help:"Edit a show."`
		Delete    shows.ShowDeleteCmd    `cmd:"" help:"Delete a show."`
		List      shows.ShowListCmd      `cmd:"" help:"List shows in ranking order." default:"1"`
		Dismiss   shows.ShowDismissCmd   `cmd:"" help:"Mark the latest release as seen."`
		Undismiss shows.ShowUndismissCmd `cmd:"" help:"Clear the last dismissal."`
		Purge     shows.ShowPurgeCmd     `cmd:"" help:"Retire a finished show to a weight."`
	} `cmd:"" help:"Manage shows."`
	Weights struct {
		List  weights.WeightsListCmd  `cmd:"" help:"Show the weight histogram." default:"1"`
		Shift weights.WeightsShiftCmd `cmd:"" help:"Shift a weight row and everything beyond it."`
	} `cmd:"" help:"Inspect and shift ranking weights."`
	Schedule struct {
		Parse schedule.ScheduleParseCmd `cmd:"" help:"Explain a release schedule."`
	} `cmd:"" help:"Work with release schedules."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report where the connection string comes from."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

// Commands that must run without a loaded store. Doctor loads it itself so
// it can report the failure.
var noLoad = map[string]bool{
	"init":     true,
	"doctor":   true,
	"keyring":  true,
	"schedule": true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track when the shows you watch release and what to watch next."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(CLI.Config)}); err != nil {
		apperrors.Fatal(err)
	}
	defer logger.Close()

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer store.Close()

	command := strings.Fields(ctx.Command())[0]
	if !noLoad[command] {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	logger.Debug("Running command", "command", ctx.Command(), "config", configDir(CLI.Config))
	if err := ctx.Run(&cli.Context{Store: store, Debug: CLI.Debug}); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// configDir is where logs and backups live: next to a sqlite database, or
// the default config directory for postgres.
func configDir(config string) string {
	if config != constants.KeyringConfigValue && !cli.IsPostgresConfig(config) {
		if path, err := utils.ExpandHome(config); err == nil {
			return filepath.Dir(path)
		}
	}
	path, err := utils.ExpandHome(constants.DefaultConfigPath)
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}
