package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/watchlit/internal/backup"
	"github.com/julianstephens/watchlit/internal/constants"
	apperrors "github.com/julianstephens/watchlit/internal/errors"
	"github.com/julianstephens/watchlit/internal/keyring"
	"github.com/julianstephens/watchlit/internal/logger"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/storage"
	"github.com/julianstephens/watchlit/internal/storage/postgres"
	"github.com/julianstephens/watchlit/internal/storage/sqlite"
	"github.com/julianstephens/watchlit/internal/utils"
	"github.com/julianstephens/watchlit/internal/watchlist"
)

type Context struct {
	Store storage.Provider
	Debug bool

	// Now is the clock used for release arithmetic. Nil means time.Now.
	Now func() time.Time
}

func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// IsSQLite reports whether the context is backed by a local sqlite file.
func (c *Context) IsSQLite() bool {
	_, ok := c.Store.(*sqlite.Store)
	return ok
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.IsSQLite() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// LoadWatchlist reads settings and every show, with release states refreshed
// and the list sorted for display.
func (c *Context) LoadWatchlist() (*watchlist.Watchlist, models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	shows, err := c.Store.GetAllShows()
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("failed to get shows: %w", err)
	}

	wl := watchlist.New(shows)
	wl.Tick(nil, nil, settings, c.Clock(), false)
	return wl, settings, nil
}

// FindShow loads a single show, turning a missing id into a hinted error.
func (c *Context) FindShow(id int) (*models.Show, error) {
	show, err := c.Store.GetShow(id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.WithHint(fmt.Errorf("show %d not found", id), fmt.Sprintf("run '%s show list --all' to see show ids", constants.AppName))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show %d: %w", id, err)
	}
	return show, nil
}

// IsPostgresConfig reports whether config names a postgres database rather
// than a sqlite file.
func IsPostgresConfig(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}

// OpenStore builds the storage provider for a --config value: "keyring", a
// postgres connection string, or a sqlite path.
func OpenStore(config string) (storage.Provider, error) {
	if config == constants.KeyringConfigValue {
		connStr, err := keyring.ResolveConnectionString()
		if err != nil {
			return nil, err
		}
		// Keyring entries may carry a password; the keyring is the secure place for it.
		if _, err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, err
		}
		return postgres.New(connStr), nil
	}

	if IsPostgresConfig(config) {
		if _, err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, apperrors.WithHint(err, fmt.Sprintf(
					"store the connection string with '%s keyring set' and pass --config keyring, export %s, or use a .pgpass file",
					constants.AppName, constants.EnvDBConnection))
			}
			return nil, err
		}
		return postgres.New(config), nil
	}

	path, err := utils.ExpandHome(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}
