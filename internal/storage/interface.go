package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/watchlit/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Shows
	AddShow(*models.Show) error
	GetShow(id int) (*models.Show, error)
	GetAllShows() ([]*models.Show, error)
	UpdateShow(*models.Show) error
	DeleteShow(id int) error

	// Notifications
	AddNotification(models.Notification) error
	// GetNotifications returns the most recent notifications first. A limit
	// of zero or less returns all of them.
	GetNotifications(limit int) ([]models.Notification, error)
	// GetLastNotificationTimes maps each show id to the time of its latest
	// logged announcement.
	GetLastNotificationTimes() (map[int]time.Time, error)

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by providers that can apply pending schema
// migrations to an already loaded database.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
}

// SchemaReporter is implemented by providers that track a schema version.
type SchemaReporter interface {
	SchemaStatus() (current, latest int, err error)
}
