package constants

import "time"

const (
	AppName            = "watchlit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/watchlit/watchlit.db"
	Version            = "v0.1.0"

	// KeyringConfigValue selects the OS keyring as the source of the
	// connection string when passed as --config.
	KeyringConfigValue = "keyring"
	// EnvDBConnection overrides the keyring connection string.
	EnvDBConnection = "WATCHLIT_DB_CONNECTION"
	// PostgresSchema is the schema watchlit tables live in on postgres.
	PostgresSchema = "watchlit"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "watchlit-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "watchlit-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.watchlit"
	TrayProcessName        = "watchlit-tray"
	NotifierSecretHeader   = "X-Watchlit-Secret"
	NotificationHistoryMax = 20

	// Log constants
	LogDirName    = "logs"
	LogFileName   = "watchlit.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// Display constants
	RecentlyReleasedMarker = "✨"
	EllipsisSuffix         = "..."
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	// Main views, in tab order
	StateShows SessionState = iota
	StateWeights
	StateSettings

	// Overlays
	StateEditShow
	StateEditSettings
	StatePurge
	StateConfirmation
)

// MainViewCount is the number of tab-cycled views.
const MainViewCount = 3
