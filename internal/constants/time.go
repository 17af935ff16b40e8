package constants

const (
	// DateTimeFormat is used when printing notification history and backups.
	DateTimeFormat = "2006-01-02 15:04"

	// HoursPerDay converts grace periods for display.
	HoursPerDay = 24
)
