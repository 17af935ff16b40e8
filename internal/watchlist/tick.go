package watchlist

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/watchlit/internal/logger"
	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/ranking"
)

// NotificationLog is the part of the store a tick needs to record
// announcements.
type NotificationLog interface {
	AddNotification(n models.Notification) error
	GetLastNotificationTimes() (map[int]time.Time, error)
}

// Announcer delivers a release announcement to the user.
type Announcer interface {
	Notify(text string) error
}

// TickResult reports what a tick changed.
type TickResult struct {
	NewlyReleased []*models.Show
	Announced     []*models.Show
}

// Tick refreshes release states, re-sorts the list and, when enabled, sends
// and logs announcements for shows whose release has not been announced.
// Announcement failures are logged and skipped.
func (w *Watchlist) Tick(store NotificationLog, notifier Announcer, settings models.Settings, now time.Time, allowNotifications bool) TickResult {
	result := TickResult{
		NewlyReleased: w.CheckAllReleases(settings.ReleaseGracePeriod, now),
	}
	w.Sort(ranking.OptionsFromSettings(settings), now)

	if !settings.SendNotifications || !allowNotifications || store == nil || notifier == nil {
		return result
	}

	lastSent, err := store.GetLastNotificationTimes()
	if err != nil {
		logger.Warn("Failed to load notification history", "error", err)
		return result
	}

	for _, show := range w.DueAnnouncements(now, lastSent) {
		text := AnnouncementText(show)
		if err := notifier.Notify(text); err != nil {
			logger.Warn("Failed to send release notification", "show", show.Title, "error", err)
			continue
		}

		n := models.Notification{
			ID:      uuid.NewString(),
			ShowID:  show.ID,
			Message: text,
			SentAt:  now,
		}
		if err := store.AddNotification(n); err != nil {
			logger.Warn("Failed to log release notification", "show", show.Title, "error", err)
		}
		logger.Debug("Announced release", "show", show.Title)
		result.Announced = append(result.Announced, show)
	}
	return result
}
