package postgres

import (
	"time"

	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/storage"
)

func (s *Store) AddNotification(n models.Notification) error {
	_, err := s.db.Exec(
		"INSERT INTO notifications ("+storage.NotificationColumns+") VALUES ($1, $2, $3, $4)",
		n.ID, n.ShowID, n.Message, n.SentAt.Unix(),
	)
	return err
}

func (s *Store) GetNotifications(limit int) ([]models.Notification, error) {
	query := "SELECT " + storage.NotificationColumns + " FROM notifications ORDER BY sent_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		n, err := storage.ScanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (s *Store) GetLastNotificationTimes() (map[int]time.Time, error) {
	rows, err := s.db.Query("SELECT show_id, MAX(sent_at) FROM notifications GROUP BY show_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	times := make(map[int]time.Time)
	for rows.Next() {
		var showID int
		var sentAt int64
		if err := rows.Scan(&showID, &sentAt); err != nil {
			return nil, err
		}
		times[showID] = time.Unix(sentAt, 0)
	}
	return times, rows.Err()
}
