package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/release"
)

// ShowColumns is the column list ScanShow expects, in order.
const ShowColumns = `id, title, episode, season, links, weight, color,
	show_details, hidden, ended, release_schedule, last_dismissal`

// NotificationColumns is the column list ScanNotification expects, in order.
const NotificationColumns = `id, show_id, message, sent_at`

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanShow reads a show selected with ShowColumns.
func ScanShow(row RowScanner) (*models.Show, error) {
	var show models.Show
	var links, schedule string

	err := row.Scan(
		&show.ID, &show.Title, &show.Episode, &show.Season, &links, &show.Weight, &show.Color,
		&show.ShowDetails, &show.Hidden, &show.Ended, &schedule, &show.LastDismissal,
	)
	if err != nil {
		return nil, err
	}

	show.Links, err = DecodeLinks(links)
	if err != nil {
		return nil, fmt.Errorf("show %d: %w", show.ID, err)
	}
	show.Release = release.NewRule(schedule)

	return &show, nil
}

// ShowArgs returns the values for an insert in ShowColumns order.
func ShowArgs(show *models.Show) ([]any, error) {
	links, err := EncodeLinks(show.Links)
	if err != nil {
		return nil, err
	}
	return []any{
		show.ID, show.Title, show.Episode, show.Season, links, show.Weight, show.Color,
		show.ShowDetails, show.Hidden, show.Ended, show.Schedule(), show.LastDismissal,
	}, nil
}

// ScanNotification reads a notification selected with NotificationColumns.
func ScanNotification(row RowScanner) (models.Notification, error) {
	var n models.Notification
	var sentAt int64
	if err := row.Scan(&n.ID, &n.ShowID, &n.Message, &sentAt); err != nil {
		return models.Notification{}, err
	}
	n.SentAt = time.Unix(sentAt, 0)
	return n, nil
}

// EncodeLinks serializes show links for the links text column.
func EncodeLinks(links []string) (string, error) {
	if len(links) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(links)
	if err != nil {
		return "", fmt.Errorf("failed to encode links: %w", err)
	}
	return string(data), nil
}

// DecodeLinks parses the links text column. An empty column is no links.
func DecodeLinks(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var links []string
	if err := json.Unmarshal([]byte(data), &links); err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}
	if len(links) == 0 {
		return nil, nil
	}
	return links, nil
}
