package models

import "time"

// Notification is a logged release announcement.
type Notification struct {
	ID      string    `json:"id"`
	ShowID  int       `json:"show_id"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}
