package sqlite

import (
	"github.com/julianstephens/watchlit/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	return models.MapToSettings(data)
}

func (s *Store) SaveSettings(settings models.Settings) error {
	return s.writeSettings("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", settings)
}

// insertDefaultSettings fills in keys that are missing without touching
// values the user already saved.
func (s *Store) insertDefaultSettings() error {
	return s.writeSettings("INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)", models.DefaultSettings())
}

func (s *Store) writeSettings(query string, settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	values := models.SettingsToMap(settings)
	for _, key := range models.SettingKeys {
		if _, err := stmt.Exec(key, values[key]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
