package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/storage"
)

// AddShow inserts a new show. An id that is already taken is an error.
func (s *Store) AddShow(show *models.Show) error {
	args, err := storage.ShowArgs(show)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO shows (`+storage.ShowColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return fmt.Errorf("failed to add show %d: %w", show.ID, err)
	}
	return nil
}

func (s *Store) GetShow(id int) (*models.Show, error) {
	row := s.db.QueryRow("SELECT "+storage.ShowColumns+" FROM shows WHERE id = ?", id)
	show, err := storage.ScanShow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("show %d: %w", id, storage.ErrNotFound)
	}
	return show, err
}

func (s *Store) GetAllShows() ([]*models.Show, error) {
	rows, err := s.db.Query("SELECT " + storage.ShowColumns + " FROM shows ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shows []*models.Show
	for rows.Next() {
		show, err := storage.ScanShow(rows)
		if err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}
	return shows, rows.Err()
}

func (s *Store) UpdateShow(show *models.Show) error {
	args, err := storage.ShowArgs(show)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO shows (`+storage.ShowColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return err
}

// DeleteShow removes a show along with its notification history.
func (s *Store) DeleteShow(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM shows WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("show %d: %w", id, storage.ErrNotFound)
	}

	if _, err := tx.Exec("DELETE FROM notifications WHERE show_id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}
