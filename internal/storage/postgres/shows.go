package postgres

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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`, args...)
	if err != nil {
		return fmt.Errorf("failed to add show %d: %w", show.ID, err)
	}
	return nil
}

func (s *Store) GetShow(id int) (*models.Show, error) {
	row := s.db.QueryRow("SELECT "+storage.ShowColumns+" FROM shows WHERE id = $1", id)
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
		INSERT INTO shows (`+storage.ShowColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			episode = EXCLUDED.episode,
			season = EXCLUDED.season,
			links = EXCLUDED.links,
			weight = EXCLUDED.weight,
			color = EXCLUDED.color,
			show_details = EXCLUDED.show_details,
			hidden = EXCLUDED.hidden,
			ended = EXCLUDED.ended,
			release_schedule = EXCLUDED.release_schedule,
			last_dismissal = EXCLUDED.last_dismissal`, args...)
	return err
}

func (s *Store) DeleteShow(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM shows WHERE id = $1", id)
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

	if _, err := tx.Exec("DELETE FROM notifications WHERE show_id = $1", id); err != nil {
		return err
	}

	return tx.Commit()
}
