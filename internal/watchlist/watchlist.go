// Package watchlist holds the in-memory collection of shows and the
// operations the CLI and TUI perform on it.
package watchlist

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/julianstephens/watchlit/internal/models"
	"github.com/julianstephens/watchlit/internal/ranking"
)

var ErrShowNotFound = errors.New("show not found")

// Watchlist is an ordered collection of shows. It is not safe for concurrent
// use; the TUI and CLI drive it from a single goroutine.
type Watchlist struct {
	shows []*models.Show
}

// New wraps shows. The slice is copied; the shows themselves are shared.
func New(shows []*models.Show) *Watchlist {
	return &Watchlist{shows: slices.Clone(shows)}
}

// All returns the shows in their current order.
func (w *Watchlist) All() []*models.Show {
	return slices.Clone(w.shows)
}

func (w *Watchlist) Len() int {
	return len(w.shows)
}

// HighestID returns the largest show id, or -1 for an empty list.
func (w *Watchlist) HighestID() int {
	highest := -1
	for _, s := range w.shows {
		if s.ID > highest {
			highest = s.ID
		}
	}
	return highest
}

// NextID returns the id the next added show will receive.
func (w *Watchlist) NextID() int {
	return w.HighestID() + 1
}

func (w *Watchlist) FromID(id int) (*models.Show, error) {
	for _, s := range w.shows {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrShowNotFound, id)
}

// Add assigns the next free id to show and appends it.
func (w *Watchlist) Add(show *models.Show) *models.Show {
	show.ID = w.NextID()
	w.shows = append(w.shows, show)
	return show
}

func (w *Watchlist) Remove(id int) error {
	i := slices.IndexFunc(w.shows, func(s *models.Show) bool { return s.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrShowNotFound, id)
	}
	w.shows = slices.Delete(w.shows, i, i+1)
	return nil
}

// Visible returns the shows to display, leaving out hidden ones unless
// displayHidden is set.
func (w *Watchlist) Visible(displayHidden bool) []*models.Show {
	if displayHidden {
		return w.All()
	}
	out := make([]*models.Show, 0, len(w.shows))
	for _, s := range w.shows {
		if !s.Hidden {
			out = append(out, s)
		}
	}
	return out
}

// CheckAllReleases refreshes the release state of every show and returns the
// shows that became recently released with this call.
func (w *Watchlist) CheckAllReleases(grace int, now time.Time) []*models.Show {
	var flipped []*models.Show
	for _, s := range w.shows {
		was := s.IsRecentlyReleased()
		if s.CheckRelease(grace, now) && !was {
			flipped = append(flipped, s)
		}
	}
	return flipped
}

// Sort reorders the list for display.
func (w *Watchlist) Sort(opts ranking.Options, now time.Time) {
	w.shows = ranking.Sort(w.shows, opts, now)
}

// Dismiss records that the latest release of a show has been seen. With
// bumpEpisode set, shows that track details also advance to the next episode.
func (w *Watchlist) Dismiss(id int, now time.Time, bumpEpisode bool) (*models.Show, error) {
	s, err := w.FromID(id)
	if err != nil {
		return nil, err
	}
	s.LastDismissal = now.Unix()
	if bumpEpisode && s.ShowDetails {
		s.Episode++
	}
	return s, nil
}

// ClearDismissal forgets the last dismissal of a show.
func (w *Watchlist) ClearDismissal(id int) (*models.Show, error) {
	s, err := w.FromID(id)
	if err != nil {
		return nil, err
	}
	s.LastDismissal = 0
	return s, nil
}

// Purge retires a show: it is marked ended, moved to weight and its dismissal
// is cleared. A purgeColor of -1 keeps the current color.
func (w *Watchlist) Purge(id, weight, purgeColor int) (*models.Show, error) {
	s, err := w.FromID(id)
	if err != nil {
		return nil, err
	}
	s.Ended = true
	s.Weight = weight
	s.LastDismissal = 0
	if purgeColor >= 0 {
		s.Color = purgeColor
	}
	return s, nil
}

// DueAnnouncements returns the recently released shows whose latest release
// has not been announced yet. lastSent maps show ids to the time of their
// last logged announcement. A show flagged only because its rule reports a
// release still ahead of now is never due.
func (w *Watchlist) DueAnnouncements(now time.Time, lastSent map[int]time.Time) []*models.Show {
	var due []*models.Show
	for _, s := range w.shows {
		if !s.IsRecentlyReleased() || s.Release.HoursSinceRelease(now) < 0 {
			continue
		}
		releasedAt := ReleaseInstant(s, now)
		if last, ok := lastSent[s.ID]; ok && !last.Before(releasedAt) {
			continue
		}
		due = append(due, s)
	}
	return due
}

// ReleaseInstant is the time of the most recent release of show as seen
// from now. Release times fall on whole minutes, so the seconds of now are
// dropped and the offset is walked back on the wall clock.
func ReleaseInstant(show *models.Show, now time.Time) time.Time {
	base := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	minutes := int(math.Round(show.Release.HoursSinceRelease(base) * 60))
	return time.Date(base.Year(), base.Month(), base.Day(), base.Hour(), base.Minute()-minutes, 0, 0, base.Location())
}

// AnnouncementText is the message sent when a show is released.
func AnnouncementText(show *models.Show) string {
	if show.ShowDetails && show.Episode > 0 {
		if show.Season > 0 {
			return fmt.Sprintf("%s S%d E%d is out", show.Title, show.Season, show.Episode)
		}
		return fmt.Sprintf("%s episode %d is out", show.Title, show.Episode)
	}
	return fmt.Sprintf("%s has a new release", show.Title)
}

// Weights returns the weight histogram of the list, heaviest first.
func (w *Watchlist) Weights() []ranking.WeightCount {
	return ranking.ExistingWeights(w.shows)
}

// ShiftWeight moves the histogram row at index, and every row beyond it in
// the direction of delta, by delta. It returns the shows whose weight changed.
func (w *Watchlist) ShiftWeight(index, delta int) ([]*models.Show, error) {
	_, mapping, err := ranking.ShiftWeights(w.Weights(), index, delta)
	if err != nil {
		return nil, err
	}
	return ranking.ChangeWeights(w.shows, mapping), nil
}
