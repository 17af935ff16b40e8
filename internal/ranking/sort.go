// Package ranking orders shows for display. Ordering is a pure function of
// the shows, the options and the supplied time.
package ranking

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/julianstephens/watchlit/internal/models"
)

// Options controls how shows are ranked.
type Options struct {
	// WeightToAdd is the bonus given to recently released shows.
	WeightToAdd int
	// SortByUpcoming orders shows by their next release instead of by title
	// within a weight.
	SortByUpcoming bool
}

// OptionsFromSettings builds ranking options from user settings. The release
// bonus is dropped when recently released shows should not move up.
func OptionsFromSettings(s models.Settings) Options {
	opts := Options{SortByUpcoming: s.SortByUpcoming}
	if s.MoveRecentlyReleasedToTop {
		opts.WeightToAdd = s.WeightToAdd
	}
	return opts
}

// Key is the ordering tuple of a show. Keys compare ascending.
type Key struct {
	SortWeight int
	Bucket     int
	Secondary  float64
	Title      string
}

// Bucket values used when sorting by upcoming release.
const (
	BucketRecentlyReleased = 0
	BucketUpcoming         = 1
	BucketOverdue          = 2
)

// KeyFor computes the ordering key of show at now. It relies on the show's
// recently-released memo, so CheckRelease should run first.
func KeyFor(show *models.Show, opts Options, now time.Time) Key {
	key := Key{
		SortWeight: -show.Weight,
		Title:      show.Title,
	}
	if show.IsRecentlyReleased() {
		key.SortWeight -= opts.WeightToAdd
	}

	if !opts.SortByUpcoming {
		return key
	}

	sinceDismissal := math.Abs(show.HoursSinceDismissal(now))
	wasDismissed := sinceDismissal < show.Release.HoursSinceSecondToLastRelease(now)

	if wasDismissed {
		key.Secondary = show.Release.HoursToRelease(now)
	} else {
		key.Secondary = -sinceDismissal
	}

	switch {
	case show.IsRecentlyReleased():
		key.Bucket = BucketRecentlyReleased
		if key.Secondary == 0 {
			key.Secondary = math.MaxFloat64
		}
	case key.Secondary > 0:
		key.Bucket = BucketUpcoming
	default:
		key.Bucket = BucketOverdue
	}
	return key
}

// Compare orders two keys by weight, bucket, secondary and finally title.
func Compare(a, b Key) int {
	if c := cmp.Compare(a.SortWeight, b.SortWeight); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Bucket, b.Bucket); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Secondary, b.Secondary); c != 0 {
		return c
	}
	return cmp.Compare(a.Title, b.Title)
}

// Sort returns the shows in display order. The input slice is left untouched
// and shows with equal keys keep their relative order.
func Sort(shows []*models.Show, opts Options, now time.Time) []*models.Show {
	type ranked struct {
		show *models.Show
		key  Key
	}

	items := make([]ranked, len(shows))
	for i, show := range shows {
		items[i] = ranked{show: show, key: KeyFor(show, opts, now)}
	}

	slices.SortStableFunc(items, func(a, b ranked) int {
		return Compare(a.key, b.key)
	})

	sorted := make([]*models.Show, len(items))
	for i, item := range items {
		sorted[i] = item.show
	}
	return sorted
}
