package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/watchlit/internal/release"
)

type Show struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	Episode       int          `json:"episode"`
	Season        int          `json:"season"`
	Links         []string     `json:"links,omitempty"`
	Weight        int          `json:"weight"`
	Color         int          `json:"color"`        // index into Settings.TextColors
	ShowDetails   bool         `json:"show_details"` // whether episode/season are tracked
	Hidden        bool         `json:"hidden"`
	Ended         bool         `json:"ended"`
	Release       release.Rule `json:"-"`
	LastDismissal int64        `json:"last_dismissal"` // unix seconds, 0 = never

	// recentlyReleased is the result of the last CheckRelease call. It is
	// never persisted.
	recentlyReleased bool
}

// NewShow creates a show with the given title and schedule.
func NewShow(title, schedule string) *Show {
	return &Show{
		Title:   title,
		Release: release.NewRule(schedule),
	}
}

func (s *Show) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("show title cannot be empty")
	}
	if s.Episode < 0 {
		return fmt.Errorf("episode cannot be negative")
	}
	if s.Season < 0 {
		return fmt.Errorf("season cannot be negative")
	}
	if s.Color < 0 {
		return fmt.Errorf("color index cannot be negative")
	}
	if s.Release.String() != "" && !s.Release.IsDefined() {
		return fmt.Errorf("invalid release schedule %q", s.Release.String())
	}
	return nil
}

// Schedule returns the raw release schedule text.
func (s *Show) Schedule() string {
	return s.Release.String()
}

// IsRecentlyReleased returns the state computed by the last CheckRelease call.
func (s *Show) IsRecentlyReleased() bool {
	return s.recentlyReleased
}

// CheckRelease decides whether the show currently counts as recently
// released and remembers the answer for IsRecentlyReleased.
//
// A grace period of 0 keeps a released show flagged until it is dismissed.
// A dismissal suppresses the flag when it happened after the latest release,
// compared by weekday and time of day.
func (s *Show) CheckRelease(grace int, now time.Time) bool {
	s.recentlyReleased = s.releaseState(grace, now)
	return s.recentlyReleased
}

func (s *Show) releaseState(grace int, now time.Time) bool {
	if s.Ended || !s.Release.IsDefined() {
		return false
	}

	since := s.Release.HoursSinceRelease(now)

	if s.LastDismissal > 1 {
		dismissed := time.Unix(s.LastDismissal, 0).In(now.Location())
		sinceDismissal := release.HoursSinceWeekly(release.Weekday(dismissed), dismissed.Hour(), dismissed.Minute(), now)
		if sinceDismissal < since || since < 0 {
			return false
		}
	}

	return since <= float64(grace) || grace == 0
}

// TimeTillRelease renders the countdown to the next release, or an empty
// string when there is nothing to count down to.
func (s *Show) TimeTillRelease(now time.Time, precise bool) string {
	if s.Ended || !s.Release.IsDefined() {
		return ""
	}
	return release.Countdown(s.Release.HoursToRelease(now), precise)
}

// HoursSinceDismissal is the absolute number of hours between the last
// dismissal and now.
func (s *Show) HoursSinceDismissal(now time.Time) float64 {
	return release.HoursBetween(time.Unix(s.LastDismissal, 0), now)
}
