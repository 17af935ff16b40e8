package release

import "time"

// Kind identifies which family of schedule a Spec describes.
type Kind int

const (
	KindUndefined Kind = iota
	KindWeekly
	KindCalendar
)

// NoWeekday is the weekday sentinel for schedules that only carry a time of
// day. Such schedules are treated as releasing "today" at that time.
const NoWeekday = 7

// HoursPerWeek is the distance between two consecutive weekly releases.
const HoursPerWeek = 168

var weekdayNames = [...]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func (k Kind) String() string {
	switch k {
	case KindWeekly:
		return "weekly"
	case KindCalendar:
		return "calendar"
	default:
		return "undefined"
	}
}

// Spec is the parsed form of a schedule string.
//
// Weekday is only meaningful for KindWeekly and Day, Month and Year only for
// KindCalendar. A zero Day/Month/Year means the schedule recurs at that
// resolution.
type Spec struct {
	Kind    Kind
	Weekday int
	Day     int
	Month   int
	Year    int
	Hour    int
	Minute  int
}

// IsDefined reports whether the spec describes a schedule at all.
func (s Spec) IsDefined() bool {
	return s.Kind != KindUndefined
}

// Weekday returns the Monday-based weekday index (Monday=0 .. Sunday=6) of t.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayName returns the three letter name of a Monday-based weekday index,
// or an empty string for the NoWeekday sentinel.
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[weekday]
}
