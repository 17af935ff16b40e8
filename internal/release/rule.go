package release

import "time"

// Rule owns a show's raw schedule string together with its parsed Spec. The
// string is the source of truth; every assignment re-parses it.
type Rule struct {
	schedule string
	spec     Spec
}

// NewRule parses schedule into a Rule. An empty or malformed schedule gives an
// undefined rule.
func NewRule(schedule string) Rule {
	var r Rule
	r.Set(schedule)
	return r
}

// Set replaces the schedule string and re-parses it.
func (r *Rule) Set(schedule string) {
	r.schedule = schedule
	r.spec = Parse(schedule)
}

// String returns the raw schedule as it was entered.
func (r Rule) String() string {
	return r.schedule
}

// Spec returns the parsed schedule.
func (r Rule) Spec() Spec {
	return r.spec
}

func (r Rule) IsDefined() bool {
	return r.spec.IsDefined()
}

// HoursSinceRelease returns the hours since the most recent release, or 0
// for an undefined rule.
func (r Rule) HoursSinceRelease(now time.Time) float64 {
	s := r.spec
	switch s.Kind {
	case KindWeekly:
		return HoursSinceWeekly(s.Weekday, s.Hour, s.Minute, now)
	case KindCalendar:
		return HoursSinceCalendar(s.Day, s.Month, s.Year, s.Hour, s.Minute, now)
	default:
		return 0
	}
}

// HoursToRelease returns the hours until the next release, or 0 for an
// undefined rule.
func (r Rule) HoursToRelease(now time.Time) float64 {
	s := r.spec
	switch s.Kind {
	case KindWeekly:
		return HoursTillWeekly(s.Weekday, s.Hour, s.Minute, now)
	case KindCalendar:
		return HoursTillCalendar(s.Day, s.Month, s.Year, s.Hour, s.Minute, now)
	default:
		return 0
	}
}

// HoursSinceSecondToLastRelease looks one weekly cycle further back than
// HoursSinceRelease. Calendar releases are not treated as periodic and
// report 0.
func (r Rule) HoursSinceSecondToLastRelease(now time.Time) float64 {
	if r.spec.Kind != KindWeekly {
		return 0
	}
	return r.HoursSinceRelease(now) + HoursPerWeek
}
