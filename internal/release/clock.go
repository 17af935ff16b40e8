package release

import "time"

// maxDayRetries bounds how far an out-of-range day of month is walked back
// before a calendar computation gives up.
const maxDayRetries = 31

// HoursSinceWeekly returns the hours elapsed since the most recent
// weekday@hour:minute up to now. Weekdays are Monday-based; NoWeekday means
// today. Only the hour and minute of now are considered.
func HoursSinceWeekly(weekday, hour, minute int, now time.Time) float64 {
	today := Weekday(now)

	daysSince := 0
	switch {
	case weekday == NoWeekday:
		daysSince = 0
	case weekday == today:
		if minutesOfDay(now.Hour(), now.Minute()) < minutesOfDay(hour, minute) {
			daysSince = 7
		}
	case weekday > today:
		daysSince = 7 - (weekday - today)
	default:
		daysSince = today - weekday
	}

	return float64(daysSince*24+(now.Hour()-hour)) + float64(now.Minute()-minute)/60
}

// HoursTillWeekly returns the hours from now until the next
// weekday@hour:minute. A release at exactly now is zero hours away.
func HoursTillWeekly(weekday, hour, minute int, now time.Time) float64 {
	today := Weekday(now)

	daysTill := 0
	switch {
	case weekday == NoWeekday:
		daysTill = 0
	case weekday == today:
		if minutesOfDay(hour, minute) < minutesOfDay(now.Hour(), now.Minute()) {
			daysTill = 7
		}
	case weekday > today:
		daysTill = weekday - today
	default:
		daysTill = 7 - (today - weekday)
	}

	return float64(daysTill*24+(hour-now.Hour())) + float64(minute-now.Minute())/60
}

// HoursSinceCalendar returns the hours since the most recent day/month/year
// at hour:minute that is not after now. A zero month or year recurs monthly
// or yearly. A fully specified date in the future yields a negative value.
// Zero is returned when the date cannot be resolved.
func HoursSinceCalendar(day, month, year, hour, minute int, now time.Time) float64 {
	if day <= 0 {
		return 0
	}

	switch {
	case year != 0:
		past, ok := instant(year, time.Month(month), day, hour, minute, now.Location())
		if !ok {
			return 0
		}
		return wallHours(past, now)

	case month != 0:
		y := now.Year()
		past, ok := instant(y, time.Month(month), day, hour, minute, now.Location())
		if !ok {
			return 0
		}
		if past.After(now) {
			if past, ok = instant(y-1, time.Month(month), day, hour, minute, now.Location()); !ok {
				return 0
			}
		}
		return wallHours(past, now)

	default:
		y, m := now.Year(), now.Month()
		past, ok := instant(y, m, day, hour, minute, now.Location())
		if !ok {
			return 0
		}
		if past.After(now) {
			y, m = shiftMonth(y, m, -1)
			if past, ok = instant(y, m, day, hour, minute, now.Location()); !ok {
				return 0
			}
		}
		return wallHours(past, now)
	}
}

// HoursTillCalendar returns the hours from now until the next day/month/year
// at hour:minute that is not before now. A fully specified date in the past
// yields a negative value. Zero is returned when the date cannot be resolved.
func HoursTillCalendar(day, month, year, hour, minute int, now time.Time) float64 {
	if day <= 0 {
		return 0
	}

	switch {
	case year != 0:
		future, ok := instant(year, time.Month(month), day, hour, minute, now.Location())
		if !ok {
			return 0
		}
		return wallHours(now, future)

	case month != 0:
		y := now.Year()
		future, ok := instant(y, time.Month(month), day, hour, minute, now.Location())
		if !ok {
			return 0
		}
		if future.Before(now) {
			if future, ok = instant(y+1, time.Month(month), day, hour, minute, now.Location()); !ok {
				return 0
			}
		}
		return wallHours(now, future)

	default:
		y, m := now.Year(), now.Month()
		future, ok := instant(y, m, day, hour, minute, now.Location())
		if !ok {
			return 0
		}
		if future.Before(now) {
			y, m = shiftMonth(y, m, 1)
			if future, ok = instant(y, m, day, hour, minute, now.Location()); !ok {
				return 0
			}
		}
		return wallHours(now, future)
	}
}

// HoursBetween returns the exact number of hours from `from` to `to`.
func HoursBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours()
}

// wallHours measures from `from` to `to` on the wall clock; a DST change in
// between does not add or remove an hour.
func wallHours(from, to time.Time) float64 {
	return HoursBetween(wallUTC(from), wallUTC(to))
}

func wallUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func minutesOfDay(hour, minute int) int {
	return hour*60 + minute
}

// instant builds the concrete release time. A day that does not exist in the
// month (Sep 31, Feb 30) is walked back until it does.
func instant(year int, month time.Month, day, hour, minute int, loc *time.Location) (time.Time, bool) {
	d, ok := resolveDay(year, month, day)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, month, d, hour, minute, 0, 0, loc), true
}

func resolveDay(year int, month time.Month, day int) (int, bool) {
	if month < time.January || month > time.December {
		return 0, false
	}
	last := daysIn(year, month)
	for i := 0; i < maxDayRetries; i++ {
		d := day - i
		if d < 1 {
			return 0, false
		}
		if d <= last {
			return d, true
		}
	}
	return 0, false
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	m := int(month) - 1 + delta
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, time.Month(m + 1)
}
