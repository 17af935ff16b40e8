package release

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errUnparseable = errors.New("unparseable schedule")

// Parse turns a schedule string such as "mon 20:20", ".24 /9 10:10" or
// "<2024 /9 .24" into a Spec. Parse never fails: anything it cannot make
// sense of yields an undefined Spec.
func Parse(text string) Spec {
	spec, err := parse(text)
	if err != nil {
		return Spec{Kind: KindUndefined}
	}
	return spec
}

func parse(text string) (Spec, error) {
	weekday := -1
	hour, minute := 0, 0
	day, month, year := 0, 0, 0
	timeSeen := false

	for _, token := range strings.Split(strings.ToLower(text), " ") {
		if token == "" {
			return Spec{}, errUnparseable
		}

		c := token[0]
		switch {
		case c >= '0' && c <= '9':
			h, m, err := parseClock(token)
			if err != nil {
				return Spec{}, err
			}
			hour, minute = h, m
			timeSeen = true
		case c >= 'a' && c <= 'z':
			wd, err := parseWeekday(token)
			if err != nil {
				return Spec{}, err
			}
			weekday = wd
		case c == '.':
			v, err := parseNumber(token[1:])
			if err != nil {
				return Spec{}, err
			}
			day = v
		case c == '/':
			v, err := parseNumber(token[1:])
			if err != nil {
				return Spec{}, err
			}
			month = v
		case c == '<':
			v, err := parseNumber(token[1:])
			if err != nil {
				return Spec{}, err
			}
			year = v
		default:
			return Spec{}, fmt.Errorf("%w: unknown token %q", errUnparseable, token)
		}
	}

	if day > 31 || month > 12 {
		return Spec{}, fmt.Errorf("%w: date out of range", errUnparseable)
	}

	dmyDefined := day+month+year != 0

	// Resolution must cascade: a year needs a month and a month needs a day.
	if year != 0 && (day == 0 || month == 0) {
		return Spec{}, errUnparseable
	}
	if month != 0 && day == 0 {
		return Spec{}, errUnparseable
	}

	if weekday == -1 {
		weekday = NoWeekday
		if !timeSeen && !dmyDefined {
			return Spec{}, errUnparseable
		}
	}

	// A weekday always wins over a calendar date.
	if weekday != NoWeekday || !dmyDefined {
		return Spec{Kind: KindWeekly, Weekday: weekday, Hour: hour, Minute: minute}, nil
	}
	return Spec{Kind: KindCalendar, Day: day, Month: month, Year: year, Hour: hour, Minute: minute}, nil
}

func parseClock(token string) (int, int, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: malformed time %q", errUnparseable, token)
	}
	hour, err := parseNumber(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err := parseNumber(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}

func parseWeekday(token string) (int, error) {
	if len(token) < 3 {
		return 0, fmt.Errorf("%w: unknown weekday %q", errUnparseable, token)
	}
	prefix := token[:3]
	for i, name := range weekdayNames {
		if name == prefix {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", errUnparseable, token)
}

// parseNumber accepts a non-empty run of ASCII digits.
func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing number", errUnparseable)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", errUnparseable, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errUnparseable, err)
	}
	return n, nil
}

// String serializes the spec back into the schedule grammar. The output is
// canonical: Parse(s.String()) == s for every spec Parse can produce.
func (s Spec) String() string {
	clock := fmt.Sprintf("%d:%02d", s.Hour, s.Minute)
	switch s.Kind {
	case KindWeekly:
		if name := WeekdayName(s.Weekday); name != "" {
			return name + " " + clock
		}
		return clock
	case KindCalendar:
		parts := []string{fmt.Sprintf(".%d", s.Day)}
		if s.Month != 0 {
			parts = append(parts, fmt.Sprintf("/%d", s.Month))
		}
		if s.Year != 0 {
			parts = append(parts, fmt.Sprintf("<%d", s.Year))
		}
		parts = append(parts, clock)
		return strings.Join(parts, " ")
	default:
		return ""
	}
}
