package release

import (
	"fmt"
	"math"
)

// Countdown renders a number of hours as a compact label such as "3d",
// "5h" or "12m". With precise set the two largest units are shown ("3d4h",
// "5h12m"). Non-positive durations render as an empty string.
func Countdown(hours float64, precise bool) string {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return ""
	}

	total := int(math.Floor(hours * 60))
	days := total / (24 * 60)
	hrs := (total / 60) % 24
	mins := total % 60

	type unit struct {
		value  int
		suffix string
	}
	units := []unit{{days, "d"}, {hrs, "h"}, {mins, "m"}}

	start := 0
	for start < len(units)-1 && units[start].value == 0 {
		start++
	}

	label := fmt.Sprintf("%d%s", units[start].value, units[start].suffix)
	if precise && start+1 < len(units) && units[start+1].value != 0 {
		label += fmt.Sprintf("%d%s", units[start+1].value, units[start+1].suffix)
	}
	return label
}
