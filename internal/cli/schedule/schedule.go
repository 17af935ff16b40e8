package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/watchlit/internal/cli"
	apperrors "github.com/julianstephens/watchlit/internal/errors"
	"github.com/julianstephens/watchlit/internal/release"
)

const grammarHint = "use '[mon..sun] HH:MM' for weekly releases or '.DAY [/MONTH] [<YEAR] [HH:MM]' for dates"

// ScheduleParseCmd shows how a schedule string is understood, relative to
// the current time.
type ScheduleParseCmd struct {
	Text []string `arg:"" help:"Schedule text, e.g. 'fri 21:00'."`
}

func (c *ScheduleParseCmd) Run(ctx *cli.Context) error {
	text := strings.Join(c.Text, " ")
	rule := release.NewRule(text)
	if !rule.IsDefined() {
		return apperrors.WithHint(fmt.Errorf("could not parse schedule %q", text), grammarHint)
	}

	fmt.Print(describe(rule, ctx.Clock()))
	return nil
}

func describe(rule release.Rule, now time.Time) string {
	spec := rule.Spec()

	var b strings.Builder
	fmt.Fprintf(&b, "Kind:       %s\n", spec.Kind)
	fmt.Fprintf(&b, "Canonical:  %s\n", spec.String())
	switch spec.Kind {
	case release.KindWeekly:
		day := release.WeekdayName(spec.Weekday)
		if day == "" {
			day = "every day"
		}
		fmt.Fprintf(&b, "Weekday:    %s\n", day)
	case release.KindCalendar:
		fmt.Fprintf(&b, "Date:       day %s, month %s, year %s\n",
			orEvery(spec.Day), orEvery(spec.Month), orEvery(spec.Year))
	}
	fmt.Fprintf(&b, "Since last: %.2fh\n", rule.HoursSinceRelease(now))

	till := rule.HoursToRelease(now)
	fmt.Fprintf(&b, "Until next: %.2fh", till)
	if countdown := release.Countdown(till, true); countdown != "" {
		fmt.Fprintf(&b, " (%s)", countdown)
	}
	b.WriteString("\n")
	return b.String()
}

func orEvery(n int) string {
	if n == 0 {
		return "every"
	}
	return fmt.Sprint(n)
}
