package selection

import (
	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
)

// Classify returns the mode in which a day should be selected or hovered,
// given its distance from the anchor date.
//
// A day is beyond a threshold if it lies more than that many days before or
// after the anchor. Beyond the weekly threshold it is weekly, unless a larger
// monthly threshold is also exceeded, in which case it is monthly. A zero
// threshold is never exceeded.
func Classify(weeklyRange, monthlyRange int, anchor, day model.Date) calendar.SelectMode {
	distance := anchor.DistanceTo(day)
	beyond := func(threshold int) bool {
		return threshold > 0 && distance > threshold
	}

	switch {
	case beyond(weeklyRange) && !(monthlyRange > weeklyRange && beyond(monthlyRange)):
		return calendar.Weekly
	case beyond(monthlyRange):
		return calendar.Monthly
	default:
		return calendar.Daily
	}
}

// classify classifies the day relative to the anchor with the engine's
// thresholds. Unavailable days are always daily.
func (e *Engine) classify(anchor, day model.Date) calendar.SelectMode {
	if e.unavailable(day) {
		return calendar.Daily
	}
	return Classify(e.opts.WeeklySelectRange, e.opts.MonthlySelectRange, anchor, day)
}
