package config

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
	"github.com/ja-he/rangecal/internal/selection"
)

// Resolve turns a (layered) config into engine options.
//
// Values that do not have the expected shape fall back to "unset" and are
// logged; resolution itself never fails.
func Resolve(c Config, loc *time.Location, now func() time.Time) selection.Options {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	today := model.FromTime(now().In(loc))

	opts := selection.Options{
		StartingMonth:     resolveStartingMonth(c, today),
		PriorRangePresets: resolvePresets(c.PriorRangePresets),
		MonthNames:        resolveNames("month-name", c.MonthName, 12),
		DayNames:          resolveNames("day-name", c.DayName, calendar.DaysInWeek),
		Location:          loc,
		Now:               now,
	}

	opts.BackwardMonths = resolveMonthCount("backward-months", c.BackwardMonths)
	opts.ForwardMonths = resolveMonthCount("forward-months", c.ForwardMonths)

	if c.StartDayOfWeek != nil {
		if *c.StartDayOfWeek < 0 || *c.StartDayOfWeek >= calendar.DaysInWeek {
			log.Warn().Int("value", *c.StartDayOfWeek).Msg("start-day-of-week out of range, using sunday")
		} else {
			opts.StartOfWeek = *c.StartDayOfWeek
		}
	}

	opts.Bounds = calendar.Bounds{
		Min: resolveDate("min-select-date", c.MinSelectDate, loc),
		Max: resolveDate("max-select-date", c.MaxSelectDate, loc),
	}

	opts.WeeklySelectRange = resolveThreshold("weekly-select-range", c.WeeklySelectRange)
	opts.MonthlySelectRange = resolveThreshold("monthly-select-range", c.MonthlySelectRange)

	opts.MaxForwardMonth = resolveYearMonth("max-forward-month", c.MaxForwardMonth)
	opts.MinBackwardMonth = resolveYearMonth("min-backward-month", c.MinBackwardMonth)

	if c.StartDate != nil {
		opts.StartDate = *c.StartDate
	}
	if c.EndDate != nil {
		opts.EndDate = *c.EndDate
	}
	if c.DateFormat != nil {
		opts.DateFormat = *c.DateFormat
	}

	return opts
}

func resolveStartingMonth(c Config, today model.Date) model.YearMonth {
	result := today.YearMonth()
	if c.StartingYear != nil {
		result.Year = *c.StartingYear
	}
	if c.StartingMonth != nil {
		result.Month = *c.StartingMonth
	}
	if !result.Valid() {
		log.Warn().Str("month", result.ToString()).Msg("invalid starting month, using current month")
		return today.YearMonth()
	}
	return result
}

func resolveMonthCount(key string, v *int) int {
	if v == nil {
		return 0
	}
	if *v < selection.MinMonthCount || *v > selection.MaxMonthCount {
		log.Debug().Str("key", key).Int("value", *v).Msg("month count out of range, showing no extra months")
		return 0
	}
	return *v
}

func resolveThreshold(key string, v *int) int {
	if v == nil {
		return 0
	}
	if *v < 0 {
		log.Debug().Str("key", key).Int("value", *v).Msg("negative select range, disabling it")
		return 0
	}
	return *v
}

func resolveDate(key string, v *string, loc *time.Location) *model.Date {
	if v == nil {
		return nil
	}
	d, err := model.ParseDateInput(*v, loc)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("ignoring invalid date")
		return nil
	}
	return &d
}

func resolveYearMonth(key string, v *string) *model.YearMonth {
	if v == nil {
		return nil
	}
	ym, err := model.ParseYearMonth(*v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("ignoring invalid month")
		return nil
	}
	return &ym
}

func resolveNames(key string, names []string, expected int) []string {
	if names == nil {
		return nil
	}
	if len(names) != expected {
		log.Warn().Str("key", key).Int("expected", expected).Int("got", len(names)).Msg("wrong number of names, using defaults")
		return nil
	}
	return names
}

func resolvePresets(presets []Preset) []selection.Preset {
	var result []selection.Preset
	for _, p := range presets {
		if p.Value < 0 {
			log.Debug().Int("value", p.Value).Msg("ignoring negative prior range preset")
			continue
		}
		result = append(result, selection.Preset{Value: p.Value, IsDefault: p.IsDefault})
	}
	return result
}
