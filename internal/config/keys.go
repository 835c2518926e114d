package config

// setters decode the value of a single config key into a Config. A failed
// decode leaves the Config untouched.
var setters = map[string]func(c *Config, decode func(any) error) error{
	"starting-month":       value(func(c *Config) **int { return &c.StartingMonth }),
	"starting-year":        value(func(c *Config) **int { return &c.StartingYear }),
	"backward-months":      value(func(c *Config) **int { return &c.BackwardMonths }),
	"forward-months":       value(func(c *Config) **int { return &c.ForwardMonths }),
	"start-day-of-week":    value(func(c *Config) **int { return &c.StartDayOfWeek }),
	"min-select-date":      value(func(c *Config) **string { return &c.MinSelectDate }),
	"max-select-date":      value(func(c *Config) **string { return &c.MaxSelectDate }),
	"weekly-select-range":  value(func(c *Config) **int { return &c.WeeklySelectRange }),
	"monthly-select-range": value(func(c *Config) **int { return &c.MonthlySelectRange }),
	"prior-range-presets":  list(func(c *Config) *[]Preset { return &c.PriorRangePresets }),
	"month-name":           list(func(c *Config) *[]string { return &c.MonthName }),
	"day-name":             list(func(c *Config) *[]string { return &c.DayName }),
	"max-forward-month":    value(func(c *Config) **string { return &c.MaxForwardMonth }),
	"min-backward-month":   value(func(c *Config) **string { return &c.MinBackwardMonth }),
	"start-date":           value(func(c *Config) **string { return &c.StartDate }),
	"end-date":             value(func(c *Config) **string { return &c.EndDate }),
	"date-format":          value(func(c *Config) **string { return &c.DateFormat }),
	"theme":                value(func(c *Config) **string { return &c.Theme }),
	"stylesheet": func(c *Config, decode func(any) error) error {
		var s Stylesheet
		if err := decode(&s); err != nil {
			return err
		}
		c.Stylesheet = s
		return nil
	},
}

func value[T any](field func(c *Config) **T) func(*Config, func(any) error) error {
	return func(c *Config, decode func(any) error) error {
		var v T
		if err := decode(&v); err != nil {
			return err
		}
		*field(c) = &v
		return nil
	}
}

func list[T any](field func(c *Config) *[]T) func(*Config, func(any) error) error {
	return func(c *Config, decode func(any) error) error {
		var v []T
		if err := decode(&v); err != nil {
			return err
		}
		*field(c) = v
		return nil
	}
}
