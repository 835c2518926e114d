package selection

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
)

const (
	// MaxMonthCount is the largest accepted backward or forward month count.
	MaxMonthCount = 6
	// MinMonthCount is the smallest accepted backward or forward month count.
	MinMonthCount = 1

	// DefaultDateFormat mirrors the common US short date format (e.g. 9/13/2013).
	DefaultDateFormat = "1/2/2006"
)

// Preset is a "prior range" shortcut selecting the last Value days up to today.
type Preset struct {
	Value     int
	IsDefault bool
}

// Options configure an Engine. They are fixed for the lifetime of the engine.
//
// The zero value is usable: it shows only the current month, starts weeks on
// Sunday and has no selection bounds.
type Options struct {
	// StartingMonth is the base month of the initial window. If invalid, the
	// current month is used.
	StartingMonth model.YearMonth

	// BackwardMonths and ForwardMonths are the number of months shown before
	// and after the base month. Values outside [MinMonthCount,MaxMonthCount]
	// disable the respective side.
	BackwardMonths int
	ForwardMonths  int

	// StartOfWeek is the first day of each grid row, Sunday being 0.
	StartOfWeek int

	Bounds calendar.Bounds

	// WeeklySelectRange and MonthlySelectRange are distances in days from the
	// anchor date beyond which selection and hover switch to weekly or monthly
	// mode. Zero disables a mode.
	WeeklySelectRange  int
	MonthlySelectRange int

	PriorRangePresets []Preset

	MonthNames []string
	DayNames   []string

	// MaxForwardMonth and MinBackwardMonth hard-cap the months that can be
	// shown, overriding the month counts.
	MaxForwardMonth  *model.YearMonth
	MinBackwardMonth *model.YearMonth

	// StartDate and EndDate are optional initial endpoints, in any format
	// accepted by model.ParseDateInput.
	StartDate string
	EndDate   string

	// DateFormat is the time.Format layout of the start and end date strings.
	DateFormat string

	Location *time.Location
	Now      func() time.Time

	// Logger is the parent logger for the engine. If nil, the global logger is
	// used.
	Logger *zerolog.Logger
}

func validMonthCount(n int) int {
	if n < MinMonthCount || n > MaxMonthCount {
		return 0
	}
	return n
}

func (o Options) normalized() Options {
	o.BackwardMonths = validMonthCount(o.BackwardMonths)
	o.ForwardMonths = validMonthCount(o.ForwardMonths)
	if o.StartOfWeek < 0 || o.StartOfWeek > 6 {
		o.StartOfWeek = 0
	}
	if o.WeeklySelectRange < 0 {
		o.WeeklySelectRange = 0
	}
	if o.MonthlySelectRange < 0 {
		o.MonthlySelectRange = 0
	}
	if o.DateFormat == "" {
		o.DateFormat = DefaultDateFormat
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if !o.StartingMonth.Valid() {
		o.StartingMonth = model.FromTime(o.Now().In(o.Location)).YearMonth()
	}
	return o
}

// capacity is the maximum number of months visible at once.
func (o Options) capacity() int {
	return 1 + o.BackwardMonths + o.ForwardMonths
}
