package calendar

import (
	"fmt"
	"time"

	"github.com/ja-he/rangecal/internal/model"
)

// DefaultMonthNames are the English month abbreviations used when no names are
// configured.
var DefaultMonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// DefaultDayNames are the English day abbreviations used when no names are
// configured, beginning with Sunday.
var DefaultDayNames = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Bounds restricts which dates can be selected.
// A nil bound is not enforced.
type Bounds struct {
	Min *model.Date
	Max *model.Date
}

// IsOutOfBounds reports whether the date is unavailable for selection.
//
// Both bounds are exclusive: the minimum and maximum dates themselves are
// unavailable.
func (b Bounds) IsOutOfBounds(d model.Date) bool {
	return (b.Min != nil && !d.IsAfter(*b.Min)) ||
		(b.Max != nil && !d.IsBefore(*b.Max))
}

// Builder builds month grids for a fixed configuration.
type Builder struct {
	startOfWeek time.Weekday
	bounds      Bounds
	monthNames  []string
	dayNames    []string
}

// NewBuilder returns a builder for the given start of week (Sunday is 0),
// selection bounds and names.
//
// Nil or malformed (wrong length) name slices are replaced by the English
// defaults, as is an out of range start of week by Sunday.
func NewBuilder(startOfWeek int, bounds Bounds, monthNames, dayNames []string) *Builder {
	if startOfWeek < 0 || startOfWeek >= DaysInWeek {
		startOfWeek = 0
	}
	if len(monthNames) != 12 {
		monthNames = DefaultMonthNames
	}
	if len(dayNames) != DaysInWeek {
		dayNames = DefaultDayNames
	}
	return &Builder{
		startOfWeek: time.Weekday(startOfWeek),
		bounds:      bounds,
		monthNames:  monthNames,
		dayNames:    dayNames,
	}
}

func (b *Builder) StartOfWeek() time.Weekday {
	return b.startOfWeek
}

func (b *Builder) Bounds() Bounds {
	return b.bounds
}

// FirstDisplayedDate returns the date of the top left cell of the grid for the
// given month: the first of the month walked back to the start of week.
func (b *Builder) FirstDisplayedDate(ym model.YearMonth) model.Date {
	first := ym.First()
	lead := (int(first.ToWeekday()) - int(b.startOfWeek) + DaysInWeek) % DaysInWeek
	return first.Backward(lead)
}

// BuildMonth builds the 6x7 grid for the given month.
func (b *Builder) BuildMonth(ym model.YearMonth) Month {
	m := Month{
		YearMonth: ym,
		Label:     b.Label(ym),
		First:     b.FirstDisplayedDate(ym),
	}
	current := m.First
	for w := 0; w < WeeksInMonth; w++ {
		for d := 0; d < DaysInWeek; d++ {
			m.Weeks[w][d] = b.Decorate(current, ym)
			current = current.Next()
		}
	}
	return m
}

// Decorate wraps the date into a grid cell for the given target month.
// Dates outside the target month become padding cells.
func (b *Builder) Decorate(d model.Date, target model.YearMonth) Day {
	if !target.Contains(d) {
		return Day{Padding: true}
	}
	return Day{
		Date:          d,
		SelectMode:    None,
		IsHover:       false,
		IsUnavailable: b.bounds.IsOutOfBounds(d),
	}
}

// Label returns the display label of the month, e.g. "Sep 2013".
func (b *Builder) Label(ym model.YearMonth) string {
	return fmt.Sprintf("%s %d", b.monthNames[ym.Month-1], ym.Year)
}

// DayNames returns the day names in display order, i.e. rotated such that the
// configured start of week comes first.
func (b *Builder) DayNames() []string {
	result := make([]string, 0, DaysInWeek)
	result = append(result, b.dayNames[b.startOfWeek:]...)
	result = append(result, b.dayNames[:b.startOfWeek]...)
	return result
}
