package selection

import (
	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
)

// View is the read-only render model of an engine.
// It is a snapshot; later operations on the engine do not modify it.
type View struct {
	Open bool

	// DayNames in display order, i.e. starting at the start of week.
	DayNames []string
	Months   []calendar.Month

	StartDateString string
	EndDateString   string

	Start, End               *model.Date
	CurrentStart, CurrentEnd *model.Date

	Presets []Preset

	CanGoNext     bool
	CanGoPrevious bool
}

// Labels returns the labels of the visible months in display order.
func (v View) Labels() []string {
	labels := make([]string, len(v.Months))
	for i := range v.Months {
		labels[i] = v.Months[i].Label
	}
	return labels
}

// View returns a snapshot of the render model.
func (e *Engine) View() View {
	months := make([]calendar.Month, e.window.Len())
	for i := range months {
		months[i] = *e.window.At(i)
	}
	presets := make([]Preset, len(e.opts.PriorRangePresets))
	copy(presets, e.opts.PriorRangePresets)

	return View{
		Open:            e.open,
		DayNames:        e.builder.DayNames(),
		Months:          months,
		StartDateString: e.startDateString,
		EndDateString:   e.endDateString,
		Start:           copyDate(e.start),
		End:             copyDate(e.end),
		CurrentStart:    copyDate(e.currentStart),
		CurrentEnd:      copyDate(e.currentEnd),
		Presets:         presets,
		CanGoNext:       e.CanGoNext(),
		CanGoPrevious:   e.CanGoPrevious(),
	}
}

// DayAt returns the day at the given coordinate of the visible window.
func (e *Engine) DayAt(c Coord) (calendar.Day, bool) {
	if c.Month < 0 || c.Month >= e.window.Len() ||
		c.Week < 0 || c.Week >= calendar.WeeksInMonth ||
		c.Day < 0 || c.Day >= calendar.DaysInWeek {
		return calendar.Day{}, false
	}
	return *e.cell(c), true
}

// DayOf returns the visible day with the given date.
func (e *Engine) DayOf(d model.Date) (calendar.Day, bool) {
	c, ok := e.Locate(d)
	if !ok {
		return calendar.Day{}, false
	}
	return *e.cell(c), true
}

// MonthCount returns the number of visible months.
func (e *Engine) MonthCount() int {
	return e.window.Len()
}
