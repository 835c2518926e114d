package selection

import (
	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
)

// Coord is the position of a day in the visible window.
type Coord struct {
	Month int
	Week  int
	Day   int
}

// Locate returns the coordinate of the given date, if it is visible as a
// non-padding cell.
func (e *Engine) Locate(d model.Date) (Coord, bool) {
	m, ok := e.window.Index(d.YearMonth())
	if !ok {
		return Coord{}, false
	}
	week, day, ok := e.window.At(m).Locate(d)
	if !ok {
		return Coord{}, false
	}
	return Coord{Month: m, Week: week, Day: day}, true
}

func (e *Engine) cell(c Coord) *calendar.Day {
	return e.window.At(c.Month).Cell(c.Week, c.Day)
}

func (e *Engine) forEachVisibleDay(f func(d *calendar.Day)) {
	for i := 0; i < e.window.Len(); i++ {
		e.window.At(i).ForEachDay(func(_, _ int, d *calendar.Day) {
			f(d)
		})
	}
}

// paint applies f to the day with the given date and, depending on the mode,
// to the other days of its week or month. Week and month painting skips
// padding and unavailable cells.
func (e *Engine) paint(d model.Date, mode calendar.SelectMode, f func(d *calendar.Day)) {
	c, ok := e.Locate(d)
	if !ok {
		return
	}
	switch mode {
	case calendar.Weekly:
		week := &e.window.At(c.Month).Weeks[c.Week]
		for i := range week {
			if week[i].Selectable() {
				f(&week[i])
			}
		}
	case calendar.Monthly:
		e.window.At(c.Month).ForEachDay(func(_, _ int, day *calendar.Day) {
			if day.Selectable() {
				f(day)
			}
		})
	default:
		f(e.cell(c))
	}
}

func withMode(mode calendar.SelectMode) func(d *calendar.Day) {
	return func(d *calendar.Day) { d.SelectMode = mode }
}

func withHover(hover bool) func(d *calendar.Day) {
	return func(d *calendar.Day) { d.IsHover = hover }
}

// discolor removes all selection coloring (and the hover state of colored
// days).
func (e *Engine) discolor() {
	e.forEachVisibleDay(func(d *calendar.Day) {
		if d.SelectMode != calendar.None {
			d.SelectMode = calendar.None
			d.IsHover = false
		}
	})
}

// rangeMode is the mode of the current start-end selection.
func (e *Engine) rangeMode() calendar.SelectMode {
	return e.classify(*e.start, *e.end)
}

// colorRange colors all visible days between start and end (inclusive) in the
// range's mode. Weekly and monthly ranges additionally color the entire weeks
// or months of both endpoints.
func (e *Engine) colorRange() {
	mode := e.rangeMode()
	e.forEachVisibleDay(func(d *calendar.Day) {
		if d.Padding || d.Date.IsBefore(*e.start) || d.Date.IsAfter(*e.end) {
			return
		}
		d.SelectMode = mode
	})
	if mode == calendar.Weekly || mode == calendar.Monthly {
		e.paint(*e.start, mode, withMode(mode))
		e.paint(*e.end, mode, withMode(mode))
	}
}

// repaint recomputes all selection coloring from the selection state.
func (e *Engine) repaint() {
	e.discolor()
	switch {
	case e.start != nil && e.end != nil:
		e.colorRange()
	case e.start != nil:
		e.paint(*e.start, calendar.Daily, withMode(calendar.Daily))
	case e.end != nil:
		e.paint(*e.end, calendar.Daily, withMode(calendar.Daily))
	}
}
