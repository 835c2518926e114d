// Package calendar builds the month grids shown by a range calendar.
//
// A month grid always consists of six weeks of seven days each. Days that do
// not belong to the grid's month are padding cells: they keep the grid
// aligned but carry no date and can never be selected.
package calendar

import (
	"github.com/ja-he/rangecal/internal/model"
)

// SelectMode is the granularity at which a selection paints the grid.
type SelectMode int

const (
	None SelectMode = iota
	Daily
	Weekly
	Monthly
)

func (m SelectMode) String() string {
	switch m {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return ""
	}
}

// Day is a single cell of a month grid.
type Day struct {
	Date          model.Date
	Padding       bool
	SelectMode    SelectMode
	IsHover       bool
	IsUnavailable bool
}

// Selectable reports whether a click on the day may change a selection.
func (d Day) Selectable() bool {
	return !d.Padding && !d.IsUnavailable
}

// Week is a row of a month grid, starting at the configured start of week.
type Week [DaysInWeek]Day

// Month is the grid for one month.
type Month struct {
	YearMonth model.YearMonth
	Label     string

	// First is the date of the top left cell, which is usually in the previous
	// month (and thus a padding cell).
	First model.Date
	Weeks [WeeksInMonth]Week
}

const (
	DaysInWeek   = 7
	WeeksInMonth = 6
	DaysInMonth  = DaysInWeek * WeeksInMonth
)

// Locate returns the grid position of the given date, provided the date is a
// non-padding cell of this month.
func (m *Month) Locate(d model.Date) (week, day int, ok bool) {
	if !m.YearMonth.Contains(d) {
		return 0, 0, false
	}
	idx := m.First.DaysUntil(d)
	if idx < 0 || idx >= DaysInMonth {
		return 0, 0, false
	}
	return idx / DaysInWeek, idx % DaysInWeek, true
}

// Cell returns a pointer to the day at the given position.
func (m *Month) Cell(week, day int) *Day {
	return &m.Weeks[week][day]
}

// ForEachDay calls f for every cell of the grid, padding cells included.
func (m *Month) ForEachDay(f func(week, day int, d *Day)) {
	for w := range m.Weeks {
		for i := range m.Weeks[w] {
			f(w, i, &m.Weeks[w][i])
		}
	}
}
