package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/selection"
)

const (
	cellWidth   = 3
	monthWidth  = calendar.DaysInWeek * cellWidth
	monthHeight = 2 + calendar.WeeksInMonth
	monthGapX   = 2
	monthGapY   = 1
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout holds the positions of all widget elements for one view and screen
// size. Elements of a closed calendar are left empty.
type layout struct {
	toggle   rect
	previous rect
	next     rect
	presets  []rect
	months   []rect
	apply    rect
	cancel   rect
	status   rect
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func toggleLabel(v selection.View) string {
	orUnset := func(s string) string {
		if s == "" {
			return "?"
		}
		return s
	}
	return fmt.Sprintf("[ %s - %s ]", orUnset(v.StartDateString), orUnset(v.EndDateString))
}

func presetLabel(p selection.Preset) string {
	if p.IsDefault {
		return fmt.Sprintf("[%dd*]", p.Value)
	}
	return fmt.Sprintf("[%dd]", p.Value)
}

const (
	previousLabel = "[<]"
	nextLabel     = "[>]"
	applyLabel    = "[Apply]"
	cancelLabel   = "[Cancel]"
)

func computeLayout(v selection.View, x, y, w, h int) layout {
	l := layout{
		toggle: rect{x, y, textWidth(toggleLabel(v)), 1},
		status: rect{x, y + h - 1, w, 1},
	}
	if !v.Open {
		return l
	}

	l.previous = rect{x, y + 1, textWidth(previousLabel), 1}
	l.next = rect{l.previous.x + l.previous.w + 1, y + 1, textWidth(nextLabel), 1}
	presetX := l.next.x + l.next.w + 2
	for _, p := range v.Presets {
		r := rect{presetX, y + 1, textWidth(presetLabel(p)), 1}
		l.presets = append(l.presets, r)
		presetX += r.w + 1
	}

	perRow := (w + monthGapX) / (monthWidth + monthGapX)
	if perRow < 1 {
		perRow = 1
	}
	monthsY := y + 2
	for i := range v.Months {
		l.months = append(l.months, rect{
			x: x + (i%perRow)*(monthWidth+monthGapX),
			y: monthsY + (i/perRow)*(monthHeight+monthGapY),
			w: monthWidth,
			h: monthHeight,
		})
	}
	rows := (len(v.Months) + perRow - 1) / perRow

	buttonsY := monthsY + rows*(monthHeight+monthGapY)
	l.apply = rect{x, buttonsY, textWidth(applyLabel), 1}
	l.cancel = rect{l.apply.x + l.apply.w + 1, buttonsY, textWidth(cancelLabel), 1}

	return l
}

// dayCell returns the rectangle of the given day within a month block.
func dayCell(month rect, week, day int) rect {
	return rect{month.x + day*cellWidth, month.y + 2 + week, cellWidth, 1}
}
