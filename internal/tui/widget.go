// Package tui renders a range calendar to a terminal and maps terminal
// positions back onto the calendar.
package tui

import (
	"fmt"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/logsink"
	"github.com/ja-he/rangecal/internal/selection"
	"github.com/ja-he/rangecal/internal/styling"
)

// ViewSource provides the render model of a calendar.
type ViewSource interface {
	View() selection.View
}

// HitKind is the kind of widget element at a position.
type HitKind int

const (
	HitNone HitKind = iota
	HitToggle
	HitPrevious
	HitNext
	HitPreset
	HitDay
	HitApply
	HitCancel
)

// Hit describes the widget element at a position.
type Hit struct {
	Kind HitKind

	// Coord is set for HitDay. It may refer to a padding cell.
	Coord selection.Coord
	// Preset is the preset index for HitPreset.
	Preset int
}

// Widget draws a calendar.
type Widget struct {
	source     ViewSource
	renderer   Renderer
	stylesheet *styling.Stylesheet
	log        logsink.LogReader
}

// NewWidget returns a widget drawing the given source's view on the renderer.
// The log, if not nil, backs the status line.
func NewWidget(source ViewSource, renderer Renderer, stylesheet *styling.Stylesheet, log logsink.LogReader) *Widget {
	return &Widget{
		source:     source,
		renderer:   renderer,
		stylesheet: stylesheet,
		log:        log,
	}
}

func (w *Widget) layout(v selection.View) layout {
	x, y, width, height := w.renderer.Dimensions()
	return computeLayout(v, x, y, width, height)
}

// Draw draws the calendar over the renderer's entire area.
func (w *Widget) Draw() {
	v := w.source.View()
	l := w.layout(v)
	s := w.stylesheet

	x, y, width, height := w.renderer.Dimensions()
	w.renderer.DrawBox(x, y, width, height, s.Normal)

	w.drawText(l.toggle, s.Button, toggleLabel(v))

	if v.Open {
		w.drawButton(l.previous, previousLabel, v.CanGoPrevious)
		w.drawButton(l.next, nextLabel, v.CanGoNext)
		for i, p := range v.Presets {
			w.drawButton(l.presets[i], presetLabel(p), true)
		}

		for i := range v.Months {
			w.drawMonth(l.months[i], &v.Months[i], v)
		}

		w.drawButton(l.apply, applyLabel, true)
		w.drawButton(l.cancel, cancelLabel, true)
	}

	if w.log != nil {
		if last := w.log.Last(1); len(last) == 1 {
			w.drawText(l.status, s.Status, logsink.Summary(last[0]))
		}
	}
}

func (w *Widget) drawText(r rect, style styling.DrawStyling, text string) {
	w.renderer.DrawText(r.x, r.y, r.w, r.h, style, text)
}

func (w *Widget) drawButton(r rect, label string, enabled bool) {
	style := w.stylesheet.Button
	if !enabled {
		style = style.DefaultDimmed()
	}
	w.drawText(r, style, label)
}

func (w *Widget) drawMonth(r rect, m *calendar.Month, v selection.View) {
	s := w.stylesheet

	label := m.Label
	offset := (r.w - textWidth(label)) / 2
	if offset < 0 {
		offset = 0
	}
	w.renderer.DrawBox(r.x, r.y, r.w, 1, s.MonthLabel)
	w.drawText(rect{r.x + offset, r.y, r.w - offset, 1}, s.MonthLabel, label)

	for i, name := range v.DayNames {
		w.drawText(rect{r.x + i*cellWidth, r.y + 1, cellWidth, 1}, s.DayName, dayNameCell(name))
	}

	for week := range m.Weeks {
		for day := range m.Weeks[week] {
			d := m.Weeks[week][day]
			cell := dayCell(r, week, day)
			if d.Padding {
				w.renderer.DrawBox(cell.x, cell.y, cell.w, cell.h, s.Padding)
				continue
			}
			style := s.ForDay(d)
			if isEndpoint(d, v) {
				style = s.ForEndpoint(d)
			}
			w.drawText(cell, style, fmt.Sprintf("%2d ", d.Date.Day))
		}
	}
}

func dayNameCell(name string) string {
	runes := []rune(name)
	if len(runes) > cellWidth-1 {
		runes = runes[:cellWidth-1]
	}
	return fmt.Sprintf("%-2s ", string(runes))
}

func isEndpoint(d calendar.Day, v selection.View) bool {
	return (v.Start != nil && *v.Start == d.Date) || (v.End != nil && *v.End == d.Date)
}

// HitTest returns the widget element at the given position.
func (w *Widget) HitTest(x, y int) Hit {
	v := w.source.View()
	l := w.layout(v)

	switch {
	case l.toggle.contains(x, y):
		return Hit{Kind: HitToggle}
	case !v.Open:
		return Hit{Kind: HitNone}
	case l.previous.contains(x, y):
		return Hit{Kind: HitPrevious}
	case l.next.contains(x, y):
		return Hit{Kind: HitNext}
	case l.apply.contains(x, y):
		return Hit{Kind: HitApply}
	case l.cancel.contains(x, y):
		return Hit{Kind: HitCancel}
	}

	for i, r := range l.presets {
		if r.contains(x, y) {
			return Hit{Kind: HitPreset, Preset: i}
		}
	}

	for i, r := range l.months {
		if !r.contains(x, y) || y < r.y+2 {
			continue
		}
		return Hit{
			Kind: HitDay,
			Coord: selection.Coord{
				Month: i,
				Week:  y - (r.y + 2),
				Day:   (x - r.x) / cellWidth,
			},
		}
	}

	return Hit{Kind: HitNone}
}
