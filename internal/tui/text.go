package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/selection"
)

// TextLegend explains the day markers of WriteText.
const TextLegend = "< start, > end, = start and end, * daily, + weekly, # monthly, ~ hover, - unavailable"

// WriteText writes a plain text rendition of the view, one month below the
// other. Each day is followed by a marker of its state (see TextLegend).
func WriteText(out io.Writer, v selection.View) error {
	var b strings.Builder

	fmt.Fprintln(&b, toggleLabel(v))
	for i := range v.Months {
		m := &v.Months[i]
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, m.Label)

		var names strings.Builder
		for _, name := range v.DayNames {
			names.WriteString(dayNameCell(name))
		}
		fmt.Fprintln(&b, strings.TrimRight(names.String(), " "))

		for week := range m.Weeks {
			var row strings.Builder
			for _, d := range m.Weeks[week] {
				if d.Padding {
					row.WriteString("   ")
					continue
				}
				fmt.Fprintf(&row, "%2d%c", d.Date.Day, marker(d, v))
			}
			fmt.Fprintln(&b, strings.TrimRight(row.String(), " "))
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func marker(d calendar.Day, v selection.View) rune {
	isStart := v.Start != nil && *v.Start == d.Date
	isEnd := v.End != nil && *v.End == d.Date
	switch {
	case isStart && isEnd:
		return '='
	case isStart:
		return '<'
	case isEnd:
		return '>'
	case d.IsUnavailable:
		return '-'
	}
	switch d.SelectMode {
	case calendar.Daily:
		return '*'
	case calendar.Weekly:
		return '+'
	case calendar.Monthly:
		return '#'
	}
	if d.IsHover {
		return '~'
	}
	return ' '
}
