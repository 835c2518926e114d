package config

import (
	"github.com/ja-he/rangecal/internal/calendar"
)

// Default returns the library defaults with the default stylesheet for the
// given type (light or dark).
//
// The starting month and year are left unset; they default to the current
// month when resolved.
func Default(colorschemeType ColorschemeType) Config {
	startDayOfWeek := 0
	return Config{
		StartDayOfWeek: &startDayOfWeek,
		MonthName:      append([]string{}, calendar.DefaultMonthNames...),
		DayName:        append([]string{}, calendar.DefaultDayNames...),
		Stylesheet:     defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:      Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			MonthLabel:  Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			DayName:     Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			Padding:     Styling{Fg: "#404040", Bg: "#000000", Style: &FontStyle{}},
			Unavailable: Styling{Fg: "#606060", Bg: "#202020", Style: &FontStyle{}},
			Daily:       Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{}},
			Weekly:      Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{}},
			Monthly:     Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{}},
			Hover:       Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{Underlined: true}},
			Button:      Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
			Status:      Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		}
	} else {
		return Stylesheet{
			Normal:      Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			MonthLabel:  Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			DayName:     Styling{Fg: "#808080", Bg: "#ffffff", Style: &FontStyle{}},
			Padding:     Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			Unavailable: Styling{Fg: "#c0c0c0", Bg: "#f0f0f0", Style: &FontStyle{}},
			Daily:       Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{}},
			Weekly:      Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{}},
			Monthly:     Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{}},
			Hover:       Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{Underlined: true}},
			Button:      Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
			Status:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		}
	}
}
