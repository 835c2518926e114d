package styling

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/config"
)

// hoverShare is the share of the hover styling when blended over a selected
// day.
const hoverShare = 0.4

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal     DrawStyling
	MonthLabel DrawStyling
	DayName    DrawStyling

	Padding     DrawStyling
	Unavailable DrawStyling

	Daily   DrawStyling
	Weekly  DrawStyling
	Monthly DrawStyling
	Hover   DrawStyling

	Button DrawStyling
	Status DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet. Stylings with invalid colors fall back to the given default
// stylesheet's.
func NewStylesheetFromConfig(stylesheet config.Stylesheet, fallback config.Stylesheet) *Stylesheet {
	result := Stylesheet{}

	result.Normal = StyleFromConfig(stylesheet.Normal, fallback.Normal)
	result.MonthLabel = StyleFromConfig(stylesheet.MonthLabel, fallback.MonthLabel)
	result.DayName = StyleFromConfig(stylesheet.DayName, fallback.DayName)
	result.Padding = StyleFromConfig(stylesheet.Padding, fallback.Padding)
	result.Unavailable = StyleFromConfig(stylesheet.Unavailable, fallback.Unavailable)
	result.Daily = StyleFromConfig(stylesheet.Daily, fallback.Daily)
	result.Weekly = StyleFromConfig(stylesheet.Weekly, fallback.Weekly)
	result.Monthly = StyleFromConfig(stylesheet.Monthly, fallback.Monthly)
	result.Hover = StyleFromConfig(stylesheet.Hover, fallback.Hover)
	result.Button = StyleFromConfig(stylesheet.Button, fallback.Button)
	result.Status = StyleFromConfig(stylesheet.Status, fallback.Status)

	return &result
}

// StyleFromConfig converts a config styling, using the fallback if its colors
// are invalid.
func StyleFromConfig(s config.Styling, fallback config.Styling) DrawStyling {
	result, err := styleFromConfig(s)
	if err != nil {
		log.Warn().Err(err).Msg("invalid styling, using default")
		result, err = styleFromConfig(fallback)
		if err != nil {
			log.Error().Err(err).Msg("invalid default styling")
			return StyleFromColors(colorfulBlack, colorfulWhite)
		}
	}
	return result
}

func styleFromConfig(s config.Styling) (*FallbackStyling, error) {
	result, err := StyleFromHex(s.Fg, s.Bg)
	if err != nil {
		return nil, err
	}
	if s.Style != nil {
		result.bold = s.Style.Bold
		result.italic = s.Style.Italic
		result.underlined = s.Style.Underlined
	}
	return result, nil
}

// ForMode returns the styling of a day selected in the given mode.
func (s *Stylesheet) ForMode(mode calendar.SelectMode) DrawStyling {
	switch mode {
	case calendar.Daily:
		return s.Daily
	case calendar.Weekly:
		return s.Weekly
	case calendar.Monthly:
		return s.Monthly
	default:
		return s.Normal
	}
}

// ForDay returns the styling a day cell is rendered with.
//
// A hovered day that is also selected shows the hover styling blended over
// its mode's styling, so both states stay visible.
func (s *Stylesheet) ForDay(day calendar.Day) DrawStyling {
	switch {
	case day.Padding:
		return s.Padding
	case day.IsUnavailable:
		return s.Unavailable
	case day.IsHover && day.SelectMode != calendar.None:
		return s.ForMode(day.SelectMode).BlendedWith(s.Hover, hoverShare).Underlined()
	case day.IsHover:
		return s.Hover
	default:
		return s.ForMode(day.SelectMode)
	}
}

// ForEndpoint returns the styling of a selection endpoint (start or end),
// which is emphasized over the rest of the range.
func (s *Stylesheet) ForEndpoint(day calendar.Day) DrawStyling {
	return s.ForDay(day).DarkenedBG(20).Bolded()
}
