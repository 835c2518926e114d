// Package config handles the configuration of a range calendar, which is
// layered from library defaults, a YAML config object (typically read from
// '${RANGECAL_HOME}/config.yaml') and declarative 'key=value' attributes.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file or given as
// attributes.
//
// All values are optional; a nil (or empty) value means "unset" and is filled
// in from the next lower layer.
type Config struct {
	StartingMonth      *int     `yaml:"starting-month"`
	StartingYear       *int     `yaml:"starting-year"`
	BackwardMonths     *int     `yaml:"backward-months"`
	ForwardMonths      *int     `yaml:"forward-months"`
	StartDayOfWeek     *int     `yaml:"start-day-of-week"`
	MinSelectDate      *string  `yaml:"min-select-date"`
	MaxSelectDate      *string  `yaml:"max-select-date"`
	WeeklySelectRange  *int     `yaml:"weekly-select-range"`
	MonthlySelectRange *int     `yaml:"monthly-select-range"`
	PriorRangePresets  []Preset `yaml:"prior-range-presets"`
	MonthName          []string `yaml:"month-name"`
	DayName            []string `yaml:"day-name"`
	MaxForwardMonth    *string  `yaml:"max-forward-month"`
	MinBackwardMonth   *string  `yaml:"min-backward-month"`
	StartDate          *string  `yaml:"start-date"`
	EndDate            *string  `yaml:"end-date"`
	DateFormat         *string  `yaml:"date-format"`
	Theme              *string  `yaml:"theme"`

	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// A Preset is a prior range preset as defined in a config file, e.g.
//
//	prior-range-presets:
//	  - value: 7
//	  - value: 30
//	    is-default: true
type Preset struct {
	Value     int  `yaml:"value"`
	IsDefault bool `yaml:"is-default,omitempty"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal      Styling `yaml:"normal"`
	MonthLabel  Styling `yaml:"month-label"`
	DayName     Styling `yaml:"day-name"`
	Padding     Styling `yaml:"padding"`
	Unavailable Styling `yaml:"unavailable"`
	Daily       Styling `yaml:"daily"`
	Weekly      Styling `yaml:"weekly"`
	Monthly     Styling `yaml:"monthly"`
	Hover       Styling `yaml:"hover"`
	Button      Styling `yaml:"button"`
	Status      Styling `yaml:"status"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseObject parses a YAML config object.
//
// Keys are decoded one by one; a key with a malformed value is logged and left
// unset rather than failing the entire object. An error is only returned for
// data that is not a YAML mapping at all.
func ParseObject(yamlData []byte) (Config, error) {
	result := Config{}

	var root yaml.Node
	err := yaml.Unmarshal(yamlData, &root)
	if err != nil {
		return result, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}
	if len(root.Content) == 0 {
		return result, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return result, fmt.Errorf("config object must be a mapping (line %d)", mapping.Line)
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i].Value, mapping.Content[i+1]
		result.set(key, value.Decode)
	}
	return result, nil
}

// ParseAttributes parses declarative attributes, where each value is a YAML
// scalar or flow collection (e.g. 'backward-months=2',
// 'day-name=[So, Mo, Di, Mi, Do, Fr, Sa]').
//
// Malformed values and unknown keys are logged and ignored.
func ParseAttributes(attributes map[string]string) Config {
	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := Config{}
	for _, key := range keys {
		value := strings.TrimSpace(attributes[key])
		if value == "" {
			log.Debug().Str("key", key).Msg("ignoring empty attribute")
			continue
		}
		result.set(key, func(v any) error { return yaml.Unmarshal([]byte(value), v) })
	}
	return result
}

// SplitAttribute splits a 'key=value' attribute as given on a command line.
func SplitAttribute(attribute string) (key, value string, err error) {
	key, value, found := strings.Cut(attribute, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", fmt.Errorf("attribute '%s' is not of the form 'key=value'", attribute)
	}
	return key, value, nil
}

func (c *Config) set(key string, decode func(any) error) {
	setter, ok := setters[key]
	if !ok {
		log.Warn().Str("key", key).Msg("ignoring unknown config key")
		return
	}
	err := setter(c, decode)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("ignoring malformed config value")
	}
}

// Load layers the config object and the attributes over the defaults for the
// given theme, where attributes take precedence over the config object.
//
// A theme set in the config object or in the attributes overrides the given
// one for the default stylesheet.
func Load(theme ColorschemeType, object Config, attributes Config) Config {
	layered := object.augmentWith(attributes)
	if layered.Theme != nil {
		if t, ok := ParseTheme(*layered.Theme); ok {
			theme = t
		} else {
			log.Warn().Str("theme", *layered.Theme).Msg("ignoring unknown theme")
		}
	}
	return Default(theme).augmentWith(layered)
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	parsedConfig, err := ParseObject(yamlData)
	if err != nil {
		return Default(defaultTheme), err
	}
	return Load(defaultTheme, parsedConfig, Config{}), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	overwriteIfDefined(&result.StartingMonth, augment.StartingMonth)
	overwriteIfDefined(&result.StartingYear, augment.StartingYear)
	overwriteIfDefined(&result.BackwardMonths, augment.BackwardMonths)
	overwriteIfDefined(&result.ForwardMonths, augment.ForwardMonths)
	overwriteIfDefined(&result.StartDayOfWeek, augment.StartDayOfWeek)
	overwriteIfDefined(&result.MinSelectDate, augment.MinSelectDate)
	overwriteIfDefined(&result.MaxSelectDate, augment.MaxSelectDate)
	overwriteIfDefined(&result.WeeklySelectRange, augment.WeeklySelectRange)
	overwriteIfDefined(&result.MonthlySelectRange, augment.MonthlySelectRange)
	overwriteIfDefined(&result.MaxForwardMonth, augment.MaxForwardMonth)
	overwriteIfDefined(&result.MinBackwardMonth, augment.MinBackwardMonth)
	overwriteIfDefined(&result.StartDate, augment.StartDate)
	overwriteIfDefined(&result.EndDate, augment.EndDate)
	overwriteIfDefined(&result.DateFormat, augment.DateFormat)
	overwriteIfDefined(&result.Theme, augment.Theme)

	if len(augment.PriorRangePresets) > 0 {
		result.PriorRangePresets = augment.PriorRangePresets
	}
	if len(augment.MonthName) > 0 {
		result.MonthName = augment.MonthName
	}
	if len(augment.DayName) > 0 {
		result.DayName = augment.DayName
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func overwriteIfDefined[T any](target **T, augment *T) {
	if augment != nil {
		*target = augment
	}
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.MonthLabel.overwriteIfDefined(augment.MonthLabel)
	result.DayName.overwriteIfDefined(augment.DayName)
	result.Padding.overwriteIfDefined(augment.Padding)
	result.Unavailable.overwriteIfDefined(augment.Unavailable)
	result.Daily.overwriteIfDefined(augment.Daily)
	result.Weekly.overwriteIfDefined(augment.Weekly)
	result.Monthly.overwriteIfDefined(augment.Monthly)
	result.Hover.overwriteIfDefined(augment.Hover)
	result.Button.overwriteIfDefined(augment.Button)
	result.Status.overwriteIfDefined(augment.Status)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		style := *augment.Style
		s.Style = &style
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)

// ParseTheme returns the colorscheme type named by the given string.
func ParseTheme(s string) (ColorschemeType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	default:
		return Dark, false
	}
}
