package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/rangecal/internal/config"
	"github.com/ja-he/rangecal/internal/selection"
	"github.com/ja-he/rangecal/internal/styling"
)

// CalendarFlags are the flags configuring a calendar, shared by the commands
// that construct one.
type CalendarFlags struct {
	ConfigFile string   `short:"c" long:"config" description:"config file to use instead of '${RANGECAL_HOME}/config.yaml'" value-name:"<file>"`
	Attributes []string `short:"a" long:"attr" description:"set a config key, overriding the config file (repeatable; values are YAML, e.g. 'day-name=[So, Mo, Di, Mi, Do, Fr, Sa]')" value-name:"<key>=<value>"`
	Theme      string   `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
}

// Home returns the rangecal base directory, '${RANGECAL_HOME}' if set and
// '${HOME}/.config/rangecal' otherwise.
func Home() string {
	rangecalHome := os.Getenv("RANGECAL_HOME")
	if rangecalHome == "" {
		return filepath.Join(os.Getenv("HOME"), ".config", "rangecal")
	}
	return strings.TrimRight(rangecalHome, "/")
}

func (f *CalendarFlags) theme() config.ColorschemeType {
	switch f.Theme {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}

// loadConfig reads the config file and layers it and the attributes over the
// defaults.
//
// A missing default config file is not an error, a missing explicitly given
// one is.
func (f *CalendarFlags) loadConfig() (config.Config, config.ColorschemeType, error) {
	theme := f.theme()

	path := f.ConfigFile
	if path == "" {
		path = filepath.Join(Home(), "config.yaml")
	}
	yamlData, err := os.ReadFile(path)
	if err != nil {
		if f.ConfigFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, theme, fmt.Errorf("can't read config file '%s' (%s)", path, err.Error())
		}
		log.Debug().Str("file", path).Msg("no config file, using defaults")
		yamlData = nil
	}
	object, err := config.ParseObject(yamlData)
	if err != nil {
		return config.Config{}, theme, fmt.Errorf("can't parse config file '%s' (%s)", path, err.Error())
	}

	attributes := map[string]string{}
	for _, attribute := range f.Attributes {
		key, value, err := config.SplitAttribute(attribute)
		if err != nil {
			return config.Config{}, theme, err
		}
		attributes[key] = value
	}

	result := config.Load(theme, object, config.ParseAttributes(attributes))
	if result.Theme != nil {
		if t, ok := config.ParseTheme(*result.Theme); ok {
			theme = t
		}
	}
	return result, theme, nil
}

// newCalendar constructs the engine and stylesheet for the flags.
func (f *CalendarFlags) newCalendar(now func() time.Time, logger *zerolog.Logger) (*selection.Engine, *styling.Stylesheet, error) {
	configData, theme, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	opts := config.Resolve(configData, time.Local, now)
	opts.Logger = logger

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet, config.Default(theme).Stylesheet)

	return selection.New(opts), stylesheet, nil
}
