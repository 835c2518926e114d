package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/rangecal/internal/logsink"
	"github.com/ja-he/rangecal/internal/tui"
)

type TUICommand struct {
	CalendarFlags

	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs are only shown in the status line)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Executes the tui command.
// On exit, the applied selection (if any) is printed to stdout as two ISO
// dates.
func (command *TUICommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	sink := logsink.New(logsink.DefaultCapacity)
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open log file '%s' (%s)", command.LogOutputFile, err.Error())
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, sink)
	} else {
		logWriter = sink
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	engine, stylesheet, err := command.newCalendar(time.Now, &tuiLogger)
	if err != nil {
		return err
	}
	engine.ToggleOpen()

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}
	controller := NewController(engine, screenHandler, stylesheet, sink)

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()

	log.Logger = stderrLogger
	start, end := engine.Committed()
	if start != nil && end != nil {
		fmt.Println(start.ToString(), end.ToString())
	}
	return nil
}

