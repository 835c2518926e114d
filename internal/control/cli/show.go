package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
	"github.com/ja-he/rangecal/internal/selection"
	"github.com/ja-he/rangecal/internal/tui"
)

// Flags for the `show` command line command, for `go-flags` to parse
// command line args into.
//
// The operations are applied in the order preset, start/end, clicks, paging,
// hover.
type ShowCommand struct {
	CalendarFlags

	Preset   int      `long:"preset" description:"select the last <n> days up to today" value-name:"<n>" default:"-1"`
	Start    string   `long:"start" description:"change the start date" value-name:"<date>"`
	End      string   `long:"end" description:"change the end date" value-name:"<date>"`
	Clicks   []string `long:"click" description:"click on the given (visible) day, repeatable" value-name:"<date>"`
	Next     int      `long:"next" description:"page forward by <n> months" value-name:"<n>"`
	Previous int      `long:"previous" description:"page backward by <n> months" value-name:"<n>"`
	Hover    string   `long:"hover" description:"hover over the given (visible) day" value-name:"<date>"`
	Legend   bool     `long:"legend" description:"print a legend of the day markers"`
}

// Executes the show command.
// (This gets called by `go-flags` when `show` is provided on the command
// line)
func (command *ShowCommand) Execute(args []string) error {
	return command.Run(os.Stdout, time.Now)
}

// Run applies the requested operations to a calendar and writes it to out.
func (command *ShowCommand) Run(out io.Writer, now func() time.Time) error {
	engine, _, err := command.newCalendar(now, nil)
	if err != nil {
		return err
	}

	if command.Preset >= 0 {
		if !engine.SelectRange(selection.Preset{Value: command.Preset}) {
			return fmt.Errorf("no available dates in the last %d days", command.Preset)
		}
	}
	if command.Start != "" && !engine.ChangeStartDate(command.Start) {
		return fmt.Errorf("could not change start date to '%s'", command.Start)
	}
	if command.End != "" && !engine.ChangeEndDate(command.End) {
		return fmt.Errorf("could not change end date to '%s'", command.End)
	}
	for _, click := range command.Clicks {
		day, err := visibleDay(engine, click)
		if err != nil {
			return err
		}
		engine.DayClicked(day)
	}
	for i := 0; i < command.Next; i++ {
		engine.NextMonth()
	}
	for i := 0; i < command.Previous; i++ {
		engine.PreviousMonth()
	}
	if command.Hover != "" {
		day, err := visibleDay(engine, command.Hover)
		if err != nil {
			return err
		}
		engine.MouseEnter(day)
	}

	err = tui.WriteText(out, engine.View())
	if err != nil {
		return err
	}
	if command.Legend {
		_, err = fmt.Fprintf(out, "\n%s\n", tui.TextLegend)
	}
	return err
}

func visibleDay(engine *selection.Engine, input string) (day calendar.Day, err error) {
	d, err := model.ParseDateInput(input, time.Local)
	if err != nil {
		return day, err
	}
	day, ok := engine.DayOf(d)
	if !ok {
		return day, fmt.Errorf("day %s is not visible", d.ToString())
	}
	return day, nil
}
