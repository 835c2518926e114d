// Package selection implements the selection logic of a range calendar: the
// window of visible months, the start/end selection state machine, hover
// previews and the coloring of selected ranges.
//
// An Engine is not safe for concurrent use. The embedding UI is expected to
// call one operation per user gesture and re-render from View afterwards.
package selection

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
)

// State is the state of the start/end selection.
type State int

const (
	NoneSelected State = iota
	StartSelected
	BothSelected
)

func (s State) String() string {
	switch s {
	case StartSelected:
		return "start-selected"
	case BothSelected:
		return "both-selected"
	default:
		return "none-selected"
	}
}

// Engine holds the visible months and selection state of one calendar.
type Engine struct {
	opts    Options
	builder *calendar.Builder
	window  *window

	start, end *model.Date
	// anchor is the endpoint most recently fixed by the user.
	anchor *model.Date

	currentStart, currentEnd *model.Date

	open bool

	startDateString string
	endDateString   string

	logger zerolog.Logger
}

// New constructs an engine, builds the initial window of months, applies the
// default preset (if any, committing it) and the initial start and end dates.
func New(opts Options) *Engine {
	opts = opts.normalized()

	parent := log.Logger
	if opts.Logger != nil {
		parent = *opts.Logger
	}

	e := &Engine{
		opts:    opts,
		builder: calendar.NewBuilder(opts.StartOfWeek, opts.Bounds, opts.MonthNames, opts.DayNames),
		window:  newWindow(opts.capacity()),
		logger:  parent.With().Str("calendar", uuid.NewString()).Logger(),
	}
	e.generateWindow(opts.StartingMonth)

	for _, preset := range opts.PriorRangePresets {
		if preset.IsDefault {
			e.SelectRange(preset)
			e.currentStart, e.currentEnd = copyDate(e.start), copyDate(e.end)
			break
		}
	}

	if opts.StartDate != "" {
		e.SetStartDate(opts.StartDate)
	}
	if opts.EndDate != "" {
		e.SetEndDate(opts.EndDate)
	}

	e.logger.Debug().
		Str("base-month", opts.StartingMonth.ToString()).
		Int("capacity", e.window.Cap()).
		Int("visible", e.window.Len()).
		Msg("calendar initialized")
	return e
}

// State returns the state of the selection.
func (e *Engine) State() State {
	switch {
	case e.start != nil && e.end != nil:
		return BothSelected
	case e.start != nil || e.end != nil:
		return StartSelected
	default:
		return NoneSelected
	}
}

func (e *Engine) Start() *model.Date  { return copyDate(e.start) }
func (e *Engine) End() *model.Date    { return copyDate(e.end) }
func (e *Engine) Anchor() *model.Date { return copyDate(e.anchor) }

func (e *Engine) today() model.Date {
	return model.FromTime(e.opts.Now().In(e.opts.Location))
}

func (e *Engine) unavailable(d model.Date) bool {
	return e.opts.Bounds.IsOutOfBounds(d)
}

// DayClicked advances the selection state machine with the clicked day.
// Clicks on padding or unavailable days are ignored.
func (e *Engine) DayClicked(day calendar.Day) {
	if day.Padding || e.unavailable(day.Date) {
		e.logger.Debug().Str("date", day.Date.ToString()).Bool("padding", day.Padding).Msg("ignoring click on unselectable day")
		return
	}
	d := day.Date

	// a lone end date (set externally) is treated as the fixed endpoint
	if e.start == nil && e.end != nil {
		e.start, e.end = e.end, nil
	}

	switch e.State() {
	case NoneSelected:
		e.start = &d
	case StartSelected:
		switch {
		case d.IsBefore(*e.start):
			e.start, e.end = &d, e.start
		case d.IsAfter(*e.start):
			e.end = &d
		default:
			e.end = copyDate(e.start)
		}
	case BothSelected:
		if e.anchorIsStart() {
			e.end = &d
		} else {
			e.start = &d
		}
		e.swap()
	}
	e.anchor = copyDate(&d)

	e.logger.Debug().
		Str("date", d.ToString()).
		Stringer("state", e.State()).
		Msg("day clicked")

	e.updateStrings()
	e.repaint()
}

// anchorIsStart reports whether the anchor is the start date. Without a
// matching anchor, the end date is considered the anchor.
func (e *Engine) anchorIsStart() bool {
	if e.anchor == nil {
		return *e.start == *e.end
	}
	if *e.anchor == *e.start {
		return true
	}
	return false
}

// swap ensures start <= end.
func (e *Engine) swap() {
	if e.start != nil && e.end != nil && e.end.IsBefore(*e.start) {
		e.start, e.end = e.end, e.start
	}
}

func (e *Engine) hoverAnchor() model.Date {
	if e.anchor != nil {
		return *e.anchor
	}
	return *e.start
}

// MouseEnter previews the selection that a click on the day would result in.
func (e *Engine) MouseEnter(day calendar.Day) {
	if day.Padding {
		return
	}
	if e.unavailable(day.Date) {
		e.paint(day.Date, calendar.Daily, withHover(false))
		return
	}
	if e.start == nil {
		e.paint(day.Date, calendar.Daily, withHover(true))
		return
	}
	e.paint(day.Date, e.classify(e.hoverAnchor(), day.Date), withHover(true))
}

// MouseLeave removes the preview set up by MouseEnter.
func (e *Engine) MouseLeave(day calendar.Day) {
	if day.Padding {
		return
	}
	if e.start == nil {
		e.paint(day.Date, calendar.Daily, withHover(false))
		return
	}
	e.paint(day.Date, e.classify(e.hoverAnchor(), day.Date), withHover(false))
}

// SelectRange selects the range of the last preset.Value days up to today,
// moving the window to today's month. Unavailable dates are skipped by moving
// the start forward and the end backward.
//
// Returns false if no available date lies within the range.
func (e *Engine) SelectRange(preset Preset) bool {
	if preset.Value < 0 {
		e.logger.Debug().Int("value", preset.Value).Msg("ignoring negative preset")
		return false
	}
	today := e.today()
	e.generateWindow(today.YearMonth())

	start := today.Backward(preset.Value)
	for e.unavailable(start) && !start.IsAfter(today) {
		start = start.Next()
	}
	end := today
	for e.unavailable(end) && !end.IsBefore(start) {
		end = end.Prev()
	}
	if start.IsAfter(today) || end.IsBefore(start) {
		e.logger.Debug().Int("value", preset.Value).Msg("no available dates in preset range")
		e.repaint()
		return false
	}

	e.start, e.end = &start, &end
	e.anchor = copyDate(&start)
	e.updateStrings()
	e.repaint()

	e.logger.Debug().
		Int("value", preset.Value).
		Str("start", start.ToString()).
		Str("end", end.ToString()).
		Msg("preset range selected")
	return true
}

// ChangeStartDate sets the start date from user input. Invalid input and
// unavailable dates are ignored. If the date is not visible, the window moves
// to the date's month.
func (e *Engine) ChangeStartDate(input string) bool {
	d, err := model.ParseDateInput(input, e.opts.Location)
	if err != nil {
		e.logger.Debug().Err(err).Msg("ignoring start date input")
		return false
	}
	if e.unavailable(d) {
		e.logger.Debug().Str("date", d.ToString()).Msg("ignoring unavailable start date")
		return false
	}
	if _, ok := e.window.Index(d.YearMonth()); !ok {
		e.generateWindow(d.YearMonth())
	}
	e.start = &d
	e.anchor = copyDate(&d)
	e.swap()
	e.updateStrings()
	e.repaint()
	return true
}

// ChangeEndDate sets the end date from user input. Invalid input, unavailable
// dates and dates before the start date are ignored.
func (e *Engine) ChangeEndDate(input string) bool {
	d, err := model.ParseDateInput(input, e.opts.Location)
	if err != nil {
		e.logger.Debug().Err(err).Msg("ignoring end date input")
		return false
	}
	if e.unavailable(d) {
		e.logger.Debug().Str("date", d.ToString()).Msg("ignoring unavailable end date")
		return false
	}
	if e.start != nil && e.start.IsAfter(d) {
		e.logger.Debug().Str("date", d.ToString()).Msg("ignoring end date before start date")
		return false
	}
	e.end = &d
	e.anchor = copyDate(&d)
	e.updateStrings()
	e.repaint()
	return true
}

// SetStartDate sets the start date on behalf of the embedding application,
// e.g. when its own state changed. Unlike ChangeStartDate, bounds are not
// checked. Invalid input is ignored.
func (e *Engine) SetStartDate(input string) bool {
	d, err := model.ParseDateInput(input, e.opts.Location)
	if err != nil {
		e.logger.Debug().Err(err).Msg("ignoring external start date")
		return false
	}
	e.start = &d
	e.anchor = copyDate(&d)
	e.swap()
	e.updateStrings()
	e.repaint()
	return true
}

// SetEndDate sets the end date on behalf of the embedding application.
// Invalid input is ignored.
func (e *Engine) SetEndDate(input string) bool {
	d, err := model.ParseDateInput(input, e.opts.Location)
	if err != nil {
		e.logger.Debug().Err(err).Msg("ignoring external end date")
		return false
	}
	e.end = &d
	e.anchor = copyDate(&d)
	e.swap()
	e.updateStrings()
	e.repaint()
	return true
}

// IsOpen reports whether the calendar is shown.
func (e *Engine) IsOpen() bool {
	return e.open
}

// ToggleOpen shows or hides the calendar.
func (e *Engine) ToggleOpen() {
	e.open = !e.open
}

// Apply commits the current selection and closes the calendar.
func (e *Engine) Apply() {
	e.currentStart, e.currentEnd = copyDate(e.start), copyDate(e.end)
	e.open = false
	e.logger.Debug().Str("start", e.startDateString).Str("end", e.endDateString).Msg("selection applied")
}

// Cancel reverts the selection to the last committed one and closes the
// calendar.
func (e *Engine) Cancel() {
	e.start, e.end = copyDate(e.currentStart), copyDate(e.currentEnd)
	if e.start == nil {
		e.end = nil
	}
	e.anchor = copyDate(e.end)
	e.updateStrings()
	e.repaint()
	e.open = false
}

// Committed returns the last applied selection.
func (e *Engine) Committed() (start, end *model.Date) {
	return copyDate(e.currentStart), copyDate(e.currentEnd)
}

func (e *Engine) updateStrings() {
	e.startDateString = e.format(e.start)
	e.endDateString = e.format(e.end)
}

func (e *Engine) format(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.Format(e.opts.DateFormat)
}

func copyDate(d *model.Date) *model.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
