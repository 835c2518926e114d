package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/control/action"
	"github.com/ja-he/rangecal/internal/logsink"
	"github.com/ja-he/rangecal/internal/selection"
	"github.com/ja-he/rangecal/internal/styling"
	"github.com/ja-he/rangecal/internal/tui"
)

// Controller is the struct for the TUI controller.
// It translates terminal events into calendar operations and redraws after
// each event.
type Controller struct {
	engine *selection.Engine
	widget *tui.Widget
	keymap *action.Keymap

	screenHandler *tui.ScreenHandler

	// the day currently hovered, if any
	hovered *calendar.Day
	// the mouse buttons held on the last mouse event, to detect presses
	buttons tcell.ButtonMask

	quit bool
}

// NewController creates a new Controller.
func NewController(
	engine *selection.Engine,
	screenHandler *tui.ScreenHandler,
	stylesheet *styling.Stylesheet,
	logReader logsink.LogReader,
) *Controller {
	c := &Controller{
		engine:        engine,
		screenHandler: screenHandler,
	}
	c.widget = tui.NewWidget(engine, screenHandler, stylesheet, logReader)

	c.keymap = action.NewKeymap().
		Bind('o', action.NewSimple(func() string { return "open/close" }, action.Always(engine.ToggleOpen))).
		Bind('n', action.NewSimple(func() string { return "next month" }, engine.NextMonth)).
		Bind('p', action.NewSimple(func() string { return "previous month" }, engine.PreviousMonth)).
		Bind('a', action.NewSimple(func() string { return "apply" }, action.Always(engine.Apply))).
		Bind('c', action.NewSimple(func() string { return "cancel" }, action.Always(engine.Cancel))).
		Bind('q', action.NewSimple(func() string { return "quit" }, action.Always(func() { c.quit = true })))
	for i, preset := range engine.View().Presets {
		if i >= 9 {
			break
		}
		preset := preset
		c.keymap.Bind(rune('1'+i), action.NewSimple(
			func() string { return fmt.Sprintf("last %d days", preset.Value) },
			func() bool { return engine.SelectRange(preset) },
		))
	}

	return c
}

// Help describes the key bindings.
func (c *Controller) Help() string {
	return c.keymap.Help()
}

// HandleEvent applies a single terminal event and reports whether the
// controller should exit.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(e)
	case *tcell.EventMouse:
		c.handleMouse(e)
	case *tcell.EventResize:
		c.screenHandler.NeedsSync()
	}
	return c.quit
}

func (c *Controller) handleKey(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyCtrlC:
		c.quit = true
		return
	case tcell.KeyEnter:
		c.engine.Apply()
		return
	case tcell.KeyEscape:
		c.engine.Cancel()
		return
	case tcell.KeyRune:
	default:
		return
	}

	a, ok := c.keymap.Lookup(e.Rune())
	if !ok {
		log.Debug().Str("key", string(e.Rune())).Msg("unbound key")
		return
	}
	if !a.Do() {
		log.Debug().Str("key", string(e.Rune())).Str("action", a.Explain()).Msg("could not apply key input")
	}
}

func (c *Controller) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	hit := c.widget.HitTest(x, y)

	c.updateHover(hit)

	pressed := e.Buttons()&tcell.Button1 != 0 && c.buttons&tcell.Button1 == 0
	c.buttons = e.Buttons()
	if !pressed {
		return
	}

	switch hit.Kind {
	case tui.HitToggle:
		c.engine.ToggleOpen()
	case tui.HitPrevious:
		c.engine.PreviousMonth()
	case tui.HitNext:
		c.engine.NextMonth()
	case tui.HitPreset:
		presets := c.engine.View().Presets
		if hit.Preset < len(presets) {
			c.engine.SelectRange(presets[hit.Preset])
		}
	case tui.HitApply:
		c.engine.Apply()
	case tui.HitCancel:
		c.engine.Cancel()
	case tui.HitDay:
		if day, ok := c.engine.DayAt(hit.Coord); ok {
			c.engine.DayClicked(day)
		}
	}
}

// updateHover moves the hover preview to the day under the cursor.
func (c *Controller) updateHover(hit tui.Hit) {
	var day *calendar.Day
	if hit.Kind == tui.HitDay {
		if d, ok := c.engine.DayAt(hit.Coord); ok && !d.Padding {
			day = &d
		}
	}

	if c.hovered != nil && (day == nil || day.Date != c.hovered.Date) {
		// the hovered day may have scrolled out of view
		if previous, ok := c.engine.DayOf(c.hovered.Date); ok {
			c.engine.MouseLeave(previous)
		}
		c.hovered = nil
	}
	if day != nil && c.hovered == nil {
		c.engine.MouseEnter(*day)
		c.hovered = day
	}
}

func (c *Controller) render() {
	c.screenHandler.Clear()
	c.widget.Draw()
	c.screenHandler.Show()
}

// Run runs the event loop until the user quits, finalizing the screen after.
func (c *Controller) Run() {
	log.Info().Msg(c.Help())

	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		pollable := c.screenHandler.GetEventPollable()
		for {
			ev := pollable.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	c.render()
	for ev := range events {
		if c.HandleEvent(ev) {
			break
		}
		c.render()
	}
	c.screenHandler.Fini()
}
