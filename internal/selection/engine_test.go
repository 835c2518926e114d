package selection_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
	"github.com/ja-he/rangecal/internal/selection"
)

// all tests run on 2013-12-15 (a Sunday)
var today = model.Date{Year: 2013, Month: 12, Day: 15}

func fixedNow() time.Time {
	return time.Date(2013, 12, 15, 14, 30, 0, 0, time.UTC)
}

func newEngine(opts selection.Options) *selection.Engine {
	logger := zerolog.Nop()
	opts.Logger = &logger
	opts.Location = time.UTC
	if opts.Now == nil {
		opts.Now = fixedNow
	}
	return selection.New(opts)
}

func defaultOpts() selection.Options {
	return selection.Options{
		StartingMonth:      model.YearMonth{Year: 2013, Month: 10},
		BackwardMonths:     1,
		ForwardMonths:      2,
		WeeklySelectRange:  30,
		MonthlySelectRange: 60,
	}
}

func click(t *testing.T, e *selection.Engine, d model.Date) {
	t.Helper()
	day, ok := e.DayOf(d)
	if !ok {
		t.Fatalf("%s is not visible", d.ToString())
	}
	e.DayClicked(day)
}

func day(t *testing.T, e *selection.Engine, d model.Date) calendar.Day {
	t.Helper()
	result, ok := e.DayOf(d)
	if !ok {
		t.Fatalf("%s is not visible", d.ToString())
	}
	return result
}

func expectSelection(t *testing.T, e *selection.Engine, start, end model.Date) {
	t.Helper()
	if e.State() != selection.BothSelected {
		t.Fatalf("expected both dates selected, state is %s", e.State())
	}
	if *e.Start() != start || *e.End() != end {
		t.Errorf("expected selection %s..%s, got %s..%s", start.ToString(), end.ToString(), e.Start().ToString(), e.End().ToString())
	}
}

func TestClassify(t *testing.T) {
	anchor := model.Date{Year: 2013, Month: 10, Day: 1}
	for _, tc := range []struct {
		name     string
		distance int
		expected calendar.SelectMode
	}{
		{"within weekly window", 20, calendar.Daily},
		{"at weekly threshold", 30, calendar.Daily},
		{"between windows", 45, calendar.Weekly},
		{"at monthly threshold", 60, calendar.Weekly},
		{"beyond monthly window", 61, calendar.Monthly},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, d := range []model.Date{anchor.Forward(tc.distance), anchor.Backward(tc.distance)} {
				result := selection.Classify(30, 60, anchor, d)
				if result != tc.expected {
					t.Errorf("expected %s at distance %d, got %s", tc.expected, tc.distance, result)
				}
			}
		})
	}

	t.Run("no thresholds", func(t *testing.T) {
		if selection.Classify(0, 0, anchor, anchor.Forward(400)) != calendar.Daily {
			t.Error("expected daily without thresholds")
		}
	})
	t.Run("weekly only", func(t *testing.T) {
		if selection.Classify(30, 0, anchor, anchor.Forward(400)) != calendar.Weekly {
			t.Error("expected weekly without monthly threshold")
		}
	})
	t.Run("monthly only", func(t *testing.T) {
		if selection.Classify(0, 60, anchor, anchor.Forward(45)) != calendar.Daily {
			t.Error("expected daily within monthly threshold")
		}
		if selection.Classify(0, 60, anchor, anchor.Forward(61)) != calendar.Monthly {
			t.Error("expected monthly beyond monthly threshold")
		}
	})
}

func TestDayClicked(t *testing.T) {
	a := model.Date{Year: 2013, Month: 10, Day: 5}
	b := model.Date{Year: 2013, Month: 10, Day: 10}

	t.Run("first click selects start", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, a)
		if e.State() != selection.StartSelected || *e.Start() != a || e.End() != nil {
			t.Fatalf("expected start %s only, got state %s", a.ToString(), e.State())
		}
		if day(t, e, a).SelectMode != calendar.Daily {
			t.Error("expected start to be colored daily")
		}
		if e.View().StartDateString != "10/5/2013" {
			t.Error("unexpected start date string", e.View().StartDateString)
		}
	})

	t.Run("ascending", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, a)
		click(t, e, b)
		expectSelection(t, e, a, b)
	})

	t.Run("inverted", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, b)
		click(t, e, a)
		expectSelection(t, e, a, b)
	})

	t.Run("same day twice", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, a)
		click(t, e, a)
		expectSelection(t, e, a, a)
	})

	t.Run("third click replaces the non-anchor endpoint", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, a)
		click(t, e, b) // anchor: b (end)

		c := model.Date{Year: 2013, Month: 10, Day: 1}
		click(t, e, c) // replaces a
		expectSelection(t, e, c, b)

		d := model.Date{Year: 2013, Month: 10, Day: 3}
		click(t, e, d) // anchor was c (start), replaces b
		expectSelection(t, e, c, d)

		f := model.Date{Year: 2013, Month: 9, Day: 28}
		click(t, e, f) // anchor was d (end), replaces c
		expectSelection(t, e, f, d)
	})

	t.Run("third click re-sorts", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, a)
		click(t, e, b) // anchor: b (end)
		c := model.Date{Year: 2013, Month: 10, Day: 15}
		click(t, e, c) // replaces a with c, which is after b
		expectSelection(t, e, b, c)
		if *e.Anchor() != c {
			t.Error("expected the clicked day to become the anchor")
		}
	})

	t.Run("clicking the selected start is not a no-op", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, a)
		click(t, e, b) // anchor: b (end)

		click(t, e, a) // replaces start by itself, but makes it the anchor
		expectSelection(t, e, a, b)
		if *e.Anchor() != a {
			t.Fatalf("expected %s to be the anchor, got %s", a.ToString(), e.Anchor().ToString())
		}

		c := model.Date{Year: 2013, Month: 10, Day: 20}
		click(t, e, c) // anchor is the start now, so the end moves
		expectSelection(t, e, a, c)
	})

	t.Run("unavailable and padding days are ignored", func(t *testing.T) {
		opts := defaultOpts()
		min := model.Date{Year: 2013, Month: 9, Day: 13}
		opts.Bounds = calendar.Bounds{Min: &min}
		e := newEngine(opts)

		click(t, e, min)
		if e.State() != selection.NoneSelected {
			t.Error("click on the minimum date changed the selection")
		}
		e.DayClicked(calendar.Day{Padding: true})
		if e.State() != selection.NoneSelected {
			t.Error("click on a padding day changed the selection")
		}
		// a day claiming availability is still checked against the bounds
		e.DayClicked(calendar.Day{Date: model.Date{Year: 2013, Month: 9, Day: 1}})
		if e.State() != selection.NoneSelected {
			t.Error("click on an out of bounds day changed the selection")
		}

		click(t, e, min.Next())
		if e.State() != selection.StartSelected {
			t.Error("click on the day after the minimum date was ignored")
		}
	})
}

func TestColoring(t *testing.T) {

	t.Run("daily", func(t *testing.T) {
		e := newEngine(defaultOpts())
		start, end := model.Date{Year: 2013, Month: 10, Day: 1}, model.Date{Year: 2013, Month: 10, Day: 20}
		click(t, e, start)
		click(t, e, end)
		for d := start; !d.IsAfter(end); d = d.Next() {
			if day(t, e, d).SelectMode != calendar.Daily {
				t.Errorf("expected %s to be daily", d.ToString())
			}
		}
		if day(t, e, start.Prev()).SelectMode != calendar.None || day(t, e, end.Next()).SelectMode != calendar.None {
			t.Error("days outside of the range are colored")
		}
	})

	t.Run("weekly colors the endpoint weeks", func(t *testing.T) {
		e := newEngine(defaultOpts())
		// Sep 14 2013 is a Saturday, its week starts Sep 8
		start, end := model.Date{Year: 2013, Month: 9, Day: 14}, model.Date{Year: 2013, Month: 10, Day: 25}
		click(t, e, start)
		click(t, e, end)
		for _, d := range []model.Date{{Year: 2013, Month: 9, Day: 8}, {Year: 2013, Month: 9, Day: 14}, {Year: 2013, Month: 10, Day: 1}, {Year: 2013, Month: 10, Day: 26}} {
			if day(t, e, d).SelectMode != calendar.Weekly {
				t.Errorf("expected %s to be weekly, is %s", d.ToString(), day(t, e, d).SelectMode)
			}
		}
		if day(t, e, model.Date{Year: 2013, Month: 9, Day: 7}).SelectMode != calendar.None {
			t.Error("expected the week before the start week to be uncolored")
		}
		if day(t, e, model.Date{Year: 2013, Month: 10, Day: 27}).SelectMode != calendar.None {
			t.Error("expected the week after the end week to be uncolored")
		}
	})

	t.Run("monthly colors the endpoint months", func(t *testing.T) {
		e := newEngine(defaultOpts())
		start, end := model.Date{Year: 2013, Month: 9, Day: 14}, model.Date{Year: 2013, Month: 12, Day: 10}
		click(t, e, start)
		click(t, e, end)
		for _, d := range []model.Date{{Year: 2013, Month: 9, Day: 1}, {Year: 2013, Month: 11, Day: 2}, {Year: 2013, Month: 12, Day: 31}} {
			if day(t, e, d).SelectMode != calendar.Monthly {
				t.Errorf("expected %s to be monthly, is %s", d.ToString(), day(t, e, d).SelectMode)
			}
		}
	})

	t.Run("reselection clears old coloring", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, model.Date{Year: 2013, Month: 10, Day: 1})
		click(t, e, model.Date{Year: 2013, Month: 10, Day: 10})
		click(t, e, model.Date{Year: 2013, Month: 10, Day: 5}) // replaces Oct 1
		if day(t, e, model.Date{Year: 2013, Month: 10, Day: 2}).SelectMode != calendar.None {
			t.Error("expected Oct 2 to be uncolored after reselection")
		}
	})
}

func TestHover(t *testing.T) {
	opts := defaultOpts()
	e := newEngine(opts)

	t.Run("without selection", func(t *testing.T) {
		d := day(t, e, model.Date{Year: 2013, Month: 10, Day: 7})
		e.MouseEnter(d)
		if !day(t, e, d.Date).IsHover {
			t.Error("expected hover")
		}
		e.MouseLeave(d)
		if day(t, e, d.Date).IsHover {
			t.Error("expected no hover")
		}
	})

	click(t, e, model.Date{Year: 2013, Month: 10, Day: 1})

	t.Run("daily", func(t *testing.T) {
		d := day(t, e, model.Date{Year: 2013, Month: 10, Day: 5})
		e.MouseEnter(d)
		if !day(t, e, d.Date).IsHover || day(t, e, model.Date{Year: 2013, Month: 10, Day: 4}).IsHover {
			t.Error("expected only the hovered day to be hovered")
		}
		e.MouseLeave(d)
		if day(t, e, d.Date).IsHover {
			t.Error("expected no hover")
		}
	})

	t.Run("weekly", func(t *testing.T) {
		// Nov 15 2013 is a Friday, its week runs Nov 10 to Nov 16
		d := day(t, e, model.Date{Year: 2013, Month: 11, Day: 15})
		e.MouseEnter(d)
		for _, other := range []model.Date{{Year: 2013, Month: 11, Day: 10}, {Year: 2013, Month: 11, Day: 16}} {
			if !day(t, e, other).IsHover {
				t.Errorf("expected %s to be hovered", other.ToString())
			}
		}
		if day(t, e, model.Date{Year: 2013, Month: 11, Day: 17}).IsHover {
			t.Error("expected the next week not to be hovered")
		}
		e.MouseLeave(d)
		if day(t, e, model.Date{Year: 2013, Month: 11, Day: 10}).IsHover {
			t.Error("expected the week hover to be removed")
		}
	})

	t.Run("monthly", func(t *testing.T) {
		d := day(t, e, model.Date{Year: 2013, Month: 12, Day: 10})
		e.MouseEnter(d)
		for _, other := range []model.Date{{Year: 2013, Month: 12, Day: 1}, {Year: 2013, Month: 12, Day: 31}} {
			if !day(t, e, other).IsHover {
				t.Errorf("expected %s to be hovered", other.ToString())
			}
		}
		e.MouseLeave(d)
		if day(t, e, model.Date{Year: 2013, Month: 12, Day: 1}).IsHover {
			t.Error("expected the month hover to be removed")
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		opts := defaultOpts()
		max := model.Date{Year: 2013, Month: 11, Day: 1}
		opts.Bounds = calendar.Bounds{Max: &max}
		e := newEngine(opts)
		e.MouseEnter(day(t, e, max))
		if day(t, e, max).IsHover {
			t.Error("expected unavailable day not to be hovered")
		}
	})
}

func TestPaging(t *testing.T) {
	opts := defaultOpts()
	opts.StartingMonth = model.YearMonth{Year: 2013, Month: 12}
	opts.BackwardMonths = 3
	opts.ForwardMonths = 3

	t.Run("initial window", func(t *testing.T) {
		e := newEngine(opts)
		labels := e.View().Labels()
		expected := []string{"Sep 2013", "Oct 2013", "Nov 2013", "Dec 2013", "Jan 2014", "Feb 2014", "Mar 2014"}
		if len(labels) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, labels)
		}
		for i := range expected {
			if labels[i] != expected[i] {
				t.Errorf("expected %v, got %v", expected, labels)
			}
		}
	})

	t.Run("next at capacity", func(t *testing.T) {
		e := newEngine(opts)
		if !e.NextMonth() {
			t.Fatal("paging forward was rejected")
		}
		labels := e.View().Labels()
		if len(labels) != 7 || labels[0] != "Oct 2013" || labels[6] != "Apr 2014" {
			t.Errorf("unexpected window after paging forward: %v", labels)
		}
	})

	t.Run("previous at capacity", func(t *testing.T) {
		e := newEngine(opts)
		e.PreviousMonth()
		labels := e.View().Labels()
		if len(labels) != 7 || labels[0] != "Aug 2013" || labels[6] != "Feb 2014" {
			t.Errorf("unexpected window after paging backward: %v", labels)
		}
	})

	t.Run("invalid counts show a single month", func(t *testing.T) {
		opts := opts
		opts.BackwardMonths = 7
		opts.ForwardMonths = -1
		e := newEngine(opts)
		if e.MonthCount() != 1 {
			t.Fatal("expected a single month, got", e.MonthCount())
		}
		e.NextMonth()
		labels := e.View().Labels()
		if len(labels) != 1 || labels[0] != "Jan 2014" {
			t.Errorf("unexpected window after paging forward: %v", labels)
		}
	})

	t.Run("max forward month", func(t *testing.T) {
		opts := opts
		max := model.YearMonth{Year: 2014, Month: 1}
		opts.MaxForwardMonth = &max
		e := newEngine(opts)
		labels := e.View().Labels()
		if len(labels) != 5 || labels[4] != "Jan 2014" {
			t.Fatalf("expected the window to end at the max forward month: %v", labels)
		}
		if e.CanGoNext() || e.NextMonth() {
			t.Error("expected paging forward to be rejected")
		}
		if e.MonthCount() != 5 {
			t.Error("rejected paging changed the window")
		}
		// the window is not full, so paging backward does not evict
		e.PreviousMonth()
		labels = e.View().Labels()
		if len(labels) != 6 || labels[0] != "Aug 2013" || labels[5] != "Jan 2014" {
			t.Errorf("unexpected window after paging backward: %v", labels)
		}
	})

	t.Run("min backward month", func(t *testing.T) {
		opts := opts
		min := model.YearMonth{Year: 2013, Month: 11}
		opts.MinBackwardMonth = &min
		e := newEngine(opts)
		labels := e.View().Labels()
		if len(labels) != 5 || labels[0] != "Nov 2013" {
			t.Fatalf("expected the window to start at the min backward month: %v", labels)
		}
		if e.CanGoPrevious() || e.PreviousMonth() {
			t.Error("expected paging backward to be rejected")
		}
	})

	t.Run("selection survives paging", func(t *testing.T) {
		e := newEngine(opts)
		start, end := model.Date{Year: 2013, Month: 10, Day: 1}, model.Date{Year: 2013, Month: 10, Day: 10}
		click(t, e, start)
		click(t, e, end)
		e.NextMonth()
		expectSelection(t, e, start, end)
		// October is still visible and still colored
		if day(t, e, model.Date{Year: 2013, Month: 10, Day: 5}).SelectMode != calendar.Daily {
			t.Error("expected the selection to be recolored")
		}
		e.NextMonth() // evicts October
		expectSelection(t, e, start, end)
		if _, ok := e.DayOf(start); ok {
			t.Error("expected October to be evicted")
		}
		e.PreviousMonth()
		if day(t, e, model.Date{Year: 2013, Month: 10, Day: 5}).SelectMode != calendar.Daily {
			t.Error("expected the selection to be recolored when its month returns")
		}
	})
}

func TestSelectRange(t *testing.T) {

	t.Run("plain", func(t *testing.T) {
		e := newEngine(defaultOpts())
		if !e.SelectRange(selection.Preset{Value: 20}) {
			t.Fatal("preset was rejected")
		}
		expectSelection(t, e, today.Backward(20), today)
		v := e.View()
		if v.StartDateString != "11/25/2013" || v.EndDateString != "12/15/2013" {
			t.Errorf("unexpected strings %s - %s", v.StartDateString, v.EndDateString)
		}
		// window moves to today's month, from October
		if v.Months[1].YearMonth != today.YearMonth() {
			t.Errorf("expected the window to be based on today, got %v", v.Labels())
		}
	})

	t.Run("skips unavailable dates", func(t *testing.T) {
		opts := defaultOpts()
		min := model.Date{Year: 2013, Month: 11, Day: 30}
		max := today
		opts.Bounds = calendar.Bounds{Min: &min, Max: &max}
		e := newEngine(opts)
		if !e.SelectRange(selection.Preset{Value: 20}) {
			t.Fatal("preset was rejected")
		}
		expectSelection(t, e, model.Date{Year: 2013, Month: 12, Day: 1}, model.Date{Year: 2013, Month: 12, Day: 14})
	})

	t.Run("nothing available", func(t *testing.T) {
		opts := defaultOpts()
		min := today
		opts.Bounds = calendar.Bounds{Min: &min}
		e := newEngine(opts)
		if e.SelectRange(selection.Preset{Value: 20}) {
			t.Error("expected the preset to be rejected")
		}
		if e.State() != selection.NoneSelected {
			t.Error("rejected preset changed the selection")
		}
	})

	t.Run("anchor is the start", func(t *testing.T) {
		e := newEngine(defaultOpts())
		e.SelectRange(selection.Preset{Value: 20})
		click(t, e, model.Date{Year: 2013, Month: 12, Day: 20})
		expectSelection(t, e, today.Backward(20), model.Date{Year: 2013, Month: 12, Day: 20})
	})

	t.Run("default preset is applied and committed", func(t *testing.T) {
		opts := defaultOpts()
		opts.PriorRangePresets = []selection.Preset{{Value: 45}, {Value: 20, IsDefault: true}, {Value: 90}}
		e := newEngine(opts)
		expectSelection(t, e, today.Backward(20), today)
		start, end := e.Committed()
		if start == nil || end == nil || *start != today.Backward(20) || *end != today {
			t.Error("expected the default preset to be committed")
		}
		// 20 days apart with a weekly threshold of 30 is daily
		if day(t, e, today).SelectMode != calendar.Daily {
			t.Error("expected the preset range to be colored daily")
		}
	})

	t.Run("colored like a manual selection", func(t *testing.T) {
		e := newEngine(defaultOpts())
		e.SelectRange(selection.Preset{Value: 45})
		// the end (a Sunday) has its whole week colored
		if day(t, e, model.Date{Year: 2013, Month: 12, Day: 21}).SelectMode != calendar.Weekly {
			t.Error("expected the end week to be colored weekly")
		}
		if day(t, e, model.Date{Year: 2013, Month: 12, Day: 22}).SelectMode != calendar.None {
			t.Error("expected the week after the end week to be uncolored")
		}
	})
}

func TestOpenApplyCancel(t *testing.T) {
	e := newEngine(defaultOpts())
	if e.IsOpen() {
		t.Fatal("expected a closed calendar initially")
	}
	e.ToggleOpen()
	if !e.IsOpen() {
		t.Fatal("expected an open calendar after toggling")
	}

	a, b := model.Date{Year: 2013, Month: 10, Day: 5}, model.Date{Year: 2013, Month: 10, Day: 10}
	click(t, e, a)
	click(t, e, b)
	e.Apply()
	if e.IsOpen() {
		t.Error("expected apply to close the calendar")
	}
	start, end := e.Committed()
	if *start != a || *end != b {
		t.Error("expected the selection to be committed")
	}

	e.ToggleOpen()
	click(t, e, model.Date{Year: 2013, Month: 10, Day: 20})
	e.Cancel()
	expectSelection(t, e, a, b)
	if e.IsOpen() {
		t.Error("expected cancel to close the calendar")
	}
	if day(t, e, model.Date{Year: 2013, Month: 10, Day: 15}).SelectMode != calendar.None {
		t.Error("expected the canceled selection to be uncolored")
	}
	if day(t, e, model.Date{Year: 2013, Month: 10, Day: 7}).SelectMode != calendar.Daily {
		t.Error("expected the committed selection to be recolored")
	}

	t.Run("cancel without commit clears", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, a)
		e.Cancel()
		if e.State() != selection.NoneSelected {
			t.Error("expected no selection after cancel")
		}
		if day(t, e, a).SelectMode != calendar.None {
			t.Error("expected no coloring after cancel")
		}
	})
}

func TestDateStrings(t *testing.T) {

	t.Run("change start", func(t *testing.T) {
		e := newEngine(defaultOpts())
		if e.ChangeStartDate("not a date") {
			t.Error("accepted an invalid date")
		}
		if !e.ChangeStartDate("10-03-2013") {
			t.Fatal("rejected a valid date")
		}
		if *e.Start() != (model.Date{Year: 2013, Month: 10, Day: 3}) || e.View().StartDateString != "10/3/2013" {
			t.Error("unexpected start", e.View().StartDateString)
		}
	})

	t.Run("change start outside the window", func(t *testing.T) {
		e := newEngine(defaultOpts())
		if !e.ChangeStartDate("01/15/2013") {
			t.Fatal("rejected a valid date")
		}
		labels := e.View().Labels()
		if labels[0] != "Dec 2012" || labels[1] != "Jan 2013" {
			t.Errorf("expected the window to move to the start date, got %v", labels)
		}
		if day(t, e, model.Date{Year: 2013, Month: 1, Day: 15}).SelectMode != calendar.Daily {
			t.Error("expected the start date to be colored")
		}
	})

	t.Run("change start unavailable", func(t *testing.T) {
		opts := defaultOpts()
		min := model.Date{Year: 2013, Month: 9, Day: 13}
		opts.Bounds = calendar.Bounds{Min: &min}
		e := newEngine(opts)
		if e.ChangeStartDate("09/13/2013") {
			t.Error("accepted an unavailable date")
		}
	})

	t.Run("change end", func(t *testing.T) {
		e := newEngine(defaultOpts())
		click(t, e, model.Date{Year: 2013, Month: 10, Day: 5})
		if e.ChangeEndDate("10/01/2013") {
			t.Error("accepted an end date before the start date")
		}
		if !e.ChangeEndDate("10/12/2013") {
			t.Fatal("rejected a valid end date")
		}
		expectSelection(t, e, model.Date{Year: 2013, Month: 10, Day: 5}, model.Date{Year: 2013, Month: 10, Day: 12})
		if day(t, e, model.Date{Year: 2013, Month: 10, Day: 8}).SelectMode != calendar.Daily {
			t.Error("expected the range to be colored")
		}
	})

	t.Run("external setters", func(t *testing.T) {
		opts := defaultOpts()
		opts.StartDate = "1380844800000" // 2013-10-04 00:00 UTC
		opts.EndDate = "10/09/2013"
		e := newEngine(opts)
		expectSelection(t, e, model.Date{Year: 2013, Month: 10, Day: 4}, model.Date{Year: 2013, Month: 10, Day: 9})

		if e.SetEndDate("garbage") {
			t.Error("accepted an invalid end date")
		}
		e.SetEndDate("10/01/2013")
		expectSelection(t, e, model.Date{Year: 2013, Month: 10, Day: 1}, model.Date{Year: 2013, Month: 10, Day: 4})
	})

	t.Run("lone end date", func(t *testing.T) {
		e := newEngine(defaultOpts())
		e.SetEndDate("10/09/2013")
		if e.State() != selection.StartSelected {
			t.Fatal("expected a single endpoint, state is", e.State())
		}
		click(t, e, model.Date{Year: 2013, Month: 10, Day: 2})
		expectSelection(t, e, model.Date{Year: 2013, Month: 10, Day: 2}, model.Date{Year: 2013, Month: 10, Day: 9})
	})
}
