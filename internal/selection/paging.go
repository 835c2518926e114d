package selection

import (
	"github.com/ja-he/rangecal/internal/model"
)

func (e *Engine) exceedsMax(ym model.YearMonth) bool {
	return e.opts.MaxForwardMonth != nil && ym.IsAfter(*e.opts.MaxForwardMonth)
}

func (e *Engine) belowMin(ym model.YearMonth) bool {
	return e.opts.MinBackwardMonth != nil && ym.IsBefore(*e.opts.MinBackwardMonth)
}

// generateWindow replaces the visible months by the given base month and the
// configured number of months around it. Months beyond the hard bounds are
// left out.
func (e *Engine) generateWindow(base model.YearMonth) {
	e.window.Reset()
	e.window.PushBack(e.builder.BuildMonth(base))

	for i := 1; i <= e.opts.ForwardMonths; i++ {
		ym := base.AddMonths(i)
		if e.exceedsMax(ym) {
			break
		}
		e.window.PushBack(e.builder.BuildMonth(ym))
	}
	for i := 1; i <= e.opts.BackwardMonths; i++ {
		ym := base.AddMonths(-i)
		if e.belowMin(ym) {
			break
		}
		e.window.PushFront(e.builder.BuildMonth(ym))
	}
}

// CanGoNext reports whether NextMonth would show a new month.
func (e *Engine) CanGoNext() bool {
	return !e.exceedsMax(e.window.Last().YearMonth.Next())
}

// CanGoPrevious reports whether PreviousMonth would show a new month.
func (e *Engine) CanGoPrevious() bool {
	return !e.belowMin(e.window.First().YearMonth.Prev())
}

// NextMonth shows the month after the last visible one, dropping the first
// visible month if the window is full. The selection is kept and recolored.
//
// Returns false (and changes nothing) if the month is beyond the maximum
// forward month.
func (e *Engine) NextMonth() bool {
	next := e.window.Last().YearMonth.Next()
	if e.exceedsMax(next) {
		e.logger.Debug().Str("month", next.ToString()).Msg("not paging beyond max forward month")
		return false
	}
	evicted := e.window.PushBack(e.builder.BuildMonth(next))
	e.repaint()
	e.logger.Debug().Str("month", next.ToString()).Bool("evicted", evicted).Msg("paged forward")
	return true
}

// PreviousMonth shows the month before the first visible one, dropping the
// last visible month if the window is full. The selection is kept and
// recolored.
//
// Returns false (and changes nothing) if the month is before the minimum
// backward month.
func (e *Engine) PreviousMonth() bool {
	prev := e.window.First().YearMonth.Prev()
	if e.belowMin(prev) {
		e.logger.Debug().Str("month", prev.ToString()).Msg("not paging beyond min backward month")
		return false
	}
	evicted := e.window.PushFront(e.builder.BuildMonth(prev))
	e.repaint()
	e.logger.Debug().Str("month", prev.ToString()).Bool("evicted", evicted).Msg("paged backward")
	return true
}
