package selection

import (
	"github.com/ja-he/rangecal/internal/calendar"
	"github.com/ja-he/rangecal/internal/model"
)

// window is a fixed-capacity double-ended queue of consecutive month grids.
// Pushing onto a full window evicts the month at the opposite end.
type window struct {
	slots []calendar.Month
	head  int
	size  int
}

func newWindow(capacity int) *window {
	if capacity < 1 {
		capacity = 1
	}
	return &window{slots: make([]calendar.Month, capacity)}
}

func (w *window) Len() int {
	return w.size
}

func (w *window) Cap() int {
	return len(w.slots)
}

func (w *window) Full() bool {
	return w.size == len(w.slots)
}

func (w *window) Reset() {
	for i := range w.slots {
		w.slots[i] = calendar.Month{}
	}
	w.head, w.size = 0, 0
}

// At returns the i-th visible month, 0 being the earliest.
func (w *window) At(i int) *calendar.Month {
	return &w.slots[(w.head+i)%len(w.slots)]
}

func (w *window) First() *calendar.Month {
	return w.At(0)
}

func (w *window) Last() *calendar.Month {
	return w.At(w.size - 1)
}

// PushBack appends a month, evicting the first one if the window is full.
func (w *window) PushBack(m calendar.Month) (evicted bool) {
	if w.Full() {
		w.head = (w.head + 1) % len(w.slots)
		w.size--
		evicted = true
	}
	w.slots[(w.head+w.size)%len(w.slots)] = m
	w.size++
	return evicted
}

// PushFront prepends a month, evicting the last one if the window is full.
func (w *window) PushFront(m calendar.Month) (evicted bool) {
	if w.Full() {
		w.size--
		evicted = true
	}
	w.head = (w.head - 1 + len(w.slots)) % len(w.slots)
	w.slots[w.head] = m
	w.size++
	return evicted
}

// Index returns the position of the given month in the window.
func (w *window) Index(ym model.YearMonth) (int, bool) {
	if w.size == 0 {
		return 0, false
	}
	i := w.First().YearMonth.MonthsUntil(ym)
	if i < 0 || i >= w.size {
		return 0, false
	}
	return i, true
}
