package lcdui

import (
	"time"

	"github.com/mjl-/lcdui/list"
)

// Timer calls a function for a widget after a delay, once or periodically.
// A widget has at most one timer, it is stopped when the widget is freed.
type Timer struct {
	h        Handle
	period   time.Duration
	next     time.Time
	periodic bool
	fn       func(t *Tree, h Handle)
	elem     *list.Element[*Timer]
}

// StartTimer replaces the timer of h.
func (t *Tree) StartTimer(h Handle, d time.Duration, periodic bool, fn func(t *Tree, h Handle)) *Timer {
	w := t.get(h)
	t.StopTimer(h)
	tm := &Timer{
		h:        h,
		period:   d,
		next:     t.now().Add(d),
		periodic: periodic,
		fn:       fn,
	}
	tm.elem = t.timers.Add(tm)
	w.timer = tm
	return tm
}

// StopTimer stops the timer of h, if any.
func (t *Tree) StopTimer(h Handle) bool {
	w := t.get(h)
	if w.timer == nil {
		return false
	}
	t.timers.Remove(w.timer.elem)
	w.timer = nil
	return true
}

// processTimers runs the timers due at now and returns how many fired.
func (t *Tree) processTimers(now time.Time) int {
	n := 0
	for _, tm := range t.timers.Values() {
		if !tm.elem.InList() || now.Before(tm.next) {
			continue
		}
		if tm.periodic {
			tm.next = now.Add(tm.period)
		} else {
			t.timers.Remove(tm.elem)
			t.get(tm.h).timer = nil
		}
		tm.fn(t, tm.h)
		n++
	}
	return n
}
