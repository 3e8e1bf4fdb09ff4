package lcdui

// Siblings are kept in drawing order, least visible first. Plain widgets
// come before containers and containers before dialogs; within a category
// a higher z-index is more visible. Between equal z-indexes the widget
// moved last wins.
//
// Top and bottom count from the head of the list, so moveToTop goes
// towards the least visible end and moveToBottom towards the most visible.

// moveToTop moves h towards the least visible end as far as the order
// allows and returns the number of steps.
func (t *Tree) moveToTop(h Handle) int {
	w := t.get(h)
	if w.elem == nil {
		return 0
	}
	l := t.children(w.parent)
	n := 0
	for prev := w.elem.Prev(); prev != nil; prev = w.elem.Prev() {
		p := t.get(prev.Value)
		cw, cp := w.category(), p.category()
		var move bool
		switch {
		case cp > cw:
			move = true
		case cp == cw:
			move = w.zIndex <= p.zIndex
		}
		if !move || !l.MoveUp(w.elem) {
			break
		}
		n++
	}
	t.debugf(t.config.Debug.Order && n > 0, "move to top", "widget", h, "steps", n)
	return n
}

// moveToBottom moves h towards the most visible end as far as the order
// allows and returns the number of steps. Dialogs go past all other
// categories.
func (t *Tree) moveToBottom(h Handle) int {
	w := t.get(h)
	if w.elem == nil {
		return 0
	}
	l := t.children(w.parent)
	n := 0
	for next := w.elem.Next(); next != nil; next = w.elem.Next() {
		nw := t.get(next.Value)
		cw, cn := w.category(), nw.category()
		var move bool
		switch {
		case cn < cw:
			move = true
		case cn == cw:
			move = w.zIndex >= nw.zIndex
		}
		if !move || !l.MoveDown(w.elem) {
			break
		}
		n++
	}
	t.debugf(t.config.Debug.Order && n > 0, "move to bottom", "widget", h, "steps", n)
	return n
}

func (t *Tree) ZIndex(h Handle) int32 {
	return t.get(h).zIndex
}

// SetZIndex changes the z-index of h and moves it between its siblings.
// It reports whether the z-index changed.
func (t *Tree) SetZIndex(h Handle, z int32) bool {
	w := t.get(h)
	if w.zIndex == z {
		return false
	}
	old := w.zIndex
	w.zIndex = z
	var n int
	if z < old {
		n = t.moveToTop(h)
	} else {
		n = t.moveToBottom(h)
	}
	if n > 0 {
		t.Invalidate(h)
	}
	return true
}

// PutOnFront moves h and each of its ancestors to the most visible
// position allowed among their siblings, and focuses h.
func (t *Tree) PutOnFront(h Handle) {
	for p := h; !p.IsZero(); p = t.get(p).parent {
		if t.moveToBottom(p) > 0 {
			t.Invalidate(p)
		}
	}
	t.FocusSet(h)
}
