package lcdui

import (
	"fmt"
)

// Create makes a widget of type typ and links it below parent.
//
// Dialog types and CreateParentDesktop attach to the desktop. A parent that
// is zero or does not allow children is replaced by the active window. The
// callback gets CmdPreInit before anything else, and may reject the widget.
func (t *Tree) Create(typ *Type, id ID, x, y, width, height float32, parent Handle, cb Callback, flags CreateFlags) (Handle, error) {
	min := MinWidgetSize
	if typ.Flags&FlagAllowChildren != 0 {
		min = MinContainerSize
	}
	if typ.Size < min {
		return Handle{}, fmt.Errorf("create %s: %w: %d < %d", typ.Name, ErrTypeSize, typ.Size, min)
	}
	h, w, err := t.alloc(typ.Size)
	if err != nil {
		return Handle{}, fmt.Errorf("create %s: %w", typ.Name, err)
	}
	w.id = id
	w.typ = typ
	w.cb = cb
	w.transparency = 0xff
	w.flags = typ.Flags & typeFlags
	if typ.Flags&FlagAllowChildren != 0 {
		w.container = &Container{}
	}
	if typ.New != nil {
		w.state = typ.New()
	}

	// The desktop itself is created without a parent.
	if !t.desktop.IsZero() {
		switch {
		case w.dialogBase() || flags&CreateParentDesktop != 0:
			w.parent = t.desktop
		case !parent.IsZero() && t.get(parent).allowChildren():
			w.parent = parent
		default:
			w.parent = t.windowActive
		}
	}

	r := Result{OK: true}
	t.callback(h, &Event{Cmd: CmdPreInit}, &r)
	if !r.OK {
		t.release(h)
		return Handle{}, fmt.Errorf("create %s: %w", typ.Name, ErrRejected)
	}

	w.font = t.font
	w.flags |= FlagIgnoreInvalidate
	t.SetSize(h, width, height)
	t.SetPosition(h, x, y)
	w.flags &^= FlagIgnoreInvalidate
	t.Invalidate(h)

	r = Result{}
	t.callback(h, &Event{Cmd: CmdExcludeLinkedList}, &r)
	if !r.OK {
		t.link(h)
	}

	t.command(h, CmdInit)
	t.Invalidate(h)

	if !w.parent.IsZero() {
		var pr Result
		t.callback(w.parent, &Event{Cmd: CmdChildCreated, Child: h}, &pr)
	}
	t.debugf(t.config.Debug.Order, "created", "type", typ.Name, "id", id, "widget", h, "parent", w.parent)
	t.notify(NotifyCreated)
	return h, nil
}

// link appends h to its parent's children and moves it into place.
func (t *Tree) link(h Handle) {
	w := t.get(h)
	w.elem = t.children(w.parent).PushBack(h)
	t.moveToTop(h)
	t.moveToBottom(h)
}

// CanRemove asks h and all its descendants whether they can be removed. Any
// veto blocks the removal. The desktop can never be removed.
func (t *Tree) CanRemove(h Handle) bool {
	if h == t.desktop {
		return false
	}
	w := t.get(h)
	r := Result{OK: true}
	if t.callback(h, &Event{Cmd: CmdCanRemove}, &r) && !r.OK {
		return false
	}
	if w.container != nil {
		for e := w.container.children.Front(); e != nil; e = e.Next() {
			if !t.CanRemove(e.Value) {
				return false
			}
		}
	}
	return true
}

// Remove marks h for removal. The widget is freed by the next Sweep. If h
// is on the focus path, focus moves to its parent.
func (t *Tree) Remove(h Handle) bool {
	w := t.get(h)
	if !t.CanRemove(h) {
		return false
	}
	w.flags |= FlagRemove
	t.sweep = true
	if w.has(FlagFocus) {
		t.FocusSet(w.parent)
	}
	t.notify(NotifyRemoved)
	return true
}

// Sweep frees all widgets marked for removal and their descendants. It
// reports whether anything was pending.
func (t *Tree) Sweep() bool {
	if !t.sweep {
		return false
	}
	t.sweep = false

	// Widgets excluded from child lists are not reached by the walk below,
	// they go first, while their parents are still valid. Children of
	// excluded containers that stay are swept here too.
	for i := range t.slots {
		w := t.slots[i].w
		if w == nil || w.elem != nil || w.parent.IsZero() {
			continue
		}
		switch {
		case t.removing(w.self):
			if w.container != nil {
				t.cascade(w.self)
			}
			t.removeWidget(w.self)
		case w.container != nil:
			t.removeWidgets(w.self)
		}
	}
	t.removeWidgets(t.desktop)
	return true
}

// removing reports whether h or one of its ancestors is marked for removal.
func (t *Tree) removing(h Handle) bool {
	for ; !h.IsZero(); h = t.get(h).parent {
		if !t.Valid(h) || t.get(h).has(FlagRemove) {
			return true
		}
	}
	return false
}

// SweepPending reports whether widgets are marked for removal.
func (t *Tree) SweepPending() bool {
	return t.sweep
}

func (t *Tree) cascade(h Handle) {
	w := t.get(h)
	for e := w.container.children.Front(); e != nil; e = e.Next() {
		t.get(e.Value).flags |= FlagRemove
	}
	t.removeWidgets(h)
}

func (t *Tree) removeWidgets(parent Handle) {
	l := t.children(parent)
	if l == nil {
		return
	}
	l.Each(func(e *listElement) {
		h := e.Value
		w := t.get(h)
		if w.has(FlagRemove) {
			if w.container != nil {
				t.cascade(h)
			}
			t.removeWidget(h)
		} else if w.container != nil {
			t.removeWidgets(h)
		}
	})
}

// removeWidget frees h. Its children must be gone already.
func (t *Tree) removeWidget(h Handle) {
	w := t.get(h)
	if t.focused == h {
		if !w.parent.IsZero() {
			t.focused = w.parent
		} else {
			t.FocusClear()
		}
	}
	if t.focusedPrev == h {
		t.focusedPrev = Handle{}
	}
	if t.active == h {
		t.active = Handle{}
	}
	if t.activePrev == h {
		t.activePrev = w.parent
	}
	if t.windowActive == h {
		t.windowActive = w.parent
	}
	if t.touch.target == h {
		t.touch.target = Handle{}
	}

	t.command(h, CmdRemove)
	if w.parent.IsZero() || t.Valid(w.parent) {
		t.InvalidateWithParent(h)
	}

	t.freeText(w)
	t.StopTimer(h)
	t.freeColors(w)
	t.dropDialog(h)

	if w.elem != nil {
		t.children(w.parent).Remove(w.elem)
		w.elem = nil
	}
	t.debugf(t.config.Debug.Order, "removed", "type", w.typ.Name, "id", w.id, "widget", h)
	t.release(h)
}
