package lcdui

// The focus path is the focused widget and all its ancestors below the
// desktop, each has FlagFocus set. At most one widget is active, the one
// being pressed.

func (t *Tree) Focused() Handle {
	return t.focused
}

func (t *Tree) FocusedPrev() Handle {
	return t.focusedPrev
}

func (t *Tree) Active() Handle {
	return t.active
}

func (t *Tree) ActivePrev() Handle {
	return t.activePrev
}

// commonParent returns the deepest widget on the paths from both a and b to
// the root, the desktop if there is none.
func (t *Tree) commonParent(a, b Handle) Handle {
	for x := a; !x.IsZero(); x = t.get(x).parent {
		for y := b; !y.IsZero(); y = t.get(y).parent {
			if x == y {
				return x
			}
		}
	}
	return t.desktop
}

// FocusSet moves focus to h. Widgets leaving the focus path get CmdFocusOut,
// widgets joining it get CmdFocusIn, the shared part of the path is left
// alone. A zero h clears focus.
func (t *Tree) FocusSet(h Handle) {
	if t.focused == h {
		return
	}
	if h.IsZero() {
		t.FocusClear()
		return
	}
	common := t.desktop
	if !t.focused.IsZero() {
		common = t.commonParent(t.focused, h)
		for f := t.focused; !f.IsZero() && f != common; f = t.get(f).parent {
			t.get(f).flags &^= FlagFocus
			t.command(f, CmdFocusOut)
			t.Invalidate(f)
		}
		t.focusedPrev = t.focused
	}
	t.focused = h
	for f := h; !f.IsZero() && f != common; f = t.get(f).parent {
		t.get(f).flags |= FlagFocus
		t.command(f, CmdFocusIn)
		t.Invalidate(f)
	}
	t.debugf(t.config.Debug.Input, "focus", "widget", h, "common", common)
}

// FocusClear takes focus away from the whole focus path.
func (t *Tree) FocusClear() {
	if t.focused.IsZero() || t.focused == t.desktop {
		return
	}
	for f := t.focused; !f.IsZero() && f != t.desktop; f = t.get(f).parent {
		t.get(f).flags &^= FlagFocus
		t.command(f, CmdFocusOut)
		t.Invalidate(f)
	}
	t.focusedPrev = t.focused
	t.focused = Handle{}
}

// ActiveClear releases the active widget.
func (t *Tree) ActiveClear() {
	if t.active.IsZero() {
		return
	}
	h := t.active
	t.command(h, CmdActiveOut)
	t.get(h).flags &^= FlagActive | FlagTouchMove
	t.activePrev = h
	t.active = Handle{}
}

// ActiveSet makes h the active widget, releasing the previous one.
func (t *Tree) ActiveSet(h Handle) {
	t.ActiveClear()
	t.active = h
	if !h.IsZero() {
		t.get(h).flags |= FlagActive
		t.command(h, CmdActiveIn)
	}
}

// Hide hides h. Focus and the active state leave a hidden subtree.
func (t *Tree) Hide(h Handle) {
	w := t.get(h)
	if w.has(FlagHidden) {
		return
	}
	w.flags |= FlagHidden
	t.InvalidateWithParent(h)
	if !t.focused.IsZero() && (t.focused == h || t.IsChildOf(t.focused, h)) {
		t.FocusSet(w.parent)
	}
	if !t.active.IsZero() && (t.active == h || t.IsChildOf(t.active, h)) {
		t.ActiveClear()
	}
}

func (t *Tree) Show(h Handle) {
	w := t.get(h)
	if !w.has(FlagHidden) {
		return
	}
	w.flags &^= FlagHidden
	t.Invalidate(h)
}

// HideChildren hides all children of h.
func (t *Tree) HideChildren(h Handle) {
	for _, c := range t.Children(h) {
		t.Hide(c)
	}
}

// IsHidden reports whether h or one of its ancestors is hidden.
func (t *Tree) IsHidden(h Handle) bool {
	for ; !h.IsZero(); h = t.get(h).parent {
		if t.get(h).has(FlagHidden) {
			return true
		}
	}
	return false
}

func (t *Tree) SetDisabled(h Handle, disabled bool) {
	w := t.get(h)
	if w.setFlags(FlagDisabled, disabled) {
		if disabled && w.has(FlagFocus) {
			t.FocusSet(w.parent)
		}
		t.Invalidate(h)
	}
}
