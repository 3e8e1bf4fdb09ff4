package lcdui

import (
	"image"
	"os"

	"9fans.net/go/draw"
)

type touchState struct {
	pressed   bool
	target    Handle // widget that took the touch start
	startMsec uint32
	lastClick Handle
	lastMsec  uint32
}

// hit returns the most visible widget at pt in the subtree of h.
func (t *Tree) hit(h Handle, pt image.Point) Handle {
	w := t.get(h)
	if w.has(FlagHidden) || !pt.In(t.VisibleRect(h)) {
		return Handle{}
	}
	if w.container != nil {
		for e := w.container.children.Back(); e != nil; e = e.Prev() {
			if c := t.hit(e.Value, pt); !c.IsZero() {
				return c
			}
		}
	}
	return h
}

// HitTest returns the widget that would receive a touch at pt.
func (t *Tree) HitTest(pt image.Point) Handle {
	root := t.desktop
	if d := t.topDialog(); !d.IsZero() {
		root = d
	}
	return t.hit(root, pt)
}

func (t *Tree) sendTouch(h Handle, cmd Command, td TouchData) TouchStatus {
	td.Point = td.Abs.Sub(image.Pt(t.AbsoluteX(h), t.AbsoluteY(h)))
	var r Result
	if !t.callback(h, &Event{Cmd: cmd, Touch: td}, &r) {
		return TouchContinue
	}
	return r.Touch
}

// processTouch handles one touch sample. A press goes to the widget under
// it, bubbling to ancestors until one handles it. That widget becomes active
// and receives moves and the release, and a click if the release is inside
// it and it did not take the moves.
func (t *Tree) processTouch(td TouchData) {
	st := &t.touch
	td.Abs = td.Point
	t.debugf(t.config.Debug.Input, "touch", "point", td.Abs, "pressed", td.Pressed)

	switch {
	case td.Pressed && !st.pressed:
		st.pressed = true
		st.startMsec = td.Msec
		st.target = Handle{}
		root := t.desktop
		if d := t.topDialog(); !d.IsZero() {
			root = d
		}
		for h := t.hit(root, td.Abs); !h.IsZero(); h = t.get(h).parent {
			if !t.get(h).has(FlagDisabled) {
				if s := t.sendTouch(h, CmdTouchStart, td); s != TouchContinue {
					st.target = h
					if s == TouchHandled {
						t.FocusSet(h)
					}
					t.ActiveSet(h)
					break
				}
			}
			if h == root {
				break
			}
		}

	case td.Pressed:
		if h := st.target; !h.IsZero() && h == t.active {
			if t.sendTouch(h, CmdTouchMove, td) != TouchContinue {
				t.get(h).flags |= FlagTouchMove
			}
		}

	case st.pressed:
		st.pressed = false
		h := st.target
		st.target = Handle{}
		if h.IsZero() {
			return
		}
		t.sendTouch(h, CmdTouchEnd, td)
		w := t.get(h)
		if !w.has(FlagTouchMove|FlagRemove) && td.Abs.In(t.VisibleRect(h)) {
			var cmd Command
			switch {
			case st.lastClick == h && td.Msec-st.lastMsec <= uint32(t.config.DblClickMsec):
				cmd = CmdDblClick
				st.lastClick = Handle{}
			case td.Msec-st.startMsec >= uint32(t.config.LongClickMsec):
				cmd = CmdLongClick
				st.lastClick = Handle{}
			default:
				cmd = CmdClick
				st.lastClick = h
				st.lastMsec = td.Msec
			}
			t.debugf(t.config.Debug.Input, "click", "widget", h, "command", cmd)
			t.command(h, cmd)
		}
		if t.Valid(h) && t.active == h {
			t.ActiveClear()
		}
	}
}

// processKey sends a key to the focused widget, bubbling to ancestors until
// handled. While a dialog is open keys do not leave it. Function keys 1 and
// 3 toggle input logging and print the tree.
func (t *Tree) processKey(k KeyData) {
	switch k.Key {
	case draw.KeyFn + 1:
		t.config.Debug.Input = !t.config.Debug.Input
		t.log.Info("lcdui: debug input", "on", t.config.Debug.Input)
		return
	case draw.KeyFn + 3:
		t.Print(os.Stderr, Handle{})
		return
	}
	t.debugf(t.config.Debug.Input, "key", "key", k.Key, "focused", t.focused)

	dlg := t.topDialog()
	if !dlg.IsZero() && t.focused != dlg && !(t.Valid(t.focused) && t.IsChildOf(t.focused, dlg)) {
		return
	}
	for h := t.focused; !h.IsZero(); h = t.get(h).parent {
		if !t.get(h).has(FlagDisabled) {
			r := Result{}
			if t.callback(h, &Event{Cmd: CmdKeyPress, Key: k}, &r) && r.Key == KeyHandled {
				return
			}
		}
		if h == dlg {
			return
		}
	}
}
