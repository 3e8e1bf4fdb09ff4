package lcdui

import (
	"fmt"
)

// Constructor creates the body widget of a dialog, see CreateDialog.
type Constructor func(t *Tree, id ID, x, y, width, height float32, parent Handle, cb Callback, flags CreateFlags) (Handle, error)

type dialog struct {
	h    Handle
	done chan int // set for blocking dialogs, buffered
}

// CreateDialog creates a widget with ctor on the desktop and makes it a
// dialog: it is drawn above all other widgets and takes all input until
// dismissed.
func (t *Tree) CreateDialog(id ID, x, y, width, height float32, ctor Constructor, cb Callback, flags CreateFlags) (Handle, error) {
	if ctor == nil {
		return Handle{}, ErrNoConstructor
	}
	h, err := ctor(t, id, x, y, width, height, t.desktop, cb, flags|CreateParentDesktop)
	if err != nil {
		return Handle{}, fmt.Errorf("create dialog: %w", err)
	}
	t.get(h).flags |= FlagDialogBase
	t.moveToBottom(h)
	t.Invalidate(h)
	t.dialogs.Add(&dialog{h: h})
	return h, nil
}

func (t *Tree) findDialog(h Handle) *dialog {
	for e := t.dialogs.Next(nil); e != nil; e = t.dialogs.Next(e) {
		if e.Value.h == h {
			return e.Value
		}
	}
	return nil
}

// Dialogs returns the open dialogs, oldest first.
func (t *Tree) Dialogs() []Handle {
	var l []Handle
	for _, d := range t.dialogs.Values() {
		l = append(l, d.h)
	}
	return l
}

// DismissDialog closes dialog h with status. The widget gets CmdOnDismiss,
// a blocked creator is released, and the widget is removed.
func (t *Tree) DismissDialog(h Handle, status int) bool {
	d := t.findDialog(h)
	if d == nil {
		return false
	}
	var r Result
	t.callback(h, &Event{Cmd: CmdOnDismiss, Status: status}, &r)
	t.dialogs.FindRemove(d)
	if d.done != nil {
		d.done <- status
	}
	if !t.Remove(h) {
		t.log.Info("lcdui: dismissed dialog refused removal", "widget", h)
	}
	return true
}

// dropDialog forgets a dialog freed without dismissal.
func (t *Tree) dropDialog(h Handle) {
	d := t.findDialog(h)
	if d == nil {
		return
	}
	t.dialogs.FindRemove(d)
	if d.done != nil {
		d.done <- -1
	}
}

// topDialog returns the most visible shown dialog, if any.
func (t *Tree) topDialog() Handle {
	l := t.children(t.desktop)
	for e := l.Back(); e != nil; e = e.Prev() {
		w := t.get(e.Value)
		if !w.dialogBase() {
			break
		}
		if !w.has(FlagHidden | FlagRemove) {
			return e.Value
		}
	}
	return Handle{}
}
