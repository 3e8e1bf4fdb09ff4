package lcdui

import (
	"9fans.net/go/draw"
)

// Window colors.
const (
	WindowColorBackground = iota
	WindowColorBorder
)

// WindowType is a plain container. The desktop is a window.
var WindowType = &Type{
	Name:     "window",
	Size:     MinContainerSize,
	Flags:    FlagAllowChildren,
	Callback: windowCallback,
	Colors: []draw.Color{
		WindowColorBackground: 0xfcfcfcff,
		WindowColorBorder:     0xbbbbbbff,
	},
}

var _ Callback = windowCallback

func windowCallback(t *Tree, h Handle, e *Event, r *Result) bool {
	switch e.Cmd {
	case CmdDraw:
		rr := t.Rect(h)
		e.Painter.Fill(rr, t.Color(h, WindowColorBackground))
		if t.Flags(h)&Flag3D != 0 {
			e.Painter.Border(rr, 1, t.Color(h, WindowColorBorder))
		}
		return true
	case CmdTouchStart:
		// Touching an empty window area focuses the window, but only a
		// child window is brought to front.
		if t.Flags(h)&FlagChild != 0 {
			t.PutOnFront(h)
		}
		r.Touch = TouchHandled
		return true
	}
	return false
}

// CreateWindow creates a container window below parent. With child set it
// is a child window, brought to front when touched.
func CreateWindow(t *Tree, id ID, x, y, width, height float32, parent Handle, cb Callback, flags CreateFlags, child bool) (Handle, error) {
	h, err := t.Create(WindowType, id, x, y, width, height, parent, cb, flags)
	if err != nil {
		return Handle{}, err
	}
	if child {
		t.get(h).flags |= FlagChild
	}
	return h, nil
}

// WindowConstructor is a Constructor for dialogs with a window body.
func WindowConstructor(t *Tree, id ID, x, y, width, height float32, parent Handle, cb Callback, flags CreateFlags) (Handle, error) {
	return CreateWindow(t, id, x, y, width, height, parent, cb, flags, true)
}
