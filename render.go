package lcdui

import (
	"image"

	"9fans.net/go/draw"
)

// Painter draws on the display in screen coordinates. All drawing is
// limited to the clip set last.
type Painter interface {
	SetClip(r image.Rectangle)
	Fill(r image.Rectangle, c draw.Color)
	Border(r image.Rectangle, width int, c draw.Color)
	Text(r image.Rectangle, f Font, c draw.Color, s string)
}

// Flusher is implemented by painters that buffer output.
type Flusher interface {
	Flush() error
}

// Redraw draws all widgets marked for redraw that intersect the clip
// rectangle, back to front, then clears the marks and the clip. Children of
// a drawn widget are drawn too. It returns the number of widgets drawn.
func (t *Tree) Redraw(p Painter) int {
	if !t.redraw {
		return 0
	}
	n := 0
	if !t.clip.Empty() {
		n = t.draw(t.desktop, p, t.clip, false)
	}
	t.clearRedraw(t.desktop)
	t.clip = image.Rectangle{}
	t.redraw = false
	t.debugf(t.config.Debug.Invalidate, "redraw", "drawn", n)
	return n
}

func (t *Tree) draw(h Handle, p Painter, clip image.Rectangle, force bool) int {
	w := t.get(h)
	if w.has(FlagHidden) {
		return 0
	}
	vis := t.VisibleRect(h).Intersect(clip)
	if vis.Empty() {
		return 0
	}
	n := 0
	if force || w.has(FlagRedraw) {
		p.SetClip(vis)
		var r Result
		t.callback(h, &Event{Cmd: CmdDraw, Painter: p, Clip: vis}, &r)
		n++
		force = true
	}
	if w.container != nil {
		for e := w.container.children.Front(); e != nil; e = e.Next() {
			n += t.draw(e.Value, p, clip, force)
		}
	}
	return n
}

func (t *Tree) clearRedraw(h Handle) {
	w := t.get(h)
	w.flags &^= FlagRedraw
	if w.container != nil {
		for e := w.container.children.Front(); e != nil; e = e.Next() {
			t.clearRedraw(e.Value)
		}
	}
}

// Dirty reports whether h is marked for redraw.
func (t *Tree) Dirty(h Handle) bool {
	return t.get(h).has(FlagRedraw)
}
