package lcdui

import (
	"image"
)

// invalidate marks h for redraw and, with clip, grows the clip rectangle
// by its visible rect. Later siblings overlapping h are marked as well, as
// they are drawn over it. A parent that is not the most visible of its own
// siblings is marked too.
func (t *Tree) invalidate(h Handle, clip bool) {
	w := t.get(h)
	if w.has(FlagIgnoreInvalidate) {
		return
	}
	w.flags |= FlagRedraw
	t.redraw = true
	if clip {
		t.expandClip(t.VisibleRect(h))
	}

	if t.config.Transparency && w.transparent() && !w.parent.IsZero() {
		t.invalidate(w.parent, false)
	}
	for e1 := w.elem; e1 != nil; e1 = e1.Next() {
		r1 := t.VisibleRect(e1.Value)
		for e2 := e1.Next(); e2 != nil; e2 = e2.Next() {
			w2 := t.get(e2.Value)
			if w2.has(FlagRedraw) || !r1.Overlaps(t.VisibleRect(e2.Value)) {
				continue
			}
			w2.flags |= FlagRedraw
		}
	}

	if !w.parent.IsZero() && !t.isLast(w.parent) {
		t.invalidate(w.parent, false)
	}

	if t.config.Transparency {
		for p := w.parent; !p.IsZero(); p = t.get(p).parent {
			if t.get(p).transparent() {
				t.invalidate(p, false)
				break
			}
		}
	}
	t.debugf(t.config.Debug.Invalidate, "invalidate", "widget", h, "clip", t.clip)
}

func (t *Tree) expandClip(r image.Rectangle) {
	t.clip = t.clip.Union(r)
}

// Invalidate marks h for redraw and adds its visible area to the clip
// rectangle. Widgets with FlagInvalidateParent, and transparent widgets,
// invalidate their parent too.
func (t *Tree) Invalidate(h Handle) {
	t.invalidate(h, true)
	w := t.get(h)
	if w.parent.IsZero() {
		return
	}
	if w.has(FlagInvalidateParent) || w.typ.Flags&FlagInvalidateParent != 0 || (t.config.Transparency && w.transparent()) {
		t.invalidate(w.parent, false)
	}
}

// InvalidateWithParent invalidates h with clipping and its parent without.
// Geometry changes use it so the parent repaints the old footprint.
func (t *Tree) InvalidateWithParent(h Handle) {
	w := t.get(h)
	if w.has(FlagIgnoreInvalidate) {
		return
	}
	t.invalidate(h, true)
	if !w.parent.IsZero() {
		t.invalidate(w.parent, false)
	}
}

// ClipRect is the screen area that needs redrawing, empty if none.
func (t *Tree) ClipRect() image.Rectangle {
	return t.clip
}

// NeedsRedraw reports whether any widget is marked for redraw.
func (t *Tree) NeedsRedraw() bool {
	return t.redraw
}

// IsInsideClip reports whether the visible part of h intersects the clip
// rectangle.
func (t *Tree) IsInsideClip(h Handle) bool {
	return t.VisibleRect(h).Overlaps(t.clip)
}
