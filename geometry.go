package lcdui

import (
	"image"
)

func (t *Tree) parentInnerWidth(w *Widget) int {
	if w.parent.IsZero() {
		return t.config.Width
	}
	return t.InnerWidth(w.parent)
}

func (t *Tree) parentInnerHeight(w *Widget) int {
	if w.parent.IsZero() {
		return t.config.Height
	}
	return t.InnerHeight(w.parent)
}

// Width returns the effective width in pixels. Expanded takes precedence
// over fill, fill over percent, and percent over the fixed width.
func (t *Tree) Width(h Handle) int {
	w := t.get(h)
	switch {
	case w.has(FlagExpanded):
		return t.parentInnerWidth(w)
	case w.has(FlagWidthFill):
		if v := t.parentInnerWidth(w) - t.RelativeX(h); v > 0 {
			return v
		}
		return 0
	case w.has(FlagWidthPercent):
		return percent(w.width, t.parentInnerWidth(w))
	}
	return round(w.width)
}

// Height is Width for the vertical axis.
func (t *Tree) Height(h Handle) int {
	w := t.get(h)
	switch {
	case w.has(FlagExpanded):
		return t.parentInnerHeight(w)
	case w.has(FlagHeightFill):
		if v := t.parentInnerHeight(w) - t.RelativeY(h); v > 0 {
			return v
		}
		return 0
	case w.has(FlagHeightPercent):
		return percent(w.height, t.parentInnerHeight(w))
	}
	return round(w.height)
}

// InnerWidth is the width without padding.
func (t *Tree) InnerWidth(h Handle) int {
	return t.Width(h) - t.get(h).padding.Dx()
}

func (t *Tree) InnerHeight(h Handle) int {
	return t.Height(h) - t.get(h).padding.Dy()
}

// RelativeX is the x offset inside the parent's inner area.
func (t *Tree) RelativeX(h Handle) int {
	w := t.get(h)
	switch {
	case w.has(FlagExpanded):
		return 0
	case w.has(FlagXPercent):
		return percent(w.x, t.parentInnerWidth(w))
	}
	return round(w.x)
}

func (t *Tree) RelativeY(h Handle) int {
	w := t.get(h)
	switch {
	case w.has(FlagExpanded):
		return 0
	case w.has(FlagYPercent):
		return percent(w.y, t.parentInnerHeight(w))
	}
	return round(w.y)
}

// AbsoluteX is the screen x of the widget, including ancestor padding and
// scroll offsets.
func (t *Tree) AbsoluteX(h Handle) int {
	x := t.RelativeX(h)
	for p := t.get(h).parent; !p.IsZero(); {
		pw := t.get(p)
		x += t.RelativeX(p) + pw.padding.Left
		if pw.container != nil {
			x -= pw.container.scrollX
		}
		p = pw.parent
	}
	return x
}

func (t *Tree) AbsoluteY(h Handle) int {
	y := t.RelativeY(h)
	for p := t.get(h).parent; !p.IsZero(); {
		pw := t.get(p)
		y += t.RelativeY(p) + pw.padding.Top
		if pw.container != nil {
			y -= pw.container.scrollY
		}
		p = pw.parent
	}
	return y
}

// Rect is the unclipped screen rectangle of h.
func (t *Tree) Rect(h Handle) image.Rectangle {
	return rect(t.AbsoluteX(h), t.AbsoluteY(h), t.Width(h), t.Height(h))
}

// innerArea is the screen area children of the parent of w are drawn in.
func (t *Tree) innerArea(w *Widget) image.Rectangle {
	if w.parent.IsZero() {
		return image.Rect(0, 0, t.config.Width, t.config.Height)
	}
	return t.get(w.parent).padding.Inset(t.Rect(w.parent))
}

// VisibleRect is the part of h on screen, clipped by the inner area of
// every ancestor. It is empty when h is scrolled or placed out of view.
func (t *Tree) VisibleRect(h Handle) image.Rectangle {
	r := t.Rect(h)
	for w := t.get(h); ; w = t.get(w.parent) {
		r = r.Intersect(t.innerArea(w))
		if w.parent.IsZero() {
			break
		}
	}
	return r
}

// Geometry returns the stored position and size, in pixels or percent
// depending on the flags.
func (t *Tree) Geometry(h Handle) (x, y, width, height float32) {
	w := t.get(h)
	return w.x, w.y, w.width, w.height
}

func (t *Tree) setSize(h Handle, width, height float32, force bool) {
	w := t.get(h)
	if !force && w.width == width && w.height == height {
		return
	}
	expanded := w.has(FlagExpanded)
	if !expanded {
		t.InvalidateWithParent(h)
	}
	grow := force || width > w.width || height > w.height
	w.width = width
	w.height = height
	if !expanded && grow {
		t.InvalidateWithParent(h)
	}
}

func (t *Tree) setPosition(h Handle, x, y float32, force bool) {
	w := t.get(h)
	if !force && w.x == x && w.y == y {
		return
	}
	expanded := w.has(FlagExpanded)
	if !expanded {
		t.InvalidateWithParent(h)
	}
	w.x = x
	w.y = y
	if !expanded {
		t.InvalidateWithParent(h)
	}
}

// setFlags changes flags in mask to v and reports whether any changed.
func (w *Widget) setFlags(mask Flags, v bool) bool {
	old := w.flags
	if v {
		w.flags |= mask
	} else {
		w.flags &^= mask
	}
	return old != w.flags
}

// SetSize sets width and height in pixels.
func (t *Tree) SetSize(h Handle, width, height float32) {
	force := t.get(h).setFlags(FlagWidthPercent|FlagHeightPercent, false)
	t.setSize(h, width, height, force)
}

// SetSizePercent sets width and height in percent of the parent inner area.
func (t *Tree) SetSizePercent(h Handle, width, height float32) {
	force := t.get(h).setFlags(FlagWidthPercent|FlagHeightPercent, true)
	t.setSize(h, width, height, force)
}

func (t *Tree) SetWidth(h Handle, width float32) {
	w := t.get(h)
	force := w.setFlags(FlagWidthPercent, false)
	t.setSize(h, width, w.height, force)
}

func (t *Tree) SetHeight(h Handle, height float32) {
	w := t.get(h)
	force := w.setFlags(FlagHeightPercent, false)
	t.setSize(h, w.width, height, force)
}

func (t *Tree) SetWidthPercent(h Handle, width float32) {
	w := t.get(h)
	force := w.setFlags(FlagWidthPercent, true)
	t.setSize(h, width, w.height, force)
}

func (t *Tree) SetHeightPercent(h Handle, height float32) {
	w := t.get(h)
	force := w.setFlags(FlagHeightPercent, true)
	t.setSize(h, w.width, height, force)
}

// SetWidthFill makes the width extend to the right edge of the parent.
func (t *Tree) SetWidthFill(h Handle, fill bool) {
	t.setFill(h, FlagWidthFill, fill)
}

func (t *Tree) SetHeightFill(h Handle, fill bool) {
	t.setFill(h, FlagHeightFill, fill)
}

func (t *Tree) setFill(h Handle, f Flags, fill bool) {
	w := t.get(h)
	if w.has(f) == fill {
		return
	}
	t.InvalidateWithParent(h)
	w.setFlags(f, fill)
	t.InvalidateWithParent(h)
}

// SetPosition sets the position in pixels relative to the parent.
func (t *Tree) SetPosition(h Handle, x, y float32) {
	force := t.get(h).setFlags(FlagXPercent|FlagYPercent, false)
	t.setPosition(h, x, y, force)
}

func (t *Tree) SetPositionPercent(h Handle, x, y float32) {
	force := t.get(h).setFlags(FlagXPercent|FlagYPercent, true)
	t.setPosition(h, x, y, force)
}

func (t *Tree) SetX(h Handle, x float32) {
	w := t.get(h)
	force := w.setFlags(FlagXPercent, false)
	t.setPosition(h, x, w.y, force)
}

func (t *Tree) SetY(h Handle, y float32) {
	w := t.get(h)
	force := w.setFlags(FlagYPercent, false)
	t.setPosition(h, w.x, y, force)
}

func (t *Tree) SetXPercent(h Handle, x float32) {
	w := t.get(h)
	force := w.setFlags(FlagXPercent, true)
	t.setPosition(h, x, w.y, force)
}

func (t *Tree) SetYPercent(h Handle, y float32) {
	w := t.get(h)
	force := w.setFlags(FlagYPercent, true)
	t.setPosition(h, w.x, y, force)
}

// SetExpanded makes h cover the parent's inner area, ignoring its own
// position and size.
func (t *Tree) SetExpanded(h Handle, expanded bool) {
	w := t.get(h)
	if w.has(FlagExpanded) == expanded {
		return
	}
	if expanded {
		w.flags |= FlagExpanded
		t.Invalidate(h)
	} else {
		t.InvalidateWithParent(h)
		w.flags &^= FlagExpanded
	}
}

func (t *Tree) ToggleExpanded(h Handle) {
	t.SetExpanded(h, !t.get(h).has(FlagExpanded))
}

func (t *Tree) Padding(h Handle) Space {
	return t.get(h).padding
}

// SetPadding changes the padding, moving all children.
func (t *Tree) SetPadding(h Handle, s Space) {
	w := t.get(h)
	if w.padding == s {
		return
	}
	w.padding = s
	t.Invalidate(h)
}

func (t *Tree) container(h Handle) *Container {
	c := t.get(h).container
	if c == nil {
		panic("lcdui: scroll on widget without children")
	}
	return c
}

func (t *Tree) ScrollX(h Handle) int {
	return t.container(h).scrollX
}

func (t *Tree) ScrollY(h Handle) int {
	return t.container(h).scrollY
}

// SetScrollX scrolls the children of h. Only containers scroll.
func (t *Tree) SetScrollX(h Handle, v int) {
	c := t.container(h)
	if c.scrollX == v {
		return
	}
	c.scrollX = v
	t.Invalidate(h)
}

func (t *Tree) SetScrollY(h Handle, v int) {
	c := t.container(h)
	if c.scrollY == v {
		return
	}
	c.scrollY = v
	t.Invalidate(h)
}

func (t *Tree) IncScrollX(h Handle, delta int) {
	t.SetScrollX(h, t.container(h).scrollX+delta)
}

func (t *Tree) IncScrollY(h Handle, delta int) {
	t.SetScrollY(h, t.container(h).scrollY+delta)
}
