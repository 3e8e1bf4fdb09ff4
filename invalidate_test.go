package lcdui

import (
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInvalidateChild(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 20, 30, 100, 100, tr.Desktop())
	a := mustCreate(t, tr, plainType, 10, 10, 20, 20, p)
	settle(tr)

	tr.Invalidate(a)
	if !tr.Dirty(a) {
		t.Fatalf("widget not marked")
	}
	if tr.Dirty(p) {
		t.Fatalf("parent marked")
	}
	if got, want := tr.ClipRect(), image.Rect(30, 40, 50, 60); got != want {
		t.Fatalf("clip %v, want %v", got, want)
	}
	if !tr.NeedsRedraw() || !tr.IsInsideClip(a) {
		t.Fatalf("redraw state")
	}
}

func TestInvalidateOverlap(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())
	a := mustCreate(t, tr, plainType, 0, 0, 50, 50, p)
	b := mustCreate(t, tr, plainType, 25, 25, 50, 50, p)
	c := mustCreate(t, tr, plainType, 80, 80, 10, 10, p)
	settle(tr)

	tr.Invalidate(a)
	if !tr.Dirty(a) || !tr.Dirty(b) {
		t.Fatalf("overlapping later sibling not marked")
	}
	if tr.Dirty(c) {
		t.Fatalf("disjoint sibling marked")
	}
	settle(tr)

	tr.Invalidate(b)
	if tr.Dirty(a) {
		t.Fatalf("earlier sibling marked")
	}
}

func TestInvalidateParent(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())
	q := mustCreate(t, tr, boxType, 50, 50, 100, 100, tr.Desktop())
	a := mustCreate(t, tr, plainType, 10, 10, 10, 10, p)
	settle(tr)

	// p is not the most visible child of the desktop.
	tr.Invalidate(a)
	if !tr.Dirty(p) {
		t.Fatalf("parent with later siblings not marked")
	}
	if !tr.Dirty(q) {
		t.Fatalf("overlapping sibling of parent not marked")
	}
	settle(tr)

	ip := &Type{Name: "ip", Size: MinWidgetSize, Flags: FlagInvalidateParent}
	b := mustCreate(t, tr, ip, 10, 10, 10, 10, q)
	settle(tr)
	tr.Invalidate(b)
	if !tr.Dirty(q) {
		t.Fatalf("invalidate-parent type did not mark parent")
	}
	if got, want := tr.ClipRect(), image.Rect(60, 60, 70, 70); got != want {
		t.Fatalf("parent invalidation grew clip: %v, want %v", got, want)
	}
}

func TestInvalidateIgnore(t *testing.T) {
	tr := newTestTree(t)
	a := mustCreate(t, tr, plainType, 0, 0, 10, 10, tr.Desktop())
	settle(tr)
	tr.get(a).flags |= FlagIgnoreInvalidate
	tr.Invalidate(a)
	if tr.Dirty(a) || tr.NeedsRedraw() || !tr.ClipRect().Empty() {
		t.Fatalf("ignored invalidation had effect")
	}
}

func TestTransparency(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		tr := newTestTree(t, func(c *Config) { c.Transparency = enabled })
		p := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())
		a := mustCreate(t, tr, plainType, 10, 10, 10, 10, p)
		tr.SetTransparency(a, 0x80)
		settle(tr)

		tr.Invalidate(a)
		if tr.Dirty(p) != enabled {
			t.Fatalf("transparency %v: parent marked %v", enabled, tr.Dirty(p))
		}
	}
}

func TestClipMonotonic(t *testing.T) {
	tr := newTestTree(t)
	rnd := rand.New(rand.NewSource(2))
	var l []Handle
	for i := 0; i < 20; i++ {
		x, y := float32(rnd.Intn(300)), float32(rnd.Intn(220))
		l = append(l, mustCreate(t, tr, plainType, x, y, float32(1+rnd.Intn(40)), float32(1+rnd.Intn(40)), tr.Desktop()))
	}
	settle(tr)

	var want image.Rectangle
	for i := 0; i < 50; i++ {
		h := l[rnd.Intn(len(l))]
		prev := tr.ClipRect()
		tr.Invalidate(h)
		want = want.Union(tr.VisibleRect(h))
		if !want.In(tr.ClipRect()) {
			t.Fatalf("clip %v does not cover %v", tr.ClipRect(), want)
		}
		if !prev.In(tr.ClipRect()) {
			t.Fatalf("clip shrank from %v to %v", prev, tr.ClipRect())
		}
	}
}

func TestVisibleRect(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 10, 10, 100, 50, tr.Desktop())
	tr.SetPadding(p, NSpace(5))
	a := mustCreate(t, tr, plainType, 80, 30, 40, 40, p)

	if got, want := tr.Rect(a), image.Rect(95, 45, 135, 85); got != want {
		t.Fatalf("rect %v, want %v", got, want)
	}
	// Clipped to the parent's inner area (15,15)-(105,55).
	if got, want := tr.VisibleRect(a), image.Rect(95, 45, 105, 55); got != want {
		t.Fatalf("visible %v, want %v", got, want)
	}

	tr.SetScrollY(p, 80)
	if got := tr.VisibleRect(a); !got.Empty() {
		t.Fatalf("scrolled out widget visible: %v", got)
	}
	tr.SetScrollY(p, 20)
	tr.IncScrollY(p, 5)
	if got, want := tr.AbsoluteY(a), 15+30-25; got != want {
		t.Fatalf("absolute y %d, want %d", got, want)
	}

	// The display bounds the desktop.
	b := mustCreate(t, tr, plainType, 300, 200, 100, 100, tr.Desktop())
	if got, want := tr.VisibleRect(b), image.Rect(300, 200, 320, 240); got != want {
		t.Fatalf("visible %v, want %v", got, want)
	}
}

func TestPercentSize(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 0, 0, 200, 100, tr.Desktop())
	a := mustCreate(t, tr, plainType, 0, 0, 0, 0, p)
	tr.SetWidthPercent(a, 50)
	if got := tr.Width(a); got != 100 {
		t.Fatalf("width %d, want 100", got)
	}
	_, _, w, _ := tr.Geometry(a)
	if w != 50 {
		t.Fatalf("stored width %v, want 50", w)
	}
	tr.SetWidth(p, 300)
	if got := tr.Width(a); got != 150 {
		t.Fatalf("width after parent resize %d, want 150", got)
	}

	tr.SetPadding(p, SpaceXY(10, 0))
	if got := tr.Width(a); got != 140 {
		t.Fatalf("width with parent padding %d, want 140", got)
	}

	tr.SetPositionPercent(a, 50, 50)
	if got := tr.RelativeX(a); got != 140 {
		t.Fatalf("relative x %d, want 140", got)
	}
	if got := tr.RelativeY(a); got != 50 {
		t.Fatalf("relative y %d, want 50", got)
	}
}

func TestSizePrecedence(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 0, 0, 200, 100, tr.Desktop())
	a := mustCreate(t, tr, plainType, 20, 10, 30, 40, p)

	type size struct{ W, H int }
	get := func() size {
		return size{tr.Width(a), tr.Height(a)}
	}

	if diff := cmp.Diff(size{30, 40}, get()); diff != "" {
		t.Fatalf("fixed (-want +got):\n%s", diff)
	}
	tr.SetWidthPercent(a, 25)
	tr.SetHeightPercent(a, 50)
	if diff := cmp.Diff(size{50, 50}, get()); diff != "" {
		t.Fatalf("percent (-want +got):\n%s", diff)
	}
	tr.SetWidthFill(a, true)
	tr.SetHeightFill(a, true)
	if diff := cmp.Diff(size{180, 90}, get()); diff != "" {
		t.Fatalf("fill over percent (-want +got):\n%s", diff)
	}
	tr.SetExpanded(a, true)
	if diff := cmp.Diff(size{200, 100}, get()); diff != "" {
		t.Fatalf("expanded over fill (-want +got):\n%s", diff)
	}
	if tr.RelativeX(a) != 0 || tr.RelativeY(a) != 0 {
		t.Fatalf("expanded widget not at origin")
	}
	tr.ToggleExpanded(a)
	tr.SetWidthFill(a, false)
	if diff := cmp.Diff(size{50, 90}, get()); diff != "" {
		t.Fatalf("back to percent width (-want +got):\n%s", diff)
	}

	// Fill past the parent's edge is zero, not negative.
	tr.SetX(a, 250)
	tr.SetWidthFill(a, true)
	if got := tr.Width(a); got != 0 {
		t.Fatalf("fill past edge %d, want 0", got)
	}
}

func TestGeometryInvalidates(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 0, 0, 200, 100, tr.Desktop())
	a := mustCreate(t, tr, plainType, 10, 10, 20, 20, p)
	settle(tr)

	tr.SetPosition(a, 50, 50)
	if got, want := tr.ClipRect(), image.Rect(10, 10, 70, 70); got != want {
		t.Fatalf("clip after move %v, want %v", got, want)
	}
	if !tr.Dirty(p) {
		t.Fatalf("parent not marked after move")
	}
	settle(tr)

	tr.SetSize(a, 10, 10)
	if got, want := tr.ClipRect(), image.Rect(50, 50, 70, 70); got != want {
		t.Fatalf("clip after shrink %v, want %v", got, want)
	}
	settle(tr)

	tr.SetSize(a, 10, 10)
	if tr.NeedsRedraw() {
		t.Fatalf("setting the same size invalidated")
	}
}

func TestRedraw(t *testing.T) {
	tr := newTestTree(t)
	mustCreate(t, tr, WindowType, 200, 200, 20, 20, tr.Desktop())
	p := mustCreate(t, tr, WindowType, 0, 0, 100, 100, tr.Desktop())
	a := mustCreate(t, tr, WindowType, 10, 10, 20, 20, p)

	r := &recorder{}
	if n := tr.Redraw(r); n != 4 {
		t.Fatalf("first redraw drew %d, want 4", n)
	}
	if tr.NeedsRedraw() || !tr.ClipRect().Empty() || tr.Dirty(a) {
		t.Fatalf("redraw state not reset")
	}
	if tr.Redraw(r) != 0 {
		t.Fatalf("second redraw drew widgets")
	}

	tr.Invalidate(a)
	r = &recorder{}
	if n := tr.Redraw(r); n != 1 {
		t.Fatalf("redraw after invalidate drew %d, want 1", n)
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(10, 10, 30, 30)}, r.clips); diff != "" {
		t.Fatalf("clips (-want +got):\n%s", diff)
	}

	// Drawing a parent draws its children inside the clip.
	tr.Invalidate(p)
	if n := tr.Redraw(&recorder{}); n != 2 {
		t.Fatalf("redraw of parent drew %d, want 2", n)
	}

	tr.Hide(a)
	r = &recorder{}
	tr.Redraw(r)
	for _, f := range r.fills {
		if f == tr.Rect(a) {
			t.Fatalf("hidden widget drawn")
		}
	}
}
