package lcdui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFocusPath(t *testing.T) {
	tr := newTestTree(t)
	ev := &events{}
	w1, _ := tr.Create(WindowType, 0, 0, 0, 100, 100, tr.Desktop(), ev.callback("w1"), 0)
	w2, _ := tr.Create(WindowType, 0, 100, 0, 100, 100, tr.Desktop(), ev.callback("w2"), 0)
	a, _ := tr.Create(plainType, 0, 0, 0, 10, 10, w1, ev.callback("a"), 0)
	b, _ := tr.Create(plainType, 0, 0, 0, 10, 10, w2, ev.callback("b"), 0)

	tr.FocusSet(a)
	if diff := cmp.Diff([]string{"a:focusin", "w1:focusin"}, ev.l); diff != "" {
		t.Fatalf("focus a (-want +got):\n%s", diff)
	}
	ev.l = nil

	tr.FocusSet(b)
	want := []string{"a:focusout", "w1:focusout", "b:focusin", "w2:focusin"}
	if diff := cmp.Diff(want, ev.l); diff != "" {
		t.Fatalf("focus b (-want +got):\n%s", diff)
	}
	if tr.Flags(a)&FlagFocus != 0 || tr.Flags(w1)&FlagFocus != 0 {
		t.Fatalf("old focus path still flagged")
	}
	if tr.Flags(b)&FlagFocus == 0 || tr.Flags(w2)&FlagFocus == 0 {
		t.Fatalf("new focus path not flagged")
	}
	if tr.Flags(tr.Desktop())&FlagFocus != 0 {
		t.Fatalf("desktop flagged")
	}
	if tr.Focused() != b || tr.FocusedPrev() != a {
		t.Fatalf("focused %v prev %v", tr.Focused(), tr.FocusedPrev())
	}
	ev.l = nil

	// Within one window only the differing part changes.
	c, _ := tr.Create(plainType, 0, 20, 0, 10, 10, w2, ev.callback("c"), 0)
	tr.FocusSet(c)
	if diff := cmp.Diff([]string{"b:focusout", "c:focusin"}, ev.l); diff != "" {
		t.Fatalf("focus sibling (-want +got):\n%s", diff)
	}
	ev.l = nil

	tr.FocusSet(Handle{})
	if diff := cmp.Diff([]string{"c:focusout", "w2:focusout"}, ev.l); diff != "" {
		t.Fatalf("focus clear (-want +got):\n%s", diff)
	}
	if !tr.Focused().IsZero() {
		t.Fatalf("focus not cleared")
	}
}

func TestFocusHide(t *testing.T) {
	tr := newTestTree(t)
	w := mustCreate(t, tr, WindowType, 0, 0, 100, 100, tr.Desktop())
	a := mustCreate(t, tr, plainType, 0, 0, 10, 10, w)
	tr.FocusSet(a)
	tr.ActiveSet(a)

	tr.Hide(w)
	if !tr.IsHidden(a) {
		t.Fatalf("child of hidden window not hidden")
	}
	if tr.Focused() != tr.Desktop() {
		t.Fatalf("focus %v, want desktop", tr.Focused())
	}
	if !tr.Active().IsZero() || tr.ActivePrev() != a {
		t.Fatalf("active not released")
	}
	tr.Show(w)
	if tr.IsHidden(a) {
		t.Fatalf("still hidden")
	}

	tr.FocusSet(a)
	tr.SetDisabled(a, true)
	if tr.Focused() != w {
		t.Fatalf("disabled widget kept focus")
	}
}

func TestRemoveVeto(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())
	veto := func(t *Tree, h Handle, e *Event, r *Result) bool {
		if e.Cmd == CmdCanRemove {
			r.OK = false
			return true
		}
		return false
	}
	a, err := tr.Create(plainType, 0, 0, 0, 10, 10, p, veto, 0)
	if err != nil {
		t.Fatal(err)
	}
	n := tr.Count()

	if tr.Remove(p) {
		t.Fatalf("remove not vetoed")
	}
	if tr.Flags(p)&FlagRemove != 0 || tr.Flags(a)&FlagRemove != 0 {
		t.Fatalf("vetoed widgets flagged for removal")
	}
	if tr.SweepPending() || tr.Sweep() || tr.Count() != n {
		t.Fatalf("tree changed")
	}
	if tr.CanRemove(tr.Desktop()) || tr.Remove(tr.Desktop()) {
		t.Fatalf("desktop removable")
	}
}

func TestRemoveCascade(t *testing.T) {
	tr := newTestTree(t)
	ev := &events{}
	w, _ := tr.Create(WindowType, 0, 0, 0, 100, 100, tr.Desktop(), ev.callback("w"), 0)
	p, _ := tr.Create(boxType, 0, 0, 0, 50, 50, w, ev.callback("p"), 0)
	a, _ := tr.Create(plainType, 0, 0, 0, 10, 10, p, ev.callback("a"), 0)
	tr.SetText(a, "x")
	tr.StartTimer(a, 0, true, func(*Tree, Handle) {})
	memBefore := newTestTree(t).MemoryUsed()

	tr.FocusSet(a)
	tr.ActiveSet(a)
	ev.l = nil
	if !tr.Remove(p) {
		t.Fatalf("remove refused")
	}
	if tr.Focused() != w {
		t.Fatalf("focus %v, want window", tr.Focused())
	}
	tr.Sweep()
	if tr.Valid(p) || tr.Valid(a) || !tr.Valid(w) {
		t.Fatalf("wrong widgets freed")
	}
	if !tr.Active().IsZero() {
		t.Fatalf("freed widget still active")
	}
	want := []string{"a:focusout", "p:focusout", "a:remove", "p:remove"}
	if diff := cmp.Diff(want, ev.l); diff != "" {
		t.Fatalf("commands (-want +got):\n%s", diff)
	}
	if tr.processTimers(tr.now().Add(1)) != 0 {
		t.Fatalf("timer of freed widget fired")
	}

	tr.Remove(w)
	tr.Sweep()
	if got := tr.MemoryUsed(); got != memBefore {
		t.Fatalf("memory %d after removing all, want %d", got, memBefore)
	}
	if tr.Count() != 1 {
		t.Fatalf("count %d, want only the desktop", tr.Count())
	}
}
