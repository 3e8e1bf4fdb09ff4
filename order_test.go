package lcdui

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZIndexStep(t *testing.T) {
	tr := newTestTree(t)
	p := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())
	b := mustCreate(t, tr, plainType, 0, 0, 10, 10, p)
	a := mustCreate(t, tr, plainType, 0, 0, 10, 10, p)
	if diff := cmp.Diff([]Handle{b, a}, tr.Children(p), handleOpt); diff != "" {
		t.Fatalf("order before (-want +got):\n%s", diff)
	}
	settle(tr)

	if !tr.SetZIndex(a, -5) {
		t.Fatalf("z-index not changed")
	}
	if diff := cmp.Diff([]Handle{a, b}, tr.Children(p), handleOpt); diff != "" {
		t.Fatalf("order after (-want +got):\n%s", diff)
	}
	if !tr.Dirty(a) {
		t.Fatalf("moved widget not invalidated")
	}
	if tr.SetZIndex(a, -5) {
		t.Fatalf("same z-index reported as change")
	}

	tr.SetZIndex(a, 5)
	if diff := cmp.Diff([]Handle{b, a}, tr.Children(p), handleOpt); diff != "" {
		t.Fatalf("order after raise (-want +got):\n%s", diff)
	}
}

func TestDialogZIndex(t *testing.T) {
	tr := newTestTree(t)
	newDialog := func() Handle {
		d, err := tr.CreateDialog(0, 0, 0, 50, 50, WindowConstructor, nil, 0)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	d1 := newDialog()
	tr.SetZIndex(d1, 5)
	d2 := newDialog()
	box := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())
	if diff := cmp.Diff([]Handle{box, d2, d1}, tr.Children(tr.Desktop()), handleOpt); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}

	d3 := newDialog()
	if diff := cmp.Diff([]Handle{box, d2, d3, d1}, tr.Children(tr.Desktop()), handleOpt); diff != "" {
		t.Fatalf("order after third dialog (-want +got):\n%s", diff)
	}

	// A dialog with a low z-index still stays above containers.
	tr.SetZIndex(d1, -10)
	tr.SetZIndex(box, 10)
	if diff := cmp.Diff([]Handle{box, d1, d2, d3}, tr.Children(tr.Desktop()), handleOpt); diff != "" {
		t.Fatalf("order after lowering (-want +got):\n%s", diff)
	}
	if tr.topDialog() != d3 {
		t.Fatalf("top dialog is not the most visible one")
	}
}

func TestOrderCategories(t *testing.T) {
	tr := newTestTree(t)
	box := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())
	plain := mustCreate(t, tr, plainType, 0, 0, 10, 10, tr.Desktop())
	dlg, err := tr.CreateDialog(0, 0, 0, 50, 50, WindowConstructor, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	box2 := mustCreate(t, tr, boxType, 0, 0, 100, 100, tr.Desktop())

	want := []Handle{plain, box, box2, dlg}
	if diff := cmp.Diff(want, tr.Children(tr.Desktop()), handleOpt); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}

	// A high z-index does not lift a plain widget over containers.
	tr.SetZIndex(plain, 100)
	if diff := cmp.Diff(want, tr.Children(tr.Desktop()), handleOpt); diff != "" {
		t.Fatalf("order after z change (-want +got):\n%s", diff)
	}
	tr.PutOnFront(box)
	want = []Handle{plain, box2, box, dlg}
	if diff := cmp.Diff(want, tr.Children(tr.Desktop()), handleOpt); diff != "" {
		t.Fatalf("order after put on front (-want +got):\n%s", diff)
	}
	if tr.Focused() != box {
		t.Fatalf("put on front did not focus")
	}
}

func TestPutOnFrontAncestors(t *testing.T) {
	tr := newTestTree(t)
	w1 := mustCreate(t, tr, WindowType, 0, 0, 100, 100, tr.Desktop())
	w2 := mustCreate(t, tr, WindowType, 50, 50, 100, 100, tr.Desktop())
	a := mustCreate(t, tr, WindowType, 0, 0, 10, 10, w1)
	b := mustCreate(t, tr, WindowType, 20, 0, 10, 10, w1)
	settle(tr)

	tr.PutOnFront(a)
	if diff := cmp.Diff([]Handle{w2, w1}, tr.Children(tr.Desktop()), handleOpt); diff != "" {
		t.Fatalf("desktop order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Handle{b, a}, tr.Children(w1), handleOpt); diff != "" {
		t.Fatalf("window order (-want +got):\n%s", diff)
	}
	if !tr.Dirty(w1) || !tr.Dirty(a) {
		t.Fatalf("moved widgets not invalidated")
	}
}

// TestOrderRandom checks sibling order after random z-index changes: plain
// before containers before dialogs, and non-decreasing z within each.
func TestOrderRandom(t *testing.T) {
	tr := newTestTree(t)
	rnd := rand.New(rand.NewSource(1))
	var l []Handle
	for i := 0; i < 30; i++ {
		typ := plainType
		if rnd.Intn(2) == 0 {
			typ = boxType
		}
		l = append(l, mustCreate(t, tr, typ, 0, 0, 10, 10, tr.Desktop()))
		if i%10 == 0 {
			d, err := tr.CreateDialog(0, 0, 0, 10, 10, WindowConstructor, nil, 0)
			if err != nil {
				t.Fatal(err)
			}
			l = append(l, d)
		}
	}
	for i := 0; i < 200; i++ {
		h := l[rnd.Intn(len(l))]
		if rnd.Intn(5) == 0 {
			tr.PutOnFront(h)
		} else {
			tr.SetZIndex(h, int32(rnd.Intn(11)-5))
		}

		kids := tr.Children(tr.Desktop())
		if len(kids) != len(l) {
			t.Fatalf("lost children: %d, want %d", len(kids), len(l))
		}
		for j := 1; j < len(kids); j++ {
			p, c := tr.get(kids[j-1]), tr.get(kids[j])
			if p.category() > c.category() {
				t.Fatalf("step %d: category order broken at %d", i, j)
			}
			if p.category() == c.category() && p.zIndex > c.zIndex {
				t.Fatalf("step %d: z order broken at %d: %d > %d", i, j, p.zIndex, c.zIndex)
			}
		}
	}
}
