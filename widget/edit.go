package widget

import (
	"fmt"
	"image"
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui"
)

// EditText colors.
const (
	EditColorBackground = iota
	EditColorBorder
	EditColorFocus
	EditColorText
	EditColorCursor
)

type editState struct {
	enter func(t *lcdui.Tree, h lcdui.Handle, s string)
}

var EditTextType = &lcdui.Type{
	Name:     "edittext",
	Size:     lcdui.MinWidgetSize + int(unsafe.Sizeof(editState{})),
	Callback: editCallback,
	Colors: []draw.Color{
		EditColorBackground: 0xffffffff,
		EditColorBorder:     0xbbbbbbff,
		EditColorFocus:      0x3272dcff,
		EditColorText:       0x333333ff,
		EditColorCursor:     0x333333ff,
	},
	New: func() any { return &editState{} },
}

// editPad is the space between the border and the text.
const editPad = 2

// CreateEditText makes a single line text field holding up to size-1
// bytes. Enter is called with the text when enter is pressed.
func CreateEditText(t *lcdui.Tree, id lcdui.ID, x, y, width, height float32, parent lcdui.Handle, size int, enter func(t *lcdui.Tree, h lcdui.Handle, s string)) (lcdui.Handle, error) {
	h, err := t.Create(EditTextType, id, x, y, width, height, parent, nil, 0)
	if err != nil {
		return lcdui.Handle{}, err
	}
	if !t.AllocTextMemory(h, size) {
		t.Remove(h)
		return lcdui.Handle{}, fmt.Errorf("edit text of %d bytes: %w", size, lcdui.ErrNoMemory)
	}
	t.State(h).(*editState).enter = enter
	return h, nil
}

func editCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	switch e.Cmd {
	case lcdui.CmdDraw:
		drawEdit(t, h, e.Painter, e.Clip)
		return true
	case lcdui.CmdTouchStart:
		// Touch point is relative to the widget, the text starts inside
		// the border.
		_, dx := editLayout(t, h)
		x := e.Touch.Point.X - 1 - editPad + dx
		t.SetTextCursor(h, CursorAt(t.Font(h), t.Text(h), x))
		r.Touch = lcdui.TouchHandled
		return true
	case lcdui.CmdKeyPress:
		if disabled(t, h) {
			return false
		}
		if e.Key.Key == '\n' {
			if st := t.State(h).(*editState); st.enter != nil {
				st.enter(t, h, t.Text(h))
			}
			r.Key = lcdui.KeyHandled
			return true
		}
		if t.ProcessTextKey(h, e.Key) {
			r.Key = lcdui.KeyHandled
			return true
		}
		return false
	case lcdui.CmdSetParam, lcdui.CmdGetParam:
		return textParam(t, h, e, r)
	}
	return false
}

// CursorAt returns the rune boundary in s closest to x pixels from the
// start of the text.
func CursorAt(f lcdui.Font, s string, x int) int {
	best, bestDist := 0, abs(x)
	check := func(i int) {
		if d := abs(f.StringWidth(s[:i]) - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	for i := range s {
		check(i)
	}
	check(len(s))
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// editLayout returns the text area and how far the text is scrolled left
// to keep the cursor visible.
func editLayout(t *lcdui.Tree, h lcdui.Handle) (inner image.Rectangle, dx int) {
	inner = inset(t.Rect(h), 1+editPad)
	s := t.Text(h)
	cur := t.Font(h).StringWidth(s[:t.TextCursor(h)])
	if cur >= inner.Dx() {
		dx = cur - inner.Dx() + 1
	}
	return
}

func drawEdit(t *lcdui.Tree, h lcdui.Handle, p lcdui.Painter, clip image.Rectangle) {
	r := t.Rect(h)
	f := t.Font(h)
	focus := t.Flags(h)&lcdui.FlagFocus != 0

	p.Fill(r, t.Color(h, EditColorBackground))
	border := t.Color(h, EditColorBorder)
	if focus {
		border = t.Color(h, EditColorFocus)
	}
	p.Border(r, 1, border)

	inner, dx := editLayout(t, h)
	s := t.Text(h)
	tr := textAt(f, inner, s, AlignLeft)
	tr.Min.X -= dx
	tr.Max.X = inner.Max.X
	p.SetClip(inner.Intersect(clip))
	p.Text(tr, f, t.Color(h, EditColorText), s)
	if focus {
		x := inner.Min.X + f.StringWidth(s[:t.TextCursor(h)]) - dx
		y := inner.Min.Y + (inner.Dy()-f.Height())/2
		p.Fill(image.Rect(x, y, x+1, y+f.Height()), t.Color(h, EditColorCursor))
	}
	p.SetClip(clip)
}
