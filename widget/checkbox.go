package widget

import (
	"image"
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui"
)

// Checkbox colors.
const (
	CheckboxColorBackground = iota
	CheckboxColorBox
	CheckboxColorBorder
	CheckboxColorCheck
	CheckboxColorText
)

type checkboxState struct {
	checked bool
	changed func(t *lcdui.Tree, h lcdui.Handle, checked bool)
}

var CheckboxType = &lcdui.Type{
	Name:     "checkbox",
	Size:     lcdui.MinWidgetSize + int(unsafe.Sizeof(checkboxState{})),
	Callback: checkboxCallback,
	Colors: []draw.Color{
		CheckboxColorBackground: 0xfcfcfcff,
		CheckboxColorBox:        0xffffffff,
		CheckboxColorBorder:     0xbbbbbbff,
		CheckboxColorCheck:      0x3272dcff,
		CheckboxColorText:       0x333333ff,
	},
	New: func() any { return &checkboxState{} },
}

// CreateCheckbox makes a checkbox with a text after the box. Changed is
// called when the user toggles it.
func CreateCheckbox(t *lcdui.Tree, id lcdui.ID, x, y, width, height float32, parent lcdui.Handle, text string, changed func(t *lcdui.Tree, h lcdui.Handle, checked bool)) (lcdui.Handle, error) {
	h, err := t.Create(CheckboxType, id, x, y, width, height, parent, nil, 0)
	if err != nil {
		return lcdui.Handle{}, err
	}
	t.State(h).(*checkboxState).changed = changed
	t.SetText(h, text)
	return h, nil
}

func Checked(t *lcdui.Tree, h lcdui.Handle) bool {
	return t.State(h).(*checkboxState).checked
}

// SetChecked changes the state without calling the changed function.
func SetChecked(t *lcdui.Tree, h lcdui.Handle, checked bool) {
	st := t.State(h).(*checkboxState)
	if st.checked != checked {
		st.checked = checked
		t.Invalidate(h)
	}
}

func toggle(t *lcdui.Tree, h lcdui.Handle) {
	st := t.State(h).(*checkboxState)
	SetChecked(t, h, !st.checked)
	if st.changed != nil {
		st.changed(t, h, st.checked)
	}
}

func checkboxCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	switch e.Cmd {
	case lcdui.CmdDraw:
		drawCheckbox(t, h, e.Painter)
		return true
	case lcdui.CmdTouchStart:
		r.Touch = lcdui.TouchHandled
		return true
	case lcdui.CmdClick:
		toggle(t, h)
		return true
	case lcdui.CmdKeyPress:
		if e.Key.Key != ' ' {
			return false
		}
		toggle(t, h)
		r.Key = lcdui.KeyHandled
		return true
	case lcdui.CmdSetParam:
		if e.Param.Type == ParamChecked {
			v, ok := e.Param.Data.(bool)
			if ok {
				SetChecked(t, h, v)
			}
			r.OK = ok
			return true
		}
		return textParam(t, h, e, r)
	case lcdui.CmdGetParam:
		if e.Param.Type == ParamChecked {
			r.Value = Checked(t, h)
			return true
		}
		return textParam(t, h, e, r)
	}
	return false
}

func drawCheckbox(t *lcdui.Tree, h lcdui.Handle, p lcdui.Painter) {
	r := t.Rect(h)
	f := t.Font(h)
	p.Fill(r, t.Color(h, CheckboxColorBackground))

	size := min(f.Height(), r.Dy())
	y := r.Min.Y + (r.Dy()-size)/2
	box := image.Rect(r.Min.X, y, r.Min.X+size, y+size)
	p.Fill(box, t.Color(h, CheckboxColorBox))
	p.Border(box, 1, t.Color(h, CheckboxColorBorder))
	if Checked(t, h) {
		p.Fill(inset(box, 3), t.Color(h, CheckboxColorCheck))
	}

	s := t.Text(h)
	tr := r
	tr.Min.X = box.Max.X + f.StringWidth(" ")
	p.Text(textAt(f, tr, s, AlignLeft), f, t.Color(h, CheckboxColorText), s)
}
