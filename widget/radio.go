package widget

import (
	"image"
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui"
)

// Radio colors.
const (
	RadioColorBackground = iota
	RadioColorForeground
	RadioColorBorder
	RadioColorDisabledBackground
	RadioColorText
)

type radioState struct {
	group   uint8
	value   uint32
	checked bool
	changed func(t *lcdui.Tree, h lcdui.Handle, value uint32)
}

var RadioType = &lcdui.Type{
	Name:     "radio",
	Size:     lcdui.MinWidgetSize + int(unsafe.Sizeof(radioState{})),
	Callback: radioCallback,
	Colors: []draw.Color{
		RadioColorBackground:         0xffffffff,
		RadioColorForeground:         0x3272dcff,
		RadioColorBorder:             0xbbbbbbff,
		RadioColorDisabledBackground: 0xddddddff,
		RadioColorText:               0x333333ff,
	},
	New: func() any { return &radioState{} },
}

// CreateRadio makes a radio button in group with value. Of the radios with
// the same group and parent, at most one is selected. Changed is called on
// the radio the user selects, with its value.
func CreateRadio(t *lcdui.Tree, id lcdui.ID, x, y, width, height float32, parent lcdui.Handle, text string, group uint8, value uint32, changed func(t *lcdui.Tree, h lcdui.Handle, value uint32)) (lcdui.Handle, error) {
	h, err := t.Create(RadioType, id, x, y, width, height, parent, nil, 0)
	if err != nil {
		return lcdui.Handle{}, err
	}
	st := radio(t, h)
	st.group = group
	st.value = value
	st.changed = changed
	t.SetText(h, text)
	return h, nil
}

func radio(t *lcdui.Tree, h lcdui.Handle) *radioState {
	return t.State(h).(*radioState)
}

// group returns the radios in the group of h, h included.
func group(t *lcdui.Tree, h lcdui.Handle) []lcdui.Handle {
	g := radio(t, h).group
	var l []lcdui.Handle
	for _, s := range t.Children(t.Parent(h)) {
		if st, ok := t.State(s).(*radioState); ok && st.group == g {
			l = append(l, s)
		}
	}
	return l
}

func Group(t *lcdui.Tree, h lcdui.Handle) uint8 {
	return radio(t, h).group
}

// SetGroup moves h to another group. A selected radio stays selected and
// deselects the others in its new group.
func SetGroup(t *lcdui.Tree, h lcdui.Handle, g uint8) {
	st := radio(t, h)
	if st.group == g {
		return
	}
	st.group = g
	if st.checked {
		SetSelected(t, h)
	}
}

func Value(t *lcdui.Tree, h lcdui.Handle) uint32 {
	return radio(t, h).value
}

func SetValue(t *lcdui.Tree, h lcdui.Handle, v uint32) {
	radio(t, h).value = v
}

func Selected(t *lcdui.Tree, h lcdui.Handle) bool {
	return radio(t, h).checked
}

// SelectedValue returns the value of the selected radio in the group of h.
func SelectedValue(t *lcdui.Tree, h lcdui.Handle) (uint32, bool) {
	for _, s := range group(t, h) {
		if st := radio(t, s); st.checked {
			return st.value, true
		}
	}
	return 0, false
}

// SetSelected selects h and deselects the other radios in its group,
// without calling the changed function. It reports whether h was not
// selected yet.
func SetSelected(t *lcdui.Tree, h lcdui.Handle) bool {
	for _, s := range group(t, h) {
		if st := radio(t, s); s != h && st.checked {
			st.checked = false
			t.Invalidate(s)
		}
	}
	st := radio(t, h)
	if st.checked {
		return false
	}
	st.checked = true
	t.Invalidate(h)
	return true
}

func selectRadio(t *lcdui.Tree, h lcdui.Handle) {
	st := radio(t, h)
	if SetSelected(t, h) && st.changed != nil {
		st.changed(t, h, st.value)
	}
}

func radioCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	switch e.Cmd {
	case lcdui.CmdDraw:
		drawRadio(t, h, e.Painter)
		return true
	case lcdui.CmdTouchStart:
		r.Touch = lcdui.TouchHandled
		return true
	case lcdui.CmdClick:
		selectRadio(t, h)
		return true
	case lcdui.CmdKeyPress:
		if e.Key.Key != ' ' {
			return false
		}
		selectRadio(t, h)
		r.Key = lcdui.KeyHandled
		return true
	case lcdui.CmdSetParam:
		switch e.Param.Type {
		case ParamSelected:
			v, ok := e.Param.Data.(bool)
			if ok && v {
				SetSelected(t, h)
			}
			r.OK = ok && v
			return true
		case ParamValue:
			v, ok := e.Param.Data.(uint32)
			if ok {
				SetValue(t, h, v)
			}
			r.OK = ok
			return true
		}
		return textParam(t, h, e, r)
	case lcdui.CmdGetParam:
		switch e.Param.Type {
		case ParamSelected:
			r.Value = Selected(t, h)
			return true
		case ParamValue:
			r.Value = Value(t, h)
			return true
		}
		return textParam(t, h, e, r)
	}
	return false
}

func drawRadio(t *lcdui.Tree, h lcdui.Handle, p lcdui.Painter) {
	r := t.Rect(h)
	f := t.Font(h)
	bg := t.Color(h, RadioColorBackground)
	if disabled(t, h) {
		bg = t.Color(h, RadioColorDisabledBackground)
	}
	p.Fill(r, bg)

	size := min(f.Height(), r.Dy())
	y := r.Min.Y + (r.Dy()-size)/2
	dot := image.Rect(r.Min.X, y, r.Min.X+size, y+size)
	fillEllipse(p, dot, t.Color(h, RadioColorBorder))
	fillEllipse(p, inset(dot, 1), bg)
	if Selected(t, h) {
		fillEllipse(p, inset(dot, 3), t.Color(h, RadioColorForeground))
	}

	s := t.Text(h)
	tr := r
	tr.Min.X = dot.Max.X + f.StringWidth(" ")
	p.Text(textAt(f, tr, s, AlignLeft), f, t.Color(h, RadioColorText), s)
}
