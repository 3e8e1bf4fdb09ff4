package widget

import (
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui"
)

// Label colors.
const (
	LabelColorBackground = iota
	LabelColorText
)

type labelState struct {
	align Align
}

var LabelType = &lcdui.Type{
	Name:     "label",
	Size:     lcdui.MinWidgetSize + int(unsafe.Sizeof(labelState{})),
	Callback: labelCallback,
	Colors: []draw.Color{
		LabelColorBackground: 0xfcfcfcff,
		LabelColorText:       0x333333ff,
	},
	New: func() any { return &labelState{} },
}

// CreateLabel makes a label showing text, left aligned.
func CreateLabel(t *lcdui.Tree, id lcdui.ID, x, y, width, height float32, parent lcdui.Handle, text string) (lcdui.Handle, error) {
	h, err := t.Create(LabelType, id, x, y, width, height, parent, nil, 0)
	if err != nil {
		return lcdui.Handle{}, err
	}
	t.SetText(h, text)
	return h, nil
}

func SetAlign(t *lcdui.Tree, h lcdui.Handle, a Align) {
	st := t.State(h).(*labelState)
	if st.align != a {
		st.align = a
		t.Invalidate(h)
	}
}

func labelCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	switch e.Cmd {
	case lcdui.CmdDraw:
		st := t.State(h).(*labelState)
		rr := t.Rect(h)
		// Transparent labels leave the background to their parent.
		if t.Transparency(h) == 0xff {
			e.Painter.Fill(rr, t.Color(h, LabelColorBackground))
		}
		s := t.Text(h)
		e.Painter.Text(textAt(t.Font(h), rr, s, st.align), t.Font(h), t.Color(h, LabelColorText), s)
		return true
	case lcdui.CmdSetParam, lcdui.CmdGetParam:
		return textParam(t, h, e, r)
	}
	return false
}
