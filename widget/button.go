package widget

import (
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui"
)

// Button colors.
const (
	ButtonColorBackground = iota
	ButtonColorPressed
	ButtonColorBorder
	ButtonColorFocus
	ButtonColorText
	ButtonColorDisabled
)

type buttonState struct {
	click func(t *lcdui.Tree, h lcdui.Handle)
}

var ButtonType = &lcdui.Type{
	Name:     "button",
	Size:     lcdui.MinWidgetSize + int(unsafe.Sizeof(buttonState{})),
	Callback: buttonCallback,
	Colors: []draw.Color{
		ButtonColorBackground: 0xf8f8f8ff,
		ButtonColorPressed:    0xccccccff,
		ButtonColorBorder:     0xbbbbbbff,
		ButtonColorFocus:      0x3272dcff,
		ButtonColorText:       0x333333ff,
		ButtonColorDisabled:   0x888888ff,
	},
	New: func() any { return &buttonState{} },
}

// CreateButton makes a button with a text label. Click is called when the
// button is clicked by touch, or when space or enter is pressed while it
// has focus.
func CreateButton(t *lcdui.Tree, id lcdui.ID, x, y, width, height float32, parent lcdui.Handle, text string, click func(t *lcdui.Tree, h lcdui.Handle)) (lcdui.Handle, error) {
	h, err := t.Create(ButtonType, id, x, y, width, height, parent, nil, 0)
	if err != nil {
		return lcdui.Handle{}, err
	}
	t.State(h).(*buttonState).click = click
	t.SetText(h, text)
	return h, nil
}

func SetOnClick(t *lcdui.Tree, h lcdui.Handle, click func(t *lcdui.Tree, h lcdui.Handle)) {
	t.State(h).(*buttonState).click = click
}

func buttonCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	st := t.State(h).(*buttonState)
	switch e.Cmd {
	case lcdui.CmdDraw:
		drawButton(t, h, e.Painter)
		return true
	case lcdui.CmdTouchStart:
		r.Touch = lcdui.TouchHandled
		return true
	case lcdui.CmdActiveIn, lcdui.CmdActiveOut:
		t.Invalidate(h)
		return true
	case lcdui.CmdClick:
		if st.click != nil {
			st.click(t, h)
		}
		return true
	case lcdui.CmdKeyPress:
		if e.Key.Key != ' ' && e.Key.Key != '\n' {
			return false
		}
		r.Key = lcdui.KeyHandled
		if st.click != nil {
			st.click(t, h)
		}
		return true
	case lcdui.CmdSetParam, lcdui.CmdGetParam:
		return textParam(t, h, e, r)
	}
	return false
}

func drawButton(t *lcdui.Tree, h lcdui.Handle, p lcdui.Painter) {
	flags := t.Flags(h)
	r := t.Rect(h)

	bg := t.Color(h, ButtonColorBackground)
	if flags&lcdui.FlagActive != 0 {
		bg = t.Color(h, ButtonColorPressed)
	}
	border := t.Color(h, ButtonColorBorder)
	if flags&lcdui.FlagFocus != 0 {
		border = t.Color(h, ButtonColorFocus)
	}
	text := t.Color(h, ButtonColorText)
	if disabled(t, h) {
		text = t.Color(h, ButtonColorDisabled)
	}

	p.Fill(r, bg)
	width := 1
	if flags&lcdui.Flag3D != 0 {
		width = 2
	}
	p.Border(r, width, border)
	s := t.Text(h)
	tr := textAt(t.Font(h), inset(r, width), s, AlignCenter)
	if flags&lcdui.FlagActive != 0 {
		tr = tr.Add(pressOffset)
	}
	p.Text(tr, t.Font(h), text, s)
}
