package widget

import (
	"image"
	"math"
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui"
)

// Led colors.
const (
	LedColorOn = iota
	LedColorOff
	LedColorOnBorder
	LedColorOffBorder
)

// LedShape is how a led is drawn.
type LedShape byte

const (
	LedRect LedShape = iota
	LedCircle
)

type ledState struct {
	shape LedShape
	on    bool
}

var LedType = &lcdui.Type{
	Name:     "led",
	Size:     lcdui.MinWidgetSize + int(unsafe.Sizeof(ledState{})),
	Callback: ledCallback,
	Colors: []draw.Color{
		LedColorOn:        0x00c040ff,
		LedColorOff:       0x204020ff,
		LedColorOnBorder:  0x008020ff,
		LedColorOffBorder: 0x102010ff,
	},
	New: func() any { return &ledState{} },
}

// CreateLed makes a led, initially off.
func CreateLed(t *lcdui.Tree, id lcdui.ID, x, y, width, height float32, parent lcdui.Handle, shape LedShape) (lcdui.Handle, error) {
	h, err := t.Create(LedType, id, x, y, width, height, parent, nil, 0)
	if err != nil {
		return lcdui.Handle{}, err
	}
	led(t, h).shape = shape
	return h, nil
}

func led(t *lcdui.Tree, h lcdui.Handle) *ledState {
	return t.State(h).(*ledState)
}

func SetShape(t *lcdui.Tree, h lcdui.Handle, shape LedShape) {
	st := led(t, h)
	if st.shape != shape {
		st.shape = shape
		t.Invalidate(h)
	}
}

func On(t *lcdui.Tree, h lcdui.Handle) bool {
	return led(t, h).on
}

// SetOn switches the led and reports whether it changed.
func SetOn(t *lcdui.Tree, h lcdui.Handle, on bool) bool {
	st := led(t, h)
	if st.on == on {
		return false
	}
	st.on = on
	t.Invalidate(h)
	return true
}

func Toggle(t *lcdui.Tree, h lcdui.Handle) {
	SetOn(t, h, !On(t, h))
}

func ledCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	switch e.Cmd {
	case lcdui.CmdDraw:
		drawLed(t, h, e.Painter)
		return true
	case lcdui.CmdSetParam:
		if e.Param.Type != ParamChecked {
			return false
		}
		v, ok := e.Param.Data.(bool)
		if ok {
			SetOn(t, h, v)
		}
		r.OK = ok
		return true
	case lcdui.CmdGetParam:
		if e.Param.Type != ParamChecked {
			return false
		}
		r.Value = On(t, h)
		return true
	}
	return false
}

func drawLed(t *lcdui.Tree, h lcdui.Handle, p lcdui.Painter) {
	r := t.Rect(h)
	fill, border := t.Color(h, LedColorOff), t.Color(h, LedColorOffBorder)
	if On(t, h) {
		fill, border = t.Color(h, LedColorOn), t.Color(h, LedColorOnBorder)
	}
	if led(t, h).shape == LedCircle {
		fillEllipse(p, r, border)
		fillEllipse(p, inset(r, 1), fill)
		return
	}
	p.Fill(r, fill)
	p.Border(r, 1, border)
}

// fillEllipse fills the ellipse inside r, one row at a time.
func fillEllipse(p lcdui.Painter, r image.Rectangle, c draw.Color) {
	if r.Empty() {
		return
	}
	rx, ry := float64(r.Dx())/2, float64(r.Dy())/2
	cx, cy := float64(r.Min.X)+rx, float64(r.Min.Y)+ry
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		half := rx * math.Sqrt(max(0, 1-dy*dy))
		x0, x1 := int(math.Round(cx-half)), int(math.Round(cx+half))
		if x1 > x0 {
			p.Fill(image.Rect(x0, y, x1, y+1), c)
		}
	}
}
