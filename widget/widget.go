// Package widget has the common widgets for lcdui: Label, Button,
// Checkbox, Radio, EditText, Graph and Led.
//
// Each widget is a lcdui.Type with a type callback, and a Create function
// that makes an instance. Widgets keep their state in the value returned by
// the type's New function, so the package functions taking a Tree and a
// Handle work on any instance, also one created with a custom callback. A
// custom callback should call Tree.DefaultCallback for commands it does not
// handle.
//
// Colors are indexed by the constants of each widget, and can be changed
// per instance with Tree.SetColor.
package widget

import (
	"image"

	"github.com/mjl-/lcdui"
)

// Params for Tree.SetParam and Tree.GetParam.
const (
	ParamText     = iota + 1 // string
	ParamChecked             // bool, checkbox and led
	ParamSelected            // bool, radio; only true can be set
	ParamValue               // uint32, radio
)

// pressOffset moves the text of pressed widgets.
var pressOffset = image.Pt(0, 1)

// Align is the horizontal placement of text.
type Align byte

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// textAt returns the rectangle for s in r, vertically centered.
func textAt(f lcdui.Font, r image.Rectangle, s string, a Align) image.Rectangle {
	w, h := f.StringWidth(s), f.Height()
	y := r.Min.Y + (r.Dy()-h)/2
	var x int
	switch a {
	case AlignLeft:
		x = r.Min.X
	case AlignRight:
		x = r.Max.X - w
	default:
		x = r.Min.X + (r.Dx()-w)/2
	}
	return image.Rect(x, y, x+w, y+h).Intersect(r)
}

// inset shrinks r by n pixels on each side.
func inset(r image.Rectangle, n int) image.Rectangle {
	if r.Dx() < 2*n || r.Dy() < 2*n {
		return image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return r.Inset(n)
}

func disabled(t *lcdui.Tree, h lcdui.Handle) bool {
	return t.Flags(h)&lcdui.FlagDisabled != 0
}

// textParam handles ParamText, shared by the text widgets.
func textParam(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	if e.Param.Type != ParamText {
		return false
	}
	switch e.Cmd {
	case lcdui.CmdSetParam:
		s, ok := e.Param.Data.(string)
		if !ok {
			r.OK = false
			return true
		}
		t.SetText(h, s)
		return true
	case lcdui.CmdGetParam:
		r.Value = t.Text(h)
		return true
	}
	return false
}
