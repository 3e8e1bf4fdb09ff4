package widget

import (
	"image"
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui"
	"github.com/mjl-/lcdui/list"
)

// Graph colors.
const (
	GraphColorBackground = iota
	GraphColorBorder
	GraphColorGrid
)

// Series is a line in a graph, holding the most recent values.
type Series struct {
	Color  draw.Color
	values []float32
	max    int
}

// Values returns the values, oldest first.
func (s *Series) Values() []float32 {
	return s.values
}

type graphState struct {
	series   *list.Multi[*Series]
	min, max float32
	grid     int // horizontal grid lines
}

var GraphType = &lcdui.Type{
	Name:     "graph",
	Size:     lcdui.MinWidgetSize + int(unsafe.Sizeof(graphState{})),
	Callback: graphCallback,
	Colors: []draw.Color{
		GraphColorBackground: 0xffffffff,
		GraphColorBorder:     0xbbbbbbff,
		GraphColorGrid:       0xeeeeeeff,
	},
	New: func() any {
		return &graphState{series: list.NewMulti[*Series](), max: 1}
	},
}

// CreateGraph makes a graph plotting values between min and max.
func CreateGraph(t *lcdui.Tree, id lcdui.ID, x, y, width, height float32, parent lcdui.Handle, min, max float32) (lcdui.Handle, error) {
	h, err := t.Create(GraphType, id, x, y, width, height, parent, nil, 0)
	if err != nil {
		return lcdui.Handle{}, err
	}
	SetRange(t, h, min, max)
	return h, nil
}

func graph(t *lcdui.Tree, h lcdui.Handle) *graphState {
	return t.State(h).(*graphState)
}

// SetRange sets the values at the bottom and top of the graph. An empty
// range is widened.
func SetRange(t *lcdui.Tree, h lcdui.Handle, min, max float32) {
	g := graph(t, h)
	if max <= min {
		max = min + 1
	}
	if g.min != min || g.max != max {
		g.min, g.max = min, max
		t.Invalidate(h)
	}
}

// SetGrid draws n horizontal lines dividing the range.
func SetGrid(t *lcdui.Tree, h lcdui.Handle, n int) {
	g := graph(t, h)
	if g.grid != n {
		g.grid = n
		t.Invalidate(h)
	}
}

// AddSeries adds a series keeping at most n values, drawn on top of the
// series added before.
func AddSeries(t *lcdui.Tree, h lcdui.Handle, color draw.Color, n int) *Series {
	s := &Series{Color: color, max: max(n, 2)}
	graph(t, h).series.Add(s)
	t.Invalidate(h)
	return s
}

func RemoveSeries(t *lcdui.Tree, h lcdui.Handle, s *Series) bool {
	if !graph(t, h).series.FindRemove(s) {
		return false
	}
	t.Invalidate(h)
	return true
}

// RaiseSeries draws s on top of the other series.
func RaiseSeries(t *lcdui.Tree, h lcdui.Handle, s *Series) bool {
	g := graph(t, h)
	e := g.series.Find(s)
	if e == nil {
		return false
	}
	moved := false
	for g.series.MoveDown(e) {
		moved = true
	}
	if moved {
		t.Invalidate(h)
	}
	return moved
}

// SeriesList returns the series of the graph in drawing order.
func SeriesList(t *lcdui.Tree, h lcdui.Handle) []*Series {
	return graph(t, h).series.Values()
}

// Push appends v to s, dropping the oldest value when full.
func Push(t *lcdui.Tree, h lcdui.Handle, s *Series, v float32) {
	if len(s.values) == s.max {
		copy(s.values, s.values[1:])
		s.values = s.values[:len(s.values)-1]
	}
	s.values = append(s.values, v)
	t.Invalidate(h)
}

func graphCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	switch e.Cmd {
	case lcdui.CmdDraw:
		drawGraph(t, h, e.Painter)
		return true
	case lcdui.CmdIncSelection:
		// Raising the selection moves the range up by a tenth.
		g := graph(t, h)
		d := (g.max - g.min) / 10 * float32(e.Delta)
		SetRange(t, h, g.min+d, g.max+d)
		return true
	}
	return false
}

// plotY returns the screen y for v in r, clamped.
func (g *graphState) plotY(r image.Rectangle, v float32) int {
	f := (v - g.min) / (g.max - g.min)
	f = max(0, min(1, f))
	return r.Max.Y - 1 - int(f*float32(r.Dy()-1)+0.5)
}

func drawGraph(t *lcdui.Tree, h lcdui.Handle, p lcdui.Painter) {
	g := graph(t, h)
	r := t.Rect(h)
	p.Fill(r, t.Color(h, GraphColorBackground))
	p.Border(r, 1, t.Color(h, GraphColorBorder))
	area := inset(r, 1)
	if area.Empty() {
		return
	}
	for i := 1; i < g.grid; i++ {
		y := area.Min.Y + i*area.Dy()/g.grid
		p.Fill(image.Rect(area.Min.X, y, area.Max.X, y+1), t.Color(h, GraphColorGrid))
	}

	for e := g.series.Next(nil); e != nil; e = g.series.Next(e) {
		s := e.Value
		prevY := 0
		for i, v := range s.values {
			x := area.Min.X + i*(area.Dx()-1)/(s.max-1)
			y := g.plotY(area, v)
			y0, y1 := y, y
			if i > 0 {
				y0, y1 = min(prevY, y), max(prevY, y)
			}
			p.Fill(image.Rect(x, y0, x+1, y1+1), s.Color)
			prevY = y
		}
	}
}
