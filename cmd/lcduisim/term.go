package main

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"strings"
	"time"

	"9fans.net/go/draw"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mjl-/lcdui"
)

// frameMsg carries a copy of the framebuffer after a redraw.
type frameMsg struct {
	img *image.RGBA
}

func clone(img *image.RGBA) *image.RGBA {
	c := *img
	c.Pix = slices.Clone(img.Pix)
	return &c
}

// screen shows the display in the terminal and feeds mouse and keyboard to
// the gui as touch and keys.
type screen struct {
	gui           *lcdui.GUI
	width, height int // Display, in pixels.
	cols, rows    int // Terminal, in cells.
	img           *image.RGBA
	start         time.Time
	styles        map[[2]color.RGBA]lipgloss.Style
}

var _ tea.Model = &screen{}

func newScreen(gui *lcdui.GUI, width, height, cols, rows int) *screen {
	return &screen{
		gui:    gui,
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		start:  time.Now(),
		styles: map[[2]color.RGBA]lipgloss.Style{},
	}
}

// scale returns how many display pixels one cell covers horizontally, and
// half a cell vertically, for the display to fit.
func scale(width, height, cols, rows int) int {
	ceil := func(a, b int) int {
		if b <= 0 {
			return 1
		}
		return (a + b - 1) / b
	}
	return max(1, ceil(width, cols), ceil(height, 2*rows))
}

// touchPoint returns the display pixel in the middle of cell x, y.
func touchPoint(x, y, s int) image.Point {
	return image.Pt(x*s+s/2, y*2*s+s)
}

// keyRunes maps a terminal key to draw key codes.
func keyRunes(k tea.KeyMsg) []rune {
	switch k.Type {
	case tea.KeyRunes:
		return k.Runes
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyEnter:
		return []rune{'\n'}
	case tea.KeyTab:
		return []rune{'\t'}
	case tea.KeyBackspace:
		return []rune{draw.KeyBackspace}
	case tea.KeyDelete:
		return []rune{draw.KeyDelete}
	case tea.KeyEscape:
		return []rune{draw.KeyEscape}
	case tea.KeyLeft:
		return []rune{draw.KeyLeft}
	case tea.KeyRight:
		return []rune{draw.KeyRight}
	case tea.KeyUp:
		return []rune{draw.KeyUp}
	case tea.KeyDown:
		return []rune{draw.KeyDown}
	case tea.KeyHome:
		return []rune{draw.KeyHome}
	case tea.KeyEnd:
		return []rune{draw.KeyEnd}
	case tea.KeyF1:
		return []rune{draw.KeyFn + 1}
	case tea.KeyF3:
		return []rune{draw.KeyFn + 3}
	}
	return nil
}

func (m *screen) msec() uint32 {
	return uint32(time.Since(m.start).Milliseconds())
}

func (m *screen) Init() tea.Cmd {
	return nil
}

func (m *screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
	case frameMsg:
		m.img = msg.img
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		for _, k := range keyRunes(msg) {
			if err := m.gui.KeyAdd(lcdui.KeyData{Key: k, Msec: m.msec()}); err != nil {
				m.gui.Do(func(t *lcdui.Tree) { t.Logger().Debug("key dropped", "key", k, "err", err) })
			}
		}
	case tea.MouseMsg:
		var pressed bool
		switch msg.Action {
		case tea.MouseActionPress, tea.MouseActionMotion:
			if msg.Button != tea.MouseButtonLeft {
				return m, nil
			}
			pressed = true
		case tea.MouseActionRelease:
		default:
			return m, nil
		}
		pt := touchPoint(msg.X, msg.Y, scale(m.width, m.height, m.cols, m.rows))
		td := lcdui.TouchData{Point: pt, Abs: pt, Pressed: pressed, Msec: m.msec()}
		if err := m.gui.TouchAdd(td); err != nil {
			m.gui.Do(func(t *lcdui.Tree) { t.Logger().Debug("touch dropped", "point", pt, "err", err) })
		}
	}
	return m, nil
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (m *screen) style(top, bottom color.RGBA) lipgloss.Style {
	k := [2]color.RGBA{top, bottom}
	st, ok := m.styles[k]
	if !ok {
		st = lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom))
		m.styles[k] = st
	}
	return st
}

// View draws two pixels per cell with an upper half block: the foreground
// is the top pixel, the background the bottom one. Runs of cells with the
// same colors are rendered at once.
func (m *screen) View() string {
	if m.img == nil {
		return ""
	}
	s := scale(m.width, m.height, m.cols, m.rows)
	var b strings.Builder
	for row := 0; row < m.rows && row*2*s < m.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		y0 := row * 2 * s
		y1 := min(y0+s, m.height-1)
		var run [2]color.RGBA
		n := 0
		flush := func() {
			if n > 0 {
				b.WriteString(m.style(run[0], run[1]).Render(strings.Repeat("▀", n)))
			}
		}
		for col := 0; col < m.cols && col*s < m.width; col++ {
			k := [2]color.RGBA{m.img.RGBAAt(col*s, y0), m.img.RGBAAt(col*s, y1)}
			if n > 0 && k != run {
				flush()
				n = 0
			}
			run = k
			n++
		}
		flush()
	}
	return b.String()
}
