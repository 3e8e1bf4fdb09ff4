package main

import (
	"fmt"
	"math"
	"time"

	"github.com/mjl-/lcdui"
	"github.com/mjl-/lcdui/widget"
)

const (
	idTitle lcdui.ID = iota + 1
	idReset
	idGrid
	idName
	idGraph
	idDialog
	idSlow
	idFast
	idLed
)

type demo struct {
	gui   *lcdui.GUI
	title lcdui.Handle
	graph lcdui.Handle
	sin   *widget.Series
	cos   *widget.Series
	led   lcdui.Handle
	step  int
	speed uint32
	ticks int
}

// newDemo fills the desktop with one widget of each kind. A periodic timer
// feeds the graph.
func newDemo(gui *lcdui.GUI) (d *demo, err error) {
	d = &demo{gui: gui, speed: 1}
	gui.Do(func(t *lcdui.Tree) {
		err = d.build(t)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *demo) build(t *lcdui.Tree) error {
	var err error
	d.title, err = widget.CreateLabel(t, idTitle, 8, 4, 304, 20, lcdui.Handle{}, "lcdui demo")
	if err != nil {
		return err
	}
	widget.SetAlign(t, d.title, widget.AlignCenter)

	reset, err := widget.CreateButton(t, idReset, 8, 30, 100, 28, lcdui.Handle{}, "Reset...", d.confirmReset)
	if err != nil {
		return err
	}
	t.Set3D(reset, true)

	grid, err := widget.CreateCheckbox(t, idGrid, 120, 34, 70, 20, lcdui.Handle{}, "Grid", func(t *lcdui.Tree, _ lcdui.Handle, on bool) {
		n := 0
		if on {
			n = 4
		}
		widget.SetGrid(t, d.graph, n)
	})
	if err != nil {
		return err
	}

	setSpeed := func(_ *lcdui.Tree, _ lcdui.Handle, v uint32) {
		d.speed = v
	}
	slow, err := widget.CreateRadio(t, idSlow, 195, 34, 55, 20, lcdui.Handle{}, "1x", 1, 1, setSpeed)
	if err != nil {
		return err
	}
	if _, err := widget.CreateRadio(t, idFast, 255, 34, 55, 20, lcdui.Handle{}, "2x", 1, 2, setSpeed); err != nil {
		return err
	}
	widget.SetSelected(t, slow)

	d.led, err = widget.CreateLed(t, idLed, 220, 66, 22, 22, lcdui.Handle{}, widget.LedCircle)
	if err != nil {
		return err
	}

	name, err := widget.CreateEditText(t, idName, 8, 66, 200, 22, lcdui.Handle{}, 32, func(t *lcdui.Tree, _ lcdui.Handle, s string) {
		t.SetText(d.title, fmt.Sprintf("Hello, %s", s))
	})
	if err != nil {
		return err
	}

	d.graph, err = widget.CreateGraph(t, idGraph, 8, 98, 304, 134, lcdui.Handle{}, -1.2, 1.2)
	if err != nil {
		return err
	}
	t.SetWidthPercent(d.graph, 95)
	d.addSeries(t)
	t.StartTimer(d.graph, 100*time.Millisecond, true, d.tick)

	widget.SetChecked(t, grid, true)
	widget.SetGrid(t, d.graph, 4)
	t.FocusSet(name)
	return nil
}

func (d *demo) addSeries(t *lcdui.Tree) {
	d.sin = widget.AddSeries(t, d.graph, 0x3272dcff, 100)
	d.cos = widget.AddSeries(t, d.graph, 0xdc3232ff, 100)
	d.step = 0
}

// tick adds a sample to both series, speed steps further along the
// curves. The led blinks every fifth tick.
func (d *demo) tick(t *lcdui.Tree, h lcdui.Handle) {
	x := float64(d.step) / 10
	widget.Push(t, h, d.sin, float32(math.Sin(x)))
	widget.Push(t, h, d.cos, float32(math.Cos(x)))
	d.step += int(d.speed)
	d.ticks++
	if d.ticks%5 == 0 {
		widget.Toggle(t, d.led)
	}
}

// confirmReset opens a dialog asking whether to clear the graph.
func (d *demo) confirmReset(t *lcdui.Tree, _ lcdui.Handle) {
	dlg, err := t.CreateDialog(idDialog, 60, 60, 200, 100, lcdui.WindowConstructor, d.dialogCallback, 0)
	if err != nil {
		t.Logger().Error("reset dialog", "err", err)
		return
	}
	t.Set3D(dlg, true)
	t.SetPadding(dlg, lcdui.NSpace(6))
	dismiss := func(status int) func(t *lcdui.Tree, h lcdui.Handle) {
		return func(t *lcdui.Tree, h lcdui.Handle) {
			t.DismissDialog(dlg, status)
		}
	}
	if _, err := widget.CreateLabel(t, 0, 4, 4, 180, 20, dlg, "Clear the graph?"); err != nil {
		t.Logger().Error("reset dialog", "err", err)
	}
	ok, err := widget.CreateButton(t, 0, 4, 54, 80, 28, dlg, "OK", dismiss(1))
	if err != nil {
		t.Logger().Error("reset dialog", "err", err)
		t.DismissDialog(dlg, 0)
		return
	}
	if _, err := widget.CreateButton(t, 0, 104, 54, 80, 28, dlg, "Cancel", dismiss(0)); err != nil {
		t.Logger().Error("reset dialog", "err", err)
	}
	t.FocusSet(ok)
}

func (d *demo) dialogCallback(t *lcdui.Tree, h lcdui.Handle, e *lcdui.Event, r *lcdui.Result) bool {
	if e.Cmd == lcdui.CmdOnDismiss {
		if e.Status == 1 {
			widget.RemoveSeries(t, d.graph, d.sin)
			widget.RemoveSeries(t, d.graph, d.cos)
			d.addSeries(t)
		}
		return true
	}
	return t.DefaultCallback(h, e, r)
}

// stop ends the graph updates.
func (d *demo) stop() {
	d.gui.Do(func(t *lcdui.Tree) {
		t.StopTimer(d.graph)
	})
}
