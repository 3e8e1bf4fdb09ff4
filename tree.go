package lcdui

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mjl-/lcdui/list"
)

// Notification tells the application something changed. It carries no
// payload, receivers look at the tree again.
type Notification byte

const (
	NotifyCreated = Notification(iota)
	NotifyRemoved
	NotifyRedraw
	NotifyInput
)

func (n Notification) String() string {
	switch n {
	case NotifyCreated:
		return "created"
	case NotifyRemoved:
		return "removed"
	case NotifyRedraw:
		return "redraw"
	case NotifyInput:
		return "input"
	}
	return fmt.Sprintf("notification(%d)", n)
}

// Translator maps static widget texts to the active language.
type Translator interface {
	Translate(s string) string
}

type listElement = list.Element[Handle]

type slot struct {
	w   *Widget
	gen uint32
}

// Tree is the widget tree with the lock held. It is only handed out by
// GUI.Do and to widget callbacks, and must not be retained after they
// return.
type Tree struct {
	config Config
	theme  Theme
	log    *slog.Logger

	slots   []slot
	free    []uint32
	memUsed int

	root         list.List[Handle] // only the desktop
	desktop      Handle
	windowActive Handle

	focused, focusedPrev Handle
	active, activePrev   Handle

	clip   image.Rectangle
	redraw bool // some widget needs a redraw
	sweep  bool // some widget is marked for removal

	font       Font
	translator Translator

	dialogs *list.Multi[*dialog]
	timers  *list.Multi[*Timer]
	touch   touchState

	notify func(Notification)
	now    func() time.Time
}

func newTree(config Config) (*Tree, error) {
	theme, err := config.Theme.parse()
	if err != nil {
		return nil, err
	}
	t := &Tree{
		config:  config,
		theme:   theme,
		log:     config.logger(),
		font:    DefaultFont,
		dialogs: list.NewMulti[*dialog](),
		timers:  list.NewMulti[*Timer](),
		notify:  func(Notification) {},
		now:     time.Now,
	}
	t.desktop, err = t.Create(WindowType, 0, 0, 0, float32(config.Width), float32(config.Height), Handle{}, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("creating desktop: %w", err)
	}
	t.windowActive = t.desktop
	if theme.Background != 0 {
		t.SetColor(t.desktop, WindowColorBackground, theme.Background)
	}
	return t, nil
}

// get resolves h, panicking on null or stale handles.
func (t *Tree) get(h Handle) *Widget {
	if h.IsZero() {
		panic("lcdui: nil widget handle")
	}
	if int(h.index) >= len(t.slots) {
		panic(fmt.Sprintf("lcdui: invalid %s", h))
	}
	s := &t.slots[h.index]
	if s.w == nil || s.gen != h.gen {
		panic(fmt.Sprintf("lcdui: stale %s", h))
	}
	return s.w
}

// Valid reports whether h refers to a live widget.
func (t *Tree) Valid(h Handle) bool {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return false
	}
	s := &t.slots[h.index]
	return s.w != nil && s.gen == h.gen
}

func (t *Tree) alloc(size int) (Handle, *Widget, error) {
	if err := t.charge(size); err != nil {
		return Handle{}, nil, err
	}
	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[index]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	w := &Widget{size: size}
	s.w = w
	h := Handle{index, s.gen}
	w.self = h
	return h, w, nil
}

func (t *Tree) release(h Handle) {
	w := t.get(h)
	t.uncharge(w.size)
	t.slots[h.index].w = nil
	t.free = append(t.free, h.index)
}

// charge takes n bytes from the memory budget.
func (t *Tree) charge(n int) error {
	if t.config.Memory > 0 && t.memUsed+n > t.config.Memory {
		return ErrNoMemory
	}
	t.memUsed += n
	return nil
}

func (t *Tree) uncharge(n int) {
	t.memUsed -= n
}

// MemoryUsed returns the bytes charged for widgets, owned text and colors.
func (t *Tree) MemoryUsed() int {
	return t.memUsed
}

// Count returns the number of live widgets.
func (t *Tree) Count() int {
	return len(t.slots) - len(t.free)
}

func (t *Tree) Config() Config {
	return t.config
}

func (t *Tree) Theme() Theme {
	return t.theme
}

func (t *Tree) Logger() *slog.Logger {
	return t.log
}

// Desktop returns the root window.
func (t *Tree) Desktop() Handle {
	return t.desktop
}

// ActiveWindow is the parent for widgets created without a container parent.
func (t *Tree) ActiveWindow() Handle {
	return t.windowActive
}

// SetActiveWindow makes h the fallback parent. h must allow children.
func (t *Tree) SetActiveWindow(h Handle) {
	if !t.get(h).allowChildren() {
		panic("lcdui: active window must allow children")
	}
	t.windowActive = h
}

func (t *Tree) ID(h Handle) ID {
	return t.get(h).id
}

func (t *Tree) TypeOf(h Handle) *Type {
	return t.get(h).typ
}

// Parent returns the parent of h, the zero Handle for the desktop.
func (t *Tree) Parent(h Handle) Handle {
	return t.get(h).parent
}

func (t *Tree) Flags(h Handle) Flags {
	return t.get(h).flags
}

// State returns the value made by the type's New function.
func (t *Tree) State(h Handle) any {
	return t.get(h).state
}

func (t *Tree) UserData(h Handle) any {
	return t.get(h).userData
}

func (t *Tree) SetUserData(h Handle, v any) {
	t.get(h).userData = v
}

// SetCallback replaces the instance callback, nil restores the type callback.
func (t *Tree) SetCallback(h Handle, cb Callback) {
	t.get(h).cb = cb
}

// DefaultCallback runs the type callback of h. Instance callbacks call it
// for commands they do not handle themselves.
func (t *Tree) DefaultCallback(h Handle, e *Event, r *Result) bool {
	w := t.get(h)
	if w.typ.Callback == nil {
		return false
	}
	return w.typ.Callback(t, h, e, r)
}

func (t *Tree) callback(h Handle, e *Event, r *Result) bool {
	w := t.get(h)
	if w.cb != nil {
		return w.cb(t, h, e, r)
	}
	return t.DefaultCallback(h, e, r)
}

// command sends a parameterless command.
func (t *Tree) command(h Handle, cmd Command) bool {
	var r Result
	return t.callback(h, &Event{Cmd: cmd}, &r)
}

// SetParam sends CmdSetParam with p and reports whether the widget took it.
func (t *Tree) SetParam(h Handle, p Param) bool {
	r := Result{OK: true}
	return t.callback(h, &Event{Cmd: CmdSetParam, Param: p}, &r) && r.OK
}

// GetParam sends CmdGetParam for type typ.
func (t *Tree) GetParam(h Handle, typ int) (any, bool) {
	var r Result
	if !t.callback(h, &Event{Cmd: CmdGetParam, Param: Param{Type: typ}}, &r) {
		return nil, false
	}
	return r.Value, true
}

// IncSelection sends CmdIncSelection with delta.
func (t *Tree) IncSelection(h Handle, delta int16) bool {
	var r Result
	return t.callback(h, &Event{Cmd: CmdIncSelection, Delta: delta}, &r)
}

func (t *Tree) children(h Handle) *list.List[Handle] {
	if h.IsZero() {
		return &t.root
	}
	if c := t.get(h).container; c != nil {
		return &c.children
	}
	return nil
}

// Next walks siblings. With a zero h it returns the first child of parent,
// with a zero parent it continues from h. Both zero yields the desktop.
func (t *Tree) Next(parent, h Handle) Handle {
	var e *list.Element[Handle]
	if h.IsZero() {
		e = list.Next(t.children(parent), nil)
	} else {
		e = list.Next(nil, t.get(h).elem)
	}
	if e == nil {
		return Handle{}
	}
	return e.Value
}

// Prev is Next towards the least visible sibling.
func (t *Tree) Prev(parent, h Handle) Handle {
	var e *list.Element[Handle]
	if h.IsZero() {
		e = list.Prev(t.children(parent), nil)
	} else {
		e = list.Prev(nil, t.get(h).elem)
	}
	if e == nil {
		return Handle{}
	}
	return e.Value
}

// Children returns the children of h from least to most visible.
func (t *Tree) Children(h Handle) []Handle {
	l := t.children(h)
	if l == nil {
		return nil
	}
	r := make([]Handle, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		r = append(r, e.Value)
	}
	return r
}

// isLast reports whether h is the most visible of its siblings.
func (t *Tree) isLast(h Handle) bool {
	e := t.get(h).elem
	return e == nil || e.Next() == nil
}

// ByID searches the subtree below parent depth first, the zero parent
// searches from the desktop.
func (t *Tree) ByID(parent Handle, id ID) Handle {
	if parent.IsZero() {
		if t.get(t.desktop).id == id {
			return t.desktop
		}
		parent = t.desktop
	}
	l := t.children(parent)
	if l == nil {
		return Handle{}
	}
	for e := l.Front(); e != nil; e = e.Next() {
		if t.get(e.Value).id == id {
			return e.Value
		}
		if r := t.ByID(e.Value, id); !r.IsZero() {
			return r
		}
	}
	return Handle{}
}

// IsChildOf reports whether h is a descendant of parent.
func (t *Tree) IsChildOf(h, parent Handle) bool {
	for p := t.get(h).parent; !p.IsZero(); p = t.get(p).parent {
		if p == parent {
			return true
		}
	}
	return false
}

func (t *Tree) debugf(on bool, msg string, args ...any) {
	if on {
		t.log.Debug("lcdui: "+msg, args...)
	}
}

// Print writes the tree below h, the desktop for a zero h.
func (t *Tree) Print(out io.Writer, h Handle) {
	if h.IsZero() {
		h = t.desktop
	}
	t.print(out, h, 0)
}

func (t *Tree) print(out io.Writer, h Handle, indent int) {
	w := t.get(h)
	var fl []string
	for i, name := range flagNames {
		if w.flags&(1<<uint(i)) != 0 {
			fl = append(fl, name)
		}
	}
	fmt.Fprintf(out, "%s%s id=%d z=%d r=%v flags=%s\n", strings.Repeat("  ", indent), w.typ.Name, w.id, w.zIndex, t.VisibleRect(h), strings.Join(fl, ","))
	if w.container != nil {
		for e := w.container.children.Front(); e != nil; e = e.Next() {
			t.print(out, e.Value, indent+1)
		}
	}
}

var flagNames = []string{
	"redraw", "child", "dynamictext", "active", "focus", "hidden", "disabled",
	"3d", "widthpercent", "heightpercent", "widthfill", "heightfill",
	"expanded", "remove", "ignoreinvalidate", "touchmove", "xpercent",
	"ypercent", "allowchildren", "dialogbase", "invalidateparent",
}
