package lcdui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// GUI owns the widget tree and the lock protecting it. Its methods may be
// called from any goroutine. Callbacks run with the lock held and must use
// the Tree they are given, not the GUI.
type GUI struct {
	mu   sync.Mutex
	tree *Tree

	touch  chan TouchData
	keys   chan KeyData
	notify chan Notification
	wake   chan struct{}
	log    *slog.Logger
}

// New makes a GUI with a desktop window covering the display.
func New(config Config) (*GUI, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new gui: %w", err)
	}
	g := &GUI{
		touch:  make(chan TouchData, config.TouchBuffer),
		keys:   make(chan KeyData, config.KeyBuffer),
		notify: make(chan Notification, 16),
		wake:   make(chan struct{}, 1),
	}
	t, err := newTree(config)
	if err != nil {
		return nil, fmt.Errorf("new gui: %w", err)
	}
	t.notify = g.post
	g.tree = t
	g.log = t.log
	return g, nil
}

func (g *GUI) post(n Notification) {
	select {
	case g.notify <- n:
	default:
	}
	g.wakeup()
}

func (g *GUI) wakeup() {
	select {
	case g.wake <- struct{}{}:
	default:
	}
}

// Notify returns the notification channel. Notifications are dropped when
// the channel is full.
func (g *GUI) Notify() <-chan Notification {
	return g.notify
}

// Do runs fn with the lock held.
func (g *GUI) Do(fn func(t *Tree)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.tree)
}

// TouchAdd queues a touch sample, failing with ErrQueueFull instead of
// blocking.
func (g *GUI) TouchAdd(td TouchData) error {
	select {
	case g.touch <- td:
		g.wakeup()
		return nil
	default:
		return ErrQueueFull
	}
}

// KeyAdd queues a key, failing with ErrQueueFull instead of blocking.
func (g *GUI) KeyAdd(k KeyData) error {
	select {
	case g.keys <- k:
		g.wakeup()
		return nil
	default:
		return ErrQueueFull
	}
}

// Process handles queued input, runs due timers and frees removed widgets.
// It reports whether a redraw is pending.
func (g *GUI) Process() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	t := g.tree

	input := false
touch:
	for {
		select {
		case td := <-g.touch:
			t.processTouch(td)
			input = true
		default:
			break touch
		}
	}
keys:
	for {
		select {
		case k := <-g.keys:
			t.processKey(k)
			input = true
		default:
			break keys
		}
	}
	if input {
		t.notify(NotifyInput)
	}
	t.processTimers(t.now())
	t.Sweep()
	if t.redraw {
		t.notify(NotifyRedraw)
	}
	return t.redraw
}

// Redraw runs the render pass on p.
func (g *GUI) Redraw(p Painter) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Redraw(p)
}

// Run processes and redraws until ctx is done. Painters that implement
// Flusher are flushed after drawing.
func (g *GUI) Run(ctx context.Context, p Painter) error {
	g.mu.Lock()
	tick := time.NewTicker(time.Duration(g.tree.config.TimerMsec) * time.Millisecond)
	g.mu.Unlock()
	defer tick.Stop()

	for {
		if g.Process() {
			if n := g.Redraw(p); n > 0 {
				if f, ok := p.(Flusher); ok {
					if err := f.Flush(); err != nil {
						return fmt.Errorf("flush: %w", err)
					}
				}
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.wake:
		case <-tick.C:
		}
	}
}

// CreateDialogBlocking creates a dialog like Tree.CreateDialog and waits
// for it to be dismissed, returning the dismiss status. The lock is not held
// while waiting. If ctx is done first the dialog is removed.
func (g *GUI) CreateDialogBlocking(ctx context.Context, id ID, x, y, width, height float32, ctor Constructor, cb Callback, flags CreateFlags) (int, error) {
	g.mu.Lock()
	h, err := g.tree.CreateDialog(id, x, y, width, height, ctor, cb, flags)
	if err != nil {
		g.mu.Unlock()
		return -1, err
	}
	d := g.tree.findDialog(h)
	d.done = make(chan int, 1)
	g.mu.Unlock()

	select {
	case status := <-d.done:
		return status, nil
	case <-ctx.Done():
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	select {
	case status := <-d.done:
		return status, nil
	default:
	}
	g.tree.dialogs.FindRemove(d)
	if g.tree.Valid(h) {
		g.tree.Remove(h)
	}
	return -1, ctx.Err()
}

// Create is Tree.Create with the lock held.
func (g *GUI) Create(typ *Type, id ID, x, y, width, height float32, parent Handle, cb Callback, flags CreateFlags) (Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Create(typ, id, x, y, width, height, parent, cb, flags)
}

func (g *GUI) Remove(h Handle) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Remove(h)
}

func (g *GUI) Invalidate(h Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.Invalidate(h)
}

func (g *GUI) SetText(h Handle, s string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.SetText(h, s)
}

func (g *GUI) Text(h Handle) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Text(h)
}

func (g *GUI) FocusSet(h Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.FocusSet(h)
}

func (g *GUI) PutOnFront(h Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tree.PutOnFront(h)
}

func (g *GUI) DismissDialog(h Handle, status int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.DismissDialog(h, status)
}
