package lcdui

import (
	"fmt"
	"image"
	"unsafe"

	"9fans.net/go/draw"

	"github.com/mjl-/lcdui/list"
)

// ID identifies a widget for the application. IDs need not be unique.
type ID uint32

// Handle refers to a widget in a Tree. The zero Handle refers to no widget.
//
// A Handle stays valid until the widget it refers to is swept. Using a
// Handle after that panics, the generation no longer matches.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the null handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "widget(nil)"
	}
	return fmt.Sprintf("widget(%d.%d)", h.index, h.gen)
}

// Flags holds widget state bits.
type Flags uint32

const (
	FlagRedraw           = Flags(1 << iota) // Needs redraw in the next render pass.
	FlagChild                               // Child window.
	FlagDynamicText                         // Text buffer is owned by the widget.
	FlagActive                              // Pressed by touch.
	FlagFocus                               // On the focus path.
	FlagHidden                              // Not drawn and not hit by touch.
	FlagDisabled                            // Does not take input.
	Flag3D                                  // 3D style.
	FlagWidthPercent                        // Width is a percentage of the parent inner width.
	FlagHeightPercent                       // Height is a percentage of the parent inner height.
	FlagWidthFill                           // Width fills to the right edge of the parent.
	FlagHeightFill                          // Height fills to the bottom edge of the parent.
	FlagExpanded                            // Covers the whole parent, position ignored.
	FlagRemove                              // Removal pending, freed on the next sweep.
	FlagIgnoreInvalidate                    // Invalidation requests are dropped.
	FlagTouchMove                           // Callback handled touch move while active.
	FlagXPercent                            // X is a percentage of the parent inner width.
	FlagYPercent                            // Y is a percentage of the parent inner height.
	FlagAllowChildren                       // Container, has a child list.
	FlagDialogBase                          // Dialog, always above other widgets.
	FlagInvalidateParent                    // Invalidating the widget invalidates its parent too.
)

// Category flags a widget type declares; copied into each instance.
const typeFlags = FlagAllowChildren | FlagDialogBase | FlagInvalidateParent

// CreateFlags modify Create.
type CreateFlags uint16

const (
	CreateParentDesktop = CreateFlags(1 << iota) // Attach to the desktop regardless of the parent argument.
)

// Type describes a kind of widget. Types are shared and never modified after
// the first Create.
type Type struct {
	Name     string
	Size     int          // Bytes charged against the memory budget; at least MinWidgetSize, or MinContainerSize with FlagAllowChildren.
	Flags    Flags        // Only FlagAllowChildren, FlagDialogBase and FlagInvalidateParent are used.
	Callback Callback     // Handles commands for all widgets of this type.
	Colors   []draw.Color // Default colors, indexed by the type's color constants.
	New      func() any   // Optional, returns per-instance state, see Tree.State.
}

var (
	// MinWidgetSize is the smallest Type.Size accepted by Create.
	MinWidgetSize = int(unsafe.Sizeof(Widget{}))

	// MinContainerSize is the smallest Type.Size for types with FlagAllowChildren.
	MinContainerSize = MinWidgetSize + int(unsafe.Sizeof(Container{}))
)

// Container holds the state of widgets that can have children.
type Container struct {
	children list.List[Handle]
	scrollX  int
	scrollY  int
}

// Widget is the record behind a Handle. It is only reachable through Tree
// methods.
type Widget struct {
	self   Handle
	id     ID
	typ    *Type
	cb     Callback
	parent Handle
	elem   *list.Element[Handle] // in parent's child list, nil if excluded.
	size   int                   // bytes charged

	x, y, width, height float32
	zIndex              int32
	flags               Flags
	padding             Space

	font         Font
	colors       []draw.Color
	transparency uint8

	text      string
	textBuf   []byte // owned text, cap is the allocated size
	textCur   int    // cursor, byte offset
	container *Container

	timer    *Timer
	state    any
	userData any
}

func (w *Widget) has(f Flags) bool {
	return w.flags&f != 0
}

func (w *Widget) allowChildren() bool {
	return w.container != nil
}

func (w *Widget) dialogBase() bool {
	return w.flags&FlagDialogBase != 0
}

func (w *Widget) transparent() bool {
	return w.transparency != 0xff
}

// category orders siblings: plain widgets, then containers, then dialogs.
func (w *Widget) category() int {
	switch {
	case w.dialogBase():
		return 2
	case w.allowChildren():
		return 1
	}
	return 0
}

// Command is sent to a widget callback.
type Command byte

const (
	CmdNone              = Command(iota)
	CmdPreInit           // Before the widget is linked; Result.OK false rejects creation.
	CmdExcludeLinkedList // Result.OK true keeps the widget out of its parent's child list.
	CmdSetParam          // Event.Param carries the parameter.
	CmdGetParam          // Event.Param.Type selects, Result.Value returns.
	CmdInit              // Widget is linked and sized.
	CmdChildCreated      // Sent to the parent, Event.Child is the new widget.
	CmdDraw              // Event.Painter and Event.Clip are set.
	CmdCanRemove         // Result.OK false vetoes removal.
	CmdRemove            // Widget is about to be freed.
	CmdFocusIn
	CmdFocusOut
	CmdActiveIn
	CmdActiveOut
	CmdTouchStart // Event.Touch, Result.Touch.
	CmdTouchMove  // Event.Touch, Result.Touch.
	CmdTouchEnd   // Event.Touch, Result.Touch.
	CmdClick
	CmdLongClick
	CmdDblClick
	CmdKeyPress // Event.Key, Result.Key.
	CmdSelectionChanged
	CmdValueChanged
	CmdTextChanged
	CmdIncSelection // Event.Delta.
	CmdOnDismiss    // Event.Status.
)

var commandNames = [...]string{
	"none", "preinit", "excludelinkedlist", "setparam", "getparam", "init",
	"childcreated", "draw", "canremove", "remove", "focusin", "focusout",
	"activein", "activeout", "touchstart", "touchmove", "touchend", "click",
	"longclick", "dblclick", "keypress", "selectionchanged", "valuechanged",
	"textchanged", "incselection", "ondismiss",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", c)
}

// Param is a generic typed parameter for CmdSetParam and CmdGetParam.
type Param struct {
	Type int
	Data any
}

// TouchData is a touch sample. Point is in screen coordinates when queued,
// and relative to the widget when passed to a callback; Abs always holds the
// screen coordinates.
type TouchData struct {
	Point   image.Point
	Abs     image.Point
	Pressed bool
	Msec    uint32
}

// TouchFromMouse converts a mouse sample, button 1 acts as the touch.
func TouchFromMouse(m draw.Mouse) TouchData {
	return TouchData{Point: m.Point, Abs: m.Point, Pressed: m.Buttons&1 != 0, Msec: m.Msec}
}

// KeyData is a key press. Keys use the draw package key codes.
type KeyData struct {
	Key  rune
	Msec uint32
}

// TouchStatus is the result of touch commands.
type TouchStatus byte

const (
	TouchContinue      = TouchStatus(iota) // Not handled, try the parent.
	TouchHandled                           // Handled, widget becomes active and focused.
	TouchHandledNoFocus                    // Handled, focus does not change.
)

// KeyStatus is the result of CmdKeyPress.
type KeyStatus byte

const (
	KeyContinue = KeyStatus(iota) // Not handled, try the parent.
	KeyHandled
)

// Event is the command and its parameters passed to a Callback. Only the
// fields documented for Cmd are set.
type Event struct {
	Cmd     Command
	Painter Painter
	Clip    image.Rectangle
	Touch   TouchData
	Key     KeyData
	Param   Param
	Child   Handle
	Delta   int16
	Status  int
}

// Result is filled in by a Callback.
type Result struct {
	OK    bool
	Touch TouchStatus
	Key   KeyStatus
	Value any
}

// Callback handles a command for widget h and reports whether it did. It is
// called with the tree lock held, t is the locked tree.
type Callback func(t *Tree, h Handle, e *Event, r *Result) (handled bool)
