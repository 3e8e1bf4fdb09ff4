/*
Package lcdui is a widget toolkit core for small LCD and TFT displays.

Start with New to create a GUI: the widget tree, its lock, and the input queues. New makes a desktop window covering the display, all other widgets live below it.

Widgets are referenced by Handle. A widget stays valid until it is removed and the next sweep frees it; a handle used after that panics. Each widget has a Type, shared by all widgets of that kind, with a Callback that handles the commands the engine sends: draw, touch, key presses, focus changes and so on. A widget can override the type callback with its own, and pass commands it does not handle to Tree.DefaultCallback.

All state is behind one lock. Exported GUI methods take the lock, Tree methods assume it is held. You only get a Tree from GUI.Do and in callbacks, so code that has a Tree is holding the lock. Callbacks must not call GUI methods.

Invalidation

Changing a widget marks it for redraw and grows the clip rectangle by its visible area. Siblings drawn over it are marked too. Tree.Redraw draws the marked widgets back to front, limited to the clip, and resets both. Your application decides when to redraw: typically in GUI.Run, or after GUI.Process reports pending work.

Ordering

Children are kept in drawing order: plain widgets first, then containers, then dialogs. Within each group a higher z-index is drawn later. Dialogs always end up on top and take all input while open.

Removal

Tree.Remove asks the widget and its children whether they can be removed, and marks them. Tree.Sweep, run by GUI.Process, frees marked widgets, so callbacks can remove widgets, themselves included, safely.
*/
package lcdui
