// Package list implements the ordered doubly-linked lists used for widget
// siblings and for payload lists such as graph data series.
//
// Next and Prev take both the list and an element. With a nil element they
// return the first or last element of the list, so a single loop walks a list
// from either end:
//
//	for e := list.Next(l, nil); e != nil; e = list.Next(nil, e) {
//		...
//	}
package list

// Element is an entry in a List.
type Element[T any] struct {
	prev, next *Element[T]
	list       *List[T]

	Value T
}

// List is a doubly-linked list. The zero value is an empty list.
type List[T any] struct {
	first, last *Element[T]
	n           int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.n
}

// Front returns the first element, or nil.
func (l *List[T]) Front() *Element[T] {
	return l.first
}

// Back returns the last element, or nil.
func (l *List[T]) Back() *Element[T] {
	return l.last
}

// PushBack appends v at the tail and returns its new element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v}
	l.Add(e)
	return e
}

// Add links a detached element at the tail.
func (l *List[T]) Add(e *Element[T]) {
	if e.list != nil {
		panic("list: add of element already in a list")
	}
	e.list = l
	e.next = nil
	if l.first == nil || l.last == nil {
		e.prev = nil
		l.first = e
		l.last = e
	} else {
		e.prev = l.last
		l.last.next = e
		l.last = e
	}
	l.n++
}

// Remove detaches e from l and returns it. The element's own links are
// cleared. Removing nil returns nil.
func (l *List[T]) Remove(e *Element[T]) *Element[T] {
	if e == nil {
		return nil
	}
	if e.list != l {
		panic("list: remove of element not in this list")
	}
	prev, next := e.prev, e.next
	if prev != nil {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}
	if l.first == e {
		l.first = next
	}
	if l.last == e {
		l.last = prev
	}
	e.prev = nil
	e.next = nil
	e.list = nil
	l.n--
	return e
}

// MoveDown swaps e with its next neighbour, moving it one step towards the
// tail. It returns false if e is already last.
func (l *List[T]) MoveDown(e *Element[T]) bool {
	if e == nil || e == l.last {
		return false
	}
	prev := e.prev
	next := e.next
	var nextnext *Element[T]
	if next != nil {
		nextnext = next.next
	}

	if nextnext != nil {
		nextnext.prev = e
	} else {
		l.last = e
	}
	if next != nil {
		next.next = e
		next.prev = prev
	}
	e.next = nextnext
	e.prev = next
	if prev != nil {
		prev.next = next
	}
	if l.first == e {
		l.first = next
	}
	return true
}

// MoveUp swaps e with its previous neighbour, moving it one step towards the
// head. It returns false if e is already first.
func (l *List[T]) MoveUp(e *Element[T]) bool {
	if e == nil || e == l.first {
		return false
	}
	prev := e.prev
	next := e.next
	var prevprev *Element[T]
	if prev != nil {
		prevprev = prev.prev
	}

	if prevprev != nil {
		prevprev.next = e
	} else {
		l.first = e
	}
	if prev != nil {
		prev.prev = e
		prev.next = next
	}
	e.prev = prevprev
	e.next = prev
	if next != nil {
		next.prev = prev
	}
	if l.last == e {
		l.last = prev
	}
	return true
}

// Index returns the element at position n counted from the head, or nil.
func (l *List[T]) Index(n int) *Element[T] {
	e := Next(l, nil)
	for ; n > 0 && e != nil; n-- {
		e = Next(nil, e)
	}
	return e
}

// Each calls fn for every element from head to tail. The next element is
// read before fn is called, so fn may remove the element it is given.
func (l *List[T]) Each(fn func(e *Element[T])) {
	for e := l.first; e != nil; {
		next := e.next
		fn(e)
		e = next
	}
}

// Next returns the element after e. With a nil e it returns the first
// element of l, or nil if l is nil too.
func Next[T any](l *List[T], e *Element[T]) *Element[T] {
	if e == nil {
		if l != nil {
			return l.first
		}
		return nil
	}
	return e.next
}

// Prev returns the element before e. With a nil e it returns the last
// element of l, or nil if l is nil too.
func Prev[T any](l *List[T], e *Element[T]) *Element[T] {
	if e == nil {
		if l != nil {
			return l.last
		}
		return nil
	}
	return e.prev
}

// Next returns the element after e in its list.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the element before e in its list.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// InList reports whether e is linked into a list.
func (e *Element[T]) InList() bool {
	return e.list != nil
}
