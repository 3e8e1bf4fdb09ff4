package list

// Multi orders payloads that are not list elements themselves, such as data
// series attached to a graph. Each Add allocates the element that holds the
// payload; Remove drops it again.
type Multi[T comparable] struct {
	l List[T]
}

// NewMulti returns an empty Multi.
func NewMulti[T comparable]() *Multi[T] {
	return &Multi[T]{}
}

// Add appends v and returns the element wrapping it.
func (m *Multi[T]) Add(v T) *Element[T] {
	return m.l.PushBack(v)
}

// Remove unlinks e. It returns false for a nil element.
func (m *Multi[T]) Remove(e *Element[T]) bool {
	if e == nil {
		return false
	}
	m.l.Remove(e)
	return true
}

// FindRemove removes every element whose payload equals v and reports
// whether any was found.
func (m *Multi[T]) FindRemove(v T) bool {
	found := false
	m.l.Each(func(e *Element[T]) {
		if e.Value == v {
			m.l.Remove(e)
			found = true
		}
	})
	return found
}

// Find returns the first element holding v, or nil.
func (m *Multi[T]) Find(v T) *Element[T] {
	for e := m.l.first; e != nil; e = e.next {
		if e.Value == v {
			return e
		}
	}
	return nil
}

// Next is the four-way Next of the underlying list; a nil m with a nil e
// yields nil.
func (m *Multi[T]) Next(e *Element[T]) *Element[T] {
	if m == nil {
		return Next[T](nil, e)
	}
	return Next(&m.l, e)
}

// Prev is the four-way Prev of the underlying list.
func (m *Multi[T]) Prev(e *Element[T]) *Element[T] {
	if m == nil {
		return Prev[T](nil, e)
	}
	return Prev(&m.l, e)
}

func (m *Multi[T]) MoveUp(e *Element[T]) bool {
	return m.l.MoveUp(e)
}

func (m *Multi[T]) MoveDown(e *Element[T]) bool {
	return m.l.MoveDown(e)
}

func (m *Multi[T]) Len() int {
	return m.l.Len()
}

// Values returns the payloads from head to tail.
func (m *Multi[T]) Values() []T {
	l := make([]T, 0, m.l.Len())
	for e := m.l.first; e != nil; e = e.next {
		l = append(l, e.Value)
	}
	return l
}
