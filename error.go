package lcdui

import (
	"errors"
	"fmt"
)

var (
	ErrNoMemory      = errors.New("out of widget memory")
	ErrTypeSize      = errors.New("widget type size too small")
	ErrRejected      = errors.New("widget rejected creation")
	ErrNoConstructor = errors.New("no dialog constructor")
	ErrQueueFull     = errors.New("input queue full")
)

// errorHandler returns a check function that aborts the calling function on
// error, and the handle function to defer that recovers and passes the
// error to fn.
func errorHandler(fn func(xerr error)) (func(error, string), func()) {
	type localError struct {
		err error
	}

	check := func(err error, msg string) {
		if err != nil {
			panic(&localError{fmt.Errorf("%s: %w", msg, err)})
		}
	}
	handle := func() {
		e := recover()
		if e == nil {
			return
		}
		if le, ok := e.(*localError); ok {
			fn(le.err)
		} else {
			panic(e)
		}
	}
	return check, handle
}
