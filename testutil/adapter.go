package testutil

import (
	"fmt"

	"github.com/joeclark-phd/bufferbuffer"
)

// Acquirer provides a common interface over the panicking and the
// error-returning accessors of a DoubleBuffer.
// This allows running the same borrow test suite on both
type Acquirer[T any] interface {
	Current() (*bufferbuffer.Ref[T], error)
	Next() (*bufferbuffer.RefMut[T], error)
	Switch()
}

// PanicAdapter wraps Current and Next, turning their panics into errors
type PanicAdapter[T any] struct {
	db *bufferbuffer.DoubleBuffer[T]
}

// NewPanicAdapter creates a new adapter for the panicking accessors
func NewPanicAdapter[T any](db *bufferbuffer.DoubleBuffer[T]) *PanicAdapter[T] {
	return &PanicAdapter[T]{db: db}
}

func (a *PanicAdapter[T]) Current() (r *bufferbuffer.Ref[T], err error) {
	err = Recover(func() { r = a.db.Current() })
	return r, err
}

func (a *PanicAdapter[T]) Next() (m *bufferbuffer.RefMut[T], err error) {
	err = Recover(func() { m = a.db.Next() })
	return m, err
}

func (a *PanicAdapter[T]) Switch() {
	a.db.Switch()
}

// ErrorAdapter wraps TryCurrent and TryNext
type ErrorAdapter[T any] struct {
	db *bufferbuffer.DoubleBuffer[T]
}

// NewErrorAdapter creates a new adapter for the error-returning accessors
func NewErrorAdapter[T any](db *bufferbuffer.DoubleBuffer[T]) *ErrorAdapter[T] {
	return &ErrorAdapter[T]{db: db}
}

func (a *ErrorAdapter[T]) Current() (*bufferbuffer.Ref[T], error) {
	return a.db.TryCurrent()
}

func (a *ErrorAdapter[T]) Next() (*bufferbuffer.RefMut[T], error) {
	return a.db.TryNext()
}

func (a *ErrorAdapter[T]) Switch() {
	a.db.Switch()
}

// Recover runs fn and returns the value it panicked with as an error, or nil
// if it returned normally. Non-error panic values are wrapped with fmt.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	fn()
	return nil
}
