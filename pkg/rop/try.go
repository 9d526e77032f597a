package rop

import (
	"errors"

	"github.com/ib-77/ropkit/pkg/fault"
)

// TryWith runs f and turns both a returned error and a panic into a failure
// through adapt. It is the boundary where foreign failures enter a Result.
func TryWith[T any, E error](f func() (T, error), adapt func(error) E) (res Result[T, E]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](adapt(&fault.PanicError{Value: r}))
		}
	}()

	out, err := f()
	if err != nil {
		return Err[T](adapt(err))
	}
	return Ok[T, E](out)
}

// Try is TryWith classified by fault.From: faults pass through, context
// errors become canceled and anything else is exceptional.
func Try[T any](f func() (T, error)) Outcome[T] {
	return TryWith(f, fault.From)
}

// Run captures panics of a function that has no error return.
func Run[T any](f func() T) Outcome[T] {
	return Try(func() (T, error) { return f(), nil })
}

// Recovered reports whether a failure came from a panic and returns the
// recovered value.
func Recovered(err error) (any, bool) {
	var p *fault.PanicError
	if errors.As(err, &p) {
		return p.Value, true
	}
	return nil, false
}
