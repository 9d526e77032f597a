package rop

import (
	"fmt"

	"github.com/ib-77/ropkit/pkg/fault"
)

// Result holds exactly one of a success value or an error. Operations
// never change a Result; they return a new one.
type Result[T any, E error] struct {
	result    T
	err       E
	isSuccess bool
}

// Outcome is a Result whose error side is the library taxonomy.
type Outcome[T any] = Result[T, fault.Error]

func Ok[T any, E error](r T) Result[T, E] {
	return Result[T, E]{result: r, isSuccess: true}
}

func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func Success[T any](r T) Outcome[T] {
	return Ok[T, fault.Error](r)
}

func Fail[T any](err fault.Error) Outcome[T] {
	return Err[T](err)
}

// Result returns the success value, or the zero T on failure.
func (r Result[T, E]) Result() T {
	return r.result
}

// Err returns the error, or the zero E on success.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) Get() (T, E, bool) {
	return r.result, r.err, r.isSuccess
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) ForEach(action func(T)) {
	if r.isSuccess {
		action(r.result)
	}
}

func (r Result[T, E]) ForEachError(action func(E)) {
	if !r.isSuccess {
		action(r.err)
	}
}

// OrElse lets a failure recover. fallback runs only on failure.
func (r Result[T, E]) OrElse(fallback func(E) Result[T, E]) Result[T, E] {
	if r.isSuccess {
		return r
	}
	return fallback(r.err)
}

// Ensure turns a success that fails predicate into a failure built by onFalse.
func (r Result[T, E]) Ensure(predicate func(T) bool, onFalse func(T) E) Result[T, E] {
	if !r.isSuccess || predicate(r.result) {
		return r
	}
	return Err[T](onFalse(r.result))
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Ok(%v)", r.result)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
