package validation

import (
	"fmt"
	"slices"

	"github.com/ib-77/ropkit/pkg/fault"
	"github.com/ib-77/ropkit/pkg/fn"
)

// Validation is valid when it carries no errors. The error slice is never
// shared between values.
type Validation[T any, E error] struct {
	value T
	errs  []E
}

// Checked is a Validation over the library taxonomy.
type Checked[T any] = Validation[T, fault.Error]

func Valid[T any, E error](v T) Validation[T, E] {
	return Validation[T, E]{value: v}
}

// Invalid requires at least one error.
func Invalid[T any, E error](err E, more ...E) Validation[T, E] {
	errs := make([]E, 0, 1+len(more))
	errs = append(errs, err)
	errs = append(errs, more...)
	return Validation[T, E]{errs: errs}
}

func (v Validation[T, E]) IsValid() bool {
	return len(v.errs) == 0
}

func (v Validation[T, E]) IsInvalid() bool {
	return len(v.errs) > 0
}

// Value returns the validated value, or the zero T when invalid.
func (v Validation[T, E]) Value() T {
	return v.value
}

// Errors returns a copy of the collected errors in the order they were seen.
func (v Validation[T, E]) Errors() []E {
	return slices.Clone(v.errs)
}

func (v Validation[T, E]) ForEach(action func(T)) {
	if v.IsValid() {
		action(v.value)
	}
}

func (v Validation[T, E]) String() string {
	if v.IsValid() {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return fmt.Sprintf("Invalid(%v)", v.errs)
}

func invalid[T any, E error](errs []E) Validation[T, E] {
	return Validation[T, E]{errs: slices.Clone(errs)}
}

// Apply is the applicative step. If both sides failed the result carries
// vf's errors followed by va's errors; if one failed it is propagated; if
// both are valid the wrapped function is applied.
func Apply[A, B any, E error](vf Validation[func(A) B, E], va Validation[A, E]) Validation[B, E] {
	switch {
	case vf.IsInvalid() && va.IsInvalid():
		errs := make([]E, 0, len(vf.errs)+len(va.errs))
		errs = append(errs, vf.errs...)
		errs = append(errs, va.errs...)
		return Validation[B, E]{errs: errs}
	case vf.IsInvalid():
		return invalid[B](vf.errs)
	case va.IsInvalid():
		return invalid[B](va.errs)
	default:
		return Valid[B, E](vf.value(va.value))
	}
}

// Lift2 validates the arguments of a binary constructor independently.
func Lift2[A, B, R any, E error](f func(A, B) R, va Validation[A, E], vb Validation[B, E]) Validation[R, E] {
	return Apply(Apply(Valid[func(A) func(B) R, E](fn.Curry(f)), va), vb)
}

// Lift3 validates the arguments of a ternary constructor independently.
func Lift3[A, B, C, R any, E error](f func(A, B, C) R,
	va Validation[A, E], vb Validation[B, E], vc Validation[C, E]) Validation[R, E] {
	return Apply(Apply(Apply(Valid[func(A) func(B) func(C) R, E](fn.Curry3(f)), va), vb), vc)
}

func Map[T, R any, E error](v Validation[T, E], f func(T) R) Validation[R, E] {
	if v.IsInvalid() {
		return invalid[R](v.errs)
	}
	return Valid[R, E](f(v.value))
}

func MapErrors[T any, E, F error](v Validation[T, E], f func(E) F) Validation[T, F] {
	if v.IsValid() {
		return Valid[T, F](v.value)
	}
	errs := make([]F, len(v.errs))
	for i, e := range v.errs {
		errs[i] = f(e)
	}
	return Validation[T, F]{errs: errs}
}

// Bind is for validations that depend on an earlier one. It short-circuits:
// f is not called when v is invalid.
func Bind[T, R any, E error](v Validation[T, E], f func(T) Validation[R, E]) Validation[R, E] {
	if v.IsInvalid() {
		return invalid[R](v.errs)
	}
	return f(v.value)
}

func Match[T any, E error, R any](v Validation[T, E], onInvalid func([]E) R, onValid func(T) R) R {
	if v.IsValid() {
		return onValid(v.value)
	}
	return onInvalid(slices.Clone(v.errs))
}
