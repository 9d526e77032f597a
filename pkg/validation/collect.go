package validation

import (
	"strings"

	"github.com/samber/lo"

	"github.com/ib-77/ropkit/pkg/fault"
	"github.com/ib-77/ropkit/pkg/rop"
)

// Sequence turns a slice of validations into a validation of a slice,
// keeping every error in slice order.
func Sequence[T any, E error](vs []Validation[T, E]) Validation[[]T, E] {
	values := make([]T, 0, len(vs))
	var errs []E
	for _, v := range vs {
		if v.IsInvalid() {
			errs = append(errs, v.errs...)
			continue
		}
		values = append(values, v.value)
	}
	if len(errs) > 0 {
		return Validation[[]T, E]{errs: errs}
	}
	return Valid[[]T, E](values)
}

// Traverse validates every item with f; f runs once per item, in order.
func Traverse[A, B any, E error](items []A, f func(A) Validation[B, E]) Validation[[]B, E] {
	return Sequence(lo.Map(items, func(item A, _ int) Validation[B, E] { return f(item) }))
}

// Failures is the error side of a Result built from an invalid Validation.
type Failures[E error] []E

func (fs Failures[E]) Error() string {
	return strings.Join(lo.Map(fs, func(e E, _ int) string { return e.Error() }), "; ")
}

func (fs Failures[E]) Unwrap() []error {
	return lo.Map(fs, func(e E, _ int) error { return e })
}

func FromResult[T any, E error](r rop.Result[T, E]) Validation[T, E] {
	return rop.Match(r,
		func(e E) Validation[T, E] { return Invalid[T](e) },
		func(v T) Validation[T, E] { return Valid[T, E](v) })
}

// ToResult keeps every error in a Failures value.
func ToResult[T any, E error](v Validation[T, E]) rop.Result[T, Failures[E]] {
	if v.IsValid() {
		return rop.Ok[T, Failures[E]](v.value)
	}
	return rop.Err[T](Failures[E](v.Errors()))
}

// ToOutcome collapses the collected faults into one fault of kind, keeping
// the originals reachable through the Cause chain as fault.Errors.
func ToOutcome[T any](v Checked[T], kind fault.Kind) rop.Outcome[T] {
	if v.IsValid() {
		return rop.Success(v.value)
	}
	if len(v.errs) == 1 {
		return rop.Fail[T](v.errs[0])
	}
	return rop.Fail[T](fault.Wrap(kind, fault.Errors(v.Errors())))
}
