package validator

import (
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/validation"
)

type Validator[T any, E error] func(T) rop.Result[T, E]

type Check[T any, E error] func(T) validation.Validation[T, E]

// Of builds a validator from a predicate. onFail receives the rejected value.
func Of[T any, E error](isValid func(T) bool, onFail func(T) E) Validator[T, E] {
	return func(in T) rop.Result[T, E] {
		if isValid(in) {
			return rop.Ok[T, E](in)
		}
		return rop.Err[T](onFail(in))
	}
}

// Check lifts v so it can take part in accumulating folds.
func (v Validator[T, E]) Check() Check[T, E] {
	return func(in T) validation.Validation[T, E] {
		return validation.FromResult(v(in))
	}
}

// Field lifts a validator of one field onto the whole value. On success the
// whole value is returned unchanged.
func Field[S, F any, E error](get func(S) F, v Validator[F, E]) Validator[S, E] {
	return func(s S) rop.Result[S, E] {
		return rop.Map(v(get(s)), func(F) S { return s })
	}
}

// FieldCheck is Field for checks.
func FieldCheck[S, F any, E error](get func(S) F, c Check[F, E]) Check[S, E] {
	return func(s S) validation.Validation[S, E] {
		return validation.Map(c(get(s)), func(F) S { return s })
	}
}
