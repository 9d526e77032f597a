package validator

import (
	"github.com/ib-77/ropkit/pkg/rop"
	"github.com/ib-77/ropkit/pkg/validation"
)

// FailFast chains validators left to right. Each one receives the value
// produced by the previous one; the first failure ends the chain and the
// remaining validators are not called.
func FailFast[T any, E error](validators ...Validator[T, E]) Validator[T, E] {
	return func(in T) rop.Result[T, E] {
		res := rop.Ok[T, E](in)
		for _, v := range validators {
			res = rop.Bind[T, T, E](res, v)
			if res.IsFailure() {
				return res
			}
		}
		return res
	}
}

// HarvestAll runs every validator exactly once, in order, on the original
// input, even after a failure is known. The errors of all failures are
// concatenated in validator order.
func HarvestAll[T any, E error](validators ...Validator[T, E]) Check[T, E] {
	return func(in T) validation.Validation[T, E] {
		var errs []E
		for _, v := range validators {
			v(in).ForEachError(func(e E) { errs = append(errs, e) })
		}
		if len(errs) == 0 {
			return validation.Valid[T, E](in)
		}
		return validation.Invalid[T](errs[0], errs[1:]...)
	}
}

// FailFastChecks stops at the first invalid check and returns its errors.
func FailFastChecks[T any, E error](checks ...Check[T, E]) Check[T, E] {
	return func(in T) validation.Validation[T, E] {
		res := validation.Valid[T, E](in)
		for _, c := range checks {
			res = validation.Bind[T, T, E](res, c)
			if res.IsInvalid() {
				return res
			}
		}
		return res
	}
}

// HarvestAllChecks runs every check once on the original input and
// concatenates all their error lists in check order.
func HarvestAllChecks[T any, E error](checks ...Check[T, E]) Check[T, E] {
	return func(in T) validation.Validation[T, E] {
		var errs []E
		for _, c := range checks {
			errs = append(errs, c(in).Errors()...)
		}
		if len(errs) == 0 {
			return validation.Valid[T, E](in)
		}
		return validation.Invalid[T](errs[0], errs[1:]...)
	}
}
