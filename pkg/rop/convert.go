package rop

import (
	"github.com/samber/mo"

	"github.com/ib-77/ropkit/pkg/fault"
	"github.com/ib-77/ropkit/pkg/option"
)

// FromOption turns absence into the error produced by onNone.
func FromOption[T any, E error](o option.Option[T], onNone func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](onNone())
}

// ToOption drops the error.
func ToOption[T any, E error](r Result[T, E]) option.Option[T] {
	return option.Of(r.result, r.isSuccess)
}

// FromMo classifies the mo error with fault.From.
func FromMo[T any](r mo.Result[T]) Outcome[T] {
	v, err := r.Get()
	if err != nil {
		return Fail[T](fault.From(err))
	}
	return Success(v)
}

// ToMo converts r into a samber/mo Result, keeping E as its error.
func ToMo[T any, E error](r Result[T, E]) mo.Result[T] {
	if r.isSuccess {
		return mo.Ok(r.result)
	}
	return mo.Err[T](r.err)
}
