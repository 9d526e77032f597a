package chain

import (
	"github.com/ib-77/ropkit/pkg/fault"
	"github.com/ib-77/ropkit/pkg/rop"
)

// Chain wraps a rop.Result to enable fluent chaining.
type Chain[T any, E error] struct {
	res rop.Result[T, E]
}

// Outcome is a chain over rop.Outcome.
type Outcome[T any] = Chain[T, fault.Error]

func Start[T any, E error](r rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T any, E error](v T) Chain[T, E] {
	return Start(rop.Ok[T, E](v))
}

func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.res
}

// Then runs onSuccess with the current value and continues with its result.
func (c Chain[T, E]) Then(onSuccess func(T) rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: rop.Bind(c.res, onSuccess)}
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(onSuccess func(T) T) Chain[T, E] {
	return Chain[T, E]{res: rop.Map(c.res, onSuccess)}
}

// Ensure runs a side effect on success without changing the result.
func (c Chain[T, E]) Ensure(onSuccess func(T)) Chain[T, E] {
	c.res.ForEach(onSuccess)
	return c
}

// OnFailure runs a side effect on failure without changing the result.
func (c Chain[T, E]) OnFailure(onFailure func(E)) Chain[T, E] {
	c.res.ForEachError(onFailure)
	return c
}

// OrElse replaces a failure with the result of fallback. fallback is not
// called on success.
func (c Chain[T, E]) OrElse(fallback func(E) rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: c.res.OrElse(fallback)}
}

// Or returns the first successful chain among c and alternatives. When all
// of them failed the first failure is returned.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// While applies step as long as the chain succeeds and cond holds for the
// current value. cond is checked before every step.
func (c Chain[T, E]) While(step func(T) rop.Result[T, E], cond func(T) bool) Chain[T, E] {
	for c.res.IsSuccess() && cond(c.res.Result()) {
		c = c.Then(step)
	}
	return c
}

// RepeatUntil applies step at least once, then again until done holds for
// the current value or the chain fails.
func (c Chain[T, E]) RepeatUntil(step func(T) rop.Result[T, E], done func(T) bool) Chain[T, E] {
	for c.res.IsSuccess() {
		c = c.Then(step)
		if c.res.IsFailure() || done(c.res.Result()) {
			return c
		}
	}
	return c
}

// Then chains a type-changing step.
func Then[T, U any, E error](c Chain[T, E], onSuccess func(T) rop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: rop.Bind(c.res, onSuccess)}
}

// Map chains a pure type-changing transformation.
func Map[T, U any, E error](c Chain[T, E], onSuccess func(T) U) Chain[U, E] {
	return Chain[U, E]{res: rop.Map(c.res, onSuccess)}
}

// ThenTry calls a function returning (U, error). Its error, or a panic, is
// classified with fault.From.
func ThenTry[T, U any](c Outcome[T], try func(T) (U, error)) Outcome[U] {
	return Then(c, func(t T) rop.Outcome[U] {
		return rop.Try(func() (U, error) { return try(t) })
	})
}

// Finally collapses the chain into a final value.
func Finally[T any, E error, R any](c Chain[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	return rop.Match(c.res, onFailure, onSuccess)
}
