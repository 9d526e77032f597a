package option

import "fmt"

type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of adapts the comma-ok idiom.
func Of[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as absence.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present. The value is the zero
// T when absent.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) ForEach(action func(T)) {
	if o.some {
		action(o.value)
	}
}

// OrElse calls fallback only when o is None.
func (o Option[T]) OrElse(fallback func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fallback()
}

// Where turns a present value that fails predicate into None.
func (o Option[T]) Where(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if !o.some {
		return None[R]()
	}
	return Some(f(o.value))
}

func Bind[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if !o.some {
		return None[R]()
	}
	return f(o.value)
}

func Match[T, R any](o Option[T], onNone func() R, onSome func(T) R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}
