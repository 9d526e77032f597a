package option

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Lookup adapts a map into an Option-returning function. The map is read at
// call time, not copied.
func Lookup[K comparable, V any](m map[K]V) func(K) Option[V] {
	return func(k K) Option[V] {
		v, ok := m[k]
		return Of(v, ok)
	}
}

// Find returns the first item matching predicate.
func Find[T any](items []T, predicate func(T) bool) Option[T] {
	v, ok := lo.Find(items, predicate)
	return Of(v, ok)
}

// FromMo converts a samber/mo Option.
func FromMo[T any](o mo.Option[T]) Option[T] {
	v, ok := o.Get()
	return Of(v, ok)
}

// ToMo converts o into a samber/mo Option.
func ToMo[T any](o Option[T]) mo.Option[T] {
	if v, ok := o.Get(); ok {
		return mo.Some(v)
	}
	return mo.None[T]()
}
