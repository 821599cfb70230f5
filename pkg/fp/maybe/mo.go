package maybe

import "github.com/samber/mo"

// FromOption converts a samber/mo Option.
func FromOption[T any](o mo.Option[T]) Maybe[T] {
	v, ok := o.Get()
	return FromOk(v, ok)
}

// ToOption converts m to a samber/mo Option.
func ToOption[T any](m Maybe[T]) mo.Option[T] {
	if !m.present {
		return mo.None[T]()
	}
	return mo.Some(m.value)
}
