package maybe

import (
	"fmt"
	"iter"

	"github.com/ib-77/fp3/internal/try"
	"github.com/ib-77/fp3/pkg/fp"
)

// Maybe holds either a present value of type T or nothing. The zero value is
// Missing.
type Maybe[T any] struct {
	value   T
	present bool
}

func Present[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:   v,
		present: true,
	}
}

func Missing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOk is Present(v) when ok, Missing otherwise. It fits the comma-ok
// results of map lookups and type assertions.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Missing[T]()
	}
	return Present(v)
}

func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Missing[T]()
	}
	return Present(*p)
}

// FromZero treats the zero value of T as missing.
func FromZero[T comparable](v T) Maybe[T] {
	var zero T
	if v == zero {
		return Missing[T]()
	}
	return Present(v)
}

func (m Maybe[T]) IsPresent() bool {
	return m.present
}

func (m Maybe[T]) IsMissing() bool {
	return !m.present
}

// Len is 1 for a present value and 0 for missing.
func (m Maybe[T]) Len() int {
	if m.present {
		return 1
	}
	return 0
}

func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// GetOr returns the contained value, or def when missing.
func (m Maybe[T]) GetOr(def T) T {
	if m.present {
		return m.value
	}
	return def
}

func (m Maybe[T]) GetOrElse(def func() T) T {
	if m.present {
		return m.value
	}
	return def()
}

// MustGet panics with fp.ErrMissing when m is missing.
func (m Maybe[T]) MustGet() T {
	if !m.present {
		panic(fp.ErrMissing)
	}
	return m.value
}

// Ptr returns a pointer to a copy of the value, or nil.
func (m Maybe[T]) Ptr() *T {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

func (m Maybe[T]) Or(alternative Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return alternative
}

func (m Maybe[T]) Filter(keep func(T) bool) Maybe[T] {
	if m.present && keep(m.value) {
		return m
	}
	return Missing[T]()
}

func (m Maybe[T]) Match(onPresent func(T), onMissing func()) {
	if m.present {
		onPresent(m.value)
		return
	}
	onMissing()
}

// All yields the value if present.
func (m Maybe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.present {
			yield(m.value)
		}
	}
}

func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Present(%v)", m.value)
	}
	return "Missing"
}

// Map applies f to a present value. f is never called for Missing and a panic
// in f is not recovered.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.present {
		return Missing[U]()
	}
	return Present(f(m.value))
}

// Bind applies f to a present value and returns its result as is.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Missing[U]()
	}
	return f(m.value)
}

func Fold[T, U any](m Maybe[T], onPresent func(T) U, onMissing func() U) U {
	if m.present {
		return onPresent(m.value)
	}
	return onMissing()
}

func Equal[T comparable](a, b Maybe[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

// Call runs f with u. An error returned or a panic raised by f gives Missing.
func Call[U, V any](f func(U) (V, error), u U) Maybe[V] {
	v, err := try.Call(f, u)
	if err != nil {
		return Missing[V]()
	}
	return Present(v)
}

// Index is the i-th element of s, Missing when i is out of range. Negative
// indexes count from the end.
func Index[S ~[]V, V any](s S, i int) Maybe[V] {
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		return Missing[V]()
	}
	return Present(s[i])
}

// Sequence collects the values of seq, or returns Missing as soon as one
// element is missing.
func Sequence[T any](seq iter.Seq[Maybe[T]]) Maybe[[]T] {
	values := make([]T, 0)
	for m := range seq {
		if !m.present {
			return Missing[[]T]()
		}
		values = append(values, m.value)
	}
	return Present(values)
}

// MapExcept is Map, except that a panic in f gives Missing.
func MapExcept[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	return Bind(m, func(v T) Maybe[U] {
		return Call(func(v T) (U, error) { return f(v), nil }, v)
	})
}

// BindExcept is Bind, except that a panic in f gives Missing.
func BindExcept[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	return Bind(m, func(v T) Maybe[U] {
		out := Call(func(v T) (Maybe[U], error) { return f(v), nil }, v)
		return out.GetOr(Missing[U]())
	})
}

// LazyCall delays Call(f, u) until the returned func runs.
func LazyCall[U, V any](f func(U) (V, error), u U) func() Maybe[V] {
	return func() Maybe[V] {
		return Call(f, u)
	}
}

// LazyIndex delays Index(s, i) until the returned func runs.
func LazyIndex[S ~[]V, V any](s S, i int) func() Maybe[V] {
	return func() Maybe[V] {
		return Index(s, i)
	}
}
