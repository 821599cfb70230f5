package either

import (
	"fmt"
	"iter"

	"github.com/ib-77/fp3/internal/try"
	"github.com/ib-77/fp3/pkg/fp"
	"github.com/ib-77/fp3/pkg/fp/maybe"
)

// Either holds exactly one of a left value of type L or a right value of
// type R. It is left biased: Map and Bind only ever touch the left side.
//
// The zero value is Left holding the zero value of L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{
		left: v,
	}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{
		right:   v,
		isRight: true,
	}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) Get() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

// GetOr returns the left value, or def for a right valued Either.
func (e Either[L, R]) GetOr(def L) L {
	if e.isRight {
		return def
	}
	return e.left
}

// GetRightOr returns the right value, or def for a left valued Either.
func (e Either[L, R]) GetRightOr(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// MustGet panics with fp.ErrRightValue for a right valued Either.
func (e Either[L, R]) MustGet() L {
	if e.isRight {
		panic(fp.ErrRightValue)
	}
	return e.left
}

// MustGetRight panics with fp.ErrLeftValue for a left valued Either.
func (e Either[L, R]) MustGetRight() R {
	if !e.isRight {
		panic(fp.ErrLeftValue)
	}
	return e.right
}

func (e Either[L, R]) LeftValue() maybe.Maybe[L] {
	if e.isRight {
		return maybe.Missing[L]()
	}
	return maybe.Present(e.left)
}

func (e Either[L, R]) RightValue() maybe.Maybe[R] {
	if e.isRight {
		return maybe.Present(e.right)
	}
	return maybe.Missing[R]()
}

func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
		return
	}
	onLeft(e.left)
}

// All yields the left value, if any.
func (e Either[L, R]) All() iter.Seq[L] {
	return func(yield func(L) bool) {
		if !e.isRight {
			yield(e.left)
		}
	}
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Map applies f to a left value. A right value passes through unchanged.
func Map[L, U, R any](e Either[L, R], f func(L) U) Either[U, R] {
	if e.isRight {
		return Right[U](e.right)
	}
	return Left[U, R](f(e.left))
}

// Bind chains f on a left value. A right value passes through unchanged.
func Bind[L, U, R any](e Either[L, R], f func(L) Either[U, R]) Either[U, R] {
	if e.isRight {
		return Right[U](e.right)
	}
	return f(e.left)
}

// MapRight applies g to a right value. A left value passes through unchanged.
func MapRight[L, R, V any](e Either[L, R], g func(R) V) Either[L, V] {
	if !e.isRight {
		return Left[L, V](e.left)
	}
	return Right[L](g(e.right))
}

// BindRight chains g on a right value, e.g. to recover from a failure.
func BindRight[L, R, V any](e Either[L, R], g func(R) Either[L, V]) Either[L, V] {
	if !e.isRight {
		return Left[L, V](e.left)
	}
	return g(e.right)
}

// ChangeRight replaces the right value, if any, with v.
func ChangeRight[L, R, V any](e Either[L, R], v V) Either[L, V] {
	if !e.isRight {
		return Left[L, V](e.left)
	}
	return Right[L](v)
}

func BiMap[L, R, U, V any](e Either[L, R], onLeft func(L) U, onRight func(R) V) Either[U, V] {
	if e.isRight {
		return Right[U](onRight(e.right))
	}
	return Left[U, V](onLeft(e.left))
}

func Swap[L, R any](e Either[L, R]) Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}

// Call runs f with u. An error returned by f, or a panic in f reported as a
// try.PanicError, becomes the right value.
func Call[U, V any](f func(U) (V, error), u U) Either[V, error] {
	v, err := try.Call(f, u)
	if err != nil {
		return Right[V](err)
	}
	return Left[V, error](v)
}

// Index is the i-th element of s, or fp.ErrIndexOutOfRange. Negative indexes
// count from the end.
func Index[S ~[]V, V any](s S, i int) Either[V, error] {
	pos := i
	if pos < 0 {
		pos += len(s)
	}
	if pos < 0 || pos >= len(s) {
		return Right[V](fmt.Errorf("%w: %d of %d", fp.ErrIndexOutOfRange, i, len(s)))
	}
	return Left[V, error](s[pos])
}

// Sequence collects the left values of seq. The first right value stops the
// iteration and Right(right) is returned.
func Sequence[L, R any](seq iter.Seq[Either[L, R]], right R) Either[[]L, R] {
	values := make([]L, 0)
	for e := range seq {
		if e.isRight {
			return Right[[]L](right)
		}
		values = append(values, e.left)
	}
	return Left[[]L, R](values)
}

// MapExcept is Map, except that a panic in f gives Right(fallback).
func MapExcept[L, U, R any](e Either[L, R], f func(L) U, fallback R) Either[U, R] {
	return BindExcept(e, func(l L) Either[U, R] { return Left[U, R](f(l)) }, fallback)
}

// BindExcept is Bind, except that a panic in f gives Right(fallback).
func BindExcept[L, U, R any](e Either[L, R], f func(L) Either[U, R], fallback R) Either[U, R] {
	if e.isRight {
		return Right[U](e.right)
	}
	out, err := try.Call(func(l L) (Either[U, R], error) { return f(l), nil }, e.left)
	if err != nil {
		return Right[U](fallback)
	}
	return out
}

// LazyCall delays Call(f, u) until the returned func runs.
func LazyCall[U, V any](f func(U) (V, error), u U) func() Either[V, error] {
	return func() Either[V, error] {
		return Call(f, u)
	}
}

// LazyIndex delays Index(s, i) until the returned func runs.
func LazyIndex[S ~[]V, V any](s S, i int) func() Either[V, error] {
	return func() Either[V, error] {
		return Index(s, i)
	}
}
