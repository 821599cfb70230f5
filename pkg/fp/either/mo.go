package either

import "github.com/samber/mo"

// FromMo converts a samber/mo Either. Its left side maps to the left side.
func FromMo[L, R any](e mo.Either[L, R]) Either[L, R] {
	if r, ok := e.Right(); ok {
		return Right[L](r)
	}
	l, _ := e.Left()
	return Left[L, R](l)
}

func ToMo[L, R any](e Either[L, R]) mo.Either[L, R] {
	if e.isRight {
		return mo.Right[L](e.right)
	}
	return mo.Left[L, R](e.left)
}

// FromResult converts a samber/mo Result, placing the value on the left.
func FromResult[T any](r mo.Result[T]) Either[T, error] {
	v, err := r.Get()
	return From(v, err)
}

func ToResult[T any](e Either[T, error]) mo.Result[T] {
	if e.isRight {
		return mo.Err[T](e.right)
	}
	return mo.Ok(e.left)
}
