package either

import (
	"errors"

	"github.com/ib-77/fp3/pkg/fp"
)

// Helpers for Either[T, error], where the left side is the success track.

func Ok[T any](v T) Either[T, error] {
	return Left[T, error](v)
}

func Fail[T any](err error) Either[T, error] {
	return Right[T](err)
}

// From converts a (value, error) pair.
func From[T any](v T, err error) Either[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// Unwrap is the inverse of From.
func Unwrap[T any](e Either[T, error]) (T, error) {
	if e.isRight {
		var zero T
		return zero, e.right
	}
	return e.left, nil
}

func Validate[T any](input T, validate func(in T) (isValid bool, errMsg string)) Either[T, error] {
	return AndValidate(Ok(input), validate)
}

func AndValidate[T any](input Either[T, error], validate func(in T) (isValid bool, errMsg string)) Either[T, error] {
	if input.isRight {
		return input
	}
	if isValid, errMsg := validate(input.left); !isValid {
		return Fail[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator against input. Failures are joined into a
// single error. With breakOnError the first failure stops the run.
func ValidateAll[T any](input Either[T, error], breakOnError bool,
	validators ...func(in Either[T, error]) Either[T, error]) Either[T, error] {

	if len(validators) == 0 {
		return input
	}

	var err error
	current := input
	for _, validate := range validators {
		next := validate(current)
		if next.isRight {
			err = fp.AppendError(err, next.right)
			if breakOnError {
				return Fail[T](err)
			}
			continue
		}
		current = next
	}

	if !fp.IsNil(err) {
		return Fail[T](err)
	}
	return current
}

// Try runs f on a success value, turning its error into a failure.
func Try[In, Out any](input Either[In, error], f func(r In) (Out, error)) Either[Out, error] {
	if input.isRight {
		return Fail[Out](input.right)
	}
	out, err := f(input.left)
	return From(out, err)
}

// FailOnError keeps the input unless check reports an error for it.
func FailOnError[T any](input Either[T, error], check func(in T) error) Either[T, error] {
	if input.isRight {
		return input
	}
	if err := check(input.left); err != nil {
		return Fail[T](err)
	}
	return input
}

func Tee[L, R any](input Either[L, R], onLeft func(l L)) Either[L, R] {
	if !input.isRight {
		onLeft(input.left)
	}
	return input
}

func TeeIf[L, R any](input Either[L, R], condition func(l L) bool, onLeft func(l L)) Either[L, R] {
	if !input.isRight && condition(input.left) {
		onLeft(input.left)
	}
	return input
}

func DoubleTee[L, R any](input Either[L, R], onLeft func(l L), onRight func(r R)) Either[L, R] {
	input.Match(onLeft, onRight)
	return input
}

// Finally reduces input to a plain value, same as Fold.
func Finally[L, R, Out any](input Either[L, R], onLeft func(l L) Out, onRight func(r R) Out) Out {
	return Fold(input, onLeft, onRight)
}
