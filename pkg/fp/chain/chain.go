package chain

import "github.com/ib-77/fp3/pkg/fp/either"

// Chain wraps an Either[T, error] to enable fluent chaining. Every step is
// skipped once the chain holds an error.
type Chain[T any] struct {
	res either.Either[T, error]
}

func Start[T any](r either.Either[T, error]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(either.Ok(v))
}

func FromError[T any](err error) Chain[T] {
	return Start(either.Fail[T](err))
}

func (c Chain[T]) Result() either.Either[T, error] {
	return c.res
}

func (c Chain[T]) Failed() bool {
	return c.res.IsRight()
}

// Then composes functions that already return an Either
func (c Chain[T]) Then(onSuccess func(t T) either.Either[T, error]) Chain[T] {
	return Chain[T]{res: either.Bind(c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return Chain[T]{res: either.Try(c.res, try)}
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: either.Map(c.res, onSuccess)}
}

// RepeatUntil applies onSuccess at least once and keeps going while until
// holds for the new value.
func (c Chain[T]) RepeatUntil(onSuccess func(t T) either.Either[T, error],
	until func(t T) bool) Chain[T] {

	if c.Failed() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.Failed() || !until(c.res.MustGet()) {
			return c
		}
	}
}

func (c Chain[T]) RepeatChainUntil(inC func(t T) Chain[T], until func(t T) bool) Chain[T] {
	if c.Failed() {
		return c
	}

	for {
		c = inC(c.res.MustGet())

		if c.Failed() || !until(c.res.MustGet()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(t T) either.Either[T, error], while func(t T) bool) Chain[T] {
	for !c.Failed() && while(c.res.MustGet()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T]) WhileChain(inC func(t T) Chain[T], while func(t T) bool) Chain[T] {
	for !c.Failed() && while(c.res.MustGet()) {
		c = inC(c.res.MustGet())
	}
	return c
}

// Or returns the first successful chain among c and alternatives, or c when
// all failed.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if !c.Failed() {
		return c
	}
	for _, alt := range alternatives {
		if !alt.Failed() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.Failed() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	c.res.Match(
		func(t T) {
			if onSuccess != nil {
				onSuccess(t)
			}
		},
		func(err error) {
			if onFailure != nil {
				onFailure(err)
			}
		})
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	return either.Finally(c.res, onSuccess, onFailure)
}
