package lazy

import (
	"github.com/ib-77/fp3/pkg/fp/either"
	"github.com/ib-77/fp3/pkg/fp/maybe"
)

// Lazy delays calling f with d until Eval. A Lazy is not safe for concurrent
// use.
type Lazy[D, R any] struct {
	f       func(D) (R, error)
	d       D
	pure    bool
	outcome maybe.Maybe[either.Either[R, error]]
}

// New creates an unevaluated Lazy. By default the outcome of the first Eval
// is cached.
func New[D, R any](f func(D) (R, error), d D, opts ...Option) *Lazy[D, R] {
	o := options{pure: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &Lazy[D, R]{
		f:    f,
		d:    d,
		pure: o.pure,
	}
}

// Thunk delays f and calls it again on every Eval.
func Thunk[R any](f func() (R, error)) *Lazy[struct{}, R] {
	return New(ignoreArg(f), struct{}{}, Impure())
}

// Cached delays f and calls it at most once.
func Cached[R any](f func() (R, error)) *Lazy[struct{}, R] {
	return New(ignoreArg(f), struct{}{})
}

func ignoreArg[R any](f func() (R, error)) func(struct{}) (R, error) {
	return func(struct{}) (R, error) {
		return f()
	}
}

// Eval calls the function unless a cached outcome already exists. A panic in
// the function is recorded as a try.PanicError.
func (l *Lazy[D, R]) Eval() *Lazy[D, R] {
	if l.pure && l.outcome.IsPresent() {
		return l
	}

	l.outcome = maybe.Present(either.Call(l.f, l.d))
	return l
}

func (l *Lazy[D, R]) Evaluated() bool {
	return l.outcome.IsPresent()
}

// Outcome is Missing until evaluated.
func (l *Lazy[D, R]) Outcome() maybe.Maybe[either.Either[R, error]] {
	return l.outcome
}

// GotResult reports whether the evaluation succeeded, Missing until evaluated.
func (l *Lazy[D, R]) GotResult() maybe.Maybe[bool] {
	return maybe.Map(l.outcome, either.Either[R, error].IsLeft)
}

// GotError reports whether the evaluation failed, Missing until evaluated.
func (l *Lazy[D, R]) GotError() maybe.Maybe[bool] {
	return maybe.Map(l.outcome, either.Either[R, error].IsRight)
}

func (l *Lazy[D, R]) Result() maybe.Maybe[R] {
	return maybe.Bind(l.outcome, either.Either[R, error].LeftValue)
}

func (l *Lazy[D, R]) Err() maybe.Maybe[error] {
	return maybe.Bind(l.outcome, either.Either[R, error].RightValue)
}
