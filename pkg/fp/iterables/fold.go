package iterables

import (
	"iter"

	"github.com/ib-77/fp3/internal/try"
	"github.com/ib-77/fp3/pkg/fp"
	"github.com/ib-77/fp3/pkg/fp/maybe"
)

// Accumulate yields the running left fold of seq with f, starting with its
// first element. An empty seq yields nothing.
func Accumulate[D any](seq iter.Seq[D], f func(acc, d D) D) iter.Seq[D] {
	return func(yield func(D) bool) {
		var acc D
		started := false
		for d := range seq {
			if started {
				acc = f(acc, d)
			} else {
				acc, started = d, true
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// AccumulateFrom yields initial, then the running left fold of seq with f.
func AccumulateFrom[D, L any](seq iter.Seq[D], f func(acc L, d D) L, initial L) iter.Seq[L] {
	return func(yield func(L) bool) {
		acc := initial
		if !yield(acc) {
			return
		}
		for d := range seq {
			acc = f(acc, d)
			if !yield(acc) {
				return
			}
		}
	}
}

// FoldL folds seq from the left. It never returns for an infinite seq.
func FoldL[D, L any](seq iter.Seq[D], f func(acc L, d D) L, initial L) L {
	acc := initial
	for d := range seq {
		acc = f(acc, d)
	}
	return acc
}

// ReduceL folds seq from the left starting with its first element. It fails
// with fp.ErrEmptyIterable for an empty seq. A panic in f is not recovered.
func ReduceL[D any](seq iter.Seq[D], f func(acc, d D) D) (D, error) {
	v, ok := reduceL(seq, f).Get()
	if !ok {
		return v, fp.ErrEmptyIterable
	}
	return v, nil
}

// MaybeReduceL is ReduceL with Missing for an empty seq. A panic in f also
// gives Missing.
func MaybeReduceL[D any](seq iter.Seq[D], f func(acc, d D) D) maybe.Maybe[D] {
	var acc D
	started := false
	for d := range seq {
		if !started {
			acc, started = d, true
			continue
		}

		next, err := try.Call(func(d D) (D, error) { return f(acc, d), nil }, d)
		if err != nil {
			return maybe.Missing[D]()
		}
		acc = next
	}
	return maybe.FromOk(acc, started)
}

// TryFoldL is FoldL with a fallible f. The first error, or a panic in f,
// stops the fold and gives Missing.
func TryFoldL[D, L any](seq iter.Seq[D], f func(acc L, d D) (L, error), initial L) maybe.Maybe[L] {
	acc := initial
	for d := range seq {
		next, err := try.Call(func(d D) (L, error) { return f(acc, d) }, d)
		if err != nil {
			return maybe.Missing[L]()
		}
		acc = next
	}
	return maybe.Present(acc)
}

func reduceL[D any](seq iter.Seq[D], f func(acc, d D) D) maybe.Maybe[D] {
	var acc D
	started := false
	for d := range seq {
		if started {
			acc = f(acc, d)
			continue
		}
		acc, started = d, true
	}
	return maybe.FromOk(acc, started)
}
