package iterables

import (
	"iter"

	"github.com/ib-77/fp3/pkg/fp/maybe"
)

func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Of yields values in order.
func Of[T any](values ...T) iter.Seq[T] {
	return FromSlice(values)
}

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Drop skips the first n elements of seq.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips the leading elements of seq for which pred holds.
func DropWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	}
}

// Take yields up to n leading elements of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// TakeWhile yields the leading elements of seq for which pred holds. The
// first element failing pred is consumed and lost.
func TakeWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// TakeSplit is Take that also gives the remaining elements. Both sequences
// share one producer over seq, so head should be consumed before rest. stop
// releases the producer and must be called once both are no longer needed.
func TakeSplit[T any](seq iter.Seq[T], n int) (head, rest iter.Seq[T], stop func()) {
	next, stop := iter.Pull(seq)

	head = func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
	rest = drain(next, nil)

	return head, rest, stop
}

// TakeWhileSplit is TakeWhile that also gives the remaining elements. Unlike
// TakeWhile, the first element failing pred is kept as the first element of
// rest. Consume head before rest and call stop when done with both.
func TakeWhileSplit[T any](seq iter.Seq[T], pred func(T) bool) (head, rest iter.Seq[T], stop func()) {
	next, stop := iter.Pull(seq)
	pending := new(maybe.Maybe[T])

	head = func(yield func(T) bool) {
		for pending.IsMissing() {
			v, ok := next()
			if !ok {
				return
			}
			if !pred(v) {
				*pending = maybe.Present(v)
				return
			}
			if !yield(v) {
				return
			}
		}
	}
	rest = drain(next, pending)

	return head, rest, stop
}

// drain yields the element held in pending, if any, and then the rest of next.
func drain[T any](next func() (T, bool), pending *maybe.Maybe[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if pending != nil {
			if v, ok := pending.Get(); ok {
				*pending = maybe.Missing[T]()
				if !yield(v) {
					return
				}
			}
		}
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
