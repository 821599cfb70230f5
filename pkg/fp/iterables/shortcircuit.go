package iterables

import (
	"iter"
	"slices"

	"github.com/ib-77/fp3/pkg/fp/maybe"
)

type scOptions[D any] struct {
	start        func(D) bool
	stop         func(D) bool
	includeStart bool
	includeStop  bool
}

// ScOption configures ScReduceL and ScReduceR.
type ScOption[D any] func(*scOptions[D])

// StartAt sets the element the reduction starts at.
func StartAt[D any](pred func(D) bool) ScOption[D] {
	return func(o *scOptions[D]) {
		o.start = pred
	}
}

// StopAt sets the element the reduction stops at.
func StopAt[D any](pred func(D) bool) ScOption[D] {
	return func(o *scOptions[D]) {
		o.stop = pred
	}
}

// ExcludeStart leaves the start element out of the reduction.
func ExcludeStart[D any]() ScOption[D] {
	return func(o *scOptions[D]) {
		o.includeStart = false
	}
}

// ExcludeStop leaves the stop element out of the reduction.
func ExcludeStop[D any]() ScOption[D] {
	return func(o *scOptions[D]) {
		o.includeStop = false
	}
}

func newScOptions[D any](start bool, opts []ScOption[D]) scOptions[D] {
	o := scOptions[D]{
		start:        func(D) bool { return start },
		stop:         func(D) bool { return false },
		includeStart: true,
		includeStop:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ScReduceL reduces seq from the left, starting at the first element
// matching StartAt (the first element by default) and stopping at the first
// element matching StopAt (never by default). It returns the reduction,
// Missing when no element was reduced, along with the rest of seq after the
// stop element. ExcludeStop keeps the stop element at the head of rest.
//
// rest shares a producer with seq. stop releases it and must be called once
// rest is no longer needed.
func ScReduceL[D any](seq iter.Seq[D], f func(acc, d D) D, opts ...ScOption[D]) (reduced maybe.Maybe[D], rest iter.Seq[D], stop func()) {
	o := newScOptions(true, opts)

	head, rest, stop := TakeWhileSplit(DropWhile(seq, negate(o.start)), negate(o.stop))
	if !o.includeStart {
		head = Drop(head, 1)
	}

	reduced = reduceL(head, f)
	if o.includeStop {
		for end := range Take(rest, 1) {
			reduced = maybe.Present(maybe.Fold(reduced,
				func(acc D) D { return f(acc, end) },
				func() D { return end }))
		}
	}

	return reduced, rest, stop
}

// ScReduceR reduces from the right the elements of seq up to the first one
// matching StartAt (all of seq by default, which never returns for an
// infinite seq). Going right to left, the reduction stops at the first
// element matching StopAt. f takes the element first and the accumulator
// second. It returns the reduction, Missing when no element was reduced,
// along with the rest of seq after the start element. ExcludeStart keeps the
// start element at the head of rest.
//
// rest shares a producer with seq. stop releases it and must be called once
// rest is no longer needed.
func ScReduceR[D any](seq iter.Seq[D], f func(d, acc D) D, opts ...ScOption[D]) (reduced maybe.Maybe[D], rest iter.Seq[D], stop func()) {
	o := newScOptions(false, opts)

	head, rest, stop := TakeWhileSplit(seq, negate(o.start))
	values := slices.Collect(head)
	if o.includeStart {
		for begin := range Take(rest, 1) {
			values = append(values, begin)
		}
	}
	slices.Reverse(values)

	inner, tail, innerStop := TakeWhileSplit(FromSlice(values), negate(o.stop))
	defer innerStop()

	reduced = reduceL(inner, func(acc, d D) D { return f(d, acc) })
	if o.includeStop {
		for end := range Take(tail, 1) {
			reduced = maybe.Present(maybe.Fold(reduced,
				func(acc D) D { return f(end, acc) },
				func() D { return end }))
		}
	}

	return reduced, rest, stop
}

func negate[D any](pred func(D) bool) func(D) bool {
	return func(d D) bool {
		return !pred(d)
	}
}
