package iterables

import (
	"iter"
	"slices"
)

// Mode selects how Combine joins several sequences.
type Mode int

const (
	ModeConcat Mode = iota + 1
	ModeMerge
	ModeExhaust
)

func (m Mode) String() string {
	switch m {
	case ModeConcat:
		return "concat"
	case ModeMerge:
		return "merge"
	case ModeExhaust:
		return "exhaust"
	default:
		return "unknown"
	}
}

// Combine joins seqs with Concat, Merge or Exhaust depending on mode. An
// unknown mode gives an empty sequence.
func Combine[T any](mode Mode, seqs ...iter.Seq[T]) iter.Seq[T] {
	switch mode {
	case ModeConcat:
		return Concat(seqs...)
	case ModeMerge:
		return Merge(seqs...)
	case ModeExhaust:
		return Exhaust(seqs...)
	default:
		return Empty[T]()
	}
}

// Concat yields every element of the first sequence, then of the second and
// so on. An infinite sequence keeps the following ones from ever yielding.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Merge draws one element from each sequence in argument order, round after
// round, and stops as soon as any sequence is exhausted. The elements drawn
// in the unfinished round are dropped and the sequences after the exhausted
// one are not drawn from.
func Merge[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return merge(false, seqs)
}

// MergePartials is Merge, except that the elements already drawn in the
// unfinished round are yielded before stopping.
func MergePartials[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return merge(true, seqs)
}

func merge[T any](yieldPartials bool, seqs []iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(seqs) == 0 {
			return
		}

		producers, stop := pullAll(seqs)
		defer stop()

		round := make([]T, 0, len(producers))
		for {
			round = round[:0]
			for _, next := range producers {
				v, ok := next()
				if !ok {
					if yieldPartials {
						yieldAll(round, yield)
					}
					return
				}
				round = append(round, v)
			}

			if !yieldAll(round, yield) {
				return
			}
		}
	}
}

// Exhaust draws one element from each sequence in argument order, round
// after round. An exhausted sequence is dropped from the rotation and the
// others carry on until all of them are exhausted.
func Exhaust[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(seqs) == 0 {
			return
		}

		producers, stop := pullAll(seqs)
		defer stop()

		live := slices.Clone(producers)
		cursor := 0
		for len(live) > 0 {
			if cursor >= len(live) {
				cursor = 0
			}

			v, ok := live[cursor]()
			if !ok {
				live = slices.Delete(live, cursor, cursor+1)
				continue
			}
			if !yield(v) {
				return
			}
			cursor++
		}
	}
}

// pullAll turns every sequence into a producer. The returned func stops all
// of them.
func pullAll[T any](seqs []iter.Seq[T]) ([]func() (T, bool), func()) {
	producers := make([]func() (T, bool), 0, len(seqs))
	stops := make([]func(), 0, len(seqs))
	for _, seq := range seqs {
		next, stop := iter.Pull(seq)
		producers = append(producers, next)
		stops = append(stops, stop)
	}

	return producers, func() {
		for _, stop := range stops {
			stop()
		}
	}
}

func yieldAll[T any](values []T, yield func(T) bool) bool {
	for _, v := range values {
		if !yield(v) {
			return false
		}
	}
	return true
}
