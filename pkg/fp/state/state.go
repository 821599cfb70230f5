package state

import "github.com/samber/lo"

// State is an action that maps a state to a result and the next state. Build
// one with New or the other constructors; the zero State panics when run.
type State[S, A any] struct {
	run func(S) (A, S)
}

func New[S, A any](run func(s S) (A, S)) State[S, A] {
	return State[S, A]{run: run}
}

// Run applies the action to s.
func (st State[S, A]) Run(s S) (A, S) {
	return st.run(s)
}

// Unit gives a without touching the state.
func Unit[S, A any](a A) State[S, A] {
	return New(func(s S) (A, S) {
		return a, s
	})
}

// Get gives the current state as the result.
func Get[S any]() State[S, S] {
	return New(func(s S) (S, S) {
		return s, s
	})
}

// Set replaces the state with s.
func Set[S any](s S) State[S, struct{}] {
	return New(func(S) (struct{}, S) {
		return struct{}{}, s
	})
}

// Modify replaces the state with f applied to it.
func Modify[S any](f func(S) S) State[S, struct{}] {
	return New(func(s S) (struct{}, S) {
		return struct{}{}, f(s)
	})
}

// Bind runs st, then the action g builds from its result.
func Bind[S, A, B any](st State[S, A], g func(A) State[S, B]) State[S, B] {
	return New(func(s S) (B, S) {
		a, next := st.Run(s)
		return g(a).Run(next)
	})
}

func Map[S, A, B any](st State[S, A], f func(A) B) State[S, B] {
	return Bind(st, func(a A) State[S, B] {
		return Unit[S](f(a))
	})
}

// Map2 runs sa then sb and combines their results with f.
func Map2[S, A, B, C any](sa State[S, A], sb State[S, B], f func(A, B) C) State[S, C] {
	return Bind(sa, func(a A) State[S, C] {
		return Map(sb, func(b B) C { return f(a, b) })
	})
}

// Both runs sa then sb and pairs their results.
func Both[S, A, B any](sa State[S, A], sb State[S, B]) State[S, lo.Tuple2[A, B]] {
	return Map2(sa, sb, lo.T2[A, B])
}

// Sequence runs actions in order and collects their results.
func Sequence[S, A any](actions ...State[S, A]) State[S, []A] {
	return New(func(s S) ([]A, S) {
		results := make([]A, 0, len(actions))
		for _, st := range actions {
			var a A
			a, s = st.Run(s)
			results = append(results, a)
		}
		return results, s
	})
}
