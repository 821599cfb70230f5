// Package fp is the root of a small functional programming toolkit. It holds
// the sentinel errors and error helpers shared by the subpackages:
// - maybe: Maybe[T], a value that may be missing
// - either: Either[L, R], a left biased value that is one of two alternatives
// - chain: fluent chaining over Either[T, error]
// - iterables: Concat/Merge/Exhaust and other iter.Seq combinators
// - lazy: delayed, optionally cached function evaluation
//
// Absence and failure are represented as data. Panics raised by functions
// passed to Map or Bind are never swallowed.
package fp
