// Package maybe provides Maybe[T], a value that is either present or missing.
//
// Missing is the zero value of Maybe[T], so it is never allocated and two
// missing values of a comparable T compare equal with ==.
//
// Highlights:
// - Present/Missing/FromOk/FromPtr/FromZero: construct a Maybe[T]
// - Map/Bind: transform a present value, skip missing ones
// - GetOr/GetOrElse/Get/MustGet: extract the value
// - Fold/Match: consume both cases
// - Call/Index: turn failing calls and lookups into Missing
// - Sequence: collect a sequence of Maybe[T] into Maybe[[]T]
// - FromOption/ToOption: convert to and from samber/mo Option
package maybe
