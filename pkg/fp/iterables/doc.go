// Package iterables combines and reduces iter.Seq sequences.
//
// All sequences returned here are lazy: nothing is drawn from the inputs
// until the result is ranged over, and ranging over it again starts a fresh
// traversal of the inputs. Infinite inputs are fine wherever the combinator
// does not need to reach their end. A panic raised by an input propagates to
// the consumer at the point the element would have been yielded.
//
// Combining:
// - Concat: one sequence after another
// - Merge/MergePartials: round-robin until any input is exhausted
// - Exhaust: round-robin until every input is exhausted
// - Combine: pick one of the above by Mode
//
// Slicing and reducing:
// - Drop/DropWhile/Take/TakeWhile/TakeSplit/TakeWhileSplit
// - Accumulate/AccumulateFrom: running folds
// - FoldL/ReduceL/MaybeReduceL/TryFoldL: left folds
package iterables
