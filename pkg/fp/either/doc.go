// Package either provides Either[L, R], a value that is exactly one of a left
// value or a right value.
//
// Either is left biased. Map and Bind transform the left side only and pass a
// right value through untouched; use MapRight, BindRight, BiMap or Swap to
// work on the right side. By convention Left is the success track and Right
// the failure track, which is what the Either[T, error] helpers assume.
//
// Highlights:
// - Left/Right/Ok/Fail/From: construct an Either
// - Map/Bind: left biased transformation and chaining
// - MapRight/BindRight/ChangeRight/BiMap/Swap: explicit right side variants
// - GetOr/GetRightOr/Get/MustGet/LeftValue/RightValue: extract a side
// - Fold/Match/Finally: consume both sides
// - Try/Validate/ValidateAll/FailOnError/Tee/DoubleTee: railway helpers
// - Call/Index/Sequence: turn failing calls and lookups into Right
// - FromMo/ToMo/FromResult/ToResult: samber/mo interop
package either
