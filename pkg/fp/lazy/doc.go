// Package lazy delays function calls until their result is needed.
//
// A Lazy records the outcome of its call as an Either[R, error] wrapped in a
// Maybe that stays Missing until Eval runs. By default the outcome is cached;
// Impure and Thunk re-run the function on every Eval.
package lazy
