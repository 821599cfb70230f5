// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Either[T, error] values, where the left side carries the
// value and the right side the error.
//
// Key operations:
// - Start/FromValue/FromError: create a Chain
// - Then/ThenTry: compose Either-returning or error-returning functions
// - Map: transform the value
// - RepeatUntil/While: loop a step while a condition holds
// - Or/And: pick among several chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
package chain
