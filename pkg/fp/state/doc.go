// Package state threads a value of type S through a series of actions, each
// producing a result alongside the next state.
//
// A State is immutable. Running it twice with the same starting state gives
// the same outcome as long as its actions are pure.
package state
