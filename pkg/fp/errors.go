package fp

import "errors"

var (
	ErrMissing         = errors.New("maybe: value is missing")
	ErrRightValue      = errors.New("either: right valued either has no left value")
	ErrLeftValue       = errors.New("either: left valued either has no right value")
	ErrEmptyIterable   = errors.New("iterables: reduce of an empty sequence")
	ErrIndexOutOfRange = errors.New("index out of range")
)
