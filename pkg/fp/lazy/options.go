package lazy

type options struct {
	pure bool
}

type Option func(*options)

// Impure makes every Eval call the function again instead of keeping the
// first outcome.
func Impure() Option {
	return func(o *options) {
		o.pure = false
	}
}
