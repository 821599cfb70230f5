package fp

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens a joined error into its parts. A nil error gives an
// empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// AppendError joins next onto err, keeping the result flat.
func AppendError(err, next error) error {
	if IsNil(next) {
		return err
	}
	errs := GetErrors(err)
	errs = append(errs, next)
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
