package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All errors
// that it represents are directly included into the result set instead of
// the error itself.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			for _, e := range u.Unpack() {
				if !isNilErr(e) {
					res = append(res, e)
				}
			}
		} else {
			res = append(res, e)
		}
	}

	if len(res) == 0 {
		return nil
	}
	return res
}

// multiError represents a group of errors. It is an implementation detail of
// this package. Use Append to construct an instance and type check against
// the unpacker interface to access grouped errors.
type multiError []error

var _ unpacker = (multiError)(nil)

// Unpack implements the unpacker interface.
func (e multiError) Unpack() []error {
	return e
}

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}

	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(e), strings.Join(msgs, "\n\t"))
}
