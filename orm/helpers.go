package orm

import (
	"github.com/alms-io/alms/errors"
)

// ValidateSequence returns an error if this is not an 8-byte
// value as produced by a bucket Sequence.
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}
