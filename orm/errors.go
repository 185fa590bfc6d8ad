package orm

import (
	"github.com/alms-io/alms/errors"
)

// orm reserves 100~109 error codes

// ErrInvalidIndex is returned when querying a bucket for an index
// that was never registered.
var ErrInvalidIndex = errors.Register(100, "invalid index")
