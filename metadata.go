package alms

import (
	"github.com/alms-io/alms/errors"
)

// Copy returns a copy of this object. This method is helpful when implementing
// orm.CloneableData interface to make a copy of the header.
func (m *Metadata) Copy() *Metadata {
	cpy := *m
	return &cpy
}

// Validate returns an error if metadata is missing or contains an invalid
// schema version. Every persistent entity and every message must carry a
// metadata with the schema version set.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be greater than zero")
	}
	return nil
}
