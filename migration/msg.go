package migration

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
)

func init() {
	MustRegister(1, &UpgradeSchemaMsg{}, NoModification)
}

const pathUpgradeSchemaMsg = "migration/upgrade_schema"

var _ alms.Msg = (*UpgradeSchemaMsg)(nil)

func (msg *UpgradeSchemaMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Pkg == "" {
		return errors.Wrap(errors.ErrEmpty, "pkg is required")
	}
	return nil
}

func (UpgradeSchemaMsg) Path() string {
	return pathUpgradeSchemaMsg
}
