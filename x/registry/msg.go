package registry

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/migration"
)

func init() {
	migration.MustRegister(1, &RegisterBeneficiaryMsg{}, migration.NoModification)
	migration.MustRegister(1, &VerifyBeneficiaryMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeBeneficiaryMsg{}, migration.NoModification)
}

var _ alms.Msg = (*RegisterBeneficiaryMsg)(nil)

func (RegisterBeneficiaryMsg) Path() string {
	return "registry/register"
}

func (m *RegisterBeneficiaryMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	if !isBeneficiaryName(m.Name) {
		errs = errors.AppendField(errs, "Name",
			errors.Wrap(errors.ErrInput, "name must be 3 to 64 characters of the allowed set"))
	}
	return errs
}

var _ alms.Msg = (*VerifyBeneficiaryMsg)(nil)

func (VerifyBeneficiaryMsg) Path() string {
	return "registry/verify"
}

func (m *VerifyBeneficiaryMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.BeneficiaryID) == 0 {
		errs = errors.AppendField(errs, "BeneficiaryID", errors.ErrEmpty)
	}
	return errs
}

var _ alms.Msg = (*RevokeBeneficiaryMsg)(nil)

func (RevokeBeneficiaryMsg) Path() string {
	return "registry/revoke"
}

func (m *RevokeBeneficiaryMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.BeneficiaryID) == 0 {
		errs = errors.AppendField(errs, "BeneficiaryID", errors.ErrEmpty)
	}
	return errs
}
