package fund

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/coin"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/migration"
)

func init() {
	migration.MustRegister(1, &ContributeMsg{}, migration.NoModification)
	migration.MustRegister(1, &VoteMsg{}, migration.NoModification)
	migration.MustRegister(1, &SubmitImpactMsg{}, migration.NoModification)
	migration.MustRegister(1, &CloseCycleMsg{}, migration.NoModification)
	migration.MustRegister(1, &DistributeMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ alms.Msg = (*ContributeMsg)(nil)

func (ContributeMsg) Path() string {
	return "fund/contribute"
}

func (m *ContributeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Amount", validContribution(m.Amount))
	return errs
}

// validContribution ensures an amount is a positive number of whole units
// of a single ticker. The ledger accounts in whole units only, so a
// fractional part is rejected rather than rounded.
func validContribution(amount *coin.Coin) error {
	if coin.IsEmpty(amount) {
		return errors.Wrap(ErrInvalidAmount, "amount is required")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrap(ErrInvalidAmount, "amount must be greater than zero")
	}
	if amount.Fractional != 0 {
		return errors.Wrap(ErrInvalidAmount, "amount must be a whole number of units")
	}
	return nil
}

var _ alms.Msg = (*VoteMsg)(nil)

func (VoteMsg) Path() string {
	return "fund/vote"
}

func (m *VoteMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Beneficiary", m.Beneficiary.Validate())
	if m.Power <= 0 {
		errs = errors.AppendField(errs, "Power",
			errors.Wrap(ErrInvalidAmount, "power must be greater than zero"))
	}
	return errs
}

var _ alms.Msg = (*SubmitImpactMsg)(nil)

func (SubmitImpactMsg) Path() string {
	return "fund/submit_impact"
}

func (m *SubmitImpactMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.CycleID == 0 {
		errs = errors.AppendField(errs, "CycleID", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Beneficiary", m.Beneficiary.Validate())
	if m.Score < 0 {
		errs = errors.AppendField(errs, "Score",
			errors.Wrap(ErrInvalidAmount, "score cannot be negative"))
	}
	return errs
}

var _ alms.Msg = (*CloseCycleMsg)(nil)

func (CloseCycleMsg) Path() string {
	return "fund/close_cycle"
}

func (m *CloseCycleMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.CycleID == 0 {
		errs = errors.AppendField(errs, "CycleID", errors.ErrEmpty)
	}
	return errs
}

var _ alms.Msg = (*DistributeMsg)(nil)

func (DistributeMsg) Path() string {
	return "fund/distribute"
}

func (m *DistributeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.CycleID == 0 {
		errs = errors.AppendField(errs, "CycleID", errors.ErrEmpty)
	}
	return errs
}

var _ alms.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "fund/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}
