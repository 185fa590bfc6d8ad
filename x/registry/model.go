package registry

import (
	"regexp"

	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/migration"
	"github.com/alms-io/alms/orm"
)

func init() {
	migration.MustRegister(1, &Beneficiary{}, migration.NoModification)
}

var _ orm.Model = (*Beneficiary)(nil)

// Beneficiary names may contain the characters an organization would use
// to present itself, but must stay short enough to index.
var isBeneficiaryName = regexp.MustCompile(`^[A-Za-z0-9 \-_:]{3,64}$`).MatchString

func (b *Beneficiary) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", b.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", b.Address.Validate())
	if !isBeneficiaryName(b.Name) {
		errs = errors.AppendField(errs, "Name",
			errors.Wrap(errors.ErrInput, "name must be 3 to 64 characters of the allowed set"))
	}
	return errs
}

func (b *Beneficiary) Copy() orm.CloneableData {
	return &Beneficiary{
		Metadata: b.Metadata.Copy(),
		Address:  b.Address.Clone(),
		Name:     b.Name,
		Verified: b.Verified,
	}
}

// NewBeneficiaryBucket returns a bucket for keeping track of beneficiaries.
// Both the address and the name of a beneficiary are unique among all
// entities, so that a payout destination can never be claimed twice.
func NewBeneficiaryBucket() orm.ModelBucket {
	b := orm.NewModelBucket("bnf", &Beneficiary{},
		orm.WithIDSequence(beneficiarySeq),
		orm.WithIndex("address", idxBeneficiaryAddress, true),
		orm.WithIndex("name", idxBeneficiaryName, true),
	)
	return migration.NewModelBucket("registry", b)
}

var beneficiarySeq = orm.NewSequence("registry", "id")

func asBeneficiary(obj orm.Object) (*Beneficiary, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	b, ok := obj.Value().(*Beneficiary)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Beneficiary")
	}
	return b, nil
}

func idxBeneficiaryAddress(obj orm.Object) ([]byte, error) {
	b, err := asBeneficiary(obj)
	if err != nil {
		return nil, err
	}
	return b.Address, nil
}

func idxBeneficiaryName(obj orm.Object) ([]byte, error) {
	b, err := asBeneficiary(obj)
	if err != nil {
		return nil, err
	}
	return []byte(b.Name), nil
}
