package registry

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/errors"
	"github.com/alms-io/alms/orm"
)

// Keeper gives other extensions read access to the beneficiary register
// without exposing the bucket layout.
type Keeper struct {
	bucket orm.ModelBucket
}

func NewKeeper() Keeper {
	return Keeper{bucket: NewBeneficiaryBucket()}
}

// IsVerified returns whether a beneficiary registered under given address
// carries the verified mark. An unknown address is reported as not verified
// and not as an error.
func (k Keeper) IsVerified(db alms.ReadOnlyKVStore, address alms.Address) (bool, error) {
	var bnfs []Beneficiary
	keys, err := k.bucket.ByIndex(db, "address", address, &bnfs)
	if err != nil {
		return false, errors.Wrap(err, "beneficiaries by address")
	}
	if len(keys) == 0 {
		return false, nil
	}
	return bnfs[0].Verified, nil
}
