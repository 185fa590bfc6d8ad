package almsd

import (
	"github.com/alms-io/alms"
	"github.com/alms-io/alms/x/preauth"
)

// make sure tx fulfills all interfaces
var _ alms.Tx = (*Tx)(nil)
var _ preauth.AuthorizedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (alms.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg switches over all types defined in the protobuf file
func (tx *Tx) GetMsg() (alms.Msg, error) {
	return alms.ExtractMsgFromSum(tx.GetSum())
}
