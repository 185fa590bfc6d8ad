package almstest

import "encoding/binary"

// SequenceID returns an ID encoded the same way the orm sequence does it.
// This is a test helper to easily declare bucket IDs.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
