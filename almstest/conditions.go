package almstest

import (
	"crypto/rand"

	"github.com/alms-io/alms"
)

// NewCondition returns a random condition. Each call returns a different
// value, so two conditions can never authorize each other's address.
func NewCondition() alms.Condition {
	data := make([]byte, 16)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return alms.NewCondition("almstest", "random", data)
}
