package alms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alms-io/alms"
)

func TestVersion(t *testing.T) {
	alms.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", alms.Version())

	alms.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", alms.Version())
}
