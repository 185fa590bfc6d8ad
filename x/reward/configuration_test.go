package reward

import (
	"testing"

	"github.com/alms-io/alms"
	"github.com/alms-io/alms/almstest"
	"github.com/alms-io/alms/almstest/assert"
	"github.com/alms-io/alms/errors"
)

func TestConfigurationValidate(t *testing.T) {
	conf := Configuration{
		Ticker: "not a ticker",
	}
	err := conf.Validate()
	assert.FieldError(t, err, "Metadata", errors.ErrMetadata)
	assert.FieldError(t, err, "Admin", errors.ErrEmpty)
	assert.FieldError(t, err, "Ticker", errors.ErrCurrency)
	assert.FieldError(t, err, "Rate", errors.ErrEmpty)

	conf = Configuration{
		Metadata: &alms.Metadata{Schema: 1},
		Admin:    almstest.NewCondition().Address(),
		Ticker:   "GIV",
		Rate:     &alms.Fraction{Numerator: 2, Denominator: 0},
	}
	assert.FieldError(t, conf.Validate(), "Rate", errors.ErrState)

	conf.Rate = &alms.Fraction{Numerator: 1, Denominator: 10}
	assert.Nil(t, conf.Validate())
}
