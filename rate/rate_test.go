package rate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyFactor30360(t *testing.T) {
	apy := decimal.NewFromFloat(5.0)
	f := MonthlyFactor30360(apy)
	// (1.05)^(1/12) ~= 1.004074
	diff := f.Sub(decimal.NewFromFloat(1.0040741237836482)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.0000001)))
}

func TestCDIDailyFactorAt100Percent(t *testing.T) {
	cdi := decimal.NewFromFloat(13.65)
	f := CDIDailyFactor(cdi, decimal.NewFromFloat(1.0))
	// (1.1365)^(1/252) ~= 1.000507
	diff := f.Sub(decimal.NewFromFloat(1.000507)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.000001)))
}

func TestComposeFactorsOverBusinessDays(t *testing.T) {
	cdi := decimal.NewFromFloat(13.65)
	daily := CDIDailyFactor(cdi, decimal.NewFromFloat(1.0))

	factors := make([]decimal.Decimal, 21)
	for i := range factors {
		factors[i] = daily
	}
	period := ComposeFactors(factors)
	// ~1.01073 for 21 business days at 0.05% per day.
	diff := period.Sub(decimal.NewFromFloat(1.01073)).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.0001)))
}

func TestComposeFactorsEmptyIsIdentity(t *testing.T) {
	assert.True(t, ComposeFactors(nil).Equal(decimal.NewFromInt(1)))
}

func TestRegimeString(t *testing.T) {
	assert.Equal(t, "prefixed_30_360", RegimePrefixed30360.String())
	assert.Equal(t, "cdi_252", RegimeCDI252.String())
}
