// Package rate converts between APY, monthly factors and daily factors
// under each of fincore's two day-count regimes, and composes daily
// factors over a period. Fractional exponentiation (1/12, days/360,
// 1/252) has no closed form in decimal arithmetic, so — mirroring the
// amortization math this module replaces — the exponent is evaluated
// in float64 and the result is converted back to decimal for monetary
// use. No rounding happens here; quantization is the caller's job.
package rate

import (
	"math"

	"github.com/shopspring/decimal"
)

// Regime selects the day-count and rate-composition rules applied to a
// loan: prefixed loans use 30/360, CDI-indexed loans use ACT/252
// business days.
type Regime int

const (
	RegimePrefixed30360 Regime = iota
	RegimeCDI252
)

func (r Regime) String() string {
	switch r {
	case RegimePrefixed30360:
		return "prefixed_30_360"
	case RegimeCDI252:
		return "cdi_252"
	default:
		return "unknown"
	}
}

var hundred = decimal.NewFromInt(100)

// powFactor computes (1+base)^exponent via float64, returning the
// result as a decimal. base is a dimensionless rate (e.g. apy/100).
func powFactor(base decimal.Decimal, exponent float64) decimal.Decimal {
	f := math.Pow(1+base.InexactFloat64(), exponent)
	return decimal.NewFromFloat(f)
}

// MonthlyFactor30360 returns the factor by which a balance grows over
// one full month under the 30/360 prefixed regime:
//
//	(1 + apy/100)^(1/12)
func MonthlyFactor30360(apyPercent decimal.Decimal) decimal.Decimal {
	return powFactor(apyPercent.Div(hundred), 1.0/12.0)
}

// PartialFactor30360 returns the factor by which a balance grows over
// a partial period spanning the given number of 30/360 days:
//
//	(1 + apy/100)^(days/360)
func PartialFactor30360(apyPercent decimal.Decimal, days int) decimal.Decimal {
	return powFactor(apyPercent.Div(hundred), float64(days)/360.0)
}

// CDIDailyFactor returns the factor by which a balance grows over one
// CDI business day, scaled by the loan's percent-of-CDI parameter p
// (a decimal multiplier, e.g. 1.0 for 100% of CDI):
//
//	(1 + (cdiPercent/100)*p)^(1/252)
func CDIDailyFactor(cdiPercent decimal.Decimal, percentOfCDI decimal.Decimal) decimal.Decimal {
	base := cdiPercent.Div(hundred).Mul(percentOfCDI)
	return powFactor(base, 1.0/252.0)
}

// ComposeFactors multiplies a sequence of per-day (or per-period)
// growth factors together, returning 1 for an empty sequence.
func ComposeFactors(factors []decimal.Decimal) decimal.Decimal {
	product := decimal.NewFromInt(1)
	for _, f := range factors {
		product = product.Mul(f)
	}
	return product
}
