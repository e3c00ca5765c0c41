// Package money provides the fixed-precision decimal arithmetic and
// rounding policy shared by every fincore component. All monetary and
// rate computation in fincore flows through this package so that
// rounding only ever happens in one place.
package money

import (
	"github.com/shopspring/decimal"
)

// InternalPrecision is the number of decimal digits retained by
// intermediate (unrounded) computation: at least 28 significant digits.
// shopspring/decimal keeps an arbitrary number of integer digits, so
// this only bounds division precision.
const InternalPrecision = 32

// DisplayScale is the number of decimal places a Payment or DailyReturn
// field is quantized to before it is handed back to a caller.
const DisplayScale = 2

func init() {
	decimal.DivisionPrecision = InternalPrecision
}

// Zero is the additive identity.
var Zero = New(decimal.Zero)

// Money is an immutable fixed-point monetary amount. It carries full
// internal precision until Quantize is called; quantization only
// happens at the boundary where a value is handed back to a caller,
// or where a rate is explicitly rounded.
type Money struct {
	amount decimal.Decimal
}

// New wraps a decimal.Decimal as Money, at full precision.
func New(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// FromInt builds a Money value from a whole number.
func FromInt(i int64) Money {
	return Money{amount: decimal.NewFromInt(i)}
}

// Decimal returns the underlying unrounded decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other at full precision.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other at full precision.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul returns m multiplied by a dimensionless factor (a rate or ratio).
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// Neg flips the sign of m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// IsPositive reports whether m is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// IsNegative reports whether m is strictly less than zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool { return m.amount.LessThan(other.amount) }

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool { return m.amount.GreaterThan(other.amount) }

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other.LessThan(m) {
		return other
	}
	return m
}

// Quantize rounds m to DisplayScale decimal places using half-even
// (banker's) rounding. This is the only rounding rule used at the
// emission boundary.
func (m Money) Quantize() Money {
	return Money{amount: m.amount.RoundBank(DisplayScale)}
}

// String renders m at display scale.
func (m Money) String() string {
	return m.amount.StringFixed(DisplayScale)
}

// Residual accumulates the difference between an unrounded running
// total and the sum of its quantized parts. The engine drains it into
// the terminal Payment's amortization so that, after reconciliation,
// the sum of amortizations equals the original principal exactly
// instead of drifting by a cent or two across many quantized periods.
type Residual struct {
	sum decimal.Decimal
}

// Add records the rounding error introduced by quantizing raw into
// quantized (raw - quantized), to be folded back in later.
func (r *Residual) Add(raw, quantized Money) {
	r.sum = r.sum.Add(raw.amount.Sub(quantized.amount))
}

// Drain returns the accumulated residual as Money and resets it to zero.
func (r *Residual) Drain() Money {
	out := Money{amount: r.sum}
	r.sum = decimal.Zero
	return out
}
