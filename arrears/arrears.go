// Package arrears computes the late-fee and late-interest adjustments
// owed on a missed scheduled payment. It is a pure function over a
// single missed payment, not a walker over a schedule: a servicer calls
// it once per past-due entry it already knows about.
package arrears

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inco-org/fincore/ferr"
	"github.com/inco-org/fincore/money"
)

// daysPerMonth is the pro-rata divisor for late interest: it accrues
// as a simple (non-compounding) fraction of a 30-day month, not an
// actual calendar month.
const daysPerMonth = 30

// MissedPayment is the unpaid scheduled obligation arrears are being
// computed against.
type MissedPayment struct {
	DueDate time.Time
	Amount  decimal.Decimal
}

// ArrearsResult is the one-shot late fee plus the pro-rata late
// interest owed on a MissedPayment as of a reference date.
type ArrearsResult struct {
	DaysLate     int
	LateFee      money.Money
	LateInterest money.Money
	TotalDue     money.Money
}

// Compute returns the arrears on missed as of referenceDate, given a
// one-shot late fee percent and a monthly late-interest percent.
// referenceDate must be after missed.DueDate; days late is counted on
// the calendar, not business days, since a missed payment accrues
// penalties every day it remains unpaid, not only on business days.
func Compute(missed MissedPayment, referenceDate time.Time, lateFeePercent, monthlyLateInterestPercent decimal.Decimal) (ArrearsResult, error) {
	if !referenceDate.After(missed.DueDate) {
		return ArrearsResult{}, ferr.New(ferr.InvalidAmount, "reference date must be after the missed payment's due date")
	}
	if missed.Amount.IsNegative() {
		return ArrearsResult{}, ferr.New(ferr.InvalidAmount, "missed payment amount must not be negative")
	}
	if lateFeePercent.IsNegative() || monthlyLateInterestPercent.IsNegative() {
		return ArrearsResult{}, ferr.New(ferr.InvalidAmount, "penalty percentages must not be negative")
	}

	daysLate := int(referenceDate.Sub(missed.DueDate).Hours() / 24)

	amount := money.New(missed.Amount)
	lateFee := amount.Mul(lateFeePercent.Div(decimal.NewFromInt(100))).Quantize()

	monthlyRate := monthlyLateInterestPercent.Div(decimal.NewFromInt(100))
	proRata := decimal.NewFromInt(int64(daysLate)).Div(decimal.NewFromInt(daysPerMonth))
	lateInterest := amount.Mul(monthlyRate).Mul(proRata).Quantize()

	total := amount.Add(lateFee).Add(lateInterest)

	return ArrearsResult{
		DaysLate:     daysLate,
		LateFee:      lateFee,
		LateInterest: lateInterest,
		TotalDue:     total.Quantize(),
	}, nil
}
