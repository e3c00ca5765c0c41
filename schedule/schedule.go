// Package schedule models the user-supplied amortization plan and the
// extraordinary events that can interrupt it, plus the eager
// validation every schedule must pass before a generator will walk it.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inco-org/fincore/calendar"
	"github.com/inco-org/fincore/ferr"
)

// Amortization is one planned event in the contract: a date, the
// fraction of original principal it amortizes, and whether it also
// sweeps accrued interest. The first entry of a valid schedule always
// has Ratio zero and AmortizesInterest false — it only marks the date
// from which interest starts accruing.
type Amortization struct {
	Date              time.Time
	Ratio             decimal.Decimal
	AmortizesInterest bool

	// RateOverride lets an individual entry apply a different APY
	// than the loan's headline rate for the period ending at Date, for
	// the 30/360 regime only. It is honored only when the period ending
	// at Date is a whole period — the accrual anchor is exactly the
	// previous timeline entry's date, with no non-realizing entry in
	// between. If an earlier non-realizing entry stretched the accrual
	// span across more than one scheduled period, the override is
	// ignored for that span and the headline APY applies throughout,
	// since a single evaluation cannot apply two different rates to two
	// parts of one span.
	RateOverride *decimal.Decimal
}

// EventKind tags the kind of extraordinary (unplanned) event.
type EventKind int

const (
	EventPrepayment EventKind = iota
	EventEarlySettlement
)

// ExtraordinaryEvent is an unplanned reduction of outstanding balance:
// a partial prepayment, or an early settlement that closes the loan.
type ExtraordinaryEvent struct {
	Date time.Time
	Kind EventKind

	// Amount is the amount applied to balance. Ignored when Full is
	// true (an early settlement always closes the remaining balance,
	// whatever Amount holds).
	Amount decimal.Decimal
	Full   bool
}

const ratioTolerance = "0.0000000001" // 10 decimal places

// Validate checks a schedule's invariants — at least two entries, a
// first entry with ratio 0 that does not amortize interest, later dates
// strictly increasing and business days, each ratio in [0,1], ratios
// summing to 1 within tolerance — and returns a normalized copy:
// dates and flags unchanged, but with any sub-tolerance rounding
// remainder in the ratio sum absorbed into the last entry so that the
// ratios sum to exactly 1.
//
// cal is used only to check that every date after the first is a
// business day under the applicable calendar.
func Validate(entries []Amortization, cal calendar.Calendar) ([]Amortization, error) {
	if len(entries) < 2 {
		return nil, ferr.New(ferr.InvalidSchedule, "schedule must have at least 2 entries")
	}

	first := entries[0]
	if !first.Ratio.IsZero() {
		return nil, ferr.New(ferr.InvalidSchedule, "first entry must have ratio 0")
	}
	if first.AmortizesInterest {
		return nil, ferr.New(ferr.InvalidSchedule, "first entry must not amortize interest")
	}

	zero := decimal.Zero
	one := decimal.NewFromInt(1)

	out := make([]Amortization, len(entries))
	copy(out, entries)

	sum := decimal.Zero
	for i := 1; i < len(out); i++ {
		e := out[i]
		if !e.Date.After(out[i-1].Date) {
			return nil, ferr.Newf(ferr.InvalidSchedule,
				"entry %d date %s is not strictly after entry %d", i, e.Date.Format("2006-01-02"), i-1)
		}
		if !cal.IsBusinessDay(e.Date) {
			return nil, ferr.Newf(ferr.InvalidSchedule,
				"entry %d date %s is not a business day", i, e.Date.Format("2006-01-02"))
		}
		if e.Ratio.LessThan(zero) || e.Ratio.GreaterThan(one) {
			return nil, ferr.Newf(ferr.InvalidSchedule,
				"entry %d ratio %s out of range [0,1]", i, e.Ratio.String())
		}
		sum = sum.Add(e.Ratio)
	}

	tol, _ := decimal.NewFromString(ratioTolerance)
	diff := one.Sub(sum)
	if diff.Abs().GreaterThan(tol) {
		return nil, ferr.Newf(ferr.InvalidSchedule,
			"amortization ratios sum to %s, want 1", sum.String())
	}

	// Absorb any sub-tolerance remainder into the last entry so the
	// normalized schedule sums to exactly 1.
	if !diff.IsZero() {
		last := len(out) - 1
		out[last].Ratio = out[last].Ratio.Add(diff)
	}

	return out, nil
}
