// Package engine is the cash-flow engine: the event-driven state
// machine that walks a merged timeline of scheduled amortizations,
// extraordinary events and (for CDI loans) daily index ticks, while
// holding three invariants: principal fully amortized, interest
// economically equivalent across splits, outstanding balance never
// negative. Everything else in fincore (money, calendar, rate, index,
// schedule, timeline) is a thin supporting layer around this package.
package engine

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inco-org/fincore/calendar"
	"github.com/inco-org/fincore/ferr"
	"github.com/inco-org/fincore/index"
	"github.com/inco-org/fincore/money"
	"github.com/inco-org/fincore/rate"
	"github.com/inco-org/fincore/schedule"
	"github.com/inco-org/fincore/timeline"
)

// TaxFunc computes tax owed on a period's paid interest. The zero
// value (nil) means no tax is withheld.
type TaxFunc func(paidInterest decimal.Decimal) decimal.Decimal

// Params is the full configuration surface for both generators in
// this package. Amortizations must be a schedule that passes
// schedule.Validate; Calendar governs every business-day judgment and
// defaults to weekends-only if left as the zero value.
type Params struct {
	Principal     decimal.Decimal
	APYPercent    decimal.Decimal
	Amortizations []schedule.Amortization
	Regime        rate.Regime
	Calendar      calendar.Calendar

	// Backend is required iff Regime is rate.RegimeCDI252.
	Backend index.Backend

	// PercentOfCDI is the decimal multiplier applied to the daily CDI
	// percent (e.g. 1.0 for 100% of CDI). The zero value is treated
	// as "not set" and defaults to 1.0, since a genuine 0%-of-CDI loan
	// is not a meaningful configuration.
	PercentOfCDI decimal.Decimal

	// Tax is an optional per-period withholding rule. Left nil, no
	// tax is withheld and Payment.Tax is always zero.
	Tax TaxFunc

	Events []schedule.ExtraordinaryEvent

	// Logger, if set, receives a Debug record when the terminal
	// reconciliation residual is non-trivial. A nil Logger is simply
	// never called; fincore never logs at Info or louder on its own.
	Logger *slog.Logger
}

func (p Params) percentOfCDI() decimal.Decimal {
	if p.PercentOfCDI.IsZero() {
		return decimal.NewFromInt(1)
	}
	return p.PercentOfCDI
}

// Payment is one dated cash-flow record emitted by BuildPayments.
type Payment struct {
	Date         time.Time
	RawInterest  money.Money
	PaidInterest money.Money
	Amortization money.Money
	Tax          money.Money
	Net          money.Money
	BalanceAfter money.Money
}

// DailyReturn is one calendar-day accrual record emitted by
// BuildDailyReturns.
type DailyReturn struct {
	Date               time.Time
	InterestToday      money.Money
	InterestCumulative money.Money
	Balance            money.Money
	IsBusinessDay      bool
	IsAmortizationDate bool
}

// validateParams checks the amount-related preconditions that are not
// already covered by schedule.Validate.
func validateParams(p Params) error {
	if p.Principal.IsNegative() {
		return ferr.New(ferr.InvalidAmount, "principal must not be negative")
	}
	if p.APYPercent.IsNegative() {
		return ferr.New(ferr.InvalidAmount, "APY must not be negative")
	}
	if p.PercentOfCDI.IsNegative() {
		return ferr.New(ferr.InvalidAmount, "percent-of-CDI must not be negative")
	}
	return nil
}

// moneyReconciliationTolerance bounds the terminal balance check in
// BuildPayments; a non-zero residual beyond this indicates a bug in
// the reconciliation step, not a legitimate rounding difference.
var moneyReconciliationTolerance = decimal.NewFromFloat(0.005)

// interestOver returns the interest accrued on balance between anchor
// (exclusive) and d (inclusive), under the configured regime, as a
// single evaluation over the whole interval — never chained from
// smaller sub-periods. For 30/360 this is one closed-form application
// of the partial-period factor over calendar.Days360(anchor, d); for
// CDI it is the product of daily factors over every business day in
// the interval, pulled from the backend. Both generators in this
// package always call interestOver with anchor set to the last date
// interest was realized (not the previous timeline entry or calendar
// day), so a multi-period, non-realizing span is never computed by
// summing per-entry or per-day pieces — which would under-compound
// relative to evaluating the same span in one shot — and the payment
// generator and the daily-returns generator agree exactly on the
// accrued total at any given date, since both evaluate it the same way.
func interestOver(p Params, balance money.Money, anchor, d time.Time) (money.Money, error) {
	if !d.After(anchor) {
		return money.Zero, nil
	}

	switch p.Regime {
	case rate.RegimeCDI252:
		days := p.Calendar.BusinessDaysInRange(anchor.AddDate(0, 0, 1), d.AddDate(0, 0, 1))
		factors := make([]decimal.Decimal, 0, len(days))
		for _, day := range days {
			if p.Backend == nil {
				return money.Zero, ferr.New(ferr.MissingIndexData, "CDI regime requires a backend")
			}
			r, err := p.Backend.RateOn(day)
			if err != nil {
				return money.Zero, ferr.Wrap(ferr.MissingIndexData, err, "fetching CDI rate for "+day.Format("2006-01-02"))
			}
			if !r.BusinessDay {
				continue
			}
			factors = append(factors, rate.CDIDailyFactor(r.RatePercent, p.percentOfCDI()))
		}
		product := rate.ComposeFactors(factors)
		return balance.Mul(product.Sub(decimal.NewFromInt(1))), nil

	default: // RegimePrefixed30360
		days := calendar.Days360(anchor, d)
		factor := rate.PartialFactor30360(p.APYPercent, days)
		return balance.Mul(factor.Sub(decimal.NewFromInt(1))), nil
	}
}

// ratedParams returns p, or a copy with APYPercent replaced by entry's
// RateOverride when the period ending at entry.Date is a whole period:
// the accrual anchor is exactly prevDate, the previous timeline entry,
// with no earlier non-realizing entry having stretched the span. A
// partial-period override is never applied, since a single evaluation
// cannot split one span across two rates.
func ratedParams(p Params, entry timeline.Entry, anchor, prevDate time.Time) Params {
	if entry.Amortization == nil || entry.Amortization.RateOverride == nil {
		return p
	}
	if !anchor.Equal(prevDate) {
		return p
	}
	rated := p
	rated.APYPercent = *entry.Amortization.RateOverride
	return rated
}

// applyEvents reduces balance by each of an entry's extraordinary
// events in caller-given order, returning the total amount applied.
// A prepayment exceeding the current balance is not clamped: it
// terminates the generator with PrepaymentExceedsBalance carrying the
// excess rather than emitting a partial Payment.
func applyEvents(balance money.Money, events []schedule.ExtraordinaryEvent) (money.Money, money.Money, error) {
	applied := money.Zero
	remaining := balance
	for _, ev := range events {
		amt := money.New(ev.Amount)
		if ev.Full {
			amt = remaining
		}
		if amt.GreaterThan(remaining) {
			return applied, remaining, ferr.PrepaymentExceeds(amt.Sub(remaining).Decimal())
		}
		remaining = remaining.Sub(amt)
		applied = applied.Add(amt)
	}
	return applied, remaining, nil
}

// applyBoundary applies one timeline entry's events and scheduled
// amortization to balance, returning the amortization component, the
// resulting balance, and whether accrued interest is realized (paid) at
// this boundary. A synthetic early-settlement close always realizes
// interest, as does any entry carrying an event: any interest accrued
// up to and including an out-of-band payment is realized alongside it.
func applyBoundary(principal, balance money.Money, entry timeline.Entry) (amort, newBalance money.Money, realizesInterest bool, err error) {
	_, afterEvents, err := applyEvents(balance, entry.Events)
	if err != nil {
		return money.Zero, balance, false, err
	}
	newBalance = afterEvents

	amort = money.Zero
	if entry.Amortization != nil {
		amort = principal.Mul(entry.Amortization.Ratio).Min(newBalance)
		newBalance = newBalance.Sub(amort)
	}
	if entry.SyntheticClose {
		amort = amort.Add(newBalance)
		newBalance = money.Zero
	}

	realizesInterest = len(entry.Events) > 0 || entry.SyntheticClose ||
		(entry.Amortization != nil && entry.Amortization.AmortizesInterest)
	return amort, newBalance, realizesInterest, nil
}
