package engine

import (
	"iter"

	"github.com/inco-org/fincore/ferr"
	"github.com/inco-org/fincore/money"
	"github.com/inco-org/fincore/schedule"
	"github.com/inco-org/fincore/timeline"
)

// BuildPayments returns the lazy, pull-driven sequence of Payment
// records a servicer must collect for the given configuration. The
// first timeline entry is the interest-accrual anchor and produces no
// Payment; every entry after it emits exactly one.
//
// Validation runs on the first pull, not when BuildPayments is called:
// ranging over the returned sequence is what triggers it. A
// mid-sequence error is yielded once, with a zero Payment, and the
// sequence then ends — no partial Payment is ever emitted.
func BuildPayments(p Params) iter.Seq2[Payment, error] {
	return func(yield func(Payment, error) bool) {
		if err := validateParams(p); err != nil {
			yield(Payment{}, err)
			return
		}
		normalized, err := schedule.Validate(p.Amortizations, p.Calendar)
		if err != nil {
			yield(Payment{}, err)
			return
		}

		tl := timeline.Build(normalized, p.Events)
		if len(tl) < 2 {
			return
		}

		principal := money.New(p.Principal).Quantize()
		balance := principal
		// anchor is the last date interest was realized (reset to 0),
		// not the previous timeline entry: a run of non-realizing
		// entries (amortizes_interest=false) shares the same anchor, so
		// their accrual is evaluated once, over the whole elapsed span.
		anchor := tl[0].Date
		prevDate := tl[0].Date
		var amortResidual money.Residual

		for i := 1; i < len(tl); i++ {
			entry := tl[i]
			terminal := i == len(tl)-1

			accrued, err := interestOver(ratedParams(p, entry, anchor, prevDate), balance, anchor, entry.Date)
			if err != nil {
				yield(Payment{}, err)
				return
			}
			prevDate = entry.Date

			amort, newBalance, realizesInterest, err := applyBoundary(principal, balance, entry)
			if err != nil {
				yield(Payment{}, err)
				return
			}
			balance = newBalance

			var paidInterest money.Money
			if realizesInterest {
				paidInterest = accrued
				anchor = entry.Date
			} else {
				paidInterest = money.Zero
			}

			var tax money.Money
			if p.Tax != nil {
				tax = money.New(p.Tax(paidInterest.Decimal()))
			}

			quantizedAmort := amort.Quantize()
			amortResidual.Add(amort, quantizedAmort)
			if terminal {
				// Reconcile: the terminal amortization absorbs every
				// prior quantization residual so the sum of
				// amortizations equals principal exactly, and the
				// balance closes to exactly zero.
				residual := amortResidual.Drain()
				if !residual.IsZero() && p.Logger != nil {
					p.Logger.Debug("terminal reconciliation residual folded into amortization",
						"residual", residual.Decimal().String())
				}
				quantizedAmort = quantizedAmort.Add(residual)
			}

			rawQ := accrued.Quantize()
			paidQ := paidInterest.Quantize()
			taxQ := tax.Quantize()
			netQ := paidQ.Sub(taxQ)
			balanceAfterQ := balance.Quantize()
			if terminal {
				balanceAfterQ = money.Zero
				if !balance.Decimal().Abs().LessThan(moneyReconciliationTolerance) {
					yield(Payment{}, ferr.New(ferr.ReconciliationError, "terminal balance did not close to zero"))
					return
				}
			}

			payment := Payment{
				Date:         entry.Date,
				RawInterest:  rawQ,
				PaidInterest: paidQ,
				Amortization: quantizedAmort,
				Tax:          taxQ,
				Net:          netQ,
				BalanceAfter: balanceAfterQ,
			}

			if !yield(payment, nil) {
				return
			}
			if entry.SyntheticClose {
				return
			}
		}
	}
}
