package engine

import (
	"iter"

	"github.com/inco-org/fincore/money"
	"github.com/inco-org/fincore/schedule"
	"github.com/inco-org/fincore/timeline"
)

// BuildDailyReturns returns the lazy, pull-driven sequence of
// DailyReturn records covering every calendar day between the
// timeline's anchor and its last entry, one record per day. It shares
// BuildPayments' validation and timeline construction, so the two
// generators fail identically and at the same pull.
//
// Each day's InterestCumulative is interestOver(anchor, day) — the same
// single-shot evaluation BuildPayments uses for a Payment's RawInterest,
// anchored at the same last-realization date — and InterestToday is the
// difference between that quantized cumulative and the previous day's.
// Because both generators compute accrual the same way from the same
// anchor, summing InterestToday over every day after the last
// interest-realizing date (or the anchor) up to and including a Payment
// date reproduces that Payment's RawInterest exactly, regardless of how
// many calendar days the intervening month(s) actually have.
func BuildDailyReturns(p Params) iter.Seq2[DailyReturn, error] {
	return func(yield func(DailyReturn, error) bool) {
		if err := validateParams(p); err != nil {
			yield(DailyReturn{}, err)
			return
		}
		normalized, err := schedule.Validate(p.Amortizations, p.Calendar)
		if err != nil {
			yield(DailyReturn{}, err)
			return
		}

		tl := timeline.Build(normalized, p.Events)
		if len(tl) < 2 {
			return
		}

		principal := money.New(p.Principal).Quantize()
		balance := principal
		anchor := tl[0].Date
		prevCumulative := money.Zero
		cursor := tl[0].Date

		for i := 1; i < len(tl); i++ {
			entry := tl[i]

			rated := ratedParams(p, entry, anchor, cursor)
			for d := cursor.AddDate(0, 0, 1); !d.After(entry.Date); d = d.AddDate(0, 0, 1) {
				isBizDay := p.Calendar.IsBusinessDay(d)

				cumulative, err := interestOver(rated, balance, anchor, d)
				if err != nil {
					yield(DailyReturn{}, err)
					return
				}
				todayInterest := cumulative.Quantize().Sub(prevCumulative.Quantize())

				isAmortDate := d.Equal(entry.Date)
				if isAmortDate {
					var realizesInterest bool
					var newBalance money.Money
					_, newBalance, realizesInterest, err = applyBoundary(principal, balance, entry)
					if err != nil {
						yield(DailyReturn{}, err)
						return
					}
					balance = newBalance
					if realizesInterest {
						// The record below still reports the full
						// accrued cumulative realized today; only the
						// running state carried into tomorrow resets.
						anchor = d
						prevCumulative = money.Zero
					} else {
						prevCumulative = cumulative
					}
				} else {
					prevCumulative = cumulative
				}

				record := DailyReturn{
					Date:               d,
					InterestToday:      todayInterest.Quantize(),
					InterestCumulative: cumulative.Quantize(),
					Balance:            balance.Quantize(),
					IsBusinessDay:      isBizDay,
					IsAmortizationDate: isAmortDate,
				}
				if !yield(record, nil) {
					return
				}
				if isAmortDate && entry.SyntheticClose {
					return
				}
			}

			cursor = entry.Date
		}
	}
}
