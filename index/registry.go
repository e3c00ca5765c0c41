// This file is the compiled-in CDI registry: a fixed, dated table of
// published CDI rates covering Jan-Jul 2022 at a constant 13.65% p.a.,
// plus the set of calendar dates on which CDI does not publish. Both
// tables are plain data, embedded at build time, not computed by an
// init() side-effect.
package index

import (
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var rate1365 = decimal.NewFromFloat(13.65)

var seedRegistry = []CdiDailyRate{
	{Date: date(2022, 1, 3), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 4), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 5), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 6), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 7), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 10), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 11), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 12), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 13), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 14), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 17), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 18), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 19), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 20), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 21), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 24), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 25), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 26), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 27), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 28), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 1, 31), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 1), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 2), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 3), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 4), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 7), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 8), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 9), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 10), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 11), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 14), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 15), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 16), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 17), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 18), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 21), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 22), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 23), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 24), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 25), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 2, 28), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 3), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 4), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 7), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 8), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 9), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 10), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 11), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 14), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 15), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 16), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 17), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 18), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 21), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 22), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 23), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 24), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 25), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 28), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 29), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 30), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 3, 31), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 1), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 4), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 5), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 6), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 7), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 8), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 11), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 12), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 13), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 14), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 18), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 19), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 20), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 22), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 25), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 26), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 27), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 28), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 4, 29), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 2), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 3), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 4), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 5), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 6), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 9), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 10), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 11), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 12), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 13), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 16), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 17), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 18), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 19), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 20), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 23), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 24), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 25), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 26), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 27), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 30), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 5, 31), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 1), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 2), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 3), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 6), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 7), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 8), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 9), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 10), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 13), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 14), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 15), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 17), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 20), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 21), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 22), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 23), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 24), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 27), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 28), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 29), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 6, 30), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 1), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 4), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 5), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 6), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 7), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 8), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 11), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 12), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 13), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 14), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 15), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 18), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 19), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 20), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 21), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 22), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 25), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 26), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 27), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 28), RatePercent: rate1365, BusinessDay: true},
	{Date: date(2022, 7, 29), RatePercent: rate1365, BusinessDay: true},
}

// ignoreDates lists public holidays on which CDI is not published,
// beyond the plain weekend test applied elsewhere in fincore.
var ignoreDates = []time.Time{
	date(2022, 1, 1),
	date(2022, 3, 1),
	date(2022, 3, 2),
	date(2022, 4, 15),
	date(2022, 4, 21),
	date(2022, 5, 1),
	date(2022, 6, 16),
}
