package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inco-org/fincore/calendar"
	"github.com/inco-org/fincore/ferr"
	"github.com/inco-org/fincore/index"
	"github.com/inco-org/fincore/rate"
	"github.com/inco-org/fincore/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func collectDaily(t *testing.T, p Params) []DailyReturn {
	t.Helper()
	var out []DailyReturn
	for rec, err := range BuildDailyReturns(p) {
		require.NoError(t, err)
		out = append(out, rec)
	}
	return out
}

func TestBuildDailyReturnsBulletSums30360(t *testing.T) {
	p := Params{
		Principal:  decimal.NewFromInt(100000),
		APYPercent: decimal.NewFromInt(5),
		Regime:     rate.RegimePrefixed30360,
		Calendar:   calendar.New(nil),
		Amortizations: []schedule.Amortization{
			{Date: date(2022, 1, 9), Ratio: decimal.Zero},
			{Date: date(2022, 3, 9), Ratio: decimal.NewFromInt(1), AmortizesInterest: true},
		},
	}

	daily := collectDaily(t, p)
	require.NotEmpty(t, daily)

	var cumulativeAtClose decimal.Decimal
	for _, rec := range daily {
		if rec.Date.Equal(date(2022, 3, 9)) {
			cumulativeAtClose = rec.InterestCumulative.Decimal()
		}
	}

	var paymentRaw decimal.Decimal
	for payment, err := range BuildPayments(p) {
		require.NoError(t, err)
		paymentRaw = payment.RawInterest.Decimal()
	}

	// The record on the realizing boundary reports the full accrued
	// cumulative before the running state resets for the next period;
	// compare against the period's raw interest within one quantization
	// unit.
	diff := cumulativeAtClose.Sub(paymentRaw).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)), "cumulative %s vs raw %s", cumulativeAtClose, paymentRaw)

	last := daily[len(daily)-1]
	assert.True(t, last.Balance.IsZero())
	assert.True(t, last.IsAmortizationDate)
}

func TestBuildDailyReturnsCDINonBusinessDayIsZero(t *testing.T) {
	backend := index.NewStaticBackend([]index.CdiDailyRate{
		{Date: date(2022, 3, 7), RatePercent: decimal.NewFromFloat(13.65), BusinessDay: true},
		{Date: date(2022, 3, 8), RatePercent: decimal.NewFromFloat(13.65), BusinessDay: true},
		{Date: date(2022, 3, 9), RatePercent: decimal.NewFromFloat(13.65), BusinessDay: true},
		{Date: date(2022, 3, 10), RatePercent: decimal.NewFromFloat(13.65), BusinessDay: true},
		{Date: date(2022, 3, 11), RatePercent: decimal.NewFromFloat(13.65), BusinessDay: true},
		{Date: date(2022, 3, 14), RatePercent: decimal.NewFromFloat(13.65), BusinessDay: true},
	}, nil)

	p := Params{
		Principal:    decimal.NewFromInt(50000),
		Regime:       rate.RegimeCDI252,
		Calendar:     calendar.New(nil),
		Backend:      backend,
		PercentOfCDI: decimal.NewFromInt(1),
		Amortizations: []schedule.Amortization{
			{Date: date(2022, 3, 7), Ratio: decimal.Zero},
			{Date: date(2022, 3, 14), Ratio: decimal.NewFromInt(1), AmortizesInterest: true},
		},
	}

	daily := collectDaily(t, p)
	for _, rec := range daily {
		if !rec.IsBusinessDay {
			assert.True(t, rec.InterestToday.IsZero(), "day %s should accrue nothing", rec.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildDailyReturnsPropagatesScheduleError(t *testing.T) {
	p := Params{
		Principal:  decimal.NewFromInt(1000),
		APYPercent: decimal.NewFromInt(5),
		Calendar:   calendar.New(nil),
		Amortizations: []schedule.Amortization{
			{Date: date(2022, 1, 9), Ratio: decimal.Zero},
			{Date: date(2022, 2, 9), Ratio: decimal.NewFromFloat(0.9), AmortizesInterest: true},
		},
	}

	var gotErr error
	for _, err := range BuildDailyReturns(p) {
		gotErr = err
		break
	}
	require.Error(t, gotErr)
	kind, ok := ferr.KindOf(gotErr)
	require.True(t, ok)
	assert.Equal(t, ferr.InvalidSchedule, kind)
}
