package arrears

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inco-org/fincore/ferr"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeThirtyDaysLate(t *testing.T) {
	missed := MissedPayment{DueDate: d(2022, 1, 10), Amount: decimal.NewFromInt(1000)}
	result, err := Compute(missed, d(2022, 2, 9), decimal.NewFromInt(2), decimal.NewFromInt(1))
	require.NoError(t, err)

	assert.Equal(t, 30, result.DaysLate)
	assert.Equal(t, "20.00", result.LateFee.String())
	assert.Equal(t, "10.00", result.LateInterest.String())
	assert.Equal(t, "1030.00", result.TotalDue.String())
}

func TestComputeProRataPartialMonth(t *testing.T) {
	missed := MissedPayment{DueDate: d(2022, 1, 10), Amount: decimal.NewFromInt(3000)}
	result, err := Compute(missed, d(2022, 1, 25), decimal.NewFromInt(2), decimal.NewFromInt(1))
	require.NoError(t, err)

	assert.Equal(t, 15, result.DaysLate)
	// 1% monthly over 15/30 of a month on 3000 = 15.00
	assert.Equal(t, "15.00", result.LateInterest.String())
}

func TestComputeRejectsReferenceDateNotAfterDue(t *testing.T) {
	missed := MissedPayment{DueDate: d(2022, 1, 10), Amount: decimal.NewFromInt(1000)}
	_, err := Compute(missed, d(2022, 1, 10), decimal.NewFromInt(2), decimal.NewFromInt(1))
	require.Error(t, err)
	kind, ok := ferr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ferr.InvalidAmount, kind)
}

func TestComputeRejectsNegativeAmount(t *testing.T) {
	missed := MissedPayment{DueDate: d(2022, 1, 10), Amount: decimal.NewFromInt(-1)}
	_, err := Compute(missed, d(2022, 2, 10), decimal.NewFromInt(2), decimal.NewFromInt(1))
	require.Error(t, err)
}
