package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizeHalfEven(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "1.00"}, // nearest even at the tie
		{"1.015", "1.02"},
		{"1.025", "1.02"},
		{"2.5", "2.50"},
		{"-1.005", "-1.00"},
	}

	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		require.NoError(t, err)
		got := New(d).Quantize()
		assert.Equal(t, c.want, got.String(), "quantizing %s", c.in)
	}
}

func TestResidualDrainFoldsBackExactly(t *testing.T) {
	var r Residual

	raw := New(decimal.NewFromFloat(33.333333))
	q := raw.Quantize()
	r.Add(raw, q)

	raw2 := New(decimal.NewFromFloat(33.333333))
	q2 := raw2.Quantize()
	r.Add(raw2, q2)

	raw3 := New(decimal.NewFromFloat(33.333334))
	q3 := raw3.Quantize()
	r.Add(raw3, q3)

	total := q.Add(q2).Add(q3).Add(r.Drain())
	sumRaw := raw.Add(raw2).Add(raw3)
	assert.True(t, total.Decimal().Equal(sumRaw.Decimal()))
}

func TestMoneyArithmetic(t *testing.T) {
	a := FromInt(100)
	b := New(decimal.NewFromFloat(33.5))

	assert.True(t, a.Add(b).Decimal().Equal(decimal.NewFromFloat(133.5)))
	assert.True(t, a.Sub(b).Decimal().Equal(decimal.NewFromFloat(66.5)))
	assert.True(t, a.Mul(decimal.NewFromFloat(0.5)).Decimal().Equal(decimal.NewFromFloat(50)))
	assert.True(t, Zero.IsZero())
	assert.True(t, a.IsPositive())
	assert.True(t, a.Neg().IsNegative())
}
