package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsBusinessDayWeekends(t *testing.T) {
	c := New(nil)
	assert.True(t, c.IsBusinessDay(date(2022, 3, 9)))  // Wednesday
	assert.False(t, c.IsBusinessDay(date(2022, 3, 12))) // Saturday
	assert.False(t, c.IsBusinessDay(date(2022, 3, 13))) // Sunday
}

func TestIsBusinessDayHoliday(t *testing.T) {
	c := New([]time.Time{date(2022, 4, 21)}) // Tiradentes, a Thursday
	assert.False(t, c.IsBusinessDay(date(2022, 4, 21)))
	assert.True(t, c.IsBusinessDay(date(2022, 4, 20)))
}

func TestNextAndPreviousBusinessDay(t *testing.T) {
	c := New([]time.Time{date(2022, 4, 21)})
	assert.Equal(t, date(2022, 4, 22), c.NextBusinessDay(date(2022, 4, 20)))
	assert.Equal(t, date(2022, 3, 11), c.PreviousBusinessDay(date(2022, 3, 12)))
}

func TestBusinessDaysBetweenHalfOpen(t *testing.T) {
	c := New(nil)
	// 2022-03-09 (Wed) to 2022-03-16 (Wed): 09,10,11,14,15 = 5 business days
	got := c.BusinessDaysBetween(date(2022, 3, 9), date(2022, 3, 16))
	assert.Equal(t, 5, got)

	assert.Equal(t, 0, c.BusinessDaysBetween(date(2022, 3, 9), date(2022, 3, 9)))
}

func TestDays360USNASD(t *testing.T) {
	// Bullet example from spec: 2022-03-09 -> 2022-04-09 is exactly one month.
	assert.Equal(t, 30, Days360(date(2022, 3, 9), date(2022, 4, 9)))

	// Day 31 of a is capped to 30.
	assert.Equal(t, 28, Days360(date(2022, 1, 31), date(2022, 2, 28)))

	// Day 31 of b capped to 30 only when a is 30 or 31.
	assert.Equal(t, 0, Days360(date(2022, 1, 30), date(2022, 1, 31)))
	assert.Equal(t, 2, Days360(date(2022, 1, 29), date(2022, 1, 31)))
}
