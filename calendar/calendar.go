// Package calendar is the single source of truth for business-day
// judgments across fincore: weekend/holiday tests, business-day
// walking and counting, and the U.S./NASD 30/360 day-count convention.
package calendar

import "time"

// dayKey normalizes a time.Time to its calendar-day string so lookups
// are insensitive to time-of-day and monotonic clock readings.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Calendar tests business days against a fixed holiday list supplied
// at construction. It holds no mutable state after New returns.
type Calendar struct {
	holidays map[string]struct{}
}

// New builds a Calendar from a fixed list of holiday dates.
func New(holidays []time.Time) Calendar {
	m := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		m[dayKey(h)] = struct{}{}
	}
	return Calendar{holidays: m}
}

// IsBusinessDay reports whether d is neither a weekend day nor a
// configured holiday.
func (c Calendar) IsBusinessDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := c.holidays[dayKey(d)]
	return !holiday
}

// NextBusinessDay returns the first business day strictly after d.
func (c Calendar) NextBusinessDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	for !c.IsBusinessDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// PreviousBusinessDay returns the first business day strictly before d.
func (c Calendar) PreviousBusinessDay(d time.Time) time.Time {
	prev := d.AddDate(0, 0, -1)
	for !c.IsBusinessDay(prev) {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}

// BusinessDaysBetween counts business days in the half-open interval
// [a, b). If b is not after a, the count is zero.
func (c Calendar) BusinessDaysBetween(a, b time.Time) int {
	count := 0
	cur := a
	for cur.Before(b) {
		if c.IsBusinessDay(cur) {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return count
}

// BusinessDaysInRange returns, in order, every business day in the
// half-open interval [a, b). Used by the engine to compose daily CDI
// factors over a period.
func (c Calendar) BusinessDaysInRange(a, b time.Time) []time.Time {
	var days []time.Time
	cur := a
	for cur.Before(b) {
		if c.IsBusinessDay(cur) {
			days = append(days, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// Days360 computes the day count between a and b under the U.S./NASD
// 30/360 convention: each month is treated as having 30 days.
//
//   - if day-of-month of a is 31, it is set to 30.
//   - if day-of-month of b is 31 and day-of-month of a is 30 or 31
//     (after the adjustment above), b is set to 30.
func Days360(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()

	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && (d1 == 30 || d1 == 31) {
		d2 = 30
	}

	return (y2-y1)*360 + (int(m2)-int(m1))*30 + (d2 - d1)
}
