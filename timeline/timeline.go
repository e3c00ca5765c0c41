// Package timeline merges a validated amortization schedule with any
// caller-supplied extraordinary events into the single, monotone,
// dated sequence the payment and daily-returns generators walk.
package timeline

import (
	"sort"
	"time"

	"github.com/inco-org/fincore/schedule"
)

// Entry is one date on the merged timeline. A date can carry a
// scheduled amortization, one or more extraordinary events, or both —
// Build resolves any such collision deterministically (see below).
type Entry struct {
	Date           time.Time
	Amortization   *schedule.Amortization
	Events         []schedule.ExtraordinaryEvent
	SyntheticClose bool
}

// Build merges a validated schedule (entries[0] is the interest
// accrual anchor and carries no events) with caller-supplied
// extraordinary events. Events are applied in caller-given order when
// they share a date. An early-settlement event truncates the
// timeline: every scheduled entry after it is discarded and the
// settlement date is marked SyntheticClose so the generator knows to
// close the balance there instead of applying any later ratio.
func Build(entries []schedule.Amortization, events []schedule.ExtraordinaryEvent) []Entry {
	byDate := make(map[int64]*Entry)
	var dates []time.Time

	get := func(d time.Time) *Entry {
		key := d.UTC().Truncate(24 * time.Hour).Unix()
		e, ok := byDate[key]
		if !ok {
			e = &Entry{Date: d}
			byDate[key] = e
			dates = append(dates, d)
		}
		return e
	}

	for i := range entries {
		a := entries[i]
		get(a.Date).Amortization = &a
	}
	for _, ev := range events {
		e := get(ev.Date)
		e.Events = append(e.Events, ev)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	ordered := make([]Entry, 0, len(dates))
	for _, d := range dates {
		key := d.UTC().Truncate(24 * time.Hour).Unix()
		entry := *byDate[key]

		for _, ev := range entry.Events {
			if ev.Kind == schedule.EventEarlySettlement {
				entry.SyntheticClose = true
			}
		}

		ordered = append(ordered, entry)
		if entry.SyntheticClose {
			break
		}
	}

	return ordered
}
