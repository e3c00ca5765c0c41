// Package index defines the capability fincore's CDI-indexed loans
// pull daily rates from, plus a static in-memory implementation. The
// engine never reaches out over the network itself; it only ever
// calls Backend.RateOn.
package index

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownDate is wrapped into the error returned by a Backend when
// it has no rate recorded for a date and cannot infer one.
var ErrUnknownDate = errors.New("index: no CDI rate recorded for date")

// CdiDailyRate is one day's published CDI rate.
type CdiDailyRate struct {
	Date        time.Time
	RatePercent decimal.Decimal
	BusinessDay bool
}

// Backend is the single capability the engine depends on for
// CDI-indexed loans: given a date, return that day's rate.
type Backend interface {
	RateOn(d time.Time) (CdiDailyRate, error)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// StaticBackend is an in-memory Backend seeded from a fixed, compiled
// in table of dated rates plus a set of "ignore" dates — calendar
// dates on which CDI does not publish (non-business days, or
// recognized public holidays outside the generic weekend/holiday
// calendar). It is immutable and safe for concurrent use by any
// number of callers.
type StaticBackend struct {
	rates  map[string]CdiDailyRate
	ignore map[string]struct{}
	sorted []time.Time
}

// NewStaticBackend builds a StaticBackend from a seed registry and a
// list of dates CDI is known not to publish on.
func NewStaticBackend(seed []CdiDailyRate, ignoreDates []time.Time) *StaticBackend {
	rates := make(map[string]CdiDailyRate, len(seed))
	sorted := make([]time.Time, 0, len(seed))
	for _, r := range seed {
		rates[dayKey(r.Date)] = r
		sorted = append(sorted, r.Date)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	ignore := make(map[string]struct{}, len(ignoreDates))
	for _, d := range ignoreDates {
		ignore[dayKey(d)] = struct{}{}
	}

	return &StaticBackend{rates: rates, ignore: ignore, sorted: sorted}
}

// RateOn returns the rate recorded for d. If d is a recognized
// non-publishing date it returns a zero-rate, non-business-day record.
// Otherwise, if no rate was recorded, it falls back to the most recent
// known-good rate strictly before d; if none exists, it reports
// ErrUnknownDate.
func (b *StaticBackend) RateOn(d time.Time) (CdiDailyRate, error) {
	if r, ok := b.rates[dayKey(d)]; ok {
		return r, nil
	}
	if _, ignored := b.ignore[dayKey(d)]; ignored {
		return CdiDailyRate{Date: d, BusinessDay: false}, nil
	}
	if lkg, ok := b.lastKnownGood(d); ok {
		return lkg, nil
	}
	return CdiDailyRate{}, fmt.Errorf("%w: %s", ErrUnknownDate, d.Format("2006-01-02"))
}

// lastKnownGood returns the most recent seeded rate strictly before d.
func (b *StaticBackend) lastKnownGood(d time.Time) (CdiDailyRate, bool) {
	idx := sort.Search(len(b.sorted), func(i int) bool { return !b.sorted[i].Before(d) })
	if idx == 0 {
		return CdiDailyRate{}, false
	}
	return b.rates[dayKey(b.sorted[idx-1])], true
}

// NewDefaultBackend returns a StaticBackend seeded from the compiled
// in registry in registry.go.
func NewDefaultBackend() *StaticBackend {
	return NewStaticBackend(seedRegistry, ignoreDates)
}
