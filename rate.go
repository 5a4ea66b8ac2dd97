package savings

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Freshness is the window during which a cached rate is considered current.
// Past it a refresh should be attempted, but the stale value remains usable
// as a fallback.
const Freshness = time.Hour

// FallbackRate is the USD to INR factor used when no rate has ever been
// fetched, so aggregation always proceeds even without network access.
var FallbackRate = decimal.NewFromFloat(83.5)

// ErrRefreshInFlight is returned when a refresh is requested while a previous
// one has not completed. Callers are expected to disable the refresh trigger
// while a fetch is in flight; this error is the safety net, not the policy.
var ErrRefreshInFlight = errors.New("rate refresh already in flight")

// RateSnapshot is the latest known USD to INR conversion factor and the
// instant it was recorded.
type RateSnapshot struct {
	Rate      decimal.Decimal
	FetchedAt time.Time
}

// Fresh reports whether the snapshot is within the freshness window at now.
func (s RateSnapshot) Fresh(now time.Time) bool {
	return now.Sub(s.FetchedAt) < Freshness
}

// RateCache holds the current rate snapshot and owns the fallback policy.
// It is either empty (pre first fetch) or holds a snapshot, possibly stale.
type RateCache struct {
	snapshot *RateSnapshot
	busy     bool
	now      func() time.Time
}

// NewRateCache returns an empty cache.
func NewRateCache() *RateCache {
	return &RateCache{now: time.Now}
}

// Get returns the current snapshot, if any.
func (c *RateCache) Get() (RateSnapshot, bool) {
	if c.snapshot == nil {
		return RateSnapshot{}, false
	}
	return *c.snapshot, true
}

// Set overwrites the snapshot unconditionally: later writes always win.
func (c *RateCache) Set(rate decimal.Decimal, at time.Time) {
	c.snapshot = &RateSnapshot{Rate: rate, FetchedAt: at}
}

// Fresh reports whether the cache holds a snapshot within the freshness
// window. An empty cache is never fresh.
func (c *RateCache) Fresh() bool {
	return c.snapshot != nil && c.snapshot.Fresh(c.now())
}

// EffectiveRate returns the cached rate regardless of staleness, or the
// fallback constant when nothing has ever been cached.
func (c *RateCache) EffectiveRate() decimal.Decimal {
	if c.snapshot != nil {
		return c.snapshot.Rate
	}
	return FallbackRate
}

// Refresh runs one fetch attempt and applies its result to the cache.
// At most one refresh may be in flight; a concurrent call is refused with
// ErrRefreshInFlight instead of starting a duplicate fetch. A failed fetch
// leaves the cache unchanged and returns the fetch error for the caller's
// banner; the stale-or-fallback value keeps serving reads.
func (c *RateCache) Refresh(fetch func() (decimal.Decimal, error)) error {
	if c.busy {
		return ErrRefreshInFlight
	}
	c.busy = true
	defer func() { c.busy = false }()

	rate, err := fetch()
	if err != nil {
		return err
	}
	c.Set(rate, c.now())
	return nil
}
