package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mycoderisyad/juicequ-pricing/internal/config"
	"github.com/mycoderisyad/juicequ-pricing/internal/domain"
)

// SnapshotStore persists the last fetched snapshot so a restart starts
// warm. Persistence is best-effort and never blocks serving rates.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) (*domain.RateSnapshot, error)
	SaveSnapshot(ctx context.Context, snap *domain.RateSnapshot) error
}

// RateCache holds the latest exchange rates and refreshes them lazily on
// access once they are older than the TTL. Concurrent callers hitting a
// stale cache collapse into a single provider fetch and share its result.
// When a refresh fails the cache keeps serving the last-known rates; the
// next access retries.
type RateCache struct {
	provider RateProvider
	store    SnapshotStore
	base     string
	ttl      time.Duration
	timeout  time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	snapshot *domain.RateSnapshot

	group singleflight.Group
}

// NewRateCache builds a cache around a provider. store may be nil for a
// purely in-memory cache.
func NewRateCache(provider RateProvider, base string, ttl, timeout time.Duration, store SnapshotStore) *RateCache {
	if ttl <= 0 {
		ttl = config.DefaultRateTTL
	}
	if timeout <= 0 {
		timeout = config.DefaultRateTimeout
	}
	return &RateCache{
		provider: provider,
		store:    store,
		base:     base,
		ttl:      ttl,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Warm loads the persisted snapshot, if any. Failures are logged and
// ignored; the first Get will fetch instead.
func (c *RateCache) Warm(ctx context.Context) {
	if c.store == nil {
		return
	}
	snap, err := c.store.LoadSnapshot(ctx)
	if err != nil {
		slog.Warn("load persisted rate snapshot failed", "error", err)
		return
	}
	if snap == nil || snap.Base != c.base {
		return
	}
	c.mu.Lock()
	if c.snapshot == nil {
		c.snapshot = snap
	}
	c.mu.Unlock()
}

// Get returns a fresh snapshot, refreshing first if needed. On refresh
// failure it degrades to the last-known snapshot; if no rates have ever
// been fetched it fails with domain.ErrRatesUnavailable.
func (c *RateCache) Get(ctx context.Context) (*domain.RateSnapshot, error) {
	if snap := c.fresh(); snap != nil {
		return snap, nil
	}

	v, err, _ := c.group.Do("refresh", c.refresh)
	if err != nil {
		c.mu.RLock()
		last := c.snapshot
		c.mu.RUnlock()
		if last != nil {
			slog.Warn("rate refresh failed, serving last-known rates",
				"error", err,
				"age", last.Age(c.now()),
			)
			return last, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRatesUnavailable, err)
	}
	return v.(*domain.RateSnapshot), nil
}

// Invalidate drops the in-memory snapshot so the next Get refetches.
// Called when the admin changes the provider credential or base currency.
func (c *RateCache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}

func (c *RateCache) fresh() *domain.RateSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.snapshot == nil || c.snapshot.Age(c.now()) >= c.ttl {
		return nil
	}
	return c.snapshot
}

// refresh runs inside the singleflight group. It uses the cache's own
// bounded context so every waiter shares one fetch with one deadline.
func (c *RateCache) refresh() (interface{}, error) {
	// Another caller may have completed a refresh while we queued.
	if snap := c.fresh(); snap != nil {
		return snap, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	rates, err := c.provider.FetchRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh rates: %w", err)
	}

	snap := &domain.RateSnapshot{
		Base:      c.base,
		Rates:     rates,
		UpdatedAt: c.now(),
	}

	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.SaveSnapshot(ctx, snap); err != nil {
			slog.Warn("persist rate snapshot failed", "error", err)
		}
	}
	return snap, nil
}
