// Package newsfeed is the interface boundary to the secondary news/flow
// collaborator named in spec.md's out-of-scope list: the feed itself lives
// outside this repo's core, but the core defines the Provider contract it
// would be driven through and the one cache the spec permits outside the
// analysis path (§5 "a process-wide short-TTL cache... for the secondary
// news-style feed... is allowed; the core itself is cache-free").
package newsfeed

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/logger"
)

// Item is one news/flow data point attached to a symbol's RichSymbol.DflowData.
type Item struct {
	Headline  string    `json:"headline"`
	Sentiment string    `json:"sentiment"` // bullish|bearish|neutral
	Source    string    `json:"source"`
	URL       string    `json:"url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Provider fetches the current news/flow items for a symbol from whatever
// out-of-core service is wired in. A nil Provider is valid: callers treat it
// as "no news feed configured" and simply omit the field from RichSymbol.
type Provider interface {
	FetchForSymbol(ctx context.Context, symbol string) ([]Item, error)
}

// NoopProvider satisfies Provider without reaching any external service,
// used when no real collaborator is configured for this deployment.
type NoopProvider struct{}

func (NoopProvider) FetchForSymbol(ctx context.Context, symbol string) ([]Item, error) {
	return nil, nil
}

type cacheEntry struct {
	items     []Item
	fetchedAt time.Time
}

// Cache is the permitted process-wide TTL cache in front of Provider. It is
// refreshed on a cron schedule rather than on every request, so a slow or
// failing news collaborator never adds latency to the analysis path.
type Cache struct {
	provider Provider
	ttl      time.Duration
	mu       sync.RWMutex
	entries  map[string]cacheEntry
	logger   zerolog.Logger
	cron     *cron.Cron
}

// NewCache builds a Cache with the given TTL (spec floor: 5 minutes).
func NewCache(provider Provider, ttl time.Duration) *Cache {
	if ttl < 5*time.Minute {
		ttl = 5 * time.Minute
	}
	return &Cache{
		provider: provider,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
		logger:   logger.NewContextLogger("newsfeed_cache"),
	}
}

// Get returns the cached items for symbol if present and unexpired; it never
// calls the provider itself — population happens only via StartRefresh/Warm.
func (c *Cache) Get(symbol string) ([]Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[symbol]
	if !ok || time.Since(entry.fetchedAt) > c.ttl {
		return nil, false
	}
	return entry.items, true
}

// Warm fetches and caches symbol's items immediately, independent of the
// cron schedule (used on first request for a symbol that's never been
// scanned before).
func (c *Cache) Warm(ctx context.Context, symbol string) {
	if c.provider == nil {
		return
	}
	items, err := c.provider.FetchForSymbol(ctx, symbol)
	if err != nil {
		c.logger.Warn().Err(err).Str("symbol", symbol).Msg("newsfeed fetch failed, leaving cache unset")
		return
	}
	c.mu.Lock()
	c.entries[symbol] = cacheEntry{items: items, fetchedAt: time.Now()}
	c.mu.Unlock()
}

// StartRefresh begins a background cron job that re-warms every symbol
// currently in the cache every refreshEvery. Stop via Close.
func (c *Cache) StartRefresh(ctx context.Context, refreshEvery time.Duration) {
	c.cron = cron.New()
	spec := "@every " + refreshEvery.String()
	_, err := c.cron.AddFunc(spec, func() {
		c.mu.RLock()
		symbols := make([]string, 0, len(c.entries))
		for s := range c.entries {
			symbols = append(symbols, s)
		}
		c.mu.RUnlock()

		for _, symbol := range symbols {
			c.Warm(ctx, symbol)
		}
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to schedule newsfeed refresh")
		return
	}
	c.cron.Start()
}

// Close stops the background refresh job, if running.
func (c *Cache) Close() {
	if c.cron != nil {
		c.cron.Stop()
	}
}
