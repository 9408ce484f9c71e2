package newsfeed

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeProvider struct {
	items []Item
	err   error
	calls int
}

func (f *fakeProvider) FetchForSymbol(ctx context.Context, symbol string) ([]Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func TestGetMissesBeforeWarm(t *testing.T) {
	cache := NewCache(&fakeProvider{}, 5*time.Minute)

	if _, ok := cache.Get("BTCUSD"); ok {
		t.Fatal("expected a miss before Warm populates the cache")
	}
}

func TestWarmPopulatesGet(t *testing.T) {
	want := []Item{{Headline: "halving complete", Sentiment: "bullish", Source: "test"}}
	cache := NewCache(&fakeProvider{items: want}, 5*time.Minute)

	cache.Warm(context.Background(), "BTCUSD")

	got, ok := cache.Get("BTCUSD")
	if !ok {
		t.Fatal("expected a hit after Warm")
	}
	if len(got) != 1 || got[0].Headline != want[0].Headline {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestWarmLeavesCacheUnsetOnProviderError(t *testing.T) {
	cache := NewCache(&fakeProvider{err: errors.New("upstream down")}, 5*time.Minute)

	cache.Warm(context.Background(), "BTCUSD")

	if _, ok := cache.Get("BTCUSD"); ok {
		t.Fatal("expected no cache entry when the provider errors")
	}
}

func TestNewCacheFloorsTTLAtFiveMinutes(t *testing.T) {
	provider := &fakeProvider{items: []Item{{Headline: "x"}}}
	cache := NewCache(provider, time.Second)

	cache.Warm(context.Background(), "ETHUSD")
	if cache.ttl != 5*time.Minute {
		t.Errorf("expected ttl floored to 5m, got %v", cache.ttl)
	}
}

func TestNoopProviderReturnsNothing(t *testing.T) {
	items, err := (NoopProvider{}).FetchForSymbol(context.Background(), "BTCUSD")
	if err != nil || items != nil {
		t.Errorf("expected (nil, nil) from NoopProvider, got (%v, %v)", items, err)
	}
}

func TestCloseWithoutStartRefreshDoesNotPanic(t *testing.T) {
	cache := NewCache(NoopProvider{}, 5*time.Minute)
	cache.Close()
}

func TestStartRefreshThenCloseStopsCleanly(t *testing.T) {
	cache := NewCache(NoopProvider{}, 5*time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cache.StartRefresh(ctx, 5*time.Minute)
	cache.Close()
}
