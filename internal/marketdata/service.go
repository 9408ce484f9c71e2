package marketdata

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/models"
)

// sourcePrimary, sourceSecondary, sourceSynthetic label where a
// CandleSeriesResult's candles actually came from.
const (
	sourcePrimary   = "primary"
	sourceSecondary = "secondary"
	sourceSynthetic = "synthetic"
)

// DefaultCandleLimit is how many bars getCandles fetches when the caller
// doesn't need a specific count.
const DefaultCandleLimit = 500

// Service resolves symbols and serves candles/ticker prices, falling back
// from primary to secondary to a deterministic synthetic generator. With the
// synthetic generator disabled, a request that exhausts every upstream gets
// ErrAllSourcesFailed instead of a series.
type Service struct {
	symbols      *SymbolTable
	primary      Provider
	secondary    Provider
	useSynthetic bool
	logger       zerolog.Logger
}

// NewService wires a primary and secondary provider behind one facade.
// secondary may be nil if no fallback provider is configured.
func NewService(symbols *SymbolTable, primary, secondary Provider, useSynthetic bool) *Service {
	return &Service{
		symbols:      symbols,
		primary:      primary,
		secondary:    secondary,
		useSynthetic: useSynthetic,
		logger:       logger.NewContextLogger("marketdata_service"),
	}
}

// GetCandles returns ascending candles for symbol/interval, trying the
// primary provider, then secondary, then (if enabled) a synthetic series.
// It only returns an error when every source is exhausted.
func (s *Service) GetCandles(ctx context.Context, symbol string, interval models.IntervalCode, limit int) (models.CandleSeriesResult, error) {
	if limit <= 0 {
		limit = DefaultCandleLimit
	}
	info, err := s.symbols.Lookup(symbol)
	if err != nil {
		return models.CandleSeriesResult{}, err
	}

	if candles, ok := s.fetchNative(ctx, s.primary, info, interval, limit); ok {
		return models.CandleSeriesResult{Interval: string(interval), Candles: candles, Source: sourcePrimary}, nil
	}

	if s.secondary != nil {
		if candles, ok := s.fetchNative(ctx, s.secondary, info, interval, limit); ok {
			return models.CandleSeriesResult{Interval: string(interval), Candles: candles, Source: sourceSecondary}, nil
		}
	}

	if interval == models.Interval3d {
		if daily, ok := s.fetchAggregated(ctx, info, limit); ok {
			return models.CandleSeriesResult{Interval: string(interval), Candles: daily, Source: sourcePrimary}, nil
		}
	}

	if s.useSynthetic {
		s.logger.Warn().Str("symbol", symbol).Str("interval", string(interval)).Msg("all upstream sources failed, generating synthetic candles")
		candles := GenerateSyntheticCandles(symbol, interval, time.Now().UnixMilli(), limit)
		return models.CandleSeriesResult{Interval: string(interval), Candles: candles, Source: sourceSynthetic}, nil
	}

	return models.CandleSeriesResult{Interval: string(interval), Err: models.ErrAllSourcesFailed}, models.ErrAllSourcesFailed
}

// fetchNative fetches directly from provider when it supports interval
// natively, bounding the call with requestTimeout. The pair id passed to
// the provider must be in its own wire format (Kraken's "XBTUSD" vs
// Coinbase's "BTC-USD") — pairFor resolves that per provider.
func (s *Service) fetchNative(ctx context.Context, provider Provider, info SymbolInfo, interval models.IntervalCode, limit int) ([]models.Candle, bool) {
	if provider == nil || !interval.NativelySupported() {
		return nil, false
	}
	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	candles, err := provider.GetCandles(callCtx, pairFor(provider, info), interval, limit)
	if err != nil || len(candles) == 0 {
		s.logger.Warn().Err(err).Str("provider", provider.Name()).Str("interval", string(interval)).Msg("candle fetch failed")
		return nil, false
	}
	return candles, true
}

// pairFor resolves the pair identifier a provider expects from info, in
// that provider's own wire format. Providers without a dedicated field
// (the synthetic generator, test fakes) fall back to KrakenPair.
func pairFor(provider Provider, info SymbolInfo) string {
	switch provider.(type) {
	case *CoinbaseProvider:
		if info.CoinbasePair != "" {
			return info.CoinbasePair
		}
	}
	return info.KrakenPair
}

// fetchAggregated builds 3d candles from the primary's native 1d series.
func (s *Service) fetchAggregated(ctx context.Context, info SymbolInfo, limit int) ([]models.Candle, bool) {
	daily, ok := s.fetchNative(ctx, s.primary, info, models.Interval1d, limit*aggregateChunkSize)
	if !ok {
		return nil, false
	}
	agg := Aggregated3dFrom1d(daily)
	if len(agg) == 0 {
		return nil, false
	}
	if limit > 0 && len(agg) > limit {
		agg = agg[len(agg)-limit:]
	}
	return agg, true
}

// GetMultiTimeframeData fetches candles for every interval in parallel,
// failing soft per interval: a failure on one interval never aborts the
// others, it only shows up as an Err on that interval's result.
func (s *Service) GetMultiTimeframeData(ctx context.Context, symbol string, intervals []models.IntervalCode, limit int) map[models.IntervalCode]models.CandleSeriesResult {
	results := make(map[models.IntervalCode]models.CandleSeriesResult, len(intervals))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for _, interval := range intervals {
		interval := interval
		g.Go(func() error {
			result, err := s.GetCandles(gCtx, symbol, interval, limit)
			if err != nil {
				result = models.CandleSeriesResult{Interval: string(interval), Err: err}
			}
			mu.Lock()
			results[interval] = result
			mu.Unlock()
			return nil
		})
	}
	// Errors are captured per-interval in the result map; the funcs above
	// never return an error, so g.Wait only waits for them to finish.
	_ = g.Wait()
	return results
}

// pairDiscoverer is implemented by providers that can enumerate the full
// tradable pair set (today, only KrakenProvider). Checked via type
// assertion so Provider itself stays a small, fetch-only interface.
type pairDiscoverer interface {
	GetAllKrakenPairs(ctx context.Context) ([]SymbolInfo, error)
}

// Symbols returns the service's backing symbol table, for callers (the
// /api/symbols handler, the scanner) that need to enumerate known symbols
// rather than fetch candles for one.
func (s *Service) Symbols() *SymbolTable {
	return s.symbols
}

// DiscoverAllPairs refreshes the symbol table from the primary provider's
// full pair listing, when the provider supports discovery, and returns the
// discovered set. Providers without discovery support (the secondary
// fallback, the synthetic generator) report an empty set rather than an
// error — discovery is a best-effort enrichment of the static seed table.
func (s *Service) DiscoverAllPairs(ctx context.Context) ([]SymbolInfo, error) {
	discoverer, ok := s.primary.(pairDiscoverer)
	if !ok {
		return nil, nil
	}
	pairs, err := discoverer.GetAllKrakenPairs(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("pair discovery failed, symbol table unchanged")
		return nil, err
	}
	s.symbols.Refresh(pairs)
	return pairs, nil
}

// GetTickerPrice returns the current price and 24h percent change for
// symbol, trying the primary provider then the secondary.
func (s *Service) GetTickerPrice(ctx context.Context, symbol string) (TickerPrice, error) {
	info, err := s.symbols.Lookup(symbol)
	if err != nil {
		return TickerPrice{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if s.primary != nil {
		price, changePct, err := s.primary.GetTicker(callCtx, pairFor(s.primary, info))
		if err == nil {
			return TickerPrice{Price: price, PriceChangePercent: changePct}, nil
		}
		s.logger.Warn().Err(err).Str("provider", s.primary.Name()).Msg("ticker fetch failed")
	}
	if s.secondary != nil {
		price, changePct, err := s.secondary.GetTicker(callCtx, pairFor(s.secondary, info))
		if err == nil {
			return TickerPrice{Price: price, PriceChangePercent: changePct}, nil
		}
		s.logger.Warn().Err(err).Str("provider", s.secondary.Name()).Msg("ticker fetch failed")
	}
	return TickerPrice{}, models.ErrAllSourcesFailed
}
