// Package scan implements the /api/scan opportunity finder: it walks the
// known symbol set, runs the full strategy aggregator per symbol, and
// returns the subset whose best signal clears a confidence floor.
package scan

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/config"
	"github.com/edittrades/signalcore/internal/htfbias"
	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/strategy"
	"github.com/edittrades/signalcore/internal/timeframe"
)

// Opportunity is one symbol's best qualifying signal from a scan pass.
type Opportunity struct {
	Symbol           string       `json:"symbol"`
	CurrentPrice     float64      `json:"currentPrice"`
	Direction        string       `json:"direction"`
	SelectedStrategy string       `json:"selectedStrategy"`
	Confidence       float64      `json:"confidence"`
	HTFBias          models.HTFBias `json:"htfBias"`
	Signal           models.Signal  `json:"signal"`
}

// Summary describes the scan pass that produced a set of Opportunities.
type Summary struct {
	Mode            string    `json:"mode"`
	SymbolsScanned  int       `json:"symbolsScanned"`
	MatchesFound    int       `json:"matchesFound"`
	MinConfidence   float64   `json:"minConfidence"`
	Direction       string    `json:"direction,omitempty"`
	ScannedAt       time.Time `json:"scannedAt"`
}

// Request carries the scan's query-parameter-derived parameters.
type Request struct {
	Mode          string
	Intervals     []models.IntervalCode
	MinConfidence float64
	MaxResults    int
	Direction     string // "", long, short
	All           bool
}

// Scanner walks the symbol table and evaluates every strategy per symbol,
// throttled by cfg.InterCallDelayMs so a full scan never hammers the
// upstream provider with a burst of simultaneous requests.
type Scanner struct {
	marketData *marketdata.Service
	composer   *timeframe.Composer
	cfg        config.ScanConfig
	logger     zerolog.Logger
}

// NewScanner wires a Scanner from its dependencies.
func NewScanner(marketData *marketdata.Service, composer *timeframe.Composer, cfg config.ScanConfig) *Scanner {
	return &Scanner{
		marketData: marketData,
		composer:   composer,
		cfg:        cfg,
		logger:     logger.NewContextLogger("scanner"),
	}
}

// Scan evaluates every known symbol under req and returns the qualifying
// opportunities, most confident first, capped at req.MaxResults.
func (s *Scanner) Scan(ctx context.Context, req Request) (Summary, []Opportunity, error) {
	if req.All {
		if _, err := s.marketData.DiscoverAllPairs(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("full pair discovery failed, scanning the existing symbol table")
		}
	}

	infos := s.marketData.Symbols().All()
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.DefaultMaxResults
	}
	delay := time.Duration(s.cfg.InterCallDelayMs) * time.Millisecond

	opportunities := make([]Opportunity, 0, maxResults)
	scanned := 0

	for i, info := range infos {
		if ctx.Err() != nil {
			break
		}
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		}

		opp, ok := s.evaluateSymbol(ctx, info.InternalSymbol, req)
		scanned++
		if ok {
			opportunities = append(opportunities, opp)
		}
	}

	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].Confidence > opportunities[j].Confidence
	})
	if len(opportunities) > maxResults {
		opportunities = opportunities[:maxResults]
	}

	summary := Summary{
		Mode:           req.Mode,
		SymbolsScanned: scanned,
		MatchesFound:   len(opportunities),
		MinConfidence:  req.MinConfidence,
		Direction:      req.Direction,
		ScannedAt:      time.Now(),
	}
	return summary, opportunities, nil
}

// evaluateSymbol fetches symbol's timeframe data, runs the aggregator, and
// reports whether its best signal clears req's filters.
func (s *Scanner) evaluateSymbol(ctx context.Context, symbol string, req Request) (Opportunity, bool) {
	results := s.marketData.GetMultiTimeframeData(ctx, symbol, req.Intervals, marketdata.DefaultCandleLimit)

	data := make(strategy.MultiTFData, len(results))
	for interval, result := range results {
		if !result.OK() {
			continue
		}
		data[string(interval)] = s.composer.Analyze(interval, result.Candles)
	}

	bias := htfbias.Score(data["4h"], data["1h"])
	result := strategy.EvaluateAllStrategies(data, req.Mode, bias, time.Now())
	if result.BestSignal == nil {
		return Opportunity{}, false
	}

	sig := result.Strategies[*result.BestSignal]
	if !sig.Valid || sig.Confidence < req.MinConfidence {
		return Opportunity{}, false
	}
	if req.Direction != "" && sig.Direction != req.Direction {
		return Opportunity{}, false
	}

	price := 0.0
	if tf1h, ok := data["1h"]; ok && tf1h.LastCandle != nil {
		price = tf1h.LastCandle.Close
	}

	return Opportunity{
		Symbol:           symbol,
		CurrentPrice:     price,
		Direction:        sig.Direction,
		SelectedStrategy: sig.SelectedStrategy,
		Confidence:       sig.Confidence,
		HTFBias:          bias,
		Signal:           sig,
	}, true
}
