package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/htfbias"
	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/newsfeed"
	"github.com/edittrades/signalcore/internal/strategy"
	"github.com/edittrades/signalcore/internal/timeframe"
)

const analyzeFullTimeout = 15 * time.Second

// AnalyzeFullHandler serves GET /api/analyze-full, the rich all-strategies
// output.
type AnalyzeFullHandler struct {
	marketData *marketdata.Service
	composer   *timeframe.Composer
	newsfeed   *newsfeed.Cache // nil when no news-feed collaborator is configured
	logger     zerolog.Logger
}

// NewAnalyzeFullHandler builds an AnalyzeFullHandler. newsfeedCache may be
// nil.
func NewAnalyzeFullHandler(marketData *marketdata.Service, composer *timeframe.Composer, newsfeedCache *newsfeed.Cache) *AnalyzeFullHandler {
	return &AnalyzeFullHandler{
		marketData: marketData,
		composer:   composer,
		newsfeed:   newsfeedCache,
		logger:     logger.NewContextLogger("analyze_full_handler"),
	}
}

// ServeHTTP handles GET /api/analyze-full?symbol=...&mode=...&intervals=....
func (h *AnalyzeFullHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.New().String()
	reqLogger := logger.NewRequestLogger(correlationID, r.Method, r.URL.Path)
	reqLogger.Info().Msg("processing analyze-full request")

	query := r.URL.Query()
	symbol := query.Get("symbol")
	if err := validateSymbol(symbol); err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.marketData.Symbols().Lookup(symbol); err != nil {
		writeError(w, reqLogger, correlationID, http.StatusNotFound, "unknown symbol")
		return
	}

	intervals, err := parseIntervals(query.Get("intervals"), defaultAnalyzeFullIntervals)
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := modeWireToInternal(query.Get("mode"))
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), analyzeFullTimeout)
	defer cancel()

	results := h.marketData.GetMultiTimeframeData(ctx, symbol, intervals, marketdata.DefaultCandleLimit)
	timeframes := models.NewOrderedTimeframes()
	data := make(strategy.MultiTFData, len(results))
	for _, interval := range intervals {
		result, ok := results[interval]
		var a *models.TimeframeAnalysis
		if ok && result.OK() {
			a = h.composer.Analyze(interval, result.Candles)
		} else {
			a = models.EmptyTimeframeAnalysis("candle fetch failed")
			reqLogger.Warn().Str("interval", string(interval)).Msg("interval unavailable for analyze-full")
		}
		timeframes.Set(string(interval), a)
		data[string(interval)] = a
	}

	bias := htfbias.Score(data["4h"], data["1h"])
	aggregate := strategy.EvaluateAllStrategies(data, mode, bias, time.Now())

	ticker, err := h.marketData.GetTickerPrice(ctx, symbol)
	if err != nil {
		reqLogger.Warn().Err(err).Msg("ticker fetch failed, currentPrice will be zero")
	}

	rich := models.RichSymbol{
		Symbol:        symbol,
		Mode:          mode,
		CurrentPrice:  ticker.Price,
		HTFBias:       bias,
		Timeframes:    timeframes,
		Strategies:    aggregate.Strategies,
		BestSignal:    aggregate.BestSignal,
		OverrideUsed:  aggregate.OverrideUsed,
		OverrideNotes: aggregate.OverrideNotes,
		SchemaVersion: models.CurrentSchemaVersion,
		JSONVersion:   models.CurrentJSONVersion,
		GeneratedAt:   time.Now(),
	}

	if h.newsfeed != nil {
		if items, ok := h.newsfeed.Get(symbol); ok && len(items) > 0 {
			rich.DflowData = map[string]interface{}{"news": items}
		} else {
			// Populate the cache for next time without making this request
			// wait on an external news collaborator: detached context, own
			// timeout, fire-and-forget.
			go func(sym string) {
				warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				h.newsfeed.Warm(warmCtx, sym)
			}(symbol)
		}
	}

	writeJSON(w, reqLogger, correlationID, rich)
	reqLogger.Info().Str("symbol", symbol).Str("mode", mode).Bool("overrideUsed", rich.OverrideUsed).Msg("analyze-full request completed")
}
