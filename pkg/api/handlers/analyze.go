package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/htfbias"
	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/strategy"
	"github.com/edittrades/signalcore/internal/timeframe"
	"github.com/edittrades/signalcore/pkg/api/types"
)

const analyzeTimeout = 10 * time.Second

// AnalyzeHandler serves GET /api/analyze/{symbol}, the single-strategy
// evaluation endpoint.
type AnalyzeHandler struct {
	marketData *marketdata.Service
	composer   *timeframe.Composer
	logger     zerolog.Logger
}

// NewAnalyzeHandler builds an AnalyzeHandler.
func NewAnalyzeHandler(marketData *marketdata.Service, composer *timeframe.Composer) *AnalyzeHandler {
	return &AnalyzeHandler{
		marketData: marketData,
		composer:   composer,
		logger:     logger.NewContextLogger("analyze_handler"),
	}
}

// ServeHTTP handles GET /api/analyze/{symbol}?intervals=...&setupType=...&mode=STANDARD|AGGRESSIVE.
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.New().String()
	reqLogger := logger.NewRequestLogger(correlationID, r.Method, r.URL.Path)
	reqLogger.Info().Msg("processing analyze request")

	symbol := mux.Vars(r)["symbol"]
	if err := validateSymbol(symbol); err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.marketData.Symbols().Lookup(symbol); err != nil {
		writeError(w, reqLogger, correlationID, http.StatusNotFound, "unknown symbol")
		return
	}

	query := r.URL.Query()
	intervals, err := parseIntervals(query.Get("intervals"), defaultAnalyzeIntervals)
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}

	setupType := query.Get("setupType")
	if setupType == "" {
		setupType = models.SetupAuto
	}

	mode, err := modeWireToInternal(query.Get("mode"))
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	results := h.marketData.GetMultiTimeframeData(ctx, symbol, intervals, marketdata.DefaultCandleLimit)
	analysis := make(map[string]*models.TimeframeAnalysis, len(results))
	data := make(strategy.MultiTFData, len(results))
	for interval, result := range results {
		var a *models.TimeframeAnalysis
		if result.OK() {
			a = h.composer.Analyze(interval, result.Candles)
		} else {
			a = models.EmptyTimeframeAnalysis("candle fetch failed")
			reqLogger.Warn().Str("interval", string(interval)).Err(result.Err).Msg("interval unavailable for analyze")
		}
		analysis[string(interval)] = a
		data[string(interval)] = a
	}

	bias := htfbias.Score(data["4h"], data["1h"])
	sig := strategy.EvaluateStrategy(data, setupType, mode, bias, time.Now())

	ticker, err := h.marketData.GetTickerPrice(ctx, symbol)
	if err != nil {
		reqLogger.Warn().Err(err).Msg("ticker fetch failed, currentPrice/priceChange24h will be zero")
	}

	response := types.AnalyzeResponse{
		Symbol:         symbol,
		CurrentPrice:   ticker.Price,
		PriceChange24h: ticker.PriceChangePercent,
		HTFBias:        bias,
		Signal:         sig,
		TradeSignal:    sig,
		Analysis:       analysis,
		Timestamp:      time.Now(),
	}

	writeJSON(w, reqLogger, correlationID, response)
	reqLogger.Info().Str("symbol", symbol).Bool("valid", sig.Valid).Str("strategy", sig.SelectedStrategy).Msg("analyze request completed")
}
