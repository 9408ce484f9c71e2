package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/pkg/api/types"
)

const symbolsTimeout = 10 * time.Second

// SymbolsHandler serves GET /api/symbols, the symbol discovery endpoint.
type SymbolsHandler struct {
	marketData *marketdata.Service
	logger     zerolog.Logger
}

// NewSymbolsHandler builds a SymbolsHandler.
func NewSymbolsHandler(marketData *marketdata.Service) *SymbolsHandler {
	return &SymbolsHandler{
		marketData: marketData,
		logger:     logger.NewContextLogger("symbols_handler"),
	}
}

// ServeHTTP handles GET /api/symbols?all=bool.
func (h *SymbolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.New().String()
	reqLogger := logger.NewRequestLogger(correlationID, r.Method, r.URL.Path)
	reqLogger.Info().Msg("processing symbols request")

	all := parseBoolParam(r.URL.Query().Get("all"), false)
	source := "seed"

	if all {
		ctx, cancel := context.WithTimeout(r.Context(), symbolsTimeout)
		defer cancel()
		switch pairs, err := h.marketData.DiscoverAllPairs(ctx); {
		case err != nil:
			reqLogger.Warn().Err(err).Msg("full pair discovery failed, returning the seed symbol table")
		case len(pairs) > 0:
			source = "discovered"
		}
	}

	infos := h.marketData.Symbols().All()
	entries := make([]types.SymbolEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, types.SymbolEntry{
			Symbol: info.InternalSymbol,
			Base:   info.Base,
			Quote:  info.Quote,
			Name:   info.Name,
		})
	}

	writeJSON(w, reqLogger, correlationID, types.SymbolsResponse{
		Count:   len(entries),
		Symbols: entries,
		Source:  source,
	})
	reqLogger.Info().Int("count", len(entries)).Str("source", source).Msg("symbols request completed")
}
