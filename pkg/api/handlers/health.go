package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/pkg/api/types"
)

// HealthHandler serves GET /health: process liveness and symbol-table
// freshness. There is no database status to report — this repo's core is
// stateless per request and persists nothing.
type HealthHandler struct {
	marketData *marketdata.Service
	startedAt  time.Time
	version    string
	logger     zerolog.Logger
}

// NewHealthHandler builds a HealthHandler.
func NewHealthHandler(marketData *marketdata.Service, version string) *HealthHandler {
	return &HealthHandler{
		marketData: marketData,
		startedAt:  time.Now(),
		version:    version,
		logger:     logger.NewContextLogger("health_handler"),
	}
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.New().String()
	reqLogger := logger.NewRequestLogger(correlationID, r.Method, r.URL.Path)

	response := types.HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now(),
		Version:     h.version,
		SymbolCount: len(h.marketData.Symbols().All()),
		UptimeSecs:  time.Since(h.startedAt).Seconds(),
	}

	writeJSON(w, reqLogger, correlationID, response)
}
