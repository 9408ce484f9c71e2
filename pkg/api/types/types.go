// Package types holds the HTTP-facing request/response shapes for
// pkg/api/handlers, kept separate from internal/models so the wire format
// can evolve (aliasing, envelope fields) without touching the domain types
// it wraps.
package types

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/scan"
)

// AnalyzeResponse is the GET /api/analyze/{symbol} body: one evaluated
// signal plus the raw per-interval analysis it was computed from.
// tradeSignal duplicates signal verbatim — an alias the original external
// interface names explicitly, kept for callers that read one name or the
// other.
type AnalyzeResponse struct {
	Symbol         string                                  `json:"symbol"`
	CurrentPrice   float64                                 `json:"currentPrice"`
	PriceChange24h float64                                 `json:"priceChange24h"`
	HTFBias        models.HTFBias                          `json:"htfBias"`
	Signal         models.Signal                           `json:"signal"`
	TradeSignal    models.Signal                            `json:"tradeSignal"`
	Analysis       map[string]*models.TimeframeAnalysis     `json:"analysis"`
	Timestamp      time.Time                                `json:"timestamp"`
}

// ScanResponse is the GET /api/scan body.
type ScanResponse struct {
	Summary       scan.Summary        `json:"summary"`
	Opportunities []scan.Opportunity  `json:"opportunities"`
}

// SymbolEntry is one row of the GET /api/symbols listing.
type SymbolEntry struct {
	Symbol string `json:"symbol"`
	Base   string `json:"base"`
	Quote  string `json:"quote"`
	Name   string `json:"name"`
}

// SymbolsResponse is the GET /api/symbols body.
type SymbolsResponse struct {
	Count   int           `json:"count"`
	Symbols []SymbolEntry `json:"symbols"`
	Source  string        `json:"source"` // "seed" | "discovered"
}

// HealthResponse is the GET /health body. No database field: this repo's
// core is stateless and persists nothing, so there is no storage backend to
// report on.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	SymbolCount int       `json:"symbolCount"`
	UptimeSecs  float64   `json:"uptimeSeconds"`
}

// ErrorResponse is the uniform error body for every 4xx/5xx this API
// returns, per spec.md §7's propagation policy (input errors are surfaced
// as 4xx, everything else recovers locally or becomes a 5xx).
type ErrorResponse struct {
	Error         string    `json:"error"`
	CorrelationID string    `json:"correlationId"`
	Timestamp     time.Time `json:"timestamp"`
}
