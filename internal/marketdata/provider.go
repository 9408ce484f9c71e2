// Package marketdata returns standardized candle arrays keyed by interval
// for a requested symbol, with fallback across a primary and secondary
// upstream and a deterministic synthetic generator as a last resort.
package marketdata

import (
	"context"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

// Provider fetches raw candles for one symbol/interval pair from a single
// upstream source.
type Provider interface {
	Name() string
	GetCandles(ctx context.Context, pair string, interval models.IntervalCode, limit int) ([]models.Candle, error)
	GetTicker(ctx context.Context, pair string) (price, changePct float64, err error)
}

// TickerPrice is the getTickerPrice result.
type TickerPrice struct {
	Price             float64 `json:"price"`
	PriceChangePercent float64 `json:"priceChangePercent"`
}

// requestTimeout bounds every single upstream call: each candle or ticker
// call gets its own context.WithTimeout. The per-interval fan-out adds no
// deadline of its own beyond the caller's context.
const requestTimeout = 5 * time.Second
