// Package timeframe composes the per-interval indicator, chart-feature,
// swing, and volatility pieces into one TimeframeAnalysis.
package timeframe

import (
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/chartfeatures"
	"github.com/edittrades/signalcore/internal/indicators"
	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/models"
)

// minCandlesForAnalysis is the floor below which a timeframe is reported as
// an error rather than a partially-populated analysis; below this, most
// indicators would be null anyway and the noise isn't worth it.
const minCandlesForAnalysis = 5

// Composer builds a TimeframeAnalysis for one interval's candle series.
type Composer struct {
	logger zerolog.Logger
}

// NewComposer builds a Composer.
func NewComposer() *Composer {
	return &Composer{logger: logger.NewContextLogger("timeframe_composer")}
}

// Analyze wires indicators.Compute, chartfeatures.Compute, swing detection,
// last candle and volume into one TimeframeAnalysis. candles must be
// ascending; an insufficient or empty series yields a structurally-complete
// error analysis rather than a partial one with silent nulls.
func (c *Composer) Analyze(interval models.IntervalCode, candles []models.Candle) *models.TimeframeAnalysis {
	if len(candles) < minCandlesForAnalysis {
		c.logger.Warn().Str("interval", string(interval)).Int("candles", len(candles)).Msg("insufficient candles for analysis")
		return models.EmptyTimeframeAnalysis("insufficient candle history")
	}

	ind := indicators.Compute(candles)
	features := chartfeatures.Compute(interval, candles, ind)

	swings, haveSwings := indicators.DetectSwingPoints(candles, indicators.DefaultSwingLookback)
	structure := models.SwingPoints{}
	if haveSwings {
		structure = swings
	}

	last := candles[len(candles)-1]
	volatility := models.VolatilityInfo{State: models.VolatilityNormal}
	atrPeriod := 14
	if atr, ok := indicators.ATR(candles, atrPeriod); ok {
		volatility = indicators.ClassifyVolatility(atr, last.Close)
	}

	return &models.TimeframeAnalysis{
		Indicators:    ind,
		Structure:     structure,
		CandleCount:   len(candles),
		LastCandle:    &last,
		Volatility:    volatility,
		Volume:        chartfeatures.Volume(candles),
		ChartFeatures: features,
	}
}
