// Package strategy implements the five canonical setup evaluators, the
// explicit-setup router, and the all-strategies aggregator.
package strategy

import (
	"math"

	"github.com/edittrades/signalcore/internal/models"
)

// MultiTFData is the per-request snapshot an evaluator reads from. Keyed by
// interval code string ("4h", "1h", "15m", ...); a missing or nil entry
// means that interval's fetch failed or was never requested, and every
// evaluator must treat that as a gate failure rather than a panic.
type MultiTFData map[string]*models.TimeframeAnalysis

func (d MultiTFData) get(interval string) *models.TimeframeAnalysis {
	return d[interval]
}

func trendOf(tf *models.TimeframeAnalysis) string {
	if tf == nil {
		return models.TrendFlat
	}
	return tf.Indicators.Analysis.Trend
}

func pullbackOf(tf *models.TimeframeAnalysis) string {
	if tf == nil {
		return models.PullbackUnknown
	}
	return tf.Indicators.Analysis.PullbackState
}

func distanceFromEMA21(tf *models.TimeframeAnalysis) float64 {
	if tf == nil {
		return 0
	}
	return tf.Indicators.Analysis.DistanceFrom21EMA
}

func stochCondition(tf *models.TimeframeAnalysis) string {
	if tf == nil {
		return models.StochNeutral
	}
	return tf.Indicators.StochRSI.Condition
}

func stochK(tf *models.TimeframeAnalysis) (float64, bool) {
	if tf == nil {
		return 0, false
	}
	return tf.Indicators.StochRSI.K, true
}

func ema21Of(tf *models.TimeframeAnalysis) (float64, bool) {
	if tf == nil || tf.Indicators.EMA == nil || tf.Indicators.EMA.EMA21 == nil {
		return 0, false
	}
	return *tf.Indicators.EMA.EMA21, true
}

func swingOf(tf *models.TimeframeAnalysis) (models.SwingPoints, bool) {
	if tf == nil {
		return models.SwingPoints{}, false
	}
	return tf.Structure, true
}

func priceOf(tf *models.TimeframeAnalysis) (float64, bool) {
	if tf == nil || tf.LastCandle == nil {
		return 0, false
	}
	return tf.LastCandle.Close, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// confidencePct rounds a [0,1] confidence fraction to an integer 0-100.
func confidencePct(fraction float64) float64 {
	return math.Round(clamp(fraction, 0, 1) * 100)
}

func ptr(v float64) *float64 { return &v }

func isStochBullishLong(condition string) bool {
	return condition == models.StochBullish || condition == models.StochOversold
}

func isStochBearishShort(condition string) bool {
	return condition == models.StochBearish || condition == models.StochOverbought
}
