package indicators

import (
	"math"

	"github.com/edittrades/signalcore/internal/models"
)

// Volatility-state thresholds over ATR as a percent of price. Fixed and
// documented per the deterministic classification this module commits to:
// low<0.5%, normal<1.5%, high<3%, else extreme.
const (
	volatilityLowMax    = 0.5
	volatilityNormalMax = 1.5
	volatilityHighMax   = 3.0
)

// TrueRange computes the true range of current against previous. previous
// may be nil for the first candle in a series, in which case TR is simply
// the candle's own high-low range.
func TrueRange(current models.Candle, previous *models.Candle) float64 {
	if previous == nil {
		return current.High - current.Low
	}
	tr1 := current.High - current.Low
	tr2 := math.Abs(current.High - previous.Close)
	tr3 := math.Abs(current.Low - previous.Close)
	return math.Max(tr1, math.Max(tr2, tr3))
}

// ATR computes the Average True Range(period) over candles using a plain
// SMA of the last period true ranges (not Wilder's recursive smoothing).
// Returns 0, false when there isn't enough data.
func ATR(candles []models.Candle, period int) (float64, bool) {
	if len(candles) < period+1 {
		return 0, false
	}
	sum := 0.0
	for i := len(candles) - period; i < len(candles); i++ {
		var prev *models.Candle
		if i > 0 {
			prev = &candles[i-1]
		}
		sum += TrueRange(candles[i], prev)
	}
	return sum / float64(period), true
}

// ClassifyVolatility builds a VolatilityInfo from an ATR value and the
// current price.
func ClassifyVolatility(atr, price float64) models.VolatilityInfo {
	if price == 0 {
		return models.VolatilityInfo{ATR: atr, State: models.VolatilityNormal}
	}
	pct := atr / price * 100
	state := models.VolatilityExtreme
	switch {
	case pct < volatilityLowMax:
		state = models.VolatilityLow
	case pct < volatilityNormalMax:
		state = models.VolatilityNormal
	case pct < volatilityHighMax:
		state = models.VolatilityHigh
	}
	return models.VolatilityInfo{ATR: atr, ATRPctOfPrice: pct, State: state}
}
