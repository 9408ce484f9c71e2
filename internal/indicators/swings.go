package indicators

import "github.com/edittrades/signalcore/internal/models"

// DefaultSwingLookback is the default window for swing-point detection.
const DefaultSwingLookback = 20

// DetectSwingPoints finds the swing high/low (max high / min low) over the
// last lookback candles. Returns the zero SwingPoints, false when there
// aren't enough candles.
func DetectSwingPoints(candles []models.Candle, lookback int) (models.SwingPoints, bool) {
	if lookback <= 0 || len(candles) < lookback {
		return models.SwingPoints{}, false
	}
	window := candles[len(candles)-lookback:]
	high, low := window[0].High, window[0].Low
	for _, c := range window[1:] {
		if c.High > high {
			high = c.High
		}
		if c.Low < low {
			low = c.Low
		}
	}
	return models.SwingPoints{SwingHigh: high, SwingLow: low}, true
}
