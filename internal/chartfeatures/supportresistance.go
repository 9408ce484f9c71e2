package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

// srLookback bounds how far back pivots are considered for support and
// resistance on higher timeframes.
const srLookback = 60

// nearThresholdPct is the default proximity threshold for at-level checks.
const nearThresholdPct = 0.5

// SupportResistance computes the nearest pivot resistance above and pivot
// support below the current close, restricted to 4h/1h per the spec —
// the caller is responsible for only invoking this on those intervals.
func SupportResistance(candles []models.Candle) models.SupportResistance {
	var sr models.SupportResistance
	if len(candles) < 2*pivotWindow+2 {
		return sr
	}

	window := candles
	if len(window) > srLookback {
		window = window[len(window)-srLookback:]
	}

	current := candles[len(candles)-1]
	previous := candles[len(candles)-2]

	highs := findPivotHighs(window)
	lows := findPivotLows(window)

	var resistance *float64
	for _, h := range highs {
		if h.Price > current.Close {
			if resistance == nil || h.Price < *resistance {
				v := h.Price
				resistance = &v
			}
		}
	}
	var support *float64
	for _, l := range lows {
		if l.Price < current.Close {
			if support == nil || l.Price > *support {
				v := l.Price
				support = &v
			}
		}
	}

	sr.Resistance = resistance
	sr.Support = support

	if resistance != nil {
		dist := (*resistance - current.Close) / current.Close * 100
		sr.AtResistance = dist >= 0 && dist <= nearThresholdPct
		sr.BrokeResistanceOnClose = previous.Close <= *resistance && current.Close > *resistance
	}
	if support != nil {
		dist := (current.Close - *support) / current.Close * 100
		sr.AtSupport = dist >= 0 && dist <= nearThresholdPct
		sr.BrokeSupportOnClose = previous.Close >= *support && current.Close < *support
	}
	return sr
}
