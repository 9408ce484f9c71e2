package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

// Divergences compares the last two pivot highs/lows in price against the
// corresponding RSI readings at those indices to flag regular and hidden
// divergences. rsiHistory is aligned to the tail of candles (its last
// element corresponds to the last candle).
func Divergences(candles []models.Candle, rsiHistory []float64) []models.Divergence {
	out := make([]models.Divergence, 0)
	if len(rsiHistory) == 0 {
		return out
	}
	offset := len(candles) - len(rsiHistory)
	rsiAt := func(candleIndex int) (float64, bool) {
		i := candleIndex - offset
		if i < 0 || i >= len(rsiHistory) {
			return 0, false
		}
		return rsiHistory[i], true
	}

	highs := findPivotHighs(candles)
	lows := findPivotLows(candles)

	if len(highs) >= 2 {
		a, b := highs[len(highs)-2], highs[len(highs)-1]
		rsiA, okA := rsiAt(a.Index)
		rsiB, okB := rsiAt(b.Index)
		if okA && okB {
			if b.Price > a.Price && rsiB < rsiA {
				out = append(out, models.Divergence{Side: "bearish", Type: "regular", Indicator: "rsi"})
			}
			if b.Price < a.Price && rsiB > rsiA {
				out = append(out, models.Divergence{Side: "bearish", Type: "hidden", Indicator: "rsi"})
			}
		}
	}
	if len(lows) >= 2 {
		a, b := lows[len(lows)-2], lows[len(lows)-1]
		rsiA, okA := rsiAt(a.Index)
		rsiB, okB := rsiAt(b.Index)
		if okA && okB {
			if b.Price < a.Price && rsiB > rsiA {
				out = append(out, models.Divergence{Side: "bullish", Type: "regular", Indicator: "rsi"})
			}
			if b.Price > a.Price && rsiB < rsiA {
				out = append(out, models.Divergence{Side: "bullish", Type: "hidden", Indicator: "rsi"})
			}
		}
	}
	return out
}
