package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

// FairValueGaps detects three-candle imbalances: a bullish gap when
// candle[i-2].high < candle[i].low (the middle candle's range doesn't
// overlap), a bearish gap when candle[i-2].low > candle[i].high. filled
// reports whether any later candle has traded back into the gap.
func FairValueGaps(candles []models.Candle) []models.FairValueGap {
	gaps := make([]models.FairValueGap, 0)
	for i := 2; i < len(candles); i++ {
		first := candles[i-2]
		last := candles[i]

		if first.High < last.Low {
			gap := models.FairValueGap{
				Direction: "bullish",
				Top:       last.Low,
				Bottom:    first.High,
				Index:     i,
			}
			gap.Filled = fvgFilled(candles[i+1:], gap)
			gaps = append(gaps, gap)
		}
		if first.Low > last.High {
			gap := models.FairValueGap{
				Direction: "bearish",
				Top:       first.Low,
				Bottom:    last.High,
				Index:     i,
			}
			gap.Filled = fvgFilled(candles[i+1:], gap)
			gaps = append(gaps, gap)
		}
	}
	return gaps
}

func fvgFilled(rest []models.Candle, gap models.FairValueGap) bool {
	for _, c := range rest {
		if c.Low <= gap.Top && c.High >= gap.Bottom {
			return true
		}
	}
	return false
}
