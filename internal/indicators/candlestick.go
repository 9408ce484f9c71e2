package indicators

import (
	"math"

	"github.com/edittrades/signalcore/internal/models"
)

// ClassifyWick applies the wick-rejection classifier to the last candle: a
// wick is a rejection if it is at least twice the body and more than half
// the candle's total range. Bullish rejection on the lower wick, bearish
// on the upper.
func ClassifyWick(c models.Candle) models.WickAnalysis {
	body := math.Abs(c.Close - c.Open)
	rng := c.High - c.Low
	if rng == 0 {
		return models.WickAnalysis{}
	}
	upperWick := c.High - math.Max(c.Open, c.Close)
	lowerWick := math.Min(c.Open, c.Close) - c.Low

	isRejection := func(wick float64) bool {
		return wick >= 2*body && wick > 0.5*rng
	}

	switch {
	case isRejection(lowerWick):
		return models.WickAnalysis{IsRejection: true, Direction: "bullish"}
	case isRejection(upperWick):
		return models.WickAnalysis{IsRejection: true, Direction: "bearish"}
	default:
		return models.WickAnalysis{}
	}
}

// DetectCandlestickPatterns recognizes single, dual, and triple-candle
// patterns in the tail of candles. Index is the position in candles
// (0-based) of the pattern's final (most recent) bar.
func DetectCandlestickPatterns(candles []models.Candle) []models.CandlestickPattern {
	patterns := make([]models.CandlestickPattern, 0)
	if len(candles) == 0 {
		return patterns
	}

	last := len(candles) - 1
	curr := candles[last]

	if isDoji(curr) {
		patterns = append(patterns, models.CandlestickPattern{Name: "doji", Index: last})
	}
	if isHammer(curr) {
		patterns = append(patterns, models.CandlestickPattern{Name: "hammer", Bullish: true, Index: last})
	}
	if isShootingStar(curr) {
		patterns = append(patterns, models.CandlestickPattern{Name: "shooting_star", Bullish: false, Index: last})
	}

	if len(candles) >= 2 {
		prev := candles[last-1]
		if isBullishEngulfing(prev, curr) {
			patterns = append(patterns, models.CandlestickPattern{Name: "engulfing_bullish", Bullish: true, Index: last})
		}
		if isBearishEngulfing(prev, curr) {
			patterns = append(patterns, models.CandlestickPattern{Name: "engulfing_bearish", Bullish: false, Index: last})
		}
	}

	if len(candles) >= 3 {
		first := candles[last-2]
		middle := candles[last-1]
		if isMorningStar(first, middle, curr) {
			patterns = append(patterns, models.CandlestickPattern{Name: "morning_star", Bullish: true, Index: last})
		}
		if isEveningStar(first, middle, curr) {
			patterns = append(patterns, models.CandlestickPattern{Name: "evening_star", Bullish: false, Index: last})
		}
	}

	return patterns
}

func isDoji(c models.Candle) bool {
	rng := c.High - c.Low
	if rng == 0 {
		return false
	}
	return math.Abs(c.Close-c.Open)/rng < 0.1
}

func isHammer(c models.Candle) bool {
	body := math.Abs(c.Close - c.Open)
	rng := c.High - c.Low
	if rng == 0 || body == 0 {
		return false
	}
	lowerShadow := math.Min(c.Open, c.Close) - c.Low
	upperShadow := c.High - math.Max(c.Open, c.Close)
	return body/rng < 0.3 && lowerShadow > 2*body && upperShadow < body
}

func isShootingStar(c models.Candle) bool {
	body := math.Abs(c.Close - c.Open)
	rng := c.High - c.Low
	if rng == 0 || body == 0 {
		return false
	}
	lowerShadow := math.Min(c.Open, c.Close) - c.Low
	upperShadow := c.High - math.Max(c.Open, c.Close)
	return body/rng < 0.3 && upperShadow > 2*body && lowerShadow < body
}

func isBullishEngulfing(prev, curr models.Candle) bool {
	if prev.Close >= prev.Open || curr.Close <= curr.Open {
		return false
	}
	return curr.Open < prev.Close && curr.Close > prev.Open
}

func isBearishEngulfing(prev, curr models.Candle) bool {
	if prev.Close <= prev.Open || curr.Close >= curr.Open {
		return false
	}
	return curr.Open > prev.Close && curr.Close < prev.Open
}

func isMorningStar(first, middle, last models.Candle) bool {
	if first.Close >= first.Open || last.Close <= last.Open {
		return false
	}
	firstBody := first.Open - first.Close
	middleBody := math.Abs(middle.Close - middle.Open)
	if middleBody > firstBody*0.5 {
		return false
	}
	firstMid := (first.Open + first.Close) / 2
	return last.Close > firstMid
}

func isEveningStar(first, middle, last models.Candle) bool {
	if first.Close <= first.Open || last.Close >= last.Open {
		return false
	}
	firstBody := first.Close - first.Open
	middleBody := math.Abs(middle.Close - middle.Open)
	if middleBody > firstBody*0.5 {
		return false
	}
	firstMid := (first.Open + first.Close) / 2
	return last.Close < firstMid
}
