package chartfeatures

import (
	"math"

	"github.com/edittrades/signalcore/internal/models"
)

// PriceAction classifies the last two candles into the recognized
// rejection/engulfing/inside-bar patterns.
func PriceAction(candles []models.Candle) models.PriceActionPatterns {
	var p models.PriceActionPatterns
	if len(candles) == 0 {
		return p
	}
	curr := candles[len(candles)-1]
	rng := curr.High - curr.Low
	if rng > 0 {
		body := math.Abs(curr.Close-curr.Open) / rng
		upperWick := (curr.High - math.Max(curr.Open, curr.Close)) / rng
		lowerWick := (math.Min(curr.Open, curr.Close) - curr.Low) / rng
		closeLowerHalf := (curr.Close-curr.Low)/rng < 0.5
		closeUpperHalf := (curr.Close-curr.Low)/rng > 0.5

		p.RejectionUp = upperWick > 0.5 && body < 0.3 && closeLowerHalf
		p.RejectionDown = lowerWick > 0.5 && body < 0.3 && closeUpperHalf
	}

	if len(candles) < 2 {
		return p
	}
	prev := candles[len(candles)-2]

	prevBody := math.Abs(prev.Close - prev.Open)
	currBody := math.Abs(curr.Close - curr.Open)
	if currBody > prevBody {
		if prev.Close < prev.Open && curr.Close > curr.Open && curr.Open < prev.Close && curr.Close > prev.Open {
			p.EngulfingBull = true
		}
		if prev.Close > prev.Open && curr.Close < curr.Open && curr.Open > prev.Close && curr.Close < prev.Open {
			p.EngulfingBear = true
		}
	}

	p.InsideBar = curr.High <= prev.High && curr.Low >= prev.Low

	return p
}
