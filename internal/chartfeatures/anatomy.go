package chartfeatures

import (
	"math"

	"github.com/edittrades/signalcore/internal/models"
)

// Anatomy describes the shape of the last candle. Returns a zero-valued
// doji when the candle's range is zero.
func Anatomy(c models.Candle, ema21 *float64) models.CandleAnatomy {
	rng := c.High - c.Low
	a := models.CandleAnatomy{
		Open: c.Open, High: c.High, Low: c.Low, Close: c.Close,
	}
	if rng == 0 {
		a.Direction = models.CandleDoji
		return a
	}

	body := math.Abs(c.Close - c.Open)
	a.BodyPct = body / rng * 100
	a.UpperWickPct = (c.High - math.Max(c.Open, c.Close)) / rng * 100
	a.LowerWickPct = (math.Min(c.Open, c.Close) - c.Low) / rng * 100
	a.CloseRelativeToRange = (c.Close - c.Low) / rng * 100

	switch {
	case a.BodyPct < 10:
		a.Direction = models.CandleDoji
	case c.Close > c.Open:
		a.Direction = models.CandleBull
	default:
		a.Direction = models.CandleBear
	}

	if ema21 != nil {
		a.CloseAboveEma21 = c.Close > *ema21
		a.CloseBelowEma21 = c.Close < *ema21
	}
	return a
}
