// Package chartfeatures layers structural pattern detection (candle
// anatomy, price action, market structure, liquidity, FVGs, divergences,
// volume profile, and timeframe-gated advanced indicators) over a candle
// series plus its already-computed indicators.
package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

const pivotWindow = 3

// pivot is a local high or low confirmed by pivotWindow candles on each
// side.
type pivot struct {
	Index int
	Price float64
}

// findPivotHighs returns every confirmed pivot high in candles.
func findPivotHighs(candles []models.Candle) []pivot {
	var out []pivot
	for i := pivotWindow; i < len(candles)-pivotWindow; i++ {
		isPivot := true
		for j := i - pivotWindow; j <= i+pivotWindow; j++ {
			if j != i && candles[j].High >= candles[i].High {
				isPivot = false
				break
			}
		}
		if isPivot {
			out = append(out, pivot{Index: i, Price: candles[i].High})
		}
	}
	return out
}

// findPivotLows returns every confirmed pivot low in candles.
func findPivotLows(candles []models.Candle) []pivot {
	var out []pivot
	for i := pivotWindow; i < len(candles)-pivotWindow; i++ {
		isPivot := true
		for j := i - pivotWindow; j <= i+pivotWindow; j++ {
			if j != i && candles[j].Low <= candles[i].Low {
				isPivot = false
				break
			}
		}
		if isPivot {
			out = append(out, pivot{Index: i, Price: candles[i].Low})
		}
	}
	return out
}
