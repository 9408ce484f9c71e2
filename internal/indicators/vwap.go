package indicators

import "github.com/edittrades/signalcore/internal/models"

// VWAP computes the volume-weighted average price over candles using the
// typical price (high+low+close)/3, the standard intraday VWAP
// definition. Returns 0, false for an empty series or one with no volume
// at all.
func VWAP(candles []models.Candle) (float64, bool) {
	if len(candles) == 0 {
		return 0, false
	}
	var pvSum, vSum float64
	for _, c := range candles {
		typical := (c.High + c.Low + c.Close) / 3
		pvSum += typical * c.Volume
		vSum += c.Volume
	}
	if vSum == 0 {
		return 0, false
	}
	return pvSum / vSum, true
}

// ClassifyVWAP builds VWAP positioning info relative to the current price.
func ClassifyVWAP(candles []models.Candle, currentPrice float64) (*models.VWAPInfo, bool) {
	vwap, ok := VWAP(candles)
	if !ok || vwap == 0 {
		return nil, false
	}
	return &models.VWAPInfo{
		VWAP:        vwap,
		AbovePrice:  vwap > currentPrice,
		DistancePct: (currentPrice - vwap) / vwap * 100,
	}, true
}
