package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

// Volume summarizes current volume against its 20-period average and
// classifies the short-term trend. Returns nil when there isn't a full
// 20-candle window.
func Volume(candles []models.Candle) *models.VolumeInfo {
	const period = 20
	if len(candles) < period {
		return nil
	}
	sum := 0.0
	for i := len(candles) - period; i < len(candles); i++ {
		sum += candles[i].Volume
	}
	avg := sum / float64(period)
	current := candles[len(candles)-1].Volume

	trend := "neutral"
	switch {
	case current > avg*1.2:
		trend = "up"
	case current < avg*0.8:
		trend = "down"
	}

	return &models.VolumeInfo{Current: current, Avg20: avg, Trend: trend}
}
