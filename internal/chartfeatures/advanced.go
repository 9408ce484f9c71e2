package chartfeatures

import (
	"github.com/edittrades/signalcore/internal/indicators"
	"github.com/edittrades/signalcore/internal/models"
)

// intradayIntervals get VWAP positioning.
var intradayIntervals = map[models.IntervalCode]bool{
	models.Interval1m: true, models.Interval3m: true, models.Interval5m: true,
	models.Interval15m: true, models.Interval30m: true, models.Interval1h: true,
}

// bollingerIntervals get Bollinger Bands + squeeze.
var bollingerIntervals = map[models.IntervalCode]bool{
	models.Interval4h: true, models.Interval1h: true, models.Interval15m: true,
}

// maStackIntervals get the 21/50/200 MA-stack alignment flags.
var maStackIntervals = map[models.IntervalCode]bool{
	models.Interval4h: true, models.Interval1h: true,
}

// Advanced builds the timeframe-gated extras: VWAP for intraday, Bollinger
// for 4h/1h/15m, MA-stack for 4h/1h. Fields outside an interval's gate stay
// nil.
func Advanced(interval models.IntervalCode, candles []models.Candle, currentPrice float64) models.AdvancedIndicators {
	var adv models.AdvancedIndicators

	if intradayIntervals[interval] {
		adv.VWAP, _ = indicators.ClassifyVWAP(candles, currentPrice)
	}
	if bollingerIntervals[interval] {
		adv.Bollinger, _ = indicators.ClassifyBollinger(models.Closes(candles), 20)
	}
	if maStackIntervals[interval] {
		adv.MAStack, _ = indicators.MAStack(models.Closes(candles))
	}
	return adv
}
