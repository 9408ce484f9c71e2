package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

// srGatedIntervals are the only intervals Support/Resistance is computed
// on, per spec: higher timeframes only.
var srGatedIntervals = map[models.IntervalCode]bool{
	models.Interval4h: true, models.Interval1h: true,
}

// Compute builds the full ChartFeatures bundle for one interval's candle
// series plus its already-computed Indicators. Every feature function
// tolerates short series by returning a structurally complete zero value,
// so Compute never needs to fail.
func Compute(interval models.IntervalCode, candles []models.Candle, ind models.Indicators) models.ChartFeatures {
	cf := models.ChartFeatures{
		LiquidityZones: []models.LiquidityZone{},
		FairValueGaps:  []models.FairValueGap{},
		Divergences:    []models.Divergence{},
		VolumeProfile:  models.VolumeProfile{HighVolumeNodes: []float64{}, LowVolumeNodes: []float64{}},
	}
	if len(candles) == 0 {
		cf.MarketStructure = models.MarketStructure{CurrentStructure: models.StructureUnknown}
		return cf
	}

	var ema21 *float64
	if ind.EMA != nil {
		ema21 = ind.EMA.EMA21
	}

	cf.CandleAnatomy = Anatomy(candles[len(candles)-1], ema21)
	cf.PriceAction = PriceAction(candles)
	cf.MarketStructure = MarketStructure(candles)
	cf.LiquidityZones = LiquidityZones(candles)
	cf.FairValueGaps = FairValueGaps(candles)
	cf.VolumeProfile = VolumeProfile(candles)
	cf.Advanced = Advanced(interval, candles, candles[len(candles)-1].Close)

	if ind.RSI != nil {
		cf.Divergences = Divergences(candles, ind.RSI.History)
	}

	if srGatedIntervals[interval] {
		cf.SupportResistance = SupportResistance(candles)
	}

	return cf
}
