package strategy

import "github.com/edittrades/signalcore/internal/models"

// tfFixture builds a structurally complete TimeframeAnalysis for one
// evaluator test case. Zero-valued chart features are safe defaults (empty
// slices, flat structure) unless a test overrides them directly.
func tfFixture(trend, pullback, stoch string, price, ema21, swingLow, swingHigh, atr float64) *models.TimeframeAnalysis {
	ema := ema21
	return &models.TimeframeAnalysis{
		Indicators: models.Indicators{
			EMA: &models.EMAData{EMA21: &ema},
			StochRSI: models.StochRSIData{K: fixtureStochK(stoch), Condition: stoch},
			Analysis: models.TrendAnalysis{
				Trend:             trend,
				PullbackState:     pullback,
				DistanceFrom21EMA: (price - ema21) / ema21 * 100,
			},
		},
		Structure:  models.SwingPoints{SwingHigh: swingHigh, SwingLow: swingLow},
		LastCandle: &models.Candle{Close: price, Open: price, High: price, Low: price},
		Volatility: models.VolatilityInfo{ATR: atr, ATRPctOfPrice: atr / price * 100, State: models.VolatilityNormal},
		ChartFeatures: models.ChartFeatures{
			MarketStructure: models.MarketStructure{CurrentStructure: models.StructureFlat},
			LiquidityZones:  []models.LiquidityZone{},
			FairValueGaps:   []models.FairValueGap{},
			Divergences:     []models.Divergence{},
			VolumeProfile:   models.VolumeProfile{HighVolumeNodes: []float64{}, LowVolumeNodes: []float64{}},
		},
	}
}

// fixtureStochK maps a condition label to a representative K value so fixtures
// built from condition alone still carry a plausible oscillator reading.
func fixtureStochK(condition string) float64 {
	switch condition {
	case models.StochOversold:
		return 15
	case models.StochBullish:
		return 35
	case models.StochOverbought:
		return 85
	case models.StochBearish:
		return 65
	default:
		return 50
	}
}

func neutralBias() models.HTFBias {
	return models.HTFBias{Direction: models.BiasNeutral, Source: models.BiasSourceNone}
}
