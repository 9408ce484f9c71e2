package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

const (
	scalp1hEMA1hBandPct  = 2.0
	scalp1hEMA15mBandPct = 1.5
)

var scalp1hRRTargets = []float64{1.5, 3.0}

// EvaluateScalp1H evaluates the SCALP_1H (1H/15m/5m) setup. 4h only enters
// as the final fallback tier for the structure stop, when neither 5m nor
// 15m has a usable swing.
func EvaluateScalp1H(data MultiTFData, bias models.HTFBias, now time.Time) models.Signal {
	checked := []string{models.StrategyScalp1h}
	tf1h := data.get("1h")
	tf15m := data.get("15m")
	tf5m := data.get("5m")
	tf4h := data.get("4h")

	if tf1h == nil || tf15m == nil {
		return noTrade(models.SetupScalp, models.StrategyScalp1h, checked, "missing 1h/15m timeframe data", bias, now)
	}
	if trendOf(tf1h) == models.TrendFlat {
		return noTrade(models.SetupScalp, models.StrategyScalp1h, checked, "1h trend is FLAT", bias, now)
	}

	if sig, ok := tryScalp1hDirection(models.DirectionLong, tf1h, tf15m, tf5m, tf4h, bias, now, checked); ok {
		return sig
	}
	if sig, ok := tryScalp1hDirection(models.DirectionShort, tf1h, tf15m, tf5m, tf4h, bias, now, checked); ok {
		return sig
	}
	return noTrade(models.SetupScalp, models.StrategyScalp1h, checked, "no aligned 1h/15m/5m confluence", bias, now)
}

func tryScalp1hDirection(direction string, tf1h, tf15m, tf5m, tf4h *models.TimeframeAnalysis, bias models.HTFBias, now time.Time, checked []string) (models.Signal, bool) {
	wantTrend := models.TrendUptrend
	if direction == models.DirectionShort {
		wantTrend = models.TrendDowntrend
	}
	if trendOf(tf1h) != wantTrend {
		return models.Signal{}, false
	}
	if !isPullbackIn(pullbackOf(tf1h), models.PullbackEntryZone, models.PullbackRetracing) {
		return models.Signal{}, false
	}
	if !isPullbackIn(pullbackOf(tf15m), models.PullbackEntryZone, models.PullbackRetracing) {
		return models.Signal{}, false
	}

	ema1h, haveEMA1h := ema21Of(tf1h)
	ema15m, haveEMA15m := ema21Of(tf15m)
	price, havePrice := priceOf(tf1h)
	if !haveEMA1h || !haveEMA15m || !havePrice || ema1h == 0 || ema15m == 0 {
		return models.Signal{}, false
	}
	if absFloat((price-ema1h)/ema1h*100) > scalp1hEMA1hBandPct {
		return models.Signal{}, false
	}
	if absFloat((price-ema15m)/ema15m*100) > scalp1hEMA15mBandPct {
		return models.Signal{}, false
	}

	stoch15m := stochCondition(tf15m)
	if direction == models.DirectionLong && !isStochBullishLong(stoch15m) {
		return models.Signal{}, false
	}
	if direction == models.DirectionShort && !isStochBearishShort(stoch15m) {
		return models.Signal{}, false
	}

	var zone models.PriceRange
	if direction == models.DirectionLong {
		zone = models.PriceRange{Min: ema1h * 0.996, Max: ema1h * 1.002}
	} else {
		zone = models.PriceRange{Min: ema1h * 0.998, Max: ema1h * 1.004}
	}
	mid := (zone.Min + zone.Max) / 2

	stop, ok := ltfStructureStop(direction, tf5m, tf15m, tf4h)
	if !ok {
		return models.Signal{}, false
	}
	risk := mid - stop
	if direction == models.DirectionShort {
		risk = stop - mid
	}
	if risk <= 0 {
		return models.Signal{}, false
	}
	targets := rrTargets(mid, risk, direction, scalp1hRRTargets)

	confidence := 60.0
	if bias.Direction == direction {
		confidence = minFloat(85, 60+0.2*bias.Confidence)
	}

	sig := models.Signal{
		Valid:             true,
		Direction:         direction,
		SetupType:         models.SetupScalp,
		SelectedStrategy:  models.StrategyScalp1h,
		StrategiesChecked: checked,
		Confidence:        confidence,
		EntryZone:         &zone,
		StopLoss:          ptr(stop),
		InvalidationLevel: ptr(stop),
		Targets:           targets,
		RiskReward:        rrRecord(scalp1hRRTargets),
		ReasonSummary:     "1H trend with 15m/5m tight confluence",
		Confluence:        models.Confluence{Score: confidence, HTFConfirmation: bias.Direction == direction, Notes: []string{}},
		ConditionsRequired: []string{},
		HTFBias:           bias,
		Timestamp:         now,
	}
	return sig, true
}

// ltfStructureStop picks a stop from the first available swing among 5m,
// 15m, then 4h, in that preference order.
func ltfStructureStop(direction string, tf5m, tf15m, tf4h *models.TimeframeAnalysis) (float64, bool) {
	for _, tf := range []*models.TimeframeAnalysis{tf5m, tf15m, tf4h} {
		swing, ok := swingOf(tf)
		if !ok {
			continue
		}
		if direction == models.DirectionLong && swing.SwingLow > 0 {
			return swing.SwingLow, true
		}
		if direction == models.DirectionShort && swing.SwingHigh > 0 {
			return swing.SwingHigh, true
		}
	}
	return 0, false
}
