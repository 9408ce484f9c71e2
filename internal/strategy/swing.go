package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

const (
	swingOverextendedMin = 8.0
	swingOverextendedMax = 15.0
	swingEMA1dRatioMin   = 0.90
	swingEMA1dRatioMax   = 1.02
)

var swingRRTargets = []float64{3.0, 4.0, 5.0}

// EvaluateSwing evaluates the SWING (3D/1D/4H) setup.
func EvaluateSwing(data MultiTFData, bias models.HTFBias, now time.Time) models.Signal {
	checked := []string{models.StrategySwing}
	tf3d := data.get("3d")
	tf1d := data.get("1d")
	tf4h := data.get("4h")

	if tf3d == nil || tf1d == nil || tf4h == nil {
		return noTrade(models.SetupSwing, models.StrategySwing, checked, "missing timeframe data for 3d/1d/4h", bias, now)
	}

	if trendOf(tf1d) == models.TrendFlat {
		return noTrade(models.SetupSwing, models.StrategySwing, checked, "1d trend is FLAT", bias, now)
	}
	if !isPullbackIn(pullbackOf(tf3d), models.PullbackOverextended, models.PullbackRetracing) {
		return noTrade(models.SetupSwing, models.StrategySwing, checked, "3d pullback state does not qualify", bias, now)
	}
	if !isPullbackIn(pullbackOf(tf1d), models.PullbackRetracing, models.PullbackEntryZone) {
		return noTrade(models.SetupSwing, models.StrategySwing, checked, "1d pullback state does not qualify", bias, now)
	}

	if sig, ok := trySwingDirection(models.DirectionLong, tf3d, tf1d, tf4h, bias, now, checked); ok {
		return sig
	}
	if sig, ok := trySwingDirection(models.DirectionShort, tf3d, tf1d, tf4h, bias, now, checked); ok {
		return sig
	}
	return noTrade(models.SetupSwing, models.StrategySwing, checked, "no aligned 3d/1d/4h structure", bias, now)
}

func trySwingDirection(direction string, tf3d, tf1d, tf4h *models.TimeframeAnalysis, bias models.HTFBias, now time.Time, checked []string) (models.Signal, bool) {
	trend3d := trendOf(tf3d)
	trend4h := trendOf(tf4h)
	stoch3d := stochCondition(tf3d)
	stoch4h := stochCondition(tf4h)

	var wantTrend string
	var aligned3d, aligned4h bool
	if direction == models.DirectionLong {
		wantTrend = models.TrendUptrend
		aligned3d = trend3d == models.TrendUptrend || (trend3d == models.TrendFlat && isStochBullishLong(stoch3d))
		aligned4h = trend4h == models.TrendUptrend || (trend4h == models.TrendFlat && isStochBullishLong(stoch4h))
	} else {
		wantTrend = models.TrendDowntrend
		aligned3d = trend3d == models.TrendDowntrend || (trend3d == models.TrendFlat && isStochBearishShort(stoch3d))
		aligned4h = trend4h == models.TrendDowntrend || (trend4h == models.TrendFlat && isStochBearishShort(stoch4h))
	}
	if !aligned3d || !aligned4h || trendOf(tf1d) != wantTrend {
		return models.Signal{}, false
	}
	if !isPullbackIn(pullbackOf(tf4h), models.PullbackRetracing, models.PullbackEntryZone) {
		return models.Signal{}, false
	}

	dist3d := distanceFromEMA21(tf3d)
	overext := dist3d
	if direction == models.DirectionShort {
		overext = -dist3d
	}
	if overext < swingOverextendedMin || overext > swingOverextendedMax {
		return models.Signal{}, false
	}

	ema1d, haveEMA1d := ema21Of(tf1d)
	price, havePrice := priceOf(tf1d)
	if !haveEMA1d || !havePrice || ema1d == 0 {
		return models.Signal{}, false
	}
	ratio := price / ema1d
	if ratio < swingEMA1dRatioMin || ratio > swingEMA1dRatioMax {
		// Mirror band for shorts: reuse the same 90-102% window reflected
		// around 1.0 (110%-98%) since the spec states the window only for
		// longs and calls shorts "the mirror".
		if direction == models.DirectionLong {
			return models.Signal{}, false
		}
		mirrorMin, mirrorMax := 2-swingEMA1dRatioMax, 2-swingEMA1dRatioMin
		if ratio < mirrorMin || ratio > mirrorMax {
			return models.Signal{}, false
		}
	}

	swing1d, _ := swingOf(tf1d)
	swing3d, _ := swingOf(tf3d)

	var reclaimAnchor float64
	if direction == models.DirectionLong {
		reclaimAnchor = swing1d.SwingLow
	} else {
		reclaimAnchor = swing1d.SwingHigh
	}
	reclaim := (reclaimAnchor + ema1d) / 2
	zone := models.PriceRange{Min: reclaim * 0.995, Max: reclaim * 1.005}

	var stop float64
	if direction == models.DirectionLong {
		stop = minFloat(swing3d.SwingLow, swing1d.SwingLow)
	} else {
		stop = maxFloat(swing3d.SwingHigh, swing1d.SwingHigh)
	}

	mid := (zone.Min + zone.Max) / 2
	risk := mid - stop
	if direction == models.DirectionShort {
		risk = stop - mid
	}
	if risk <= 0 {
		return models.Signal{}, false
	}
	targets := rrTargets(mid, risk, direction, swingRRTargets)

	confidence := 70.0
	if isStochBullishLong(stoch3d) && isStochBullishLong(stoch4h) && direction == models.DirectionLong {
		confidence += 10
	} else if isStochBearishShort(stoch3d) && isStochBearishShort(stoch4h) && direction == models.DirectionShort {
		confidence += 10
	}
	if absFloat(distanceFromEMA21(tf4h)) <= 1.0 {
		confidence += 5
	}
	if overext >= 12.0 {
		confidence += 5
	}
	confidence = clamp(confidence, 70, 90)

	sig := models.Signal{
		Valid:             true,
		Direction:         direction,
		SetupType:         models.SetupSwing,
		SelectedStrategy:  models.StrategySwing,
		StrategiesChecked: checked,
		Confidence:        confidence,
		EntryZone:         &zone,
		StopLoss:          ptr(stop),
		InvalidationLevel: ptr(stop),
		Targets:           targets,
		RiskReward:        rrRecord(swingRRTargets),
		ReasonSummary:     "3D/1D/4H structure aligned for a swing entry",
		Confluence:        models.Confluence{Score: confidence, HTFConfirmation: bias.Direction == direction, Notes: []string{}},
		ConditionsRequired: []string{},
		HTFBias:           bias,
		Timestamp:         now,
	}
	return sig, true
}
