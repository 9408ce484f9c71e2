package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

const (
	microScalpEMABandPct  = 0.25
	microScalpLongKMax    = 40.0
	microScalpShortKMin   = 60.0
	microScalpTightKMax   = 25.0
	microScalpTightKMin   = 75.0
)

var microScalpRRTargets = []float64{1.0, 1.5}

// EvaluateMicroScalp evaluates the MICRO_SCALP setup, independent of 4h.
func EvaluateMicroScalp(data MultiTFData, bias models.HTFBias, now time.Time) models.Signal {
	checked := []string{models.StrategyMicroScalp}
	tf1h := data.get("1h")
	tf15m := data.get("15m")
	tf5m := data.get("5m")

	if tf1h == nil || tf15m == nil || tf5m == nil {
		return noTrade(models.SetupMicroScalp, models.StrategyMicroScalp, checked, "missing 1h/15m/5m timeframe data", bias, now)
	}
	if trendOf(tf1h) == models.TrendFlat {
		return noTrade(models.SetupMicroScalp, models.StrategyMicroScalp, checked, "1h trend is FLAT", bias, now)
	}
	if !isPullbackIn(pullbackOf(tf1h), models.PullbackEntryZone, models.PullbackRetracing) {
		return noTrade(models.SetupMicroScalp, models.StrategyMicroScalp, checked, "1h pullback state does not qualify", bias, now)
	}

	if sig, ok := tryMicroScalpDirection(models.DirectionLong, tf15m, tf5m, bias, now, checked); ok {
		return sig
	}
	if sig, ok := tryMicroScalpDirection(models.DirectionShort, tf15m, tf5m, bias, now, checked); ok {
		return sig
	}
	return noTrade(models.SetupMicroScalp, models.StrategyMicroScalp, checked, "no tight 15m/5m confluence", bias, now)
}

func tryMicroScalpDirection(direction string, tf15m, tf5m *models.TimeframeAnalysis, bias models.HTFBias, now time.Time, checked []string) (models.Signal, bool) {
	if !isPullbackIn(pullbackOf(tf15m), models.PullbackEntryZone, models.PullbackRetracing) {
		return models.Signal{}, false
	}
	if !isPullbackIn(pullbackOf(tf5m), models.PullbackEntryZone, models.PullbackRetracing) {
		return models.Signal{}, false
	}

	ema15m, haveEMA15m := ema21Of(tf15m)
	ema5m, haveEMA5m := ema21Of(tf5m)
	price15m, havePrice15m := priceOf(tf15m)
	price5m, havePrice5m := priceOf(tf5m)
	if !haveEMA15m || !haveEMA5m || !havePrice15m || !havePrice5m || ema15m == 0 || ema5m == 0 {
		return models.Signal{}, false
	}
	if absFloat((price15m-ema15m)/ema15m*100) > microScalpEMABandPct {
		return models.Signal{}, false
	}
	if absFloat((price5m-ema5m)/ema5m*100) > microScalpEMABandPct {
		return models.Signal{}, false
	}

	k15m, haveK15m := stochK(tf15m)
	k5m, haveK5m := stochK(tf5m)
	if !haveK15m || !haveK5m {
		return models.Signal{}, false
	}
	if direction == models.DirectionLong {
		if k15m >= microScalpLongKMax || k5m >= microScalpLongKMax {
			return models.Signal{}, false
		}
	} else {
		if k15m <= microScalpShortKMin || k5m <= microScalpShortKMin {
			return models.Signal{}, false
		}
	}

	mid := (ema15m + ema5m) / 2
	zone := models.PriceRange{Min: mid * 0.999, Max: mid * 1.001}

	swing15m, have15m := swingOf(tf15m)
	swing5m, have5m := swingOf(tf5m)
	if !have15m || !have5m {
		return models.Signal{}, false
	}
	var stop float64
	if direction == models.DirectionLong {
		stop = minFloat(swing15m.SwingLow, swing5m.SwingLow)
	} else {
		stop = maxFloat(swing15m.SwingHigh, swing5m.SwingHigh)
	}

	entryMid := (zone.Min + zone.Max) / 2
	risk := entryMid - stop
	if direction == models.DirectionShort {
		risk = stop - entryMid
	}
	if risk <= 0 {
		return models.Signal{}, false
	}
	targets := rrTargets(entryMid, risk, direction, microScalpRRTargets)

	confidence := 60.0
	tightConfluence := absFloat((price15m-ema15m)/ema15m*100) <= microScalpEMABandPct/2 &&
		absFloat((price5m-ema5m)/ema5m*100) <= microScalpEMABandPct/2
	if tightConfluence {
		confidence += 10
	} else {
		confidence += 5
	}
	stochAligned := false
	if direction == models.DirectionLong {
		stochAligned = k15m < microScalpTightKMax && k5m < microScalpTightKMax
	} else {
		stochAligned = k15m > microScalpTightKMin && k5m > microScalpTightKMin
	}
	if stochAligned {
		confidence += 5
	}
	confidence = clamp(confidence, 60, 75)

	sig := models.Signal{
		Valid:             true,
		Direction:         direction,
		SetupType:         models.SetupMicroScalp,
		SelectedStrategy:  models.StrategyMicroScalp,
		StrategiesChecked: checked,
		Confidence:        confidence,
		EntryZone:         &zone,
		StopLoss:          ptr(stop),
		InvalidationLevel: ptr(stop),
		Targets:           targets,
		RiskReward:        rrRecord(microScalpRRTargets),
		ReasonSummary:     "15m/5m tight confluence scalp",
		Confluence:        models.Confluence{Score: confidence, HTFConfirmation: bias.Direction == direction, Notes: []string{}},
		ConditionsRequired: []string{},
		HTFBias:           bias,
		Timestamp:         now,
	}
	return sig, true
}
