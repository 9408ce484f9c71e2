package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

const (
	trend4hOverextendedPct  = 3.0
	trend4hAggressiveMinBias = 70.0
)

var trend4hRRTargets = []float64{1.0, 2.0}

// EvaluateTrend4H evaluates the TREND_4H (4H/1H/15m-5m) setup.
func EvaluateTrend4H(data MultiTFData, mode string, bias models.HTFBias, now time.Time) models.Signal {
	checked := []string{models.StrategyTrend4h}
	tf4h := data.get("4h")
	tf1h := data.get("1h")
	tf15m := data.get("15m")
	tf5m := data.get("5m")

	if tf4h == nil || tf1h == nil {
		return noTrade(Setup4hType(), models.StrategyTrend4h, checked, "missing 4h/1h timeframe data", bias, now)
	}

	trend4h := trendOf(tf4h)
	effectiveTrend4h := trend4h

	if trend4h == models.TrendFlat {
		if mode != models.ModeAggressive {
			return noTrade(Setup4hType(), models.StrategyTrend4h, checked, "4h trend is FLAT", bias, now)
		}
		if bias.Confidence < trend4hAggressiveMinBias {
			return noTrade(Setup4hType(), models.StrategyTrend4h, checked, "4h FLAT and HTF bias confidence below threshold", bias, now)
		}
		trend1h := trendOf(tf1h)
		trend15m := trendOf(tf15m)
		aligns1h := (bias.Direction == models.BiasLong && trend1h != models.TrendDowntrend) ||
			(bias.Direction == models.BiasShort && trend1h != models.TrendUptrend)
		aligns15m := (bias.Direction == models.BiasLong && trend15m != models.TrendDowntrend) ||
			(bias.Direction == models.BiasShort && trend15m != models.TrendUptrend)
		if !aligns1h || !aligns15m {
			return noTrade(Setup4hType(), models.StrategyTrend4h, checked, "1h/15m do not align with HTF bias", bias, now)
		}
		if bias.Direction == models.BiasLong {
			effectiveTrend4h = models.TrendUptrend
		} else if bias.Direction == models.BiasShort {
			effectiveTrend4h = models.TrendDowntrend
		}
	}

	if sig, ok := tryTrend4hDirection(models.DirectionLong, effectiveTrend4h, tf4h, tf1h, tf15m, tf5m, trend4h == models.TrendFlat, bias, now, checked); ok {
		return sig
	}
	if sig, ok := tryTrend4hDirection(models.DirectionShort, effectiveTrend4h, tf4h, tf1h, tf15m, tf5m, trend4h == models.TrendFlat, bias, now, checked); ok {
		return sig
	}
	return noTrade(Setup4hType(), models.StrategyTrend4h, checked, "no aligned 4h/1h/15m/5m structure", bias, now)
}

// Setup4hType names the setupType tag this evaluator reports under.
func Setup4hType() string { return models.Setup4h }

func tryTrend4hDirection(direction, effectiveTrend4h string, tf4h, tf1h, tf15m, tf5m *models.TimeframeAnalysis, wasFlat bool, bias models.HTFBias, now time.Time, checked []string) (models.Signal, bool) {
	wantTrend := models.TrendUptrend
	if direction == models.DirectionShort {
		wantTrend = models.TrendDowntrend
	}
	if effectiveTrend4h != wantTrend {
		return models.Signal{}, false
	}

	dist4h := distanceFromEMA21(tf4h)
	overext := dist4h
	if direction == models.DirectionShort {
		overext = -dist4h
	}
	if overext > trend4hOverextendedPct {
		return models.Signal{}, false
	}

	trend1h := trendOf(tf1h)
	if direction == models.DirectionLong && trend1h == models.TrendDowntrend {
		return models.Signal{}, false
	}
	if direction == models.DirectionShort && trend1h == models.TrendUptrend {
		return models.Signal{}, false
	}

	stoch15m := stochCondition(tf15m)
	stoch5m := stochCondition(tf5m)
	bothCurlAgainst := false
	if direction == models.DirectionLong {
		bothCurlAgainst = isStochBearishShort(stoch15m) && isStochBearishShort(stoch5m)
	} else {
		bothCurlAgainst = isStochBullishLong(stoch15m) && isStochBullishLong(stoch5m)
	}
	if bothCurlAgainst {
		return models.Signal{}, false
	}

	ema4h, haveEMA := ema21Of(tf4h)
	if !haveEMA || ema4h == 0 {
		return models.Signal{}, false
	}

	var zone models.PriceRange
	if direction == models.DirectionLong {
		zone = models.PriceRange{Min: ema4h * 0.996, Max: ema4h * 1.002}
	} else {
		zone = models.PriceRange{Min: ema4h * 0.998, Max: ema4h * 1.004}
	}
	mid := (zone.Min + zone.Max) / 2

	swing4h, haveSwing := swingOf(tf4h)
	var stop float64
	if direction == models.DirectionLong {
		if haveSwing && swing4h.SwingLow > 0 {
			stop = swing4h.SwingLow * 0.997
		} else {
			stop = mid * 0.97
		}
	} else {
		if haveSwing && swing4h.SwingHigh > 0 {
			stop = swing4h.SwingHigh * 1.003
		} else {
			stop = mid * 1.03
		}
	}

	risk := mid - stop
	if direction == models.DirectionShort {
		risk = stop - mid
	}
	if risk <= 0 {
		return models.Signal{}, false
	}
	targets := rrTargets(mid, risk, direction, trend4hRRTargets)

	confidence := 0.0
	if trendOf(tf4h) == wantTrend {
		confidence += 0.4
	} else if wasFlat {
		confidence += 0.1
	}
	if trend1h == wantTrend {
		confidence += 0.2
	} else if trend1h == models.TrendFlat {
		confidence += 0.1
	}
	curlCount := 0
	if direction == models.DirectionLong {
		if isStochBullishLong(stoch15m) {
			curlCount++
		}
		if isStochBullishLong(stoch5m) {
			curlCount++
		}
	} else {
		if isStochBearishShort(stoch15m) {
			curlCount++
		}
		if isStochBearishShort(stoch5m) {
			curlCount++
		}
	}
	if curlCount == 2 {
		confidence += 0.2
	} else if curlCount == 1 {
		confidence += 0.1
	}
	favourable := priceFavourable(tf4h, direction)
	if favourable {
		confidence += 0.1
	}
	switch pullbackOf(tf4h) {
	case models.PullbackEntryZone:
		confidence += 0.1
	case models.PullbackRetracing:
		confidence += 0.05
	}
	confidence = clamp(confidence, 0, 1)

	sig := models.Signal{
		Valid:             true,
		Direction:         direction,
		SetupType:         models.Setup4h,
		SelectedStrategy:  models.StrategyTrend4h,
		StrategiesChecked: checked,
		Confidence:        confidencePct(confidence),
		EntryZone:         &zone,
		StopLoss:          ptr(stop),
		InvalidationLevel: ptr(stop),
		Targets:           targets,
		RiskReward:        rrRecord(trend4hRRTargets),
		ReasonSummary:     "4H trend with 1H/15m/5m confirmation",
		Confluence:        models.Confluence{Score: confidencePct(confidence), HTFConfirmation: bias.Direction == direction, Notes: []string{}},
		ConditionsRequired: []string{},
		HTFBias:           bias,
		Timestamp:         now,
	}
	return sig, true
}

// priceFavourable reports whether price sits inside the entry zone or is
// retracing toward it, used as a soft confidence booster.
func priceFavourable(tf *models.TimeframeAnalysis, direction string) bool {
	state := pullbackOf(tf)
	return state == models.PullbackEntryZone || state == models.PullbackRetracing
}
