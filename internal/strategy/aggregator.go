package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/normalizer"
)

// AllStrategies names every evaluator slot the aggregator fills, in the
// order the spec lists them.
var AllStrategies = []string{
	models.StrategySwing, models.StrategyTrend4h, models.StrategyScalp1h,
	models.StrategyMicroScalp, models.StrategyTrendRider,
}

var safeBestSignalPriority = []string{
	models.StrategyTrend4h, models.StrategySwing, models.StrategyScalp1h, models.StrategyMicroScalp,
}

var aggressiveBestSignalPriority = []string{
	models.StrategyTrend4h, models.StrategyScalp1h, models.StrategyMicroScalp, models.StrategySwing,
}

var aggressiveOverridePriority = []string{
	models.StrategyTrend4h, models.StrategyScalp1h, models.StrategyMicroScalp,
}

const aggressiveForceMinBias = 70.0

// AggregateResult is the evaluateAllStrategies output (the strategies/
// bestSignal/overrideUsed/overrideNotes slice of RichSymbol).
type AggregateResult struct {
	Strategies    map[string]models.Signal
	BestSignal    *string
	OverrideUsed  bool
	OverrideNotes []string
}

// EvaluateAllStrategies runs every evaluator for one symbol under mode and
// picks a best signal, per spec §4.5.6.
func EvaluateAllStrategies(data MultiTFData, mode string, bias models.HTFBias, now time.Time) AggregateResult {
	tf4h := data.get("4h")
	trend4h := trendOf(tf4h)
	dist4h := distance4hPtr(data)

	if mode == models.ModeSafe && trend4h == models.TrendFlat {
		strategies := make(map[string]models.Signal, len(AllStrategies))
		for _, name := range AllStrategies {
			sig := noTrade(models.SetupAuto, name, AllStrategies, "4H trend is FLAT — no trade allowed per SAFE rules", bias, now)
			strategies[name] = normalizer.Normalize(sig, dist4h)
		}
		return AggregateResult{Strategies: strategies, BestSignal: nil}
	}

	strategies := map[string]models.Signal{
		models.StrategySwing:      normalizer.Normalize(EvaluateSwing(data, bias, now), dist4h),
		models.StrategyTrend4h:    normalizer.Normalize(EvaluateTrend4H(data, mode, bias, now), dist4h),
		models.StrategyScalp1h:    normalizer.Normalize(EvaluateScalp1H(data, bias, now), dist4h),
		models.StrategyMicroScalp: normalizer.Normalize(EvaluateMicroScalp(data, bias, now), dist4h),
		models.StrategyTrendRider: normalizer.Normalize(EvaluateTrendRider(data, mode, bias, now), dist4h),
	}

	result := AggregateResult{Strategies: strategies}

	if mode == models.ModeAggressive && trend4h == models.TrendFlat && bias.Confidence >= aggressiveForceMinBias {
		tf1h := data.get("1h")
		tf15m := data.get("15m")
		aligns1h := trendAligns(trendOf(tf1h), bias.Direction)
		aligns15m := trendAligns(trendOf(tf15m), bias.Direction)
		if aligns1h && aligns15m {
			forceOneValid(strategies, &result, data, bias, now, dist4h)
		}
	}

	result.BestSignal = selectBestSignal(strategies, mode)
	return result
}

func trendAligns(trend, biasDirection string) bool {
	switch biasDirection {
	case models.BiasLong:
		return trend != models.TrendDowntrend
	case models.BiasShort:
		return trend != models.TrendUptrend
	default:
		return false
	}
}

// forceOneValid overrides the first not-yet-valid strategy in priority
// order with a minimal HTF-bias-driven signal, so AGGRESSIVE mode always
// has at least one actionable setup when 4h is FLAT but the bias is strong.
func forceOneValid(strategies map[string]models.Signal, result *AggregateResult, data MultiTFData, bias models.HTFBias, now time.Time, dist4h *float64) {
	for _, name := range aggressiveOverridePriority {
		if strategies[name].Valid {
			return
		}
	}
	for _, name := range aggressiveOverridePriority {
		sig, ok := buildForcedSignal(name, data, bias, now)
		if !ok {
			continue
		}
		strategies[name] = normalizer.Normalize(sig, dist4h)
		result.OverrideUsed = true
		result.OverrideNotes = append(result.OverrideNotes, name+" forced valid from HTF bias override (4H FLAT, AGGRESSIVE mode)")
		return
	}
}

// buildForcedSignal constructs a minimal valid signal from the 1h price and
// ATR (whatever the strategy), directed by the HTF bias, with the entry zone
// anchored on the 4h ema21 (1h price when there is none).
func buildForcedSignal(strategy string, data MultiTFData, bias models.HTFBias, now time.Time) (models.Signal, bool) {
	direction := bias.Direction
	if direction != models.DirectionLong && direction != models.DirectionShort {
		return models.Signal{}, false
	}

	tf1h := data.get("1h")
	price, havePrice := priceOf(tf1h)
	if !havePrice {
		return models.Signal{}, false
	}
	atr := tf1h.Volatility.ATR
	if atr <= 0 {
		atr = price * 0.01
	}

	risk := atr * 1.5
	var stop float64
	if direction == models.DirectionLong {
		stop = price - risk
	} else {
		stop = price + risk
	}

	anchor := price
	if ema21, ok := ema21Of(data.get("4h")); ok {
		anchor = ema21
	}
	zone := models.PriceRange{Min: anchor * 0.996, Max: anchor * 1.002}
	rr := []float64{1.0, 2.0}
	targets := rrTargets(price, risk, direction, rr)

	return models.Signal{
		Valid:             true,
		Direction:         direction,
		SetupType:         setupTypeFor(strategy),
		SelectedStrategy:  strategy,
		StrategiesChecked: []string{strategy},
		Confidence:        bias.Confidence,
		EntryZone:         &zone,
		StopLoss:          ptr(stop),
		InvalidationLevel: ptr(stop),
		Targets:           targets,
		RiskReward:        rrRecord(rr),
		ReasonSummary:     "AGGRESSIVE override: 4H FLAT but HTF bias strongly confirmed by 1h/15m",
		Confluence:        models.Confluence{Score: bias.Confidence, HTFConfirmation: true, Notes: []string{"forced override"}},
		ConditionsRequired: []string{},
		HTFBias:           bias,
		Timestamp:         now,
	}, true
}

// setupTypeFor maps a selected-strategy name back to the setupType value a
// caller would have had to pass to EvaluateStrategy to reach it directly.
func setupTypeFor(strategy string) string {
	switch strategy {
	case models.StrategySwing:
		return models.SetupSwing
	case models.StrategyTrend4h:
		return models.Setup4h
	case models.StrategyScalp1h:
		return models.SetupScalp
	case models.StrategyMicroScalp:
		return models.SetupMicroScalp
	default:
		return models.SetupAuto
	}
}

func selectBestSignal(strategies map[string]models.Signal, mode string) *string {
	priority := safeBestSignalPriority
	if mode == models.ModeAggressive {
		priority = aggressiveBestSignalPriority
	}
	for _, name := range priority {
		if strategies[name].Valid {
			n := name
			return &n
		}
	}
	var best string
	bestConfidence := -1.0
	found := false
	for name, sig := range strategies {
		if sig.Valid && sig.Confidence > bestConfidence {
			best = name
			bestConfidence = sig.Confidence
			found = true
		}
	}
	if !found {
		return nil
	}
	return &best
}
