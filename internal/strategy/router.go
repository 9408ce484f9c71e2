package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/normalizer"
)

// EvaluateStrategy dispatches to a single evaluator when setupType is
// explicit; for setupType="auto" it cascades SWING -> TREND_4H -> SCALP_1H
// -> (AGGRESSIVE overrides) -> NO_TRADE, returning the first valid result.
// The returned signal always passes through normalizer.Normalize.
func EvaluateStrategy(data MultiTFData, setupType, mode string, bias models.HTFBias, now time.Time) models.Signal {
	dist := distance4hPtr(data)
	switch setupType {
	case models.SetupSwing:
		return normalizer.Normalize(EvaluateSwing(data, bias, now), dist)
	case models.Setup4h:
		return normalizer.Normalize(EvaluateTrend4H(data, mode, bias, now), dist)
	case models.SetupScalp:
		return normalizer.Normalize(EvaluateScalp1H(data, bias, now), dist)
	case models.SetupMicroScalp:
		return normalizer.Normalize(EvaluateMicroScalp(data, bias, now), dist)
	}
	return normalizer.Normalize(autoRoute(data, mode, bias, now), dist)
}

// distance4hPtr reports the 4h timeframe's percent distance from its
// ema21, or nil when no 4h analysis is available to read it from.
func distance4hPtr(data MultiTFData) *float64 {
	tf4h := data.get("4h")
	if tf4h == nil {
		return nil
	}
	d := distanceFromEMA21(tf4h)
	return &d
}

// autoRoute implements the auto-setupType cascade.
func autoRoute(data MultiTFData, mode string, bias models.HTFBias, now time.Time) models.Signal {
	if sig := EvaluateSwing(data, bias, now); sig.Valid {
		return sig
	}
	if sig := EvaluateTrend4H(data, mode, bias, now); sig.Valid {
		return sig
	}
	if sig := EvaluateScalp1H(data, bias, now); sig.Valid {
		return sig
	}
	if mode == models.ModeAggressive {
		if sig := EvaluateMicroScalp(data, bias, now); sig.Valid {
			return sig
		}
	}
	checked := []string{models.StrategySwing, models.StrategyTrend4h, models.StrategyScalp1h, models.StrategyMicroScalp}
	return noTrade(models.SetupAuto, models.StrategyNoTrade, checked, "no strategy in the cascade produced a valid setup", bias, now)
}
