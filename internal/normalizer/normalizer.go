// Package normalizer enforces the canonical Signal shape on every emitted
// signal, valid or not, so callers never need to special-case a strategy's
// internal representation.
package normalizer

import (
	"fmt"
	"strings"

	"github.com/edittrades/signalcore/internal/models"
)

// allCheckedStrategies names the four strategies a NO_TRADE reason must
// enumerate (TREND_RIDER is the confluence auto-router, not one of the
// four canonical setups the human-readable reason names).
var allCheckedStrategies = []string{
	models.StrategySwing, models.StrategyTrend4h, models.StrategyScalp1h, models.StrategyMicroScalp,
}

// Normalize enforces every guarantee from the canonical-shape section:
// non-nil containers, a recomputed htfConfirmation, a default "auto"
// setupType, and a fully-enumerated NO_TRADE reason. distanceFrom4hEMA21
// is the 4h timeframe's signed percent distance from its ema21, when the
// caller has one available; nil renders the documented placeholder note
// instead of a literal "N/A%".
func Normalize(sig models.Signal, distanceFrom4hEMA21 *float64) models.Signal {
	if sig.SetupType == "" {
		sig.SetupType = models.SetupAuto
	}
	if sig.StrategiesChecked == nil {
		sig.StrategiesChecked = []string{}
	}
	if sig.Targets == nil {
		sig.Targets = []float64{}
	}
	if sig.ConditionsRequired == nil {
		sig.ConditionsRequired = []string{}
	}
	if sig.Confluence.Notes == nil {
		sig.Confluence.Notes = []string{}
	}

	sig.Confluence.HTFConfirmation = sig.HTFBias.Direction != models.BiasNeutral && sig.HTFBias.Direction == sig.Direction

	if !sig.Valid {
		sig.Direction = models.DirectionNoTrade
		sig.Confidence = 0
		sig.EntryZone = nil
		sig.StopLoss = nil
		sig.InvalidationLevel = nil
		sig.Targets = []float64{}
		sig.RiskReward = nil
		if len(sig.ConditionsRequired) == 0 || allEqualReason(sig.ConditionsRequired, sig.ReasonSummary) {
			sig.ConditionsRequired = enumerateReasons(sig.ReasonSummary)
		}
	} else {
		sig.Confidence = clampConfidence(sig.Confidence)
	}

	sig.Confluence.Notes = append(withoutPositioningNote(sig.Confluence.Notes), positioningNote(distanceFrom4hEMA21))

	return sig
}

// clampConfidence enforces the uniform 0-100 integer scale; a caller that
// passed a 0-1 fraction by mistake is scaled up rather than truncated to 0.
func clampConfidence(confidence float64) float64 {
	if confidence > 0 && confidence <= 1 {
		confidence *= 100
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

func allEqualReason(conditions []string, reason string) bool {
	return len(conditions) == 1 && conditions[0] == reason
}

// enumerateReasons builds the full, human-readable NO_TRADE
// conditionsRequired list naming all four checked strategies.
func enumerateReasons(reason string) []string {
	out := make([]string, 0, len(allCheckedStrategies))
	for _, name := range allCheckedStrategies {
		out = append(out, fmt.Sprintf("%s: %s", name, reason))
	}
	return out
}

const positioningNotePlaceholder = "Awaiting price positioning data"

// withoutPositioningNote drops a previously-appended positioning note so
// re-normalizing an already-normalized signal replaces it instead of
// accumulating duplicates.
func withoutPositioningNote(notes []string) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		if n == positioningNotePlaceholder || strings.HasSuffix(n, "% from 4H 21 EMA") {
			continue
		}
		out = append(out, n)
	}
	return out
}

// positioningNote renders the 4h-distance-from-ema21 confluence note, or
// the documented placeholder when the caller had no 4h timeframe to read
// it from — never the literal "N/A%".
func positioningNote(distanceFrom4hEMA21 *float64) string {
	if distanceFrom4hEMA21 == nil {
		return positioningNotePlaceholder
	}
	return fmt.Sprintf("%.2f%% from 4H 21 EMA", *distanceFrom4hEMA21)
}
