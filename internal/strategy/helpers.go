package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

// noTrade wraps models.NoTrade with the evaluator's setup/strategy labels.
func noTrade(setupType, strategy string, checked []string, reason string, bias models.HTFBias, now time.Time) models.Signal {
	return models.NoTrade(setupType, strategy, checked, reason, nil, bias, now)
}

func isPullbackIn(state string, allowed ...string) bool {
	for _, a := range allowed {
		if state == a {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func absFloat(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}

// rrTargets builds target prices from an entry midpoint and a risk
// distance, for each R:R multiple in rr, signed by direction.
func rrTargets(mid, risk float64, direction string, rr []float64) []float64 {
	targets := make([]float64, len(rr))
	sign := 1.0
	if direction == models.DirectionShort {
		sign = -1.0
	}
	for i, r := range rr {
		targets[i] = mid + sign*r*risk
	}
	return targets
}

// rrRecord builds the RiskReward record from the same R:R multiples used to
// build targets (tp1/tp2/tp3, whichever are present).
func rrRecord(rr []float64) *models.RiskReward {
	if len(rr) == 0 {
		return nil
	}
	out := &models.RiskReward{TP1RR: rr[0]}
	if len(rr) > 1 {
		out.TP2RR = ptr(rr[1])
	}
	if len(rr) > 2 {
		out.TP3RR = ptr(rr[2])
	}
	return out
}
