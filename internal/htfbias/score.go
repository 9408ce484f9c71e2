// Package htfbias scores 4h and 1h TimeframeAnalysis summaries into a single
// directional bias consumed by the strategy evaluators.
package htfbias

import "github.com/edittrades/signalcore/internal/models"

// Weights are normative per the scoring table: 4h trend counts twice a 1h
// trend, and each timeframe's stochastic condition contributes a flat 0.5
// (a quarter of the 4h trend weight, half of the 1h trend weight).
const (
	weightTrend4h  = 2.0
	weightTrend1h  = 1.0
	weightStoch4h  = 0.5
	weightStoch1h  = 0.5
)

// side accumulates weight contributed toward long/short by one timeframe,
// so Score can tell which timeframes contributed for the source tag.
type side struct {
	long, short float64
}

func (s side) total() float64 { return s.long + s.short }

// Score combines 4h and 1h analyses into an HTFBias. Either argument may be
// nil (interval fetch failed or too short); Score degrades gracefully,
// treating a nil timeframe as contributing nothing.
func Score(tf4h, tf1h *models.TimeframeAnalysis) models.HTFBias {
	var s4h, s1h side

	if tf4h != nil {
		s4h = scoreTimeframe(tf4h, weightTrend4h, weightStoch4h)
	}
	if tf1h != nil {
		s1h = scoreTimeframe(tf1h, weightTrend1h, weightStoch1h)
	}

	totalLong := s4h.long + s1h.long
	totalShort := s4h.short + s1h.short
	total := totalLong + totalShort

	if total == 0 {
		return models.HTFBias{Direction: models.BiasNeutral, Confidence: 0, Source: models.BiasSourceNone}
	}
	if totalLong == totalShort {
		return models.HTFBias{Direction: models.BiasNeutral, Confidence: 0, Source: models.BiasSourceNone}
	}

	direction := models.BiasLong
	winner := totalLong
	if totalShort > totalLong {
		direction = models.BiasShort
		winner = totalShort
	}

	confidence := int(winner/total*100 + 0.5)
	return models.HTFBias{
		Direction:  direction,
		Confidence: float64(confidence),
		Source:     source(direction, s4h, s1h),
	}
}

// scoreTimeframe scores one timeframe's trend and stochastic condition.
func scoreTimeframe(tf *models.TimeframeAnalysis, trendWeight, stochWeight float64) side {
	var s side
	switch tf.Indicators.Analysis.Trend {
	case models.TrendUptrend:
		s.long += trendWeight
	case models.TrendDowntrend:
		s.short += trendWeight
	}

	switch tf.Indicators.StochRSI.Condition {
	case models.StochBullish, models.StochOversold:
		s.long += stochWeight
	case models.StochBearish, models.StochOverbought:
		s.short += stochWeight
	}
	return s
}

// source reports which timeframes contributed to the winning side: mixed
// when both did, otherwise the one that did. Only weight cast toward
// direction counts — a timeframe that scored
// entirely for the losing side contributed nothing to the winner.
func source(direction string, s4h, s1h side) string {
	var w4h, w1h float64
	if direction == models.BiasLong {
		w4h, w1h = s4h.long, s1h.long
	} else {
		w4h, w1h = s4h.short, s1h.short
	}

	has4h := w4h > 0
	has1h := w1h > 0
	switch {
	case has4h && has1h:
		return models.BiasSourceMixed
	case has4h:
		return models.BiasSource4h
	case has1h:
		return models.BiasSource1h
	default:
		return models.BiasSourceNone
	}
}
