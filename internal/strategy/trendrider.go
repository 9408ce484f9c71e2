package strategy

import (
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

// Weights for the TREND_RIDER confluence score. Each is applied as a
// magnitude; sign follows whether the underlying feature agrees or
// disagrees with the side being scored.
const (
	weightHTFAlignment   = 20.0
	weightStructure4h    = 10.0
	weightStructure1h    = 7.0
	weightPullback4h     = 8.0
	weightPullback1h     = 5.0
	weightLiquidityMax   = 15.0
	weightLiquidityEach  = 5.0
	weightFVG            = 10.0
	weightDivergenceReg  = 10.0
	weightDivergenceHid  = 5.0
	weightVolumeProfile  = 7.0
	weightVolumeMidRange = -3.0

	trendRiderSafeMinScore       = 70.0
	trendRiderAggressiveMinScore = 50.0
	trendRiderSafeMaxATRPct      = 3.0
	trendRiderAggressiveMaxATRPct = 5.0

	trendRiderStrongThreshold = 75.0
)

var trendRiderRR = []float64{1.0, 2.0, 3.0}

// EvaluateTrendRider runs the confluence-scoring engine over the 4h and 1h
// timeframes (other timeframes in data are not scored) and, on pass,
// dispatches to one of
// {TREND_RIDER, TREND_4H, SCALP_1H, SWING} by strength sub-rules.
func EvaluateTrendRider(data MultiTFData, mode string, bias models.HTFBias, now time.Time) models.Signal {
	checked := []string{models.StrategyTrendRider}
	tf4h := data.get("4h")
	tf1h := data.get("1h")
	if tf4h == nil || tf1h == nil {
		return noTrade(models.SetupAuto, models.StrategyTrendRider, checked, "missing 4h/1h timeframe data", bias, now)
	}

	longScore, longNotes := scoreSide(models.DirectionLong, tf4h, tf1h, bias)
	shortScore, shortNotes := scoreSide(models.DirectionShort, tf4h, tf1h, bias)

	direction := models.DirectionLong
	score := longScore
	notes := longNotes
	if shortScore > longScore {
		direction = models.DirectionShort
		score = shortScore
		notes = shortNotes
	}

	atrPct := tf4h.Volatility.ATRPctOfPrice

	var minScore, maxATRPct float64
	requireAlignment := false
	switch mode {
	case models.ModeAggressive:
		minScore = trendRiderAggressiveMinScore
		maxATRPct = trendRiderAggressiveMaxATRPct
	default:
		minScore = trendRiderSafeMinScore
		maxATRPct = trendRiderSafeMaxATRPct
		requireAlignment = true
	}

	if score < minScore {
		return noTrade(models.SetupAuto, models.StrategyTrendRider, checked, "confluence score below mode threshold", bias, now)
	}
	if atrPct > maxATRPct {
		return noTrade(models.SetupAuto, models.StrategyTrendRider, checked, "volatility too high for mode", bias, now)
	}
	if requireAlignment && bias.Direction != direction {
		return noTrade(models.SetupAuto, models.StrategyTrendRider, checked, "HTF bias does not align with confluence direction", bias, now)
	}

	wantTrend := models.TrendUptrend
	if direction == models.DirectionShort {
		wantTrend = models.TrendDowntrend
	}
	strong4h := structureMatches(tf4h.ChartFeatures.MarketStructure.CurrentStructure, direction) && trendOf(tf4h) == wantTrend
	strong1h := structureMatches(tf1h.ChartFeatures.MarketStructure.CurrentStructure, direction) && trendOf(tf1h) == wantTrend

	selected := models.StrategyTrendRider
	atrMultiplier := 1.5
	switch {
	case strong4h && strong1h && score >= trendRiderStrongThreshold:
		selected = models.StrategyTrendRider
		atrMultiplier = 2.0
	case strong4h:
		selected = models.StrategyTrend4h
	case trendOf(tf1h) == wantTrend:
		selected = models.StrategyScalp1h
	default:
		selected = models.StrategySwing
	}

	price, havePrice := priceOf(tf4h)
	if !havePrice {
		return noTrade(models.SetupAuto, models.StrategyTrendRider, checked, "no current price available", bias, now)
	}
	atr := tf4h.Volatility.ATR
	if atr <= 0 {
		return noTrade(models.SetupAuto, models.StrategyTrendRider, checked, "no ATR available to size stop/targets", bias, now)
	}

	risk := atr * atrMultiplier
	zone := models.PriceRange{Min: price * 0.997, Max: price * 1.003}
	var stop float64
	if direction == models.DirectionLong {
		stop = price - risk
	} else {
		stop = price + risk
	}

	targets := rrTargets(price, risk, direction, trendRiderRR)
	if len(targets) == 3 {
		if tp3, ok := liquidityTarget(tf4h, direction); ok {
			targets[2] = tp3
		}
	}

	sig := models.Signal{
		Valid:             true,
		Direction:         direction,
		SetupType:         models.SetupAuto,
		SelectedStrategy:  selected,
		StrategiesChecked: checked,
		Confidence:        clamp(score, 0, 100),
		EntryZone:         &zone,
		StopLoss:          ptr(stop),
		InvalidationLevel: ptr(stop),
		Targets:           targets,
		RiskReward:        rrRecord(trendRiderRR),
		ReasonSummary:     "Confluence scoring across all timeframes",
		Confluence:        models.Confluence{Score: score, HTFConfirmation: bias.Direction == direction, Notes: notes},
		ConditionsRequired: []string{},
		HTFBias:           bias,
		Timestamp:         now,
	}
	return sig
}

// scoreSide computes the weighted confluence score for one candidate
// direction, returning the score and the notes describing which factors
// contributed.
func scoreSide(direction string, tf4h, tf1h *models.TimeframeAnalysis, bias models.HTFBias) (float64, []string) {
	var score float64
	var notes []string

	if bias.Direction == direction {
		contribution := weightHTFAlignment * (bias.Confidence / 100)
		score += contribution
		notes = append(notes, "HTF bias aligned")
	} else if bias.Direction != models.BiasNeutral {
		score -= weightHTFAlignment * (bias.Confidence / 100)
	}

	score += signedStructureScore(tf4h.ChartFeatures.MarketStructure.CurrentStructure, direction, weightStructure4h)
	score += signedStructureScore(tf1h.ChartFeatures.MarketStructure.CurrentStructure, direction, weightStructure1h)

	if isPullbackIn(pullbackOf(tf4h), models.PullbackEntryZone, models.PullbackRetracing) {
		score += weightPullback4h
		notes = append(notes, "4h pullback to ema21")
	}
	if isPullbackIn(pullbackOf(tf1h), models.PullbackEntryZone, models.PullbackRetracing) {
		score += weightPullback1h
		notes = append(notes, "1h pullback to ema21")
	}

	zoneType := "equal_lows"
	if direction == models.DirectionShort {
		zoneType = "equal_highs"
	}
	count := 0
	for _, z := range tf4h.ChartFeatures.LiquidityZones {
		if z.Type == zoneType {
			count++
		}
	}
	score += minFloat(float64(count)*weightLiquidityEach, weightLiquidityMax)

	for _, gap := range tf4h.ChartFeatures.FairValueGaps {
		if gap.Filled {
			continue
		}
		if (direction == models.DirectionLong && gap.Direction == "bullish") ||
			(direction == models.DirectionShort && gap.Direction == "bearish") {
			score += weightFVG
			notes = append(notes, "unfilled FVG supports direction")
		} else {
			score -= weightFVG
		}
	}

	for _, div := range tf4h.ChartFeatures.Divergences {
		weight := weightDivergenceHid
		if div.Type == "regular" {
			weight = weightDivergenceReg
		}
		if (direction == models.DirectionLong && div.Side == "bullish") ||
			(direction == models.DirectionShort && div.Side == "bearish") {
			score += weight
		} else {
			score -= weight
		}
	}

	score += volatilityScore(tf4h.Volatility.State)
	score += volumeProfileScore(tf4h, direction)

	return score, notes
}

// signedStructureScore rewards a matching market-structure side and
// penalizes a conflicting one; flat/unknown contribute nothing.
func signedStructureScore(structure, direction string, weight float64) float64 {
	if structureMatches(structure, direction) {
		return weight
	}
	if structureMatches(structure, oppositeDirection(direction)) {
		return -weight
	}
	return 0
}

func structureMatches(structure, direction string) bool {
	if direction == models.DirectionLong {
		return structure == models.StructureUptrend
	}
	return structure == models.StructureDowntrend
}

func oppositeDirection(direction string) string {
	if direction == models.DirectionLong {
		return models.DirectionShort
	}
	return models.DirectionLong
}

func volatilityScore(state string) float64 {
	switch state {
	case models.VolatilityExtreme:
		return -8
	case models.VolatilityHigh:
		return -3
	case models.VolatilityNormal:
		return 5
	case models.VolatilityLow:
		return 2
	default:
		return 0
	}
}

// volumeProfileScore rewards price trading outside the value area in the
// trade direction and penalizes sitting mid-range inside it.
func volumeProfileScore(tf *models.TimeframeAnalysis, direction string) float64 {
	price, ok := priceOf(tf)
	if !ok {
		return 0
	}
	vp := tf.ChartFeatures.VolumeProfile
	if vp.ValueAreaHigh == 0 && vp.ValueAreaLow == 0 {
		return 0
	}
	if direction == models.DirectionLong && price > vp.ValueAreaHigh {
		return weightVolumeProfile
	}
	if direction == models.DirectionShort && price < vp.ValueAreaLow {
		return weightVolumeProfile
	}
	if price >= vp.ValueAreaLow && price <= vp.ValueAreaHigh {
		return weightVolumeMidRange
	}
	return 0
}

// liquidityTarget picks the nearest equal-high/low zone in the trade
// direction to serve as tp3, if one exists.
func liquidityTarget(tf *models.TimeframeAnalysis, direction string) (float64, bool) {
	price, ok := priceOf(tf)
	if !ok {
		return 0, false
	}
	zoneType := "equal_highs"
	if direction == models.DirectionShort {
		zoneType = "equal_lows"
	}
	best := 0.0
	found := false
	for _, z := range tf.ChartFeatures.LiquidityZones {
		if z.Type != zoneType {
			continue
		}
		if direction == models.DirectionLong && z.Price <= price {
			continue
		}
		if direction == models.DirectionShort && z.Price >= price {
			continue
		}
		if !found || (direction == models.DirectionLong && z.Price < best) || (direction == models.DirectionShort && z.Price > best) {
			best = z.Price
			found = true
		}
	}
	return best, found
}
