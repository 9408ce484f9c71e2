package strategy

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestEvaluateAllStrategiesSafeModeForcesNoTradeOn4hFlat(t *testing.T) {
	data := MultiTFData{
		"4h": tfFixture(models.TrendFlat, models.PullbackUnknown, models.StochNeutral, 100, 100, 90, 110, 1),
		"1h": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 0.5),
	}

	result := EvaluateAllStrategies(data, models.ModeSafe, neutralBias(), time.Now())

	if result.BestSignal != nil {
		t.Fatalf("expected no best signal when SAFE mode forces NO_TRADE, got %v", *result.BestSignal)
	}
	if len(result.Strategies) != len(AllStrategies) {
		t.Fatalf("expected all %d strategies present, got %d", len(AllStrategies), len(result.Strategies))
	}
	for _, name := range AllStrategies {
		sig, ok := result.Strategies[name]
		if !ok {
			t.Fatalf("expected strategy %s to be present in the result", name)
		}
		if sig.Valid {
			t.Fatalf("expected strategy %s forced to NO_TRADE when 4h is FLAT in SAFE mode, got valid", name)
		}
	}
}

func TestEvaluateAllStrategiesAggressiveOverrideForcesOneValid(t *testing.T) {
	tf4h := tfFixture(models.TrendFlat, models.PullbackUnknown, models.StochNeutral, 101, 100, 90, 110, 1)
	tf1h := tfFixture(models.TrendUptrend, models.PullbackOverextended, models.StochBullish, 101, 100, 95, 105, 0.5)
	tf15m := tfFixture(models.TrendUptrend, models.PullbackOverextended, models.StochBearish, 101, 100, 98, 103, 0.3)
	tf5m := tfFixture(models.TrendUptrend, models.PullbackOverextended, models.StochBearish, 101, 100, 99, 102, 0.2)

	data := MultiTFData{"4h": tf4h, "1h": tf1h, "15m": tf15m, "5m": tf5m}
	bias := models.HTFBias{Direction: models.BiasLong, Confidence: 80, Source: models.BiasSource4h}

	result := EvaluateAllStrategies(data, models.ModeAggressive, bias, time.Now())

	if !result.OverrideUsed {
		t.Fatalf("expected the AGGRESSIVE override to engage when every priority strategy organically fails")
	}
	if len(result.OverrideNotes) == 0 {
		t.Fatalf("expected an override note explaining the forced signal")
	}
	if result.BestSignal == nil {
		t.Fatalf("expected a best signal after the override forced one valid")
	}
	forced, ok := result.Strategies[*result.BestSignal]
	if !ok || !forced.Valid {
		t.Fatalf("expected the best signal to reference a valid forced strategy, got %+v", forced)
	}
	if forced.Direction != models.DirectionLong {
		t.Fatalf("expected the forced signal direction to follow HTF bias, got %s", forced.Direction)
	}
}

func TestEvaluateAllStrategiesSelectsHighestPriorityValidSignal(t *testing.T) {
	data := MultiTFData{
		"3d": tfFixture(models.TrendUptrend, models.PullbackOverextended, models.StochBullish, 112, 100, 80, 120, 2),
		"1d": tfFixture(models.TrendUptrend, models.PullbackRetracing, models.StochBullish, 100, 100, 90, 110, 2),
		"4h": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 1),
		"1h": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 0.5),
	}

	result := EvaluateAllStrategies(data, models.ModeSafe, neutralBias(), time.Now())

	if result.BestSignal == nil {
		t.Fatalf("expected a best signal, got none")
	}
	if *result.BestSignal != models.StrategyTrend4h {
		t.Fatalf("expected SAFE priority to prefer TREND_4H when both SWING and TREND_4H qualify, got %s", *result.BestSignal)
	}
}
