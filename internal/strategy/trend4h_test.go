package strategy

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestEvaluateTrend4HLong(t *testing.T) {
	data := MultiTFData{
		"4h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 90, 110, 2),
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 98, 103, 0.5),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 99, 102, 0.2),
	}

	sig := EvaluateTrend4H(data, models.ModeSafe, neutralBias(), time.Now())

	if !sig.Valid {
		t.Fatalf("expected a valid trend4h signal, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.Direction != models.DirectionLong {
		t.Fatalf("expected long direction, got %s", sig.Direction)
	}
	if sig.Confidence != 100 {
		t.Fatalf("expected max confidence 100 with full confluence, got %v", sig.Confidence)
	}
	if len(sig.Targets) != 2 {
		t.Fatalf("expected 2 targets (1R/2R), got %d", len(sig.Targets))
	}
}

func TestEvaluateTrend4HNoTradeOnFlatInSafeMode(t *testing.T) {
	data := MultiTFData{
		"4h": tfFixture(models.TrendFlat, models.PullbackUnknown, models.StochNeutral, 100, 100, 90, 110, 2),
		"1h": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 1),
	}

	sig := EvaluateTrend4H(data, models.ModeSafe, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when 4h is FLAT in SAFE mode")
	}
}

func TestEvaluateTrend4HAggressiveFlatOverride(t *testing.T) {
	data := MultiTFData{
		"4h":  tfFixture(models.TrendFlat, models.PullbackEntryZone, models.StochBullish, 101, 100, 90, 110, 2),
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 98, 103, 0.5),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 99, 102, 0.2),
	}
	bias := models.HTFBias{Direction: models.BiasLong, Confidence: 80}

	sig := EvaluateTrend4H(data, models.ModeAggressive, bias, time.Now())

	if !sig.Valid {
		t.Fatalf("expected AGGRESSIVE mode to treat FLAT 4h as the bias direction, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.Direction != models.DirectionLong {
		t.Fatalf("expected long direction from bias override, got %s", sig.Direction)
	}
}
