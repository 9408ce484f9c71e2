package strategy

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestEvaluateSwingLong(t *testing.T) {
	data := MultiTFData{
		"3d": tfFixture(models.TrendUptrend, models.PullbackOverextended, models.StochBullish, 112, 100, 80, 120, 2),
		"1d": tfFixture(models.TrendUptrend, models.PullbackRetracing, models.StochBullish, 100, 100, 90, 110, 2),
		"4h": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 1),
	}

	sig := EvaluateSwing(data, neutralBias(), time.Now())

	if !sig.Valid {
		t.Fatalf("expected a valid swing signal, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.Direction != models.DirectionLong {
		t.Fatalf("expected long direction, got %s", sig.Direction)
	}
	if sig.SelectedStrategy != models.StrategySwing {
		t.Fatalf("expected SWING strategy, got %s", sig.SelectedStrategy)
	}
	if len(sig.Targets) != 3 {
		t.Fatalf("expected 3 targets (3R/4R/5R), got %d", len(sig.Targets))
	}
	if sig.Confidence < 70 || sig.Confidence > 90 {
		t.Fatalf("expected confidence in [70,90], got %v", sig.Confidence)
	}
}

func TestEvaluateSwingNoTradeOn1dFlat(t *testing.T) {
	data := MultiTFData{
		"3d": tfFixture(models.TrendUptrend, models.PullbackOverextended, models.StochBullish, 112, 100, 80, 120, 2),
		"1d": tfFixture(models.TrendFlat, models.PullbackRetracing, models.StochNeutral, 100, 100, 90, 110, 2),
		"4h": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 1),
	}

	sig := EvaluateSwing(data, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when 1d trend is FLAT, got a valid signal")
	}
	if sig.Direction != models.DirectionNoTrade {
		t.Fatalf("expected direction NO_TRADE, got %s", sig.Direction)
	}
}

func TestEvaluateSwingMissingTimeframe(t *testing.T) {
	data := MultiTFData{
		"1d": tfFixture(models.TrendUptrend, models.PullbackRetracing, models.StochBullish, 100, 100, 90, 110, 2),
	}

	sig := EvaluateSwing(data, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when 3d/4h data is missing")
	}
}
