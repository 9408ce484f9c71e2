package strategy

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestEvaluateStrategyExplicitSetupType(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 90, 110, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 95, 105, 0.5),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 95, 105, 0.2),
	}

	sig := EvaluateStrategy(data, models.SetupScalp, models.ModeSafe, neutralBias(), time.Now())

	if !sig.Valid || sig.SelectedStrategy != models.StrategyScalp1h {
		t.Fatalf("expected explicit Scalp setupType to dispatch straight to SCALP_1H, got valid=%v strategy=%s", sig.Valid, sig.SelectedStrategy)
	}
}

func TestEvaluateStrategyAutoCascadeFallsThroughToNoTrade(t *testing.T) {
	data := MultiTFData{}

	sig := EvaluateStrategy(data, models.SetupAuto, models.ModeSafe, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when no timeframe data is available at all")
	}
	if sig.Direction != models.DirectionNoTrade {
		t.Fatalf("expected direction NO_TRADE, got %s", sig.Direction)
	}
	if len(sig.ConditionsRequired) == 0 {
		t.Fatalf("expected normalizer to have filled conditionsRequired, got empty")
	}
}

func TestEvaluateStrategyAutoCascadePrefersSwing(t *testing.T) {
	data := MultiTFData{
		"3d": tfFixture(models.TrendUptrend, models.PullbackOverextended, models.StochBullish, 112, 100, 80, 120, 2),
		"1d": tfFixture(models.TrendUptrend, models.PullbackRetracing, models.StochBullish, 100, 100, 90, 110, 2),
		"4h": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 95, 105, 1),
	}

	sig := EvaluateStrategy(data, models.SetupAuto, models.ModeSafe, neutralBias(), time.Now())

	if !sig.Valid || sig.SelectedStrategy != models.StrategySwing {
		t.Fatalf("expected the auto cascade to pick SWING first when it qualifies, got valid=%v strategy=%s", sig.Valid, sig.SelectedStrategy)
	}
}
