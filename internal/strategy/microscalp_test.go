package strategy

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestEvaluateMicroScalpLong(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 90, 110, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.2, 100, 95, 105, 0.3),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.1, 100, 96, 104, 0.2),
	}

	sig := EvaluateMicroScalp(data, neutralBias(), time.Now())

	if !sig.Valid {
		t.Fatalf("expected a valid micro_scalp signal, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.Direction != models.DirectionLong {
		t.Fatalf("expected long direction, got %s", sig.Direction)
	}
	if sig.Confidence < 60 || sig.Confidence > 75 {
		t.Fatalf("expected confidence in [60,75], got %v", sig.Confidence)
	}
}

func TestEvaluateMicroScalpNoTradeOutsideBand(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 90, 110, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 103, 100, 95, 105, 0.3),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.1, 100, 96, 104, 0.2),
	}

	sig := EvaluateMicroScalp(data, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when 15m price sits far outside the ema21 band")
	}
}

func TestEvaluateMicroScalpNoTradeOn1hFlat(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendFlat, models.PullbackUnknown, models.StochNeutral, 100, 100, 90, 110, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.2, 100, 95, 105, 0.3),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.1, 100, 96, 104, 0.2),
	}

	sig := EvaluateMicroScalp(data, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when 1h trend is FLAT")
	}
}
