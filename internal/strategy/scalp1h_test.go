package strategy

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestEvaluateScalp1HLong(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 90, 110, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 95, 105, 0.5),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 95, 105, 0.2),
	}

	sig := EvaluateScalp1H(data, neutralBias(), time.Now())

	if !sig.Valid {
		t.Fatalf("expected a valid scalp1h signal, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.Direction != models.DirectionLong {
		t.Fatalf("expected long direction, got %s", sig.Direction)
	}
	if sig.Confidence != 60 {
		t.Fatalf("expected baseline 60 confidence with neutral bias, got %v", sig.Confidence)
	}
}

func TestEvaluateScalp1HBiasBoostsConfidence(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 90, 110, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 95, 105, 0.5),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 95, 105, 0.2),
	}
	bias := models.HTFBias{Direction: models.BiasLong, Confidence: 90}

	sig := EvaluateScalp1H(data, bias, time.Now())

	if !sig.Valid {
		t.Fatalf("expected a valid scalp1h signal, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.Confidence <= 60 {
		t.Fatalf("expected bias alignment to boost confidence above baseline, got %v", sig.Confidence)
	}
}

func TestEvaluateScalp1HFallsBackTo4hStructureStop(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 101, 100, 0, 0, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 0, 0, 0.5),
		"5m":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 0, 0, 0.2),
		"4h":  tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100, 100, 92, 108, 2),
	}

	sig := EvaluateScalp1H(data, neutralBias(), time.Now())

	if !sig.Valid {
		t.Fatalf("expected a valid scalp1h signal via the 4h structure stop fallback, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.StopLoss == nil || *sig.StopLoss != 92 {
		t.Fatalf("expected stop loss from 4h swing low (92) when 5m/15m have no structure, got %v", sig.StopLoss)
	}
}

func TestEvaluateScalp1HNoTradeOnFlat(t *testing.T) {
	data := MultiTFData{
		"1h":  tfFixture(models.TrendFlat, models.PullbackUnknown, models.StochNeutral, 100, 100, 90, 110, 1),
		"15m": tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 100.5, 100, 95, 105, 0.5),
	}

	sig := EvaluateScalp1H(data, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when 1h trend is FLAT")
	}
}
