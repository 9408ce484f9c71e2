package normalizer

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestNormalizeIsIdempotent(t *testing.T) {
	dist := 1.25
	bias := models.HTFBias{Direction: models.BiasLong, Confidence: 80, Source: models.BiasSource4h}
	sig := models.Signal{
		Valid:             true,
		Direction:         models.DirectionLong,
		SetupType:         models.SetupSwing,
		SelectedStrategy:  models.StrategySwing,
		Confidence:        0.72,
		Targets:           []float64{101, 102, 103},
		RiskReward:        &models.RiskReward{TP1RR: 3},
		ReasonSummary:     "aligned structure",
		Confluence:        models.Confluence{Score: 70},
		HTFBias:           bias,
		Timestamp:         time.Unix(0, 0),
	}

	once := Normalize(sig, &dist)
	twice := Normalize(once, &dist)

	if once.Confidence != twice.Confidence {
		t.Fatalf("confidence not stable across repeated normalization: %v vs %v", once.Confidence, twice.Confidence)
	}
	if once.Confluence.HTFConfirmation != twice.Confluence.HTFConfirmation {
		t.Fatalf("htfConfirmation not stable: %v vs %v", once.Confluence.HTFConfirmation, twice.Confluence.HTFConfirmation)
	}
	if len(once.Confluence.Notes) != len(twice.Confluence.Notes) {
		t.Fatalf("notes grew on repeated normalization: %v vs %v", once.Confluence.Notes, twice.Confluence.Notes)
	}
	if len(once.ConditionsRequired) != len(twice.ConditionsRequired) {
		t.Fatalf("conditionsRequired changed on repeated normalization: %v vs %v", once.ConditionsRequired, twice.ConditionsRequired)
	}
}

func TestNormalizeClampsFractionalConfidence(t *testing.T) {
	sig := models.Signal{Valid: true, Direction: models.DirectionLong, Confidence: 0.72, HTFBias: models.HTFBias{Direction: models.BiasNeutral}}
	out := Normalize(sig, nil)
	if out.Confidence != 72 {
		t.Fatalf("expected fractional confidence scaled to 72, got %v", out.Confidence)
	}
}

func TestNormalizeClampsOutOfRangeConfidence(t *testing.T) {
	sig := models.Signal{Valid: true, Direction: models.DirectionLong, Confidence: 150, HTFBias: models.HTFBias{Direction: models.BiasNeutral}}
	if out := Normalize(sig, nil); out.Confidence != 100 {
		t.Fatalf("expected confidence clamped to 100, got %v", out.Confidence)
	}

	sig.Confidence = -5
	if out := Normalize(sig, nil); out.Confidence != 0 {
		t.Fatalf("expected negative confidence clamped to 0, got %v", out.Confidence)
	}
}

func TestNormalizeNullsFieldsOnNoTrade(t *testing.T) {
	zone := models.PriceRange{Min: 1, Max: 2}
	stop := 1.5
	sig := models.Signal{
		Valid:             false,
		Direction:         models.DirectionLong,
		Confidence:        55,
		EntryZone:         &zone,
		StopLoss:          &stop,
		InvalidationLevel: &stop,
		Targets:           []float64{10, 20},
		RiskReward:        &models.RiskReward{TP1RR: 1},
		ReasonSummary:     "4h trend is FLAT",
		HTFBias:           models.HTFBias{Direction: models.BiasNeutral},
	}

	out := Normalize(sig, nil)

	if out.Direction != models.DirectionNoTrade {
		t.Fatalf("expected direction forced to NO_TRADE, got %q", out.Direction)
	}
	if out.Confidence != 0 {
		t.Fatalf("expected confidence zeroed, got %v", out.Confidence)
	}
	if out.EntryZone != nil || out.StopLoss != nil || out.InvalidationLevel != nil || out.RiskReward != nil {
		t.Fatalf("expected price fields nulled on NO_TRADE, got %+v", out)
	}
	if len(out.Targets) != 0 {
		t.Fatalf("expected empty targets, got %v", out.Targets)
	}
}

func TestNormalizeEnumeratesNoTradeReasons(t *testing.T) {
	sig := models.Signal{
		Valid:         false,
		Direction:     models.DirectionLong,
		ReasonSummary: "4H trend is FLAT — no trade allowed per SAFE rules",
		HTFBias:       models.HTFBias{Direction: models.BiasNeutral},
	}

	out := Normalize(sig, nil)

	if len(out.ConditionsRequired) != len(allCheckedStrategies) {
		t.Fatalf("expected one condition per checked strategy, got %d: %v", len(out.ConditionsRequired), out.ConditionsRequired)
	}
	for _, name := range allCheckedStrategies {
		found := false
		for _, c := range out.ConditionsRequired {
			if c == name+": "+sig.ReasonSummary {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected a condition naming strategy %s, got %v", name, out.ConditionsRequired)
		}
	}
}

func TestNormalizeRecomputesHTFConfirmation(t *testing.T) {
	sig := models.Signal{
		Valid:     true,
		Direction: models.DirectionLong,
		HTFBias:   models.HTFBias{Direction: models.BiasShort, Confidence: 90},
		// A stale true value the evaluator might have left set; normalize
		// must override it from direction/bias rather than trust it.
		Confluence: models.Confluence{HTFConfirmation: true},
	}

	out := Normalize(sig, nil)
	if out.Confluence.HTFConfirmation {
		t.Fatalf("expected htfConfirmation recomputed false for opposing bias, got true")
	}

	sig.HTFBias.Direction = models.BiasLong
	sig.Confluence.HTFConfirmation = false
	out = Normalize(sig, nil)
	if !out.Confluence.HTFConfirmation {
		t.Fatalf("expected htfConfirmation recomputed true for matching bias, got false")
	}
}

func TestNormalizePositioningNotePlaceholderWithoutDistance(t *testing.T) {
	sig := models.Signal{Valid: true, Direction: models.DirectionLong, HTFBias: models.HTFBias{Direction: models.BiasNeutral}}
	out := Normalize(sig, nil)
	last := out.Confluence.Notes[len(out.Confluence.Notes)-1]
	if last != "Awaiting price positioning data" {
		t.Fatalf("expected placeholder positioning note, got %q", last)
	}
}

func TestNormalizePositioningNoteWithDistance(t *testing.T) {
	dist := -2.37
	sig := models.Signal{Valid: true, Direction: models.DirectionLong, HTFBias: models.HTFBias{Direction: models.BiasNeutral}}
	out := Normalize(sig, &dist)
	last := out.Confluence.Notes[len(out.Confluence.Notes)-1]
	if last != "-2.37% from 4H 21 EMA" {
		t.Fatalf("expected formatted distance note, got %q", last)
	}
}

func TestNormalizeFillsNonNilContainers(t *testing.T) {
	sig := models.Signal{Valid: true, Direction: models.DirectionLong, HTFBias: models.HTFBias{Direction: models.BiasNeutral}}
	out := Normalize(sig, nil)
	if out.StrategiesChecked == nil || out.Targets == nil || out.ConditionsRequired == nil || out.Confluence.Notes == nil {
		t.Fatalf("expected non-nil containers, got %+v", out)
	}
	if out.SetupType != models.SetupAuto {
		t.Fatalf("expected default setupType %q, got %q", models.SetupAuto, out.SetupType)
	}
}
