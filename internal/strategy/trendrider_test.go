package strategy

import (
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
)

func TestEvaluateTrendRiderStrongConfluenceLong(t *testing.T) {
	tf4h := tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 105, 100, 95, 110, 1)
	tf4h.ChartFeatures.MarketStructure.CurrentStructure = models.StructureUptrend
	tf4h.ChartFeatures.LiquidityZones = []models.LiquidityZone{
		{Type: "equal_lows", Price: 98, Count: 2},
		{Type: "equal_lows", Price: 97, Count: 2},
	}
	tf4h.ChartFeatures.FairValueGaps = []models.FairValueGap{{Direction: "bullish", Top: 102, Bottom: 100, Filled: false}}
	tf4h.ChartFeatures.Divergences = []models.Divergence{{Side: "bullish", Type: "regular", Indicator: "rsi"}}
	tf4h.ChartFeatures.VolumeProfile = models.VolumeProfile{ValueAreaHigh: 100, ValueAreaLow: 90}

	tf1h := tfFixture(models.TrendUptrend, models.PullbackRetracing, models.StochBullish, 104, 100, 95, 110, 0.8)
	tf1h.ChartFeatures.MarketStructure.CurrentStructure = models.StructureUptrend

	data := MultiTFData{"4h": tf4h, "1h": tf1h}
	bias := models.HTFBias{Direction: models.BiasLong, Confidence: 100, Source: models.BiasSource4h}

	sig := EvaluateTrendRider(data, models.ModeSafe, bias, time.Now())

	if !sig.Valid {
		t.Fatalf("expected a valid trend_rider signal, got NO_TRADE: %s", sig.ReasonSummary)
	}
	if sig.Direction != models.DirectionLong {
		t.Fatalf("expected long direction, got %s", sig.Direction)
	}
	if sig.SelectedStrategy != models.StrategyTrendRider {
		t.Fatalf("expected strong dual-timeframe confluence to dispatch to TREND_RIDER, got %s", sig.SelectedStrategy)
	}
	if len(sig.Targets) != 3 {
		t.Fatalf("expected 3 targets (1R/2R/3R), got %d", len(sig.Targets))
	}
}

func TestEvaluateTrendRiderNoTradeBelowThreshold(t *testing.T) {
	tf4h := tfFixture(models.TrendFlat, models.PullbackUnknown, models.StochNeutral, 100, 100, 95, 110, 1)
	tf1h := tfFixture(models.TrendFlat, models.PullbackUnknown, models.StochNeutral, 100, 100, 95, 110, 0.8)

	data := MultiTFData{"4h": tf4h, "1h": tf1h}

	sig := EvaluateTrendRider(data, models.ModeSafe, neutralBias(), time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when confluence score is below the mode threshold")
	}
}

func TestEvaluateTrendRiderNoTradeOnHighVolatility(t *testing.T) {
	tf4h := tfFixture(models.TrendUptrend, models.PullbackEntryZone, models.StochBullish, 105, 100, 95, 110, 10)
	tf4h.ChartFeatures.MarketStructure.CurrentStructure = models.StructureUptrend
	tf4h.ChartFeatures.LiquidityZones = []models.LiquidityZone{
		{Type: "equal_lows", Price: 98, Count: 2},
		{Type: "equal_lows", Price: 97, Count: 2},
	}
	tf4h.ChartFeatures.FairValueGaps = []models.FairValueGap{{Direction: "bullish", Top: 102, Bottom: 100, Filled: false}}
	tf4h.ChartFeatures.Divergences = []models.Divergence{{Side: "bullish", Type: "regular", Indicator: "rsi"}}
	tf4h.ChartFeatures.VolumeProfile = models.VolumeProfile{ValueAreaHigh: 100, ValueAreaLow: 90}
	tf1h := tfFixture(models.TrendUptrend, models.PullbackRetracing, models.StochBullish, 104, 100, 95, 110, 0.8)
	tf1h.ChartFeatures.MarketStructure.CurrentStructure = models.StructureUptrend

	data := MultiTFData{"4h": tf4h, "1h": tf1h}
	bias := models.HTFBias{Direction: models.BiasLong, Confidence: 100}

	sig := EvaluateTrendRider(data, models.ModeSafe, bias, time.Now())

	if sig.Valid {
		t.Fatalf("expected NO_TRADE when 4h ATR%% exceeds the SAFE-mode ceiling")
	}
}
