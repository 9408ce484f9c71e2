package timeframe

import (
	"testing"

	"github.com/edittrades/signalcore/internal/models"
)

func buildCandles(n int, start float64) []models.Candle {
	candles := make([]models.Candle, n)
	price := start
	for i := 0; i < n; i++ {
		open := price
		close := price + 1
		candles[i] = models.Candle{
			TimestampMs: int64(i) * 3600000,
			Open:        open,
			High:        close + 0.5,
			Low:         open - 0.5,
			Close:       close,
			Volume:      100 + float64(i),
		}
		price = close
	}
	return candles
}

func TestComposerAnalyzeInsufficientData(t *testing.T) {
	c := NewComposer()
	result := c.Analyze(models.Interval1h, buildCandles(2, 100))
	if result.Error == "" {
		t.Fatal("expected error on insufficient candle history")
	}
	if result.ChartFeatures.LiquidityZones == nil {
		t.Fatal("expected non-nil empty LiquidityZones even on error path")
	}
}

func TestComposerAnalyzeFullSeries(t *testing.T) {
	c := NewComposer()
	result := c.Analyze(models.Interval1h, buildCandles(250, 100))

	if result.Error != "" {
		t.Fatalf("unexpected error: %s", result.Error)
	}
	if result.CandleCount != 250 {
		t.Errorf("expected candle count 250, got %d", result.CandleCount)
	}
	if result.LastCandle == nil {
		t.Fatal("expected last candle to be populated")
	}
	if result.Volume == nil {
		t.Fatal("expected volume info to be populated")
	}
}
