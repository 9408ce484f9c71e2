package marketdata

import (
	"testing"

	"github.com/edittrades/signalcore/internal/models"
)

func dailyCandle(ts int64, open, high, low, close, volume float64) models.Candle {
	return models.Candle{TimestampMs: ts, Open: open, High: high, Low: low, Close: close, Volume: volume}
}

func TestAggregateCandles3dFrom1d(t *testing.T) {
	daily := []models.Candle{
		dailyCandle(0, 100, 110, 95, 105, 1000),
		dailyCandle(86400000, 105, 115, 100, 108, 1200),
		dailyCandle(172800000, 108, 120, 104, 112, 900),
		dailyCandle(259200000, 112, 118, 108, 114, 1100),
	}

	agg := Aggregated3dFrom1d(daily)
	if len(agg) != 1 {
		t.Fatalf("expected 1 complete 3d candle from 4 daily bars, got %d", len(agg))
	}

	first := agg[0]
	if first.Open != 100 {
		t.Errorf("expected open 100, got %v", first.Open)
	}
	if first.Close != 112 {
		t.Errorf("expected close 112, got %v", first.Close)
	}
	if first.High != 120 {
		t.Errorf("expected high 120, got %v", first.High)
	}
	if first.Low != 95 {
		t.Errorf("expected low 95, got %v", first.Low)
	}
	if first.Volume != 3100 {
		t.Errorf("expected summed volume 3100, got %v", first.Volume)
	}
	if first.TimestampMs != 0 {
		t.Errorf("expected timestamp of first candle in chunk, got %v", first.TimestampMs)
	}
}

func TestAggregateCandlesDropsPartialChunk(t *testing.T) {
	daily := []models.Candle{
		dailyCandle(0, 100, 110, 95, 105, 1000),
		dailyCandle(86400000, 105, 115, 100, 108, 1200),
	}
	agg := AggregateCandles(daily, aggregateChunkSize)
	if len(agg) != 0 {
		t.Fatalf("expected partial chunk to be dropped, got %d candles", len(agg))
	}
}
