package marketdata

import (
	"context"
	"testing"

	"github.com/edittrades/signalcore/internal/models"
)

type fakeProvider struct {
	name       string
	candles    []models.Candle
	err        error
	price      float64
	changePct  float64
	tickerErr  error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) GetCandles(ctx context.Context, pair string, interval models.IntervalCode, limit int) ([]models.Candle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.candles, nil
}

func (f *fakeProvider) GetTicker(ctx context.Context, pair string) (float64, float64, error) {
	if f.tickerErr != nil {
		return 0, 0, f.tickerErr
	}
	return f.price, f.changePct, nil
}

func sampleCandles(n int) []models.Candle {
	out := make([]models.Candle, n)
	for i := 0; i < n; i++ {
		price := 100 + float64(i)
		out[i] = models.Candle{TimestampMs: int64(i) * 60000, Open: price, High: price + 1, Low: price - 1, Close: price, Volume: 10}
	}
	return out
}

func TestServiceGetCandlesFallsBackToSecondary(t *testing.T) {
	symbols := NewSymbolTable()
	primary := &fakeProvider{name: "primary", err: models.NewUpstreamError("down", nil)}
	secondary := &fakeProvider{name: "secondary", candles: sampleCandles(30)}
	svc := NewService(symbols, primary, secondary, true)

	result, err := svc.GetCandles(context.Background(), "BTCUSD", models.Interval1h, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != sourceSecondary {
		t.Fatalf("expected secondary source, got %s", result.Source)
	}
	if len(result.Candles) != 30 {
		t.Fatalf("expected 30 candles, got %d", len(result.Candles))
	}
}

func TestServiceGetCandlesFallsBackToSynthetic(t *testing.T) {
	symbols := NewSymbolTable()
	primary := &fakeProvider{name: "primary", err: models.NewUpstreamError("down", nil)}
	secondary := &fakeProvider{name: "secondary", err: models.NewUpstreamError("also down", nil)}
	svc := NewService(symbols, primary, secondary, true)

	result, err := svc.GetCandles(context.Background(), "ETHUSD", models.Interval1h, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != sourceSynthetic {
		t.Fatalf("expected synthetic source, got %s", result.Source)
	}
	if len(result.Candles) == 0 {
		t.Fatal("expected non-empty synthetic series")
	}
}

func TestServiceGetCandlesFailsWithoutSynthetic(t *testing.T) {
	symbols := NewSymbolTable()
	primary := &fakeProvider{name: "primary", err: models.NewUpstreamError("down", nil)}
	svc := NewService(symbols, primary, nil, false)

	_, err := svc.GetCandles(context.Background(), "BTCUSD", models.Interval1h, 20)
	if err == nil {
		t.Fatal("expected error when all sources fail and synthetic is disabled")
	}
}

func TestServiceGetCandlesUnknownSymbol(t *testing.T) {
	symbols := NewSymbolTable()
	primary := &fakeProvider{name: "primary", candles: sampleCandles(10)}
	svc := NewService(symbols, primary, nil, true)

	_, err := svc.GetCandles(context.Background(), "NOPEUSD", models.Interval1h, 10)
	if err != models.ErrUnknownSymbol {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestServiceGetMultiTimeframeDataFailsSoftPerInterval(t *testing.T) {
	symbols := NewSymbolTable()
	primary := &fakeProvider{name: "primary", candles: sampleCandles(10)}
	svc := NewService(symbols, primary, nil, false)

	intervals := []models.IntervalCode{models.Interval1h, models.IntervalCode("bogus")}
	results := svc.GetMultiTimeframeData(context.Background(), "BTCUSD", intervals, 10)

	if len(results) != 2 {
		t.Fatalf("expected a result for every requested interval, got %d", len(results))
	}
	if results[models.Interval1h].Err != nil {
		t.Fatalf("expected 1h to succeed, got error %v", results[models.Interval1h].Err)
	}
	if results[models.IntervalCode("bogus")].Err == nil {
		t.Fatal("expected bogus interval to fail softly without aborting the group")
	}
}
