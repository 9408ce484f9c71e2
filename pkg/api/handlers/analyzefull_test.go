package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/newsfeed"
	"github.com/edittrades/signalcore/internal/timeframe"
)

func newAnalyzeFullHandler() *AnalyzeFullHandler {
	return NewAnalyzeFullHandler(newTestMarketData(), timeframe.NewComposer(), nil)
}

func TestAnalyzeFullHandlerMissingSymbolIs400(t *testing.T) {
	h := newAnalyzeFullHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze-full", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing symbol, got %d", w.Code)
	}
}

func TestAnalyzeFullHandlerReturnsRichSymbol(t *testing.T) {
	h := newAnalyzeFullHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze-full?symbol=BTCUSD&mode=AGGRESSIVE", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.RichSymbol
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Symbol != "BTCUSD" {
		t.Errorf("expected symbol BTCUSD, got %q", resp.Symbol)
	}
	if resp.Mode != models.ModeAggressive {
		t.Errorf("expected mode %q, got %q", models.ModeAggressive, resp.Mode)
	}
	if resp.SchemaVersion != models.CurrentSchemaVersion {
		t.Errorf("expected schema version %q, got %q", models.CurrentSchemaVersion, resp.SchemaVersion)
	}
}

func TestAnalyzeFullHandlerWithNewsfeedOmitsDflowDataOnMiss(t *testing.T) {
	cache := newsfeed.NewCache(newsfeed.NoopProvider{}, 5*time.Minute)
	h := NewAnalyzeFullHandler(newTestMarketData(), timeframe.NewComposer(), cache)

	req := httptest.NewRequest(http.MethodGet, "/api/analyze-full?symbol=ETHUSD", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.RichSymbol
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	// First request for a never-cached symbol: the handler must not block on
	// warming the cache, so DflowData stays unset on this response.
	if resp.DflowData != nil {
		t.Errorf("expected no DflowData on a cold cache, got %v", resp.DflowData)
	}
}
