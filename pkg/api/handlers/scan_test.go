package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edittrades/signalcore/internal/config"
	"github.com/edittrades/signalcore/internal/scan"
	"github.com/edittrades/signalcore/internal/timeframe"
	"github.com/edittrades/signalcore/pkg/api/types"
)

func newScanHandler() *ScanHandler {
	cfg := config.ScanConfig{InterCallDelayMs: 0, DefaultMaxResults: 5, NewsFeedTTLMins: 5}
	scanner := scan.NewScanner(newTestMarketData(), timeframe.NewComposer(), cfg)
	return NewScanHandler(scanner)
}

func TestScanHandlerBadDirectionIs400(t *testing.T) {
	h := newScanHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/scan?direction=sideways", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an invalid direction, got %d", w.Code)
	}
}

func TestScanHandlerReturnsSummaryAndOpportunities(t *testing.T) {
	h := newScanHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/scan?minConfidence=0", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.ScanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Summary.SymbolsScanned == 0 {
		t.Error("expected a non-zero scanned count")
	}
	if len(resp.Opportunities) > 5 {
		t.Errorf("expected at most DefaultMaxResults=5 opportunities, got %d", len(resp.Opportunities))
	}
}
