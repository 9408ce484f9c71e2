package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/pkg/api/types"
)

func newTestMarketData() *marketdata.Service {
	return marketdata.NewService(marketdata.NewSymbolTable(), nil, nil, true)
}

func TestHealthHandlerReportsHealthy(t *testing.T) {
	h := NewHealthHandler(newTestMarketData(), "test-version")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp types.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected status healthy, got %q", resp.Status)
	}
	if resp.Version != "test-version" {
		t.Errorf("expected version test-version, got %q", resp.Version)
	}
	if resp.SymbolCount == 0 {
		t.Error("expected a non-zero seed symbol count")
	}
}
