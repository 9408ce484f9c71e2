package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edittrades/signalcore/pkg/api/types"
)

func TestSymbolsHandlerListsSeedTable(t *testing.T) {
	h := NewSymbolsHandler(newTestMarketData())

	req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp types.SymbolsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Source != "seed" {
		t.Errorf("expected source seed without ?all=true, got %q", resp.Source)
	}
	if resp.Count != len(resp.Symbols) {
		t.Errorf("count %d does not match len(symbols) %d", resp.Count, len(resp.Symbols))
	}
	if resp.Count == 0 {
		t.Error("expected a non-empty seed table")
	}
}

func TestSymbolsHandlerDiscoveryFailureFallsBackToSeed(t *testing.T) {
	// newTestMarketData's primary provider is nil, so it never satisfies
	// pairDiscoverer: ?all=true must not error, it just can't upgrade the
	// source label past "seed".
	h := NewSymbolsHandler(newTestMarketData())

	req := httptest.NewRequest(http.MethodGet, "/api/symbols?all=true", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp types.SymbolsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Source != "seed" {
		t.Errorf("expected source to stay seed when the provider can't discover, got %q", resp.Source)
	}
}
