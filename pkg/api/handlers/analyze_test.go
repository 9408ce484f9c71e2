package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/edittrades/signalcore/internal/timeframe"
	"github.com/edittrades/signalcore/pkg/api/types"
)

func newAnalyzeHandler() *AnalyzeHandler {
	return NewAnalyzeHandler(newTestMarketData(), timeframe.NewComposer())
}

func TestAnalyzeHandlerUnknownSymbolIs404(t *testing.T) {
	h := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze/NOPEUSD", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "NOPEUSD"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown symbol, got %d", w.Code)
	}
}

func TestAnalyzeHandlerBadModeIs400(t *testing.T) {
	h := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze/BTCUSD?mode=YOLO", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "BTCUSD"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an invalid mode, got %d", w.Code)
	}
}

func TestAnalyzeHandlerReturnsSignalForKnownSymbol(t *testing.T) {
	h := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze/BTCUSD", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "BTCUSD"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.AnalyzeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Symbol != "BTCUSD" {
		t.Errorf("expected symbol BTCUSD, got %q", resp.Symbol)
	}
	if len(resp.Analysis) == 0 {
		t.Error("expected a non-empty per-interval analysis map")
	}
}
