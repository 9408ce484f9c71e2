package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/pkg/api/types"
)

// defaultAnalyzeIntervals and defaultAnalyzeFullIntervals are the intervals
// conventions used when the caller's `intervals` query param is absent.
var (
	defaultAnalyzeIntervals = []models.IntervalCode{
		models.Interval4h, models.Interval1h, models.Interval15m, models.Interval5m,
	}
	defaultAnalyzeFullIntervals = []models.IntervalCode{
		models.Interval1M, models.Interval1w, models.Interval3d, models.Interval1d,
		models.Interval4h, models.Interval1h, models.Interval15m, models.Interval5m,
		models.Interval3m, models.Interval1m,
	}
)

// modeWireToInternal translates the external STANDARD|AGGRESSIVE query
// value to this repo's internal ModeSafe/ModeAggressive constants. The two
// vocabularies disagree deliberately — STANDARD is the external interface's
// name for the evaluator's conservative/default behavior, which internally
// is named SAFE. An empty value defaults to STANDARD/SAFE; any other
// unrecognized value is an error.
func modeWireToInternal(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "STANDARD":
		return models.ModeSafe, nil
	case "AGGRESSIVE":
		return models.ModeAggressive, nil
	default:
		return "", fmt.Errorf("mode must be STANDARD or AGGRESSIVE, got %q", raw)
	}
}

// parseIntervals splits a comma-separated interval list, validating each
// code against models.IntervalCode.Valid. An empty raw string yields
// fallback unchanged.
func parseIntervals(raw string, fallback []models.IntervalCode) ([]models.IntervalCode, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]models.IntervalCode, 0, len(parts))
	for _, p := range parts {
		code := models.IntervalCode(strings.TrimSpace(p))
		if !code.Valid() {
			return nil, fmt.Errorf("unsupported interval %q", p)
		}
		out = append(out, code)
	}
	return out, nil
}

// validateSymbol rejects empty or implausibly long symbols; the symbol
// table itself is the source of truth for whether a symbol is actually
// known (models.ErrUnknownSymbol surfaces that case as a 404, not a 400).
func validateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if len(symbol) > 20 {
		return fmt.Errorf("symbol too long: maximum 20 characters")
	}
	return nil
}

func parseDirection(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "long":
		return models.DirectionLong, nil
	case "short":
		return models.DirectionShort, nil
	default:
		return "", fmt.Errorf("direction must be long or short, got %q", raw)
	}
}

func parseFloatParam(raw string, fallback float64) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("must be a number, got %q", raw)
	}
	return v, nil
}

func parseIntParam(raw string, fallback int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be an integer, got %q", raw)
	}
	return v, nil
}

func parseBoolParam(raw string, fallback bool) bool {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

// writeError emits the uniform ErrorResponse body and sets the
// X-Correlation-ID header so a caller can correlate a failed request with
// server-side logs.
func writeError(w http.ResponseWriter, reqLogger zerolog.Logger, correlationID string, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Correlation-ID", correlationID)
	w.WriteHeader(status)
	body := types.ErrorResponse{Error: message, CorrelationID: correlationID, Timestamp: time.Now()}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		reqLogger.Error().Err(err).Msg("failed to encode error response")
	}
}

// writeJSON emits payload as the success body, setting the correlation
// header first so it's present even if encoding subsequently fails.
func writeJSON(w http.ResponseWriter, reqLogger zerolog.Logger, correlationID string, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Correlation-ID", correlationID)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		reqLogger.Error().Err(err).Msg("failed to encode response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
