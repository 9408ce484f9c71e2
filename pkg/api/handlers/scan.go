package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/scan"
	"github.com/edittrades/signalcore/pkg/api/types"
)

const scanTimeout = 60 * time.Second

// ScanHandler serves GET /api/scan, the opportunity-finding scanner.
type ScanHandler struct {
	scanner *scan.Scanner
	logger  zerolog.Logger
}

// NewScanHandler builds a ScanHandler.
func NewScanHandler(scanner *scan.Scanner) *ScanHandler {
	return &ScanHandler{
		scanner: scanner,
		logger:  logger.NewContextLogger("scan_handler"),
	}
}

// ServeHTTP handles GET /api/scan?minConfidence=&maxResults=&intervals=&direction=&all=.
func (h *ScanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.New().String()
	reqLogger := logger.NewRequestLogger(correlationID, r.Method, r.URL.Path)
	reqLogger.Info().Msg("processing scan request")

	query := r.URL.Query()
	intervals, err := parseIntervals(query.Get("intervals"), defaultAnalyzeIntervals)
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}
	mode, err := modeWireToInternal(query.Get("mode"))
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}
	minConfidence, err := parseFloatParam(query.Get("minConfidence"), 70)
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, "minConfidence "+err.Error())
		return
	}
	maxResults, err := parseIntParam(query.Get("maxResults"), 0)
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, "maxResults "+err.Error())
		return
	}
	direction, err := parseDirection(query.Get("direction"))
	if err != nil {
		writeError(w, reqLogger, correlationID, http.StatusBadRequest, err.Error())
		return
	}
	all := parseBoolParam(query.Get("all"), false)

	ctx, cancel := context.WithTimeout(r.Context(), scanTimeout)
	defer cancel()

	summary, opportunities, err := h.scanner.Scan(ctx, scan.Request{
		Mode:          mode,
		Intervals:     intervals,
		MinConfidence: minConfidence,
		MaxResults:    maxResults,
		Direction:     direction,
		All:           all,
	})
	if err != nil {
		reqLogger.Error().Err(err).Msg("scan failed")
		writeError(w, reqLogger, correlationID, http.StatusInternalServerError, "scan failed")
		return
	}

	writeJSON(w, reqLogger, correlationID, types.ScanResponse{Summary: summary, Opportunities: opportunities})
	reqLogger.Info().Int("scanned", summary.SymbolsScanned).Int("matches", summary.MatchesFound).Msg("scan request completed")
}
