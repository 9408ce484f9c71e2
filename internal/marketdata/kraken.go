package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/models"
)

// krakenIntervalMinutes maps our interval codes to Kraken's OHLC
// "interval" query param, which only accepts these minute counts.
var krakenIntervalMinutes = map[models.IntervalCode]int{
	models.Interval1m:  1,
	models.Interval5m:  5,
	models.Interval15m: 15,
	models.Interval30m: 30,
	models.Interval1h:  60,
	models.Interval4h:  240,
	models.Interval1d:  1440,
	models.Interval1w:  10080,
}

// KrakenProvider is the primary market-data source, shaped after the
// public Kraken REST API (no auth required for OHLC/ticker endpoints).
type KrakenProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewKrakenProvider builds a primary provider against baseURL (normally
// https://api.kraken.com).
func NewKrakenProvider(baseURL string, timeout time.Duration) *KrakenProvider {
	return &KrakenProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.NewContextLogger("kraken_provider"),
	}
}

func (k *KrakenProvider) Name() string { return "kraken" }

type krakenOHLCResponse struct {
	Error  []string                     `json:"error"`
	Result map[string]json.RawMessage  `json:"result"`
}

// GetCandles fetches OHLC bars for pair at one of Kraken's natively
// supported minute intervals. Non-native intervals (3d today) must be
// aggregated by the caller from a native interval.
func (k *KrakenProvider) GetCandles(ctx context.Context, pair string, interval models.IntervalCode, limit int) ([]models.Candle, error) {
	minutes, ok := krakenIntervalMinutes[interval]
	if !ok {
		return nil, models.NewInputError(fmt.Sprintf("kraken does not natively support interval %s", interval))
	}

	params := url.Values{}
	params.Set("pair", pair)
	params.Set("interval", strconv.Itoa(minutes))

	reqURL := k.baseURL + "/0/public/OHLC?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewUpstreamError("building kraken request", err)
	}

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError("kraken request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, models.NewUpstreamError(fmt.Sprintf("kraken returned status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var parsed krakenOHLCResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, models.NewUpstreamError("decoding kraken response", err)
	}
	if len(parsed.Error) > 0 {
		return nil, models.NewUpstreamError(fmt.Sprintf("kraken API error: %v", parsed.Error), nil)
	}

	var raw json.RawMessage
	for key, v := range parsed.Result {
		if key == "last" {
			continue
		}
		raw = v
		break
	}
	if raw == nil {
		return nil, models.NewUpstreamError("kraken response had no OHLC series for pair", nil)
	}

	var rows [][]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, models.NewUpstreamError("decoding kraken OHLC rows", err)
	}

	candles, err := krakenRowsToCandles(rows)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	return candles, nil
}

func krakenRowsToCandles(rows [][]interface{}) ([]models.Candle, error) {
	candles := make([]models.Candle, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			continue
		}
		ts, _ := row[0].(float64)
		open, err1 := strconv.ParseFloat(fmt.Sprint(row[1]), 64)
		high, err2 := strconv.ParseFloat(fmt.Sprint(row[2]), 64)
		low, err3 := strconv.ParseFloat(fmt.Sprint(row[3]), 64)
		closeP, err4 := strconv.ParseFloat(fmt.Sprint(row[4]), 64)
		volume, err5 := strconv.ParseFloat(fmt.Sprint(row[6]), 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		candles = append(candles, models.Candle{
			TimestampMs: int64(ts) * 1000,
			Open:        open,
			High:        high,
			Low:         low,
			Close:       closeP,
			Volume:      volume,
		})
	}
	return candles, nil
}

type krakenTickerResponse struct {
	Error  []string                    `json:"error"`
	Result map[string]krakenTickerInfo `json:"result"`
}

type krakenTickerInfo struct {
	C []string `json:"c"` // last trade closed [price, lot volume]
	O string   `json:"o"` // today's opening price
}

// GetTicker fetches the current price and 24h percent change for pair.
func (k *KrakenProvider) GetTicker(ctx context.Context, pair string) (float64, float64, error) {
	reqURL := k.baseURL + "/0/public/Ticker?pair=" + url.QueryEscape(pair)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, models.NewUpstreamError("building kraken ticker request", err)
	}

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return 0, 0, models.NewUpstreamError("kraken ticker request failed", err)
	}
	defer resp.Body.Close()

	var parsed krakenTickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, 0, models.NewUpstreamError("decoding kraken ticker response", err)
	}
	if len(parsed.Error) > 0 {
		return 0, 0, models.NewUpstreamError(fmt.Sprintf("kraken API error: %v", parsed.Error), nil)
	}

	var info krakenTickerInfo
	for _, v := range parsed.Result {
		info = v
		break
	}
	if len(info.C) == 0 {
		return 0, 0, models.NewUpstreamError("kraken ticker response missing close price", nil)
	}

	price, err := strconv.ParseFloat(info.C[0], 64)
	if err != nil {
		return 0, 0, models.NewUpstreamError("parsing kraken ticker price", err)
	}
	open, err := strconv.ParseFloat(info.O, 64)
	if err != nil || open == 0 {
		return price, 0, nil
	}
	changePct := (price - open) / open * 100
	return price, changePct, nil
}

// GetAllKrakenPairs discovers USD-quoted tradable pairs from Kraken's
// asset-pairs endpoint.
func (k *KrakenProvider) GetAllKrakenPairs(ctx context.Context) ([]SymbolInfo, error) {
	reqURL := k.baseURL + "/0/public/AssetPairs"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewUpstreamError("building kraken asset-pairs request", err)
	}
	resp, err := k.httpClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError("kraken asset-pairs request failed", err)
	}
	defer resp.Body.Close()

	var parsed struct {
		Error  []string `json:"error"`
		Result map[string]struct {
			Base      string `json:"base"`
			Quote     string `json:"quote"`
			Wsname    string `json:"wsname"`
			AltName   string `json:"altname"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, models.NewUpstreamError("decoding kraken asset-pairs response", err)
	}
	if len(parsed.Error) > 0 {
		return nil, models.NewUpstreamError(fmt.Sprintf("kraken API error: %v", parsed.Error), nil)
	}

	out := make([]SymbolInfo, 0, len(parsed.Result))
	for krakenPair, info := range parsed.Result {
		if info.Quote != "ZUSD" && info.Quote != "USD" {
			continue
		}
		base := normalizeKrakenAsset(info.Base)
		internal := base + "USD"
		out = append(out, SymbolInfo{
			InternalSymbol: internal,
			KrakenPair:     krakenPair,
			CoinbasePair:   base + "-USD",
			Base:           base,
			Quote:          "USD",
			Name:           info.AltName,
		})
	}
	return out, nil
}

// normalizeKrakenAsset strips Kraken's legacy X/Z asset-code prefixes
// (XXBT, XETH, ZUSD, ...) down to the plain ticker.
func normalizeKrakenAsset(asset string) string {
	if len(asset) == 4 && (asset[0] == 'X' || asset[0] == 'Z') {
		if asset == "XXBT" {
			return "BTC"
		}
		return asset[1:]
	}
	return asset
}
