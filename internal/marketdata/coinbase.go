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

// coinbaseGranularitySeconds maps our interval codes to Coinbase Exchange's
// candle "granularity" query param, which only accepts these values.
var coinbaseGranularitySeconds = map[models.IntervalCode]int{
	models.Interval1m:  60,
	models.Interval5m:  300,
	models.Interval15m: 900,
	models.Interval1h:  3600,
	models.Interval4h:  21600,
	models.Interval1d:  86400,
}

// CoinbaseProvider is the secondary market-data source, used only when the
// primary Kraken provider fails for the requested pair/interval.
type CoinbaseProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewCoinbaseProvider builds a secondary provider against baseURL
// (normally https://api.exchange.coinbase.com).
func NewCoinbaseProvider(baseURL string, timeout time.Duration) *CoinbaseProvider {
	return &CoinbaseProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.NewContextLogger("coinbase_provider"),
	}
}

func (c *CoinbaseProvider) Name() string { return "coinbase" }

// GetCandles fetches candles for pair (Coinbase product id, e.g. BTC-USD)
// at one of its natively supported granularities.
func (c *CoinbaseProvider) GetCandles(ctx context.Context, pair string, interval models.IntervalCode, limit int) ([]models.Candle, error) {
	granularity, ok := coinbaseGranularitySeconds[interval]
	if !ok {
		return nil, models.NewInputError(fmt.Sprintf("coinbase does not natively support interval %s", interval))
	}

	params := url.Values{}
	params.Set("granularity", strconv.Itoa(granularity))

	reqURL := fmt.Sprintf("%s/products/%s/candles?%s", c.baseURL, pair, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewUpstreamError("building coinbase request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError("coinbase request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, models.NewUpstreamError(fmt.Sprintf("coinbase returned status %d: %s", resp.StatusCode, string(body)), nil)
	}

	// Coinbase returns rows as [time, low, high, open, close, volume],
	// newest first.
	var rows [][]float64
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, models.NewUpstreamError("decoding coinbase response", err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		if len(row) < 6 {
			continue
		}
		candles = append(candles, models.Candle{
			TimestampMs: int64(row[0]) * 1000,
			Low:         row[1],
			High:        row[2],
			Open:        row[3],
			Close:       row[4],
			Volume:      row[5],
		})
	}
	if limit > 0 && len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	return candles, nil
}

type coinbaseTickerResponse struct {
	Price string `json:"price"`
	Open24h string `json:"open_24h"`
}

// GetTicker fetches the current price and 24h percent change for pair.
func (c *CoinbaseProvider) GetTicker(ctx context.Context, pair string) (float64, float64, error) {
	reqURL := fmt.Sprintf("%s/products/%s/ticker", c.baseURL, pair)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, models.NewUpstreamError("building coinbase ticker request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, models.NewUpstreamError("coinbase ticker request failed", err)
	}
	defer resp.Body.Close()

	var parsed coinbaseTickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, 0, models.NewUpstreamError("decoding coinbase ticker response", err)
	}

	price, err := strconv.ParseFloat(parsed.Price, 64)
	if err != nil {
		return 0, 0, models.NewUpstreamError("parsing coinbase ticker price", err)
	}

	statsURL := fmt.Sprintf("%s/products/%s/stats", c.baseURL, pair)
	statsReq, err := http.NewRequestWithContext(ctx, http.MethodGet, statsURL, nil)
	if err != nil {
		return price, 0, nil
	}
	statsResp, err := c.httpClient.Do(statsReq)
	if err != nil {
		return price, 0, nil
	}
	defer statsResp.Body.Close()

	var stats struct {
		Open string `json:"open"`
	}
	if err := json.NewDecoder(statsResp.Body).Decode(&stats); err != nil {
		return price, 0, nil
	}
	open, err := strconv.ParseFloat(stats.Open, 64)
	if err != nil || open == 0 {
		return price, 0, nil
	}
	return price, (price - open) / open * 100, nil
}
