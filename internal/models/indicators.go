package models

import "time"

// Trend classifications, pure functions of (price, ema21, ema200).
const (
	TrendUptrend   = "UPTREND"
	TrendDowntrend = "DOWNTREND"
	TrendFlat      = "FLAT"
)

// Pullback-state classifications, pure functions of distanceFrom21EMA.
const (
	PullbackEntryZone    = "ENTRY_ZONE"
	PullbackRetracing    = "RETRACING"
	PullbackOverextended = "OVEREXTENDED"
	PullbackUnknown      = "UNKNOWN"
)

// Stochastic-RSI condition classifications.
const (
	StochOversold   = "OVERSOLD"
	StochOverbought = "OVERBOUGHT"
	StochBullish    = "BULLISH"
	StochBearish    = "BEARISH"
	StochNeutral    = "NEUTRAL"
)

// Trend-strength categories derived from ADX.
const (
	ADXVeryStrong = "VERY_STRONG"
	ADXStrong     = "STRONG"
	ADXModerate   = "MODERATE"
	ADXWeak       = "WEAK"
)

// Volatility-state categories derived from ATR % of price.
const (
	VolatilityLow      = "low"
	VolatilityNormal   = "normal"
	VolatilityHigh     = "high"
	VolatilityExtreme  = "extreme"
)

// PriceSnapshot is the current/high/low of the series the indicators were
// computed over.
type PriceSnapshot struct {
	Current float64 `json:"current"`
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
}

// EMAData carries the 21/200 EMA values and their recent history. Nullable
// as a whole when there isn't enough data for either period.
type EMAData struct {
	EMA21        *float64  `json:"ema21"`
	EMA200       *float64  `json:"ema200"`
	EMA21History []float64 `json:"ema21History"`
	EMA200History []float64 `json:"ema200History"`
}

// StochRSIData is the Stochastic-RSI oscillator output. k and d are always
// clamped to [0,100].
type StochRSIData struct {
	K         float64   `json:"k"`
	D         float64   `json:"d"`
	Condition string    `json:"condition"`
	History   []float64 `json:"history"`
}

// RSIData is the classic RSI(14) output. Nil when the series is too short.
type RSIData struct {
	Value      float64   `json:"value"`
	History    []float64 `json:"history"`
	Overbought bool      `json:"overbought"`
	Oversold   bool      `json:"oversold"`
}

// TrendAnalysis is the trend/pullback classification derived from price vs
// ema21/ema200.
type TrendAnalysis struct {
	Trend                string  `json:"trend"`
	PullbackState        string  `json:"pullbackState"`
	DistanceFrom21EMA    float64 `json:"distanceFrom21EMA"`
}

// TrendStrengthData is the ADX-derived trend-strength classification. Nil
// when the series is too short for ADX(14).
type TrendStrengthData struct {
	ADX        float64 `json:"adx"`
	Strong     bool    `json:"strong"`
	Weak       bool    `json:"weak"`
	VeryStrong bool    `json:"veryStrong"`
	Category   string  `json:"category"`
}

// CandlestickPattern names one recognized single/dual-candle pattern at a
// given index (most recent candle is last).
type CandlestickPattern struct {
	Name      string `json:"name"`
	Bullish   bool   `json:"bullish"`
	Index     int    `json:"index"`
}

// WickAnalysis is the wick-rejection classification of the last candle.
type WickAnalysis struct {
	IsRejection bool   `json:"isRejection"`
	Direction   string `json:"direction"` // bullish|bearish|""
}

// IndicatorMetadata carries bookkeeping fields present on every Indicators
// record regardless of which fields above ended up null.
type IndicatorMetadata struct {
	CandleCount int       `json:"candleCount"`
	LastUpdate  time.Time `json:"lastUpdate"`
}

// Indicators is the uniform record produced by the Indicators component for
// one (symbol, interval) candle series. Every pointer/slice field is
// independently null-safe: missing input makes that field nil/empty while
// the parent record, and its siblings, stay intact.
type Indicators struct {
	Price          PriceSnapshot       `json:"price"`
	EMA            *EMAData            `json:"ema"`
	StochRSI       StochRSIData        `json:"stochRSI"`
	RSI            *RSIData            `json:"rsi"`
	Analysis       TrendAnalysis       `json:"analysis"`
	TrendStrength  *TrendStrengthData  `json:"trendStrength"`
	CandlestickPatterns []CandlestickPattern `json:"candlestickPatterns"`
	WickAnalysis   WickAnalysis        `json:"wickAnalysis"`
	Metadata       IndicatorMetadata   `json:"metadata"`
}
