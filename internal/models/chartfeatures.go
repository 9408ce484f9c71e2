package models

import "time"

// Candle anatomy direction.
const (
	CandleBull = "bull"
	CandleBear = "bear"
	CandleDoji = "doji"
)

// CandleAnatomy describes the shape of the most recent candle.
type CandleAnatomy struct {
	Direction            string  `json:"direction"`
	BodyPct              float64 `json:"bodyPct"`
	UpperWickPct         float64 `json:"upperWickPct"`
	LowerWickPct         float64 `json:"lowerWickPct"`
	CloseRelativeToRange float64 `json:"closeRelativeToRange"`
	CloseAboveEma21      bool    `json:"closeAboveEma21"`
	CloseBelowEma21      bool    `json:"closeBelowEma21"`
	Open                 float64 `json:"open"`
	High                 float64 `json:"high"`
	Low                  float64 `json:"low"`
	Close                float64 `json:"close"`
}

// PriceActionPatterns are boolean flags derived from the last two candles.
type PriceActionPatterns struct {
	RejectionUp   bool `json:"rejectionUp"`
	RejectionDown bool `json:"rejectionDown"`
	EngulfingBull bool `json:"engulfingBull"`
	EngulfingBear bool `json:"engulfingBear"`
	InsideBar     bool `json:"insideBar"`
}

// SupportResistance is computed on higher timeframes only (4h/1h).
type SupportResistance struct {
	Resistance              *float64 `json:"resistance"`
	Support                 *float64 `json:"support"`
	AtResistance            bool     `json:"atResistance"`
	AtSupport               bool     `json:"atSupport"`
	BrokeResistanceOnClose  bool     `json:"brokeResistanceOnClose"`
	BrokeSupportOnClose     bool     `json:"brokeSupportOnClose"`
}

// Market-structure states.
const (
	StructureUptrend   = "uptrend"
	StructureDowntrend = "downtrend"
	StructureFlat      = "flat"
	StructureUnknown   = "unknown"
)

// StructureEvent is a single BOS or CHOCH event inferred from the swing
// sequence.
type StructureEvent struct {
	Type      string    `json:"type"` // BOS|CHOCH
	Direction string    `json:"direction"`
	FromSwing float64   `json:"fromSwing"`
	ToSwing   float64   `json:"toSwing"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// MarketStructure is the current structural read plus the most recent BOS
// and CHOCH events, if any.
type MarketStructure struct {
	CurrentStructure string           `json:"currentStructure"`
	LastBOS          *StructureEvent  `json:"lastBOS"`
	LastCHOCH        *StructureEvent  `json:"lastCHOCH"`
}

// LiquidityZone is a cluster of equal highs or lows.
type LiquidityZone struct {
	Type  string  `json:"type"` // equal_highs|equal_lows
	Price float64 `json:"price"`
	Count int     `json:"count"`
}

// FairValueGap is a three-candle imbalance.
type FairValueGap struct {
	Direction string  `json:"direction"` // bullish|bearish
	Top       float64 `json:"top"`
	Bottom    float64 `json:"bottom"`
	Filled    bool    `json:"filled"`
	Index     int     `json:"index"`
}

// Divergence is an RSI/StochRSI divergence against recent price swings.
type Divergence struct {
	Side      string `json:"side"` // bullish|bearish
	Type      string `json:"type"` // regular|hidden
	Indicator string `json:"indicator"`
}

// VolumeInfo summarizes current vs. average-20 volume and its trend.
type VolumeInfo struct {
	Current float64 `json:"current"`
	Avg20   float64 `json:"avg20"`
	Trend   string  `json:"trend"` // up|down|neutral
}

// VolumeProfile is the high/low-volume node map and value area over the
// recent window.
type VolumeProfile struct {
	HighVolumeNodes []float64 `json:"highVolumeNodes"`
	LowVolumeNodes  []float64 `json:"lowVolumeNodes"`
	ValueAreaHigh   float64   `json:"valueAreaHigh"`
	ValueAreaLow    float64   `json:"valueAreaLow"`
}

// VWAPInfo is the intraday VWAP positioning (intraday timeframes only).
type VWAPInfo struct {
	VWAP        float64 `json:"vwap"`
	AbovePrice  bool    `json:"abovePrice"`
	DistancePct float64 `json:"distancePct"`
}

// BollingerInfo is the Bollinger Bands + squeeze read (4h/1h/15m only).
type BollingerInfo struct {
	Upper   float64 `json:"upper"`
	Middle  float64 `json:"middle"`
	Lower   float64 `json:"lower"`
	Squeeze bool    `json:"squeeze"`
}

// MAStack is the 21/50/200 moving-average alignment (4h/1h only).
type MAStack struct {
	Bull bool `json:"bull"`
	Bear bool `json:"bear"`
	Flat bool `json:"flat"`
}

// AdvancedIndicators bundles the timeframe-gated extras from spec §4.3.
// Each pointer is nil on timeframes the feature doesn't apply to.
type AdvancedIndicators struct {
	VWAP      *VWAPInfo      `json:"vwap"`
	Bollinger *BollingerInfo `json:"bollinger"`
	MAStack   *MAStack       `json:"maStack"`
}

// VolatilityInfo is the ATR-derived volatility read, always present.
type VolatilityInfo struct {
	ATR         float64 `json:"atr"`
	ATRPctOfPrice float64 `json:"atrPctOfPrice"`
	State       string  `json:"state"`
}

// ChartFeatures bundles every structural feature computed over one
// (symbol, interval) candle series. Every feature function tolerates
// short/missing series by returning a structurally complete default rather
// than a nil ChartFeatures.
type ChartFeatures struct {
	CandleAnatomy      CandleAnatomy        `json:"candleAnatomy"`
	PriceAction        PriceActionPatterns  `json:"priceAction"`
	SupportResistance  SupportResistance    `json:"supportResistance"`
	MarketStructure    MarketStructure      `json:"marketStructure"`
	LiquidityZones     []LiquidityZone      `json:"liquidityZones"`
	FairValueGaps      []FairValueGap       `json:"fairValueGaps"`
	Divergences        []Divergence         `json:"divergences"`
	VolumeProfile      VolumeProfile        `json:"volumeProfile"`
	Advanced           AdvancedIndicators   `json:"advanced"`
}

// TimeframeAnalysis is the per-interval composite: Indicators +
// ChartFeatures + last candle + volatility/volume, all "always present" per
// interval even when upstream data failed or was too short to compute.
type TimeframeAnalysis struct {
	Indicators    Indicators    `json:"indicators"`
	Structure     SwingPoints   `json:"structure"`
	CandleCount   int           `json:"candleCount"`
	LastCandle    *Candle       `json:"lastCandle"`
	Volatility    VolatilityInfo `json:"volatility"`
	Volume        *VolumeInfo   `json:"volume"`
	ChartFeatures ChartFeatures `json:"chartFeatures"`
	Error         string        `json:"error,omitempty"`
}

// EmptyTimeframeAnalysis builds a structurally-complete TimeframeAnalysis
// carrying only an error, used when an interval's candle fetch failed
// entirely. All "always-present" containers are non-nil empty values, never
// nil, so downstream consumers never need a nil check on this record.
func EmptyTimeframeAnalysis(errMsg string) *TimeframeAnalysis {
	return &TimeframeAnalysis{
		Volatility: VolatilityInfo{State: VolatilityNormal},
		ChartFeatures: ChartFeatures{
			LiquidityZones: []LiquidityZone{},
			FairValueGaps:  []FairValueGap{},
			Divergences:    []Divergence{},
			MarketStructure: MarketStructure{CurrentStructure: StructureUnknown},
			VolumeProfile:   VolumeProfile{HighVolumeNodes: []float64{}, LowVolumeNodes: []float64{}},
		},
		Error: errMsg,
	}
}
