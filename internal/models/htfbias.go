package models

// HTF bias directions.
const (
	BiasLong    = "long"
	BiasShort   = "short"
	BiasNeutral = "neutral"
)

// HTF bias sources, naming which timeframes actually contributed a
// non-zero score.
const (
	BiasSource4h    = "4h"
	BiasSource1h    = "1h"
	BiasSourceMixed = "mixed"
	BiasSourceNone  = "none"
)

// HTFBias is the higher-timeframe directional bias, scored from the 4h and
// 1h trend and Stochastic-RSI reads. Always present on every RichSymbol
// output, never nil.
type HTFBias struct {
	Direction  string  `json:"direction"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}
