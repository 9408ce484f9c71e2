package models

import (
	"encoding/json"
	"time"
)

// Signal direction.
const (
	DirectionLong     = "long"
	DirectionShort    = "short"
	DirectionNoTrade  = "NO_TRADE"
)

// Setup types exposed on the single-strategy endpoint.
const (
	SetupSwing      = "Swing"
	Setup4h         = "4h"
	SetupScalp      = "Scalp"
	SetupMicroScalp = "MicroScalp"
	SetupAuto       = "auto"
)

// Selected-strategy names, matching the five evaluators plus NO_TRADE.
const (
	StrategySwing      = "SWING"
	StrategyTrend4h    = "TREND_4H"
	StrategyScalp1h    = "SCALP_1H"
	StrategyMicroScalp = "MICRO_SCALP"
	StrategyTrendRider = "TREND_RIDER"
	StrategyNoTrade    = "NO_TRADE"
)

// Operating modes.
const (
	ModeSafe       = "SAFE"
	ModeAggressive = "AGGRESSIVE"
)

// PriceRange is an inclusive [min,max] band, used for entry zones.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RiskReward carries the risk:reward ratio for each populated target.
// TP2RR and TP3RR are nil when the signal has fewer than 2 or 3 targets.
type RiskReward struct {
	TP1RR float64  `json:"tp1RR"`
	TP2RR *float64 `json:"tp2RR,omitempty"`
	TP3RR *float64 `json:"tp3RR,omitempty"`
}

// Confluence is the TREND_RIDER-style scoring breakdown carried on every
// signal. htfConfirmation is always recomputed from the top-level HTFBias
// so the two can never disagree.
type Confluence struct {
	Score           float64 `json:"score"`
	HTFConfirmation bool    `json:"htfConfirmation"`
	Notes           []string `json:"notes"`
}

// Signal is the canonical per-strategy evaluation result. valid=false
// signals (NO_TRADE) carry null price fields and a non-empty
// conditionsRequired; valid=true signals carry a non-null entryZone,
// stopLoss, at least one target, and riskReward.tp1RR.
type Signal struct {
	Valid              bool        `json:"valid"`
	Direction          string      `json:"direction"`
	SetupType          string      `json:"setupType"`
	SelectedStrategy   string      `json:"selectedStrategy"`
	StrategiesChecked  []string    `json:"strategiesChecked"`
	Confidence         float64     `json:"confidence"`
	EntryZone          *PriceRange `json:"entryZone"`
	StopLoss           *float64    `json:"stopLoss"`
	InvalidationLevel  *float64    `json:"invalidationLevel"`
	Targets            []float64   `json:"targets"`
	RiskReward         *RiskReward `json:"riskReward"`
	ReasonSummary      string      `json:"reason_summary"`
	Confluence         Confluence  `json:"confluence"`
	ConditionsRequired []string    `json:"conditionsRequired"`
	HTFBias            HTFBias     `json:"htfBias"`
	Timestamp          time.Time   `json:"timestamp"`
}

// NoTrade builds a structurally valid NO_TRADE signal: nulled price fields,
// zero confidence, and the supplied human-readable conditions.
func NoTrade(setupType, selectedStrategy string, strategiesChecked []string, reason string, conditions []string, bias HTFBias, now time.Time) Signal {
	if len(conditions) == 0 {
		conditions = []string{reason}
	}
	return Signal{
		Valid:              false,
		Direction:          DirectionNoTrade,
		SetupType:          setupType,
		SelectedStrategy:   selectedStrategy,
		StrategiesChecked:  strategiesChecked,
		Confidence:         0,
		Targets:            []float64{},
		ReasonSummary:      reason,
		Confluence:         Confluence{HTFConfirmation: bias.Direction != BiasNeutral, Notes: []string{}},
		ConditionsRequired: conditions,
		HTFBias:            bias,
		Timestamp:          now,
	}
}

// CurrentSchemaVersion and CurrentJSONVersion stamp every RichSymbol so a
// consuming collaborator (UI, LLM endpoint) can detect a breaking shape
// change without inspecting individual fields.
const (
	CurrentSchemaVersion = "1.0"
	CurrentJSONVersion   = 1
)

// RichSymbol is the all-strategies aggregator output for one symbol.
type RichSymbol struct {
	Symbol        string                        `json:"symbol"`
	Mode          string                        `json:"mode"`
	CurrentPrice  float64                       `json:"currentPrice"`
	HTFBias       HTFBias                       `json:"htfBias"`
	Timeframes    *OrderedTimeframes            `json:"timeframes"`
	Strategies    map[string]Signal             `json:"strategies"`
	BestSignal    *string                       `json:"bestSignal"`
	OverrideUsed  bool                          `json:"overrideUsed"`
	OverrideNotes []string                      `json:"overrideNotes"`
	MarketData    map[string]interface{}        `json:"marketData,omitempty"`
	DflowData     map[string]interface{}        `json:"dflowData,omitempty"`
	SchemaVersion string                        `json:"schemaVersion"`
	JSONVersion   int                           `json:"jsonVersion"`
	GeneratedAt   time.Time                     `json:"generatedAt"`
}

// timeframePair is one entry of an OrderedTimeframes.
type timeframePair struct {
	Interval string
	Analysis *TimeframeAnalysis
}

// OrderedTimeframes is a map keyed by interval that preserves insertion
// order on JSON marshal, mirroring the order the caller requested intervals
// in. Plain Go maps don't guarantee key order, so RichSymbol.timeframes
// uses this instead of map[string]*TimeframeAnalysis.
type OrderedTimeframes struct {
	pairs []timeframePair
}

// NewOrderedTimeframes builds an empty ordered timeframe map.
func NewOrderedTimeframes() *OrderedTimeframes {
	return &OrderedTimeframes{}
}

// Set appends or updates the entry for interval, preserving first-insertion
// order on update.
func (o *OrderedTimeframes) Set(interval string, analysis *TimeframeAnalysis) {
	for i, p := range o.pairs {
		if p.Interval == interval {
			o.pairs[i].Analysis = analysis
			return
		}
	}
	o.pairs = append(o.pairs, timeframePair{Interval: interval, Analysis: analysis})
}

// Get returns the analysis for interval, if present.
func (o *OrderedTimeframes) Get(interval string) (*TimeframeAnalysis, bool) {
	for _, p := range o.pairs {
		if p.Interval == interval {
			return p.Analysis, true
		}
	}
	return nil, false
}

// Intervals returns the intervals in insertion order.
func (o *OrderedTimeframes) Intervals() []string {
	out := make([]string, len(o.pairs))
	for i, p := range o.pairs {
		out[i] = p.Interval
	}
	return out
}

// MarshalJSON writes the pairs as a single JSON object, preserving
// insertion order — encoding/json iterates struct/slice fields in the
// order given, unlike map iteration.
func (o *OrderedTimeframes) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, p := range o.pairs {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(p.Interval)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		val, err := json.Marshal(p.Analysis)
		if err != nil {
			return nil, err
		}
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf, nil
}
