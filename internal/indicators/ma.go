// Package indicators implements pure, deterministic technical-indicator
// functions over OHLC candle series.
package indicators

import "math"

// SMA computes the simple moving average of the last period values of
// values. Returns 0, false if there isn't enough data.
func SMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), true
}

// EMASeries computes the exponential moving average across values, seeded
// by the period-length SMA rather than the first value — the smoothing
// only begins once a full period of data backs it. Returns nil, false when
// len(values) < period.
func EMASeries(values []float64, period int) ([]float64, bool) {
	if period <= 0 || len(values) < period {
		return nil, false
	}
	seed, ok := SMA(values[:period], period)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(values)-period+1)
	out[0] = seed
	multiplier := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(values); i++ {
		prev := out[i-period]
		out[i-period+1] = (values[i]-prev)*multiplier + prev
	}
	return out, true
}

// EMA returns the most recent EMA(period) value for values, and false if
// there isn't enough data.
func EMA(values []float64, period int) (float64, bool) {
	series, ok := EMASeries(values, period)
	if !ok {
		return 0, false
	}
	return series[len(series)-1], true
}

// StdDev computes the population standard deviation of the last period
// values.
func StdDev(values []float64, period int) (float64, bool) {
	mean, ok := SMA(values, period)
	if !ok {
		return 0, false
	}
	variance := 0.0
	for i := len(values) - period; i < len(values); i++ {
		d := values[i] - mean
		variance += d * d
	}
	variance /= float64(period)
	return math.Sqrt(variance), true
}
