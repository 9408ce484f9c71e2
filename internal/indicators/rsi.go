package indicators

import "math"

// RSISeries computes the Wilder RSI(period) across the full values series,
// returning one RSI value per input bar after the seed window (index 0 of
// the result corresponds to index `period` of values). Returns nil, false
// when len(values) < period+1.
func RSISeries(values []float64, period int) ([]float64, bool) {
	if period <= 0 || len(values) < period+1 {
		return nil, false
	}

	gains := 0.0
	losses := 0.0
	for i := 1; i <= period; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains += change
		} else {
			losses += math.Abs(change)
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	out := make([]float64, 0, len(values)-period)
	out = append(out, rsiFromAverages(avgGain, avgLoss))

	for i := period + 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = math.Abs(change)
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, rsiFromAverages(avgGain, avgLoss))
	}
	return out, true
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// RSI returns the most recent RSI(period) value for values.
func RSI(values []float64, period int) (float64, bool) {
	series, ok := RSISeries(values, period)
	if !ok {
		return 0, false
	}
	return series[len(series)-1], true
}
