package indicators

// StochRSI computes the Stochastic-RSI oscillator: RSI(rsiPeriod) is
// computed over closes, then a stochastic(stochPeriod) is applied to the
// resulting RSI series, and finally k is the 3-period SMA of that
// stochastic series and d is the 3-period SMA of k. Requires
// len(closes) >= rsiPeriod+stochPeriod (plus the smoothing periods) or it
// reports false. k and d are always clamped to [0,100].
func StochRSI(closes []float64, rsiPeriod, stochPeriod, smoothK, smoothD int) (kSeries, dSeries []float64, ok bool) {
	rsiSeries, rok := RSISeries(closes, rsiPeriod)
	if !rok || len(rsiSeries) < stochPeriod {
		return nil, nil, false
	}

	rawK := make([]float64, 0, len(rsiSeries)-stochPeriod+1)
	for i := stochPeriod - 1; i < len(rsiSeries); i++ {
		window := rsiSeries[i-stochPeriod+1 : i+1]
		lo, hi := window[0], window[0]
		for _, v := range window {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		var stoch float64
		if hi == lo {
			stoch = 50
		} else {
			stoch = (rsiSeries[i] - lo) / (hi - lo) * 100
		}
		rawK = append(rawK, clamp(stoch, 0, 100))
	}

	k, kok := smaSeries(rawK, smoothK)
	if !kok {
		return nil, nil, false
	}
	d, dok := smaSeries(k, smoothD)
	if !dok {
		return nil, nil, false
	}
	return k, d, true
}

// smaSeries computes a rolling SMA(period) across values, one output per
// fully-covered window.
func smaSeries(values []float64, period int) ([]float64, bool) {
	if period <= 0 || len(values) < period {
		return nil, false
	}
	out := make([]float64, 0, len(values)-period+1)
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	out = append(out, sum/float64(period))
	for i := period; i < len(values); i++ {
		sum += values[i] - values[i-period]
		out = append(out, sum/float64(period))
	}
	return out, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
