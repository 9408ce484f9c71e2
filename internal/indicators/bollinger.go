package indicators

import "github.com/edittrades/signalcore/internal/models"

// BollingerBands computes the standard Bollinger Bands(period, stdDevMult)
// over closes. Returns false when there isn't enough data.
func BollingerBands(closes []float64, period int, stdDevMult float64) (upper, middle, lower float64, ok bool) {
	mid, ok1 := SMA(closes, period)
	dev, ok2 := StdDev(closes, period)
	if !ok1 || !ok2 {
		return 0, 0, 0, false
	}
	return mid + dev*stdDevMult, mid, mid - dev*stdDevMult, true
}

// BollingerSqueeze reports whether the band width (upper minus lower, as a
// fraction of the middle band) is below a fixed 4%. It does not compare the
// width against the band's own recent history.
func BollingerSqueeze(upper, middle, lower float64) bool {
	if middle == 0 {
		return false
	}
	width := (upper - lower) / middle
	return width < 0.04
}

// ClassifyBollinger builds a BollingerInfo for the given closes.
func ClassifyBollinger(closes []float64, period int) (*models.BollingerInfo, bool) {
	upper, middle, lower, ok := BollingerBands(closes, period, 2.0)
	if !ok {
		return nil, false
	}
	return &models.BollingerInfo{
		Upper:   upper,
		Middle:  middle,
		Lower:   lower,
		Squeeze: BollingerSqueeze(upper, middle, lower),
	}, true
}
