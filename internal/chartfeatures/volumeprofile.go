package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

const volumeProfileWindow = 50

// volumeProfileBuckets is the price-bucket count for node classification.
const volumeProfileBuckets = 10

// VolumeProfile buckets the recent window's traded volume by price level
// and reports the highest/lowest-volume nodes plus a value area
// (the price band holding 70% of traded volume, centered on the
// highest-volume bucket).
func VolumeProfile(candles []models.Candle) models.VolumeProfile {
	vp := models.VolumeProfile{HighVolumeNodes: []float64{}, LowVolumeNodes: []float64{}}
	window := candles
	if len(window) > volumeProfileWindow {
		window = window[len(window)-volumeProfileWindow:]
	}
	if len(window) == 0 {
		return vp
	}

	low, high := window[0].Low, window[0].High
	for _, c := range window {
		if c.Low < low {
			low = c.Low
		}
		if c.High > high {
			high = c.High
		}
	}
	if high == low {
		return vp
	}

	bucketSize := (high - low) / float64(volumeProfileBuckets)
	volumes := make([]float64, volumeProfileBuckets)
	for _, c := range window {
		mid := (c.High + c.Low) / 2
		idx := int((mid - low) / bucketSize)
		if idx >= volumeProfileBuckets {
			idx = volumeProfileBuckets - 1
		}
		if idx < 0 {
			idx = 0
		}
		volumes[idx] += c.Volume
	}

	totalVolume := 0.0
	for _, v := range volumes {
		totalVolume += v
	}

	maxIdx := 0
	for i, v := range volumes {
		if v > volumes[maxIdx] {
			maxIdx = i
		}
	}
	bucketPrice := func(i int) float64 { return low + bucketSize*(float64(i)+0.5) }

	for i, v := range volumes {
		if totalVolume == 0 {
			continue
		}
		share := v / totalVolume
		if share > 0.12 {
			vp.HighVolumeNodes = append(vp.HighVolumeNodes, bucketPrice(i))
		} else if share < 0.03 {
			vp.LowVolumeNodes = append(vp.LowVolumeNodes, bucketPrice(i))
		}
	}

	lo, hi := maxIdx, maxIdx
	covered := volumes[maxIdx]
	for totalVolume > 0 && covered/totalVolume < 0.70 && (lo > 0 || hi < volumeProfileBuckets-1) {
		expandLow := lo > 0
		expandHigh := hi < volumeProfileBuckets-1
		if expandLow && (!expandHigh || volumes[lo-1] >= volumes[hi+1]) {
			lo--
			covered += volumes[lo]
		} else if expandHigh {
			hi++
			covered += volumes[hi]
		} else {
			break
		}
	}
	vp.ValueAreaLow = low + bucketSize*float64(lo)
	vp.ValueAreaHigh = low + bucketSize*float64(hi+1)

	return vp
}
