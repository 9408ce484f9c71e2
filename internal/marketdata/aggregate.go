package marketdata

import "github.com/edittrades/signalcore/internal/models"

// aggregateChunkSize is how many source candles combine into one aggregated
// candle for the only aggregated interval today (3d from 1d).
const aggregateChunkSize = 3

// AggregateCandles reduces consecutive chunks of chunkSize ascending candles
// into one candle each: open of the first, close of the last, max high, min
// low, summed volume, timestamped at the chunk's first candle. A trailing
// partial chunk (fewer than chunkSize candles) is dropped rather than
// reported as a short bar.
func AggregateCandles(candles []models.Candle, chunkSize int) []models.Candle {
	if chunkSize <= 1 || len(candles) < chunkSize {
		return nil
	}
	out := make([]models.Candle, 0, len(candles)/chunkSize)
	for start := 0; start+chunkSize <= len(candles); start += chunkSize {
		chunk := candles[start : start+chunkSize]
		agg := models.Candle{
			TimestampMs: chunk[0].TimestampMs,
			Open:        chunk[0].Open,
			Close:       chunk[len(chunk)-1].Close,
			High:        chunk[0].High,
			Low:         chunk[0].Low,
		}
		for _, c := range chunk {
			if c.High > agg.High {
				agg.High = c.High
			}
			if c.Low < agg.Low {
				agg.Low = c.Low
			}
			agg.Volume += c.Volume
		}
		out = append(out, agg)
	}
	return out
}

// Aggregated3dFrom1d converts ascending daily candles into 3d bars.
func Aggregated3dFrom1d(daily []models.Candle) []models.Candle {
	return AggregateCandles(daily, aggregateChunkSize)
}
