package marketdata

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/edittrades/signalcore/internal/models"
)

// syntheticBasePrice anchors generated candles in a plausible crypto price
// range; the deterministic walk is applied relative to this.
const syntheticBasePrice = 100.0

// GenerateSyntheticCandles produces a deterministic candle series for
// (symbol, interval, now) when every real upstream has failed. Determinism
// comes from seeding a small xorshift PRNG with the FNV hash of the three
// inputs — same inputs always produce the same series, unlike math/rand's
// process-global state.
func GenerateSyntheticCandles(symbol string, interval models.IntervalCode, nowMs int64, count int) []models.Candle {
	minutes, ok := interval.Minutes()
	if !ok {
		minutes = 60
	}
	intervalMs := int64(minutes) * 60 * 1000

	rng := newSeededRNG(seedFor(symbol, interval, nowMs))

	firstTs := nowMs - intervalMs*int64(count)
	candles := make([]models.Candle, count)
	price := syntheticBasePrice + rng.float64()*900

	for i := 0; i < count; i++ {
		open := price
		move := (rng.float64() - 0.5) * open * 0.02
		close := open + move
		high := max64(open, close) + rng.float64()*open*0.005
		low := min64(open, close) - rng.float64()*open*0.005
		volume := 1000 + rng.float64()*9000

		candles[i] = models.Candle{
			TimestampMs: firstTs + intervalMs*int64(i),
			Open:        open,
			High:        high,
			Low:         low,
			Close:       close,
			Volume:      volume,
		}
		price = close
	}
	return candles
}

func seedFor(symbol string, interval models.IntervalCode, nowMs int64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte(interval))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(nowMs))
	h.Write(buf[:])
	seed := h.Sum64()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// seededRNG is a minimal xorshift64 generator: deterministic, fast, and
// dependency-free, which is all this needs since it never has to be
// cryptographically unpredictable.
type seededRNG struct {
	state uint64
}

func newSeededRNG(seed uint64) *seededRNG {
	return &seededRNG{state: seed}
}

func (r *seededRNG) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float64 returns a deterministic pseudo-random value in [0,1).
func (r *seededRNG) float64() float64 {
	return float64(r.next()%1_000_000) / 1_000_000
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
