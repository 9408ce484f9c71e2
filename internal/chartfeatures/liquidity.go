package chartfeatures

import (
	"math"

	"github.com/edittrades/signalcore/internal/models"
)

// equalLevelTolerancePct is how close two pivots must be to count as
// "equal" for liquidity-zone clustering.
const equalLevelTolerancePct = 0.1

// LiquidityZones clusters equal-high and equal-low pivots into zones. A
// zone needs at least 2 pivots within tolerance of each other.
func LiquidityZones(candles []models.Candle) []models.LiquidityZone {
	zones := make([]models.LiquidityZone, 0)
	zones = append(zones, clusterEqualLevels(pivotPrices(findPivotHighs(candles)), "equal_highs")...)
	zones = append(zones, clusterEqualLevels(pivotPrices(findPivotLows(candles)), "equal_lows")...)
	return zones
}

func pivotPrices(pivots []pivot) []float64 {
	out := make([]float64, len(pivots))
	for i, p := range pivots {
		out[i] = p.Price
	}
	return out
}

func clusterEqualLevels(prices []float64, zoneType string) []models.LiquidityZone {
	zones := make([]models.LiquidityZone, 0)
	used := make([]bool, len(prices))

	for i, price := range prices {
		if used[i] {
			continue
		}
		cluster := []float64{price}
		used[i] = true
		for j := i + 1; j < len(prices); j++ {
			if used[j] {
				continue
			}
			if math.Abs(prices[j]-price)/price*100 <= equalLevelTolerancePct {
				cluster = append(cluster, prices[j])
				used[j] = true
			}
		}
		if len(cluster) >= 2 {
			sum := 0.0
			for _, v := range cluster {
				sum += v
			}
			zones = append(zones, models.LiquidityZone{
				Type:  zoneType,
				Price: sum / float64(len(cluster)),
				Count: len(cluster),
			})
		}
	}
	return zones
}
