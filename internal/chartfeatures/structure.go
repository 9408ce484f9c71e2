package chartfeatures

import "github.com/edittrades/signalcore/internal/models"

// MarketStructure derives the current structural read from the pivot
// sequence: a break-of-structure (BOS) is a close beyond the prior
// same-side pivot in the direction of the existing structure; a
// change-of-character (CHOCH) is a close beyond the prior opposite-side
// pivot against it.
func MarketStructure(candles []models.Candle) models.MarketStructure {
	ms := models.MarketStructure{CurrentStructure: models.StructureUnknown}
	highs := findPivotHighs(candles)
	lows := findPivotLows(candles)
	if len(highs) < 2 || len(lows) < 2 {
		return ms
	}

	lastHigh := highs[len(highs)-1]
	prevHigh := highs[len(highs)-2]
	lastLow := lows[len(lows)-1]
	prevLow := lows[len(lows)-2]

	higherHighs := lastHigh.Price > prevHigh.Price
	higherLows := lastLow.Price > prevLow.Price
	lowerHighs := lastHigh.Price < prevHigh.Price
	lowerLows := lastLow.Price < prevLow.Price

	switch {
	case higherHighs && higherLows:
		ms.CurrentStructure = models.StructureUptrend
	case lowerHighs && lowerLows:
		ms.CurrentStructure = models.StructureDowntrend
	default:
		ms.CurrentStructure = models.StructureFlat
	}

	current := candles[len(candles)-1]

	if ms.CurrentStructure == models.StructureUptrend && current.Close > lastHigh.Price {
		ms.LastBOS = &models.StructureEvent{
			Type: "BOS", Direction: "bullish",
			FromSwing: prevHigh.Price, ToSwing: lastHigh.Price,
			Price: current.Close, Timestamp: current.Time(),
		}
	}
	if ms.CurrentStructure == models.StructureDowntrend && current.Close < lastLow.Price {
		ms.LastBOS = &models.StructureEvent{
			Type: "BOS", Direction: "bearish",
			FromSwing: prevLow.Price, ToSwing: lastLow.Price,
			Price: current.Close, Timestamp: current.Time(),
		}
	}
	if ms.CurrentStructure == models.StructureDowntrend && current.Close > lastHigh.Price {
		ms.LastCHOCH = &models.StructureEvent{
			Type: "CHOCH", Direction: "bullish",
			FromSwing: lastLow.Price, ToSwing: lastHigh.Price,
			Price: current.Close, Timestamp: current.Time(),
		}
	}
	if ms.CurrentStructure == models.StructureUptrend && current.Close < lastLow.Price {
		ms.LastCHOCH = &models.StructureEvent{
			Type: "CHOCH", Direction: "bearish",
			FromSwing: lastHigh.Price, ToSwing: lastLow.Price,
			Price: current.Close, Timestamp: current.Time(),
		}
	}

	return ms
}
