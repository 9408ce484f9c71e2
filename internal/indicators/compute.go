package indicators

import "github.com/edittrades/signalcore/internal/models"

// Compute builds the uniform Indicators record for an ascending candle
// series. Every nested field is independently null-safe per models.Indicators:
// missing input makes that one field nil/empty while the rest of the
// record stays intact.
func Compute(candles []models.Candle) models.Indicators {
	if len(candles) == 0 {
		return models.Indicators{
			CandlestickPatterns: []models.CandlestickPattern{},
			StochRSI:            models.StochRSIData{Condition: models.StochNeutral},
			Analysis:            models.TrendAnalysis{Trend: models.TrendFlat, PullbackState: models.PullbackUnknown},
		}
	}

	closes := models.Closes(candles)
	last := candles[len(candles)-1]

	ind := models.Indicators{
		Price: models.PriceSnapshot{
			Current: last.Close,
			High:    last.High,
			Low:     last.Low,
		},
		WickAnalysis: ClassifyWick(last),
		CandlestickPatterns: DetectCandlestickPatterns(candles),
		Metadata: models.IndicatorMetadata{
			CandleCount: len(candles),
			LastUpdate:  last.Time(),
		},
	}

	ema21, ema200 := computeEMA(closes)
	ind.EMA = ema21.merge(ema200)

	ind.StochRSI = computeStochRSI(closes)

	ind.RSI = computeRSI(closes)

	var ema21Val float64
	if ind.EMA != nil && ind.EMA.EMA21 != nil {
		ema21Val = *ind.EMA.EMA21
	}
	var ema200Val float64
	if ind.EMA != nil && ind.EMA.EMA200 != nil {
		ema200Val = *ind.EMA.EMA200
	}
	ind.Analysis = classifyTrend(last.Close, ema21Val, ind.EMA != nil && ind.EMA.EMA21 != nil, ema200Val, ind.EMA != nil && ind.EMA.EMA200 != nil)

	if adx, ok := ADX(candles, 14); ok {
		c := ClassifyADX(adx)
		ind.TrendStrength = &c
	}

	return ind
}

// emaPair is an internal helper pairing an EMA series with its ok flag.
type emaPair struct {
	value   float64
	history []float64
	ok      bool
}

func (p *emaPair) merge(other *emaPair) *models.EMAData {
	if !p.ok && !other.ok {
		return nil
	}
	data := &models.EMAData{}
	if p.ok {
		v := p.value
		data.EMA21 = &v
		data.EMA21History = p.history
	}
	if other.ok {
		v := other.value
		data.EMA200 = &v
		data.EMA200History = other.history
	}
	return data
}

func computeEMA(closes []float64) (*emaPair, *emaPair) {
	p21 := &emaPair{}
	if series, ok := EMASeries(closes, 21); ok {
		p21.ok = true
		p21.value = series[len(series)-1]
		p21.history = series
	}
	p200 := &emaPair{}
	if series, ok := EMASeries(closes, 200); ok {
		p200.ok = true
		p200.value = series[len(series)-1]
		p200.history = series
	}
	return p21, p200
}

func computeStochRSI(closes []float64) models.StochRSIData {
	k, d, ok := StochRSI(closes, 14, 14, 3, 3)
	if !ok || len(k) == 0 || len(d) == 0 {
		return models.StochRSIData{Condition: models.StochNeutral}
	}
	lastK := k[len(k)-1]
	lastD := d[len(d)-1]
	return models.StochRSIData{
		K:         lastK,
		D:         lastD,
		Condition: classifyStochCondition(lastK, lastD),
		History:   k,
	}
}

func classifyStochCondition(k, d float64) string {
	switch {
	case k < 20:
		return models.StochOversold
	case k > 80:
		return models.StochOverbought
	case k > d:
		return models.StochBullish
	case k < d:
		return models.StochBearish
	default:
		return models.StochNeutral
	}
}

func computeRSI(closes []float64) *models.RSIData {
	series, ok := RSISeries(closes, 14)
	if !ok || len(series) == 0 {
		return nil
	}
	value := series[len(series)-1]
	return &models.RSIData{
		Value:      value,
		History:    series,
		Overbought: value > 70,
		Oversold:   value < 30,
	}
}

// classifyTrend applies the trend/pullback classification: UPTREND iff
// price>ema21>ema200, DOWNTREND iff price<ema21<ema200, otherwise FLAT.
// Requires both EMAs to be present; missing data classifies as FLAT with
// zero distance.
func classifyTrend(price, ema21 float64, haveEMA21 bool, ema200 float64, haveEMA200 bool) models.TrendAnalysis {
	if !haveEMA21 || !haveEMA200 {
		return models.TrendAnalysis{Trend: models.TrendFlat, PullbackState: models.PullbackUnknown}
	}

	trend := models.TrendFlat
	switch {
	case price > ema21 && ema21 > ema200:
		trend = models.TrendUptrend
	case price < ema21 && ema21 < ema200:
		trend = models.TrendDowntrend
	}

	var distance float64
	if ema21 != 0 {
		distance = (price - ema21) / ema21 * 100
	}

	pullback := models.PullbackRetracing
	absDist := distance
	if absDist < 0 {
		absDist = -absDist
	}
	switch {
	case absDist < 0.5:
		pullback = models.PullbackEntryZone
	case absDist > 3:
		pullback = models.PullbackOverextended
	}

	return models.TrendAnalysis{
		Trend:             trend,
		PullbackState:     pullback,
		DistanceFrom21EMA: distance,
	}
}
