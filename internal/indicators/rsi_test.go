package indicators

import "testing"

func TestRSIAllGains(t *testing.T) {
	values := make([]float64, 0, 20)
	for i := 0; i < 20; i++ {
		values = append(values, 100+float64(i))
	}
	value, ok := RSI(values, 14)
	if !ok {
		t.Fatal("expected ok")
	}
	if value != 100 {
		t.Errorf("RSI of a pure uptrend should be 100, got %v", value)
	}
}

func TestRSIInsufficientData(t *testing.T) {
	if _, ok := RSI([]float64{1, 2, 3}, 14); ok {
		t.Error("expected not ok for short series")
	}
}

func TestStochRSIClamped(t *testing.T) {
	values := make([]float64, 0, 40)
	price := 100.0
	for i := 0; i < 40; i++ {
		if i%2 == 0 {
			price += 1
		} else {
			price -= 0.5
		}
		values = append(values, price)
	}

	k, d, ok := StochRSI(values, 14, 14, 3, 3)
	if !ok {
		t.Fatal("expected ok")
	}
	for _, v := range append(append([]float64{}, k...), d...) {
		if v < 0 || v > 100 {
			t.Errorf("stochRSI value %v out of [0,100]", v)
		}
	}
}
