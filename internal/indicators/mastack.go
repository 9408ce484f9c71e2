package indicators

import "github.com/edittrades/signalcore/internal/models"

// MAStack classifies the 21/50/200 moving-average alignment: bull when
// strictly ordered fast>mid>slow, bear when strictly reversed, flat
// otherwise.
func MAStack(closes []float64) (*models.MAStack, bool) {
	ma21, ok1 := SMA(closes, 21)
	ma50, ok2 := SMA(closes, 50)
	ma200, ok3 := SMA(closes, 200)
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}
	stack := &models.MAStack{}
	switch {
	case ma21 > ma50 && ma50 > ma200:
		stack.Bull = true
	case ma21 < ma50 && ma50 < ma200:
		stack.Bear = true
	default:
		stack.Flat = true
	}
	return stack, true
}
