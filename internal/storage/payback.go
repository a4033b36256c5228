package storage

import "math"

// Per-kg payback rates in LKR. E-waste is accepted but not paid out;
// it is routed through the special pickup flow instead.
var paybackRates = map[string]float64{
	"plastic": 40,
	"paper":   20,
	"glass":   10,
	"metal":   70,
	"ewaste":  0,
}

func validCategory(category string) bool {
	_, ok := paybackRates[category]
	return ok
}

// CalculatePayback returns the credit for one weighed item, rounded to
// 2 decimals and floored at zero.
func CalculatePayback(category string, weightKG float64) float64 {
	rate := paybackRates[category]
	value := rate * weightKG
	return math.Max(0, math.Round(value*100)/100)
}

// TotalPayback sums per-item paybacks. Recomputed whenever items change.
func TotalPayback(items []RecyclableItem) float64 {
	var total float64
	for _, item := range items {
		total += CalculatePayback(item.Category, item.WeightKG)
	}
	return math.Round(total*100) / 100
}
