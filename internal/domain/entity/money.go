package entity

import "math"

// RoundMoney rounds a currency amount to two decimals.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
