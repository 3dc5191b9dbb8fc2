package metrics

import "math"

// round2 rounds to two decimal places, half away from zero. Every monetary
// and hour figure in the engine is non-negative, so this matches
// round-half-up.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// roundPct rounds a ratio scaled to percent to the nearest whole number.
func roundPct(x float64) int {
	return int(math.Round(x))
}
