package estimator

// DefaultNeighborhoodFactors returns the production neighborhood multiplier
// table. A fresh copy is returned on each call so callers cannot mutate
// shared state.
func DefaultNeighborhoodFactors() map[string]float64 {
	return map[string]float64{
		"Downtown":         1.20,
		"Suburban Heights": 1.10,
		"Riverside":        1.15,
		"West End":         0.95,
		"North Hills":      1.05,
		"Oak Park":         1.00,
		"Maplewood":        0.90,
		"Cedar Ridge":      1.10,
		"Brookside":        1.05,
		"Highland Park":    1.20,
	}
}
