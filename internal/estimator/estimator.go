package estimator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"homeinsight-valuation/internal/models"
)

// Fixed pricing coefficients. These mirror the heuristic the form client
// shipped with before the model service existed.
const (
	basePrice          = 150000.0
	perSquareFoot      = 100.0
	perBedroom         = 15000.0
	perBathroom        = 20000.0
	perYearSince1950   = 500.0
	perAcre            = 100000.0
	perGarageSpace     = 10000.0
	basementPremium    = 20000.0
	centralAirPremium  = 15000.0
	perKitchenQuality  = 10000.0
	marketVariationMin = 0.95
	marketVariationMax = 1.05
)

// Source yields values uniform in [0, 1). Injected so tests can pin the
// market variation instead of patching global randomness.
type Source func() float64

// Estimator computes heuristic house prices from a fixed coefficient set,
// an immutable neighborhood multiplier table, and a market noise source.
type Estimator struct {
	factors map[string]float64
	source  Source
	mu      sync.Mutex
}

// New creates an Estimator over the given neighborhood factor table and
// noise source. A nil source gets a time-seeded generator.
func New(factors map[string]float64, source Source) *Estimator {
	if source == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		source = rng.Float64
	}
	table := make(map[string]float64, len(factors))
	for name, factor := range factors {
		table[name] = factor
	}
	return &Estimator{factors: table, source: source}
}

// NewDefault creates an Estimator with the production factor table and a
// time-seeded noise source.
func NewDefault() *Estimator {
	return New(DefaultNeighborhoodFactors(), nil)
}

// Subtotal computes the deterministic linear portion of the price, before
// the neighborhood factor and market variation are applied.
//
// No bounds checking happens here. Out-of-range inputs propagate
// arithmetically; range enforcement belongs to the form-level validator.
func (e *Estimator) Subtotal(record *models.HouseRecord) float64 {
	subtotal := basePrice
	subtotal += record.SquareFootage * perSquareFoot
	subtotal += float64(record.Bedrooms) * perBedroom
	subtotal += record.Bathrooms * perBathroom
	subtotal += float64(record.YearBuilt-1950) * perYearSince1950
	subtotal += record.LotSize * perAcre
	subtotal += float64(record.Garage) * perGarageSpace
	if record.Basement {
		subtotal += basementPremium
	}
	if record.CentralAir {
		subtotal += centralAirPremium
	}
	subtotal += float64(record.KitchenQuality-1) * perKitchenQuality
	return subtotal
}

// NeighborhoodFactor returns the multiplier for a neighborhood. Unknown
// names get the neutral 1.0.
func (e *Estimator) NeighborhoodFactor(name string) float64 {
	if factor, ok := e.factors[name]; ok {
		return factor
	}
	return 1.0
}

// Estimate computes the heuristic price for a record, rounded to the
// nearest integer currency unit. The market variation is drawn fresh from
// [0.95, 1.05] on every call, so two calls with identical input may differ
// by up to ±5%. That noise models market conditions and is intentional.
func (e *Estimator) Estimate(record *models.HouseRecord) int64 {
	price := e.Subtotal(record) * e.NeighborhoodFactor(record.Neighborhood) * e.marketVariation()
	return int64(math.Round(price))
}

func (e *Estimator) marketVariation() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return marketVariationMin + e.source()*(marketVariationMax-marketVariationMin)
}
