package esg

import (
	"math"

	"esg-recommender/internal/domain"

	"github.com/shopspring/decimal"
)

// EstimateSavings returns the kg of CO2e saved per unit by switching from
// original to alternative. It never returns a negative value. Malformed
// footprints (NaN, infinite or negative) make the estimate 0.
func EstimateSavings(original, alternative domain.Product) float64 {
	from, ok := footprint(original.CarbonKg)
	if !ok {
		return 0
	}
	to, ok := footprint(alternative.CarbonKg)
	if !ok {
		return 0
	}

	return math.Max(0, round2(from-to))
}

// ComputePoints converts saved carbon into reward points, truncating toward
// zero. The product is taken in decimal so 0.29 kg at x100 is 29 points, not 28.
func ComputePoints(carbonSaved, multiplier float64) int {
	points := carbonSaved * multiplier
	if math.IsNaN(points) || points <= 0 {
		return 0
	}
	if points >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(decimal.NewFromFloat(carbonSaved).Mul(decimal.NewFromFloat(multiplier)).Floor().IntPart())
}

func footprint(kg float64) (float64, bool) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg < 0 {
		return 0, false
	}
	return kg, true
}
