package esg

import (
	"math"
	"strconv"
	"strings"

	"esg-recommender/internal/domain"

	"github.com/shopspring/decimal"
)

// packagingScores maps a packaging material to its raw score before weighting.
// Materials not listed score 0.
var packagingScores = map[domain.Packaging]float64{
	domain.PackagingGlass:     2,
	domain.PackagingPaper:     1.5,
	domain.PackagingCardboard: 1.5,
	domain.PackagingAluminum:  1,
	domain.PackagingPlastic:   -1,
	domain.PackagingStyrofoam: -2,
}

// Carbon footprint bands in kg CO2e per unit.
const (
	carbonVeryLow = 1.0
	carbonLow     = 2.0
	carbonHigh    = 4.0
)

// Scorer computes sustainability scores with a fixed set of weights.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer using the given weights
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Weights returns the weights the scorer was built with
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score returns the sustainability score of a product rounded to two decimals.
// The price efficiency term divides the score accumulated so far by the price,
// so the order of the terms matters.
func (s *Scorer) Score(product domain.Product) float64 {
	score := 0.0

	if product.IsOrganic {
		score += s.weights.Organic
	}

	score += PackagingScore(product.Packaging) * s.weights.Packaging

	carbon := product.CarbonKg
	switch {
	case carbon < carbonVeryLow:
		score += s.weights.Carbon * 2
	case carbon < carbonLow:
		score += s.weights.Carbon
	case carbon > carbonHigh:
		score -= s.weights.Carbon
	}

	if product.Price > 0 {
		efficiency := score / product.Price
		score += efficiency * s.weights.Efficiency
	}

	return round2(score)
}

// ScoreProduct returns both the numeric score and its grade
func (s *Scorer) ScoreProduct(product domain.Product) domain.ScoreResult {
	score := s.Score(product)
	return domain.ScoreResult{
		Score: score,
		Grade: Grade(score),
	}
}

// Grade converts a score into a letter grade. Each band includes its lower bound.
func Grade(score float64) domain.Grade {
	switch {
	case score >= 8:
		return domain.GradeAPlus
	case score >= 6:
		return domain.GradeA
	case score >= 4:
		return domain.GradeBPlus
	case score >= 2:
		return domain.GradeB
	case score >= 0:
		return domain.GradeC
	default:
		return domain.GradeD
	}
}

// PackagingScore looks up the raw packaging score, ignoring case and
// surrounding whitespace.
func PackagingScore(p domain.Packaging) float64 {
	key := domain.Packaging(strings.ToLower(strings.TrimSpace(string(p))))
	return packagingScores[key]
}

// round2 rounds to two decimal places, half to even, on the exact binary
// value of v rather than its shortest decimal form: 2.675 is stored as
// 2.67499... and becomes 2.67, while -2.625 is an exact tie and becomes -2.62.
// Thirty fractional digits are enough that no non-tie is mistaken for one.
// Non-finite values collapse to 0 so callers always get a usable number.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	exact, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', 30, 64))
	if err != nil {
		return 0
	}
	return exact.RoundBank(2).InexactFloat64()
}
