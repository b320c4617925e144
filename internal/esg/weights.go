package esg

import (
	"errors"
	"fmt"
	"math"
)

// DefaultPointsMultiplier is the number of reward points per kg of CO2e saved.
const DefaultPointsMultiplier = 10.0

// ErrInvalidWeight is returned for negative or non-finite weights.
var ErrInvalidWeight = errors.New("invalid scoring weight")

// Weights controls how much each factor contributes to a sustainability score.
type Weights struct {
	Organic    float64 `json:"organic"`
	Packaging  float64 `json:"packaging"`
	Carbon     float64 `json:"carbon"`
	Efficiency float64 `json:"price_efficiency"`
}

// DefaultWeights returns the stock weighting table.
func DefaultWeights() Weights {
	return Weights{
		Organic:    3.0,
		Packaging:  2.0,
		Carbon:     2.5,
		Efficiency: 1.0,
	}
}

// Validate checks that every weight is a finite, non-negative number.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"organic", w.Organic},
		{"packaging", w.Packaging},
		{"carbon", w.Carbon},
		{"price_efficiency", w.Efficiency},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeight, f.name, f.value)
		}
	}

	return nil
}
