package esg

import (
	"math"
	"testing"

	"esg-recommender/internal/domain"
)

func TestEstimateSavings(t *testing.T) {
	tests := []struct {
		name        string
		original    float64
		alternative float64
		want        float64
	}{
		{"chicken swap", 3.2, 2.1, 1.1},
		{"beef swap", 4.8, 2.1, 2.7},
		{"inverted inputs clamp to zero", 2.1, 3.2, 0},
		{"equal footprints", 1.5, 1.5, 0},
		{"rounds to two decimals", 1.005, 0.001, 1},
		{"exact tie rounds to even", 3, 0.375, 2.62},
		{"NaN original", math.NaN(), 1, 0},
		{"NaN alternative", 3, math.NaN(), 0},
		{"infinite original", math.Inf(1), 1, 0},
		{"negative alternative", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateSavings(domain.Product{CarbonKg: tt.original}, domain.Product{CarbonKg: tt.alternative})
			if got != tt.want {
				t.Errorf("EstimateSavings() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputePoints(t *testing.T) {
	tests := []struct {
		saved      float64
		multiplier float64
		want       int
	}{
		{1.1, DefaultPointsMultiplier, 11},
		{2.7, DefaultPointsMultiplier, 27},
		{0.19, DefaultPointsMultiplier, 1},
		{0.09, DefaultPointsMultiplier, 0},
		{0, DefaultPointsMultiplier, 0},
		{1.1, 0, 0},
		{-2, DefaultPointsMultiplier, 0},
		{math.NaN(), DefaultPointsMultiplier, 0},
		{1.99, 1, 1},
		{3, 2.5, 7},
		{0.29, 100, 29},
	}

	for _, tt := range tests {
		if got := ComputePoints(tt.saved, tt.multiplier); got != tt.want {
			t.Errorf("ComputePoints(%v, %v) = %d, want %d", tt.saved, tt.multiplier, got, tt.want)
		}
	}
}
