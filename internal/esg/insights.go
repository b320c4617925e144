package esg

import (
	"strings"

	"esg-recommender/internal/domain"
)

const highCarbonInsight = 3.0

// Insights scores a product and lists concrete ways to pick a greener one.
func (s *Scorer) Insights(product domain.Product) domain.ProductInsights {
	result := s.ScoreProduct(product)

	packaging := product.Packaging
	if strings.TrimSpace(string(packaging)) == "" {
		packaging = "unknown"
	}

	insights := domain.ProductInsights{
		Score:           result.Score,
		Grade:           result.Grade,
		CarbonKg:        product.CarbonKg,
		IsOrganic:       product.IsOrganic,
		Packaging:       packaging,
		Recommendations: []string{},
	}

	if !product.IsOrganic {
		insights.Recommendations = append(insights.Recommendations,
			"Consider organic version for better sustainability")
	}
	if strings.EqualFold(strings.TrimSpace(string(product.Packaging)), string(domain.PackagingPlastic)) {
		insights.Recommendations = append(insights.Recommendations,
			"Look for alternatives with glass or paper packaging")
	}
	if product.CarbonKg > highCarbonInsight {
		insights.Recommendations = append(insights.Recommendations,
			"High carbon footprint - consider lower-impact alternatives")
	}

	return insights
}
