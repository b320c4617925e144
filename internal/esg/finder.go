package esg

import (
	"sort"

	"esg-recommender/internal/domain"
)

// Candidate is a catalog product paired with its score
type Candidate struct {
	Product domain.Product
	Score   float64
}

// Finder selects greener substitutes from a catalog snapshot.
type Finder struct {
	scorer *Scorer
}

// NewFinder creates a Finder backed by the given scorer
func NewFinder(scorer *Scorer) *Finder {
	return &Finder{scorer: scorer}
}

// Rank returns every product in the same category as product, other than
// product itself, that scores strictly higher than it. The result is ordered
// by score descending; equal scores keep their catalog order.
func (f *Finder) Rank(product domain.Product, catalog []domain.Product) []Candidate {
	original := f.scorer.Score(product)

	var candidates []Candidate
	for _, p := range catalog {
		if p.Category != product.Category || p.ID == product.ID {
			continue
		}

		score := f.scorer.Score(p)
		if score > original {
			candidates = append(candidates, Candidate{Product: p, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// FindAlternative returns the best-scoring greener product in the same
// category. The boolean is false when no candidate beats the original, which
// is a normal outcome rather than an error.
func (f *Finder) FindAlternative(product domain.Product, catalog []domain.Product) (domain.Product, bool) {
	candidates := f.Rank(product, catalog)
	if len(candidates) == 0 {
		return domain.Product{}, false
	}
	return candidates[0].Product, true
}
