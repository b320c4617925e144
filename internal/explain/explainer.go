// Package explain produces the human-readable reason attached to a
// recommendation.
package explain

import (
	"context"
	"errors"
	"fmt"

	"esg-recommender/internal/domain"
)

// ErrExplanationUnavailable is returned when an explanation backend cannot
// produce text.
var ErrExplanationUnavailable = errors.New("explanation service unavailable")

// Explainer describes why alternative is greener than original
type Explainer interface {
	Explain(ctx context.Context, original, alternative domain.Product) (string, error)
}

// Template returns the fixed reason used when no richer explanation is available
func Template(original, alternative domain.Product) string {
	return fmt.Sprintf(
		"%s is more sustainable than %s because it is organic, uses better packaging, and has a lower carbon footprint.",
		alternative.Name, original.Name,
	)
}

// TemplateExplainer always returns the fixed template and never fails
type TemplateExplainer struct{}

func (TemplateExplainer) Explain(_ context.Context, original, alternative domain.Product) (string, error) {
	return Template(original, alternative), nil
}
