package explain

import (
	"context"
	"strings"

	"esg-recommender/internal/domain"

	"go.uber.org/zap"
)

const fallbackPrefix = "(explanation service unavailable, using template reason) "

// FallbackExplainer wraps a primary explainer and degrades to the template
// when the primary fails or returns nothing. It never returns an error.
type FallbackExplainer struct {
	primary Explainer
	logger  *zap.Logger
}

func NewFallbackExplainer(primary Explainer, logger *zap.Logger) *FallbackExplainer {
	return &FallbackExplainer{primary: primary, logger: logger}
}

func (f *FallbackExplainer) Explain(ctx context.Context, original, alternative domain.Product) (string, error) {
	text, err := f.primary.Explain(ctx, original, alternative)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	f.logger.Warn("Explanation backend failed, using template",
		zap.Int64("original_id", original.ID),
		zap.Int64("alternative_id", alternative.ID),
		zap.Error(err),
	)

	return fallbackPrefix + Template(original, alternative), nil
}

// Close releases the primary explainer when it holds resources
func (f *FallbackExplainer) Close() {
	if closer, ok := f.primary.(interface{ Close() }); ok {
		closer.Close()
	}
}
