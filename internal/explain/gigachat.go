package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"esg-recommender/internal/config"
	"esg-recommender/internal/domain"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const systemInstruction = "You are a sustainability assistant for a grocery store. " +
	"Answer in one or two plain sentences without markdown."

// completeFunc sends a single user prompt to the model and returns its answer
type completeFunc func(ctx context.Context, prompt string) (string, error)

// GigaChatExplainer asks a GigaChat model to compare the two products.
// Outbound calls are throttled so a burst of recommendations cannot exhaust
// the API quota.
type GigaChatExplainer struct {
	complete completeFunc
	limiter  *rate.Limiter
	logger   *zap.Logger
	close    func()
}

// NewGigaChatExplainer authenticates against GigaChat and prepares the model
func NewGigaChatExplainer(ctx context.Context, cfg config.ExplainerConfig, logger *zap.Logger) (*GigaChatExplainer, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}

	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = systemInstruction
	model.Temperature = 0.3

	complete := func(ctx context.Context, prompt string) (string, error) {
		resp, err := model.Generate(ctx, []gigago.Message{
			{Role: gigago.RoleUser, Content: prompt},
		})
		if err != nil {
			return "", fmt.Errorf("failed to generate response: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no response from LLM")
		}

		return resp.Choices[0].Message.Content, nil
	}

	e := newGigaChatExplainer(complete, newLimiter(cfg.RequestsPerMinute), logger)
	e.close = func() { client.Close() }

	logger.Info("GigaChat explainer initialised", zap.String("model", cfg.Model))
	return e, nil
}

func newGigaChatExplainer(complete completeFunc, limiter *rate.Limiter, logger *zap.Logger) *GigaChatExplainer {
	return &GigaChatExplainer{
		complete: complete,
		limiter:  limiter,
		logger:   logger,
	}
}

// newLimiter allows perMinute calls per minute with a burst of the same size.
// A non-positive value disables throttling.
func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

func (g *GigaChatExplainer) Explain(ctx context.Context, original, alternative domain.Product) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", ErrExplanationUnavailable, err)
	}

	start := time.Now()
	text, err := g.complete(ctx, comparisonPrompt(original, alternative))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExplanationUnavailable, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty answer", ErrExplanationUnavailable)
	}

	g.logger.Debug("GigaChat explanation generated",
		zap.Int64("original_id", original.ID),
		zap.Int64("alternative_id", alternative.ID),
		zap.Duration("took", time.Since(start)),
	)

	return text, nil
}

// Close releases the underlying client
func (g *GigaChatExplainer) Close() {
	if g.close != nil {
		g.close()
	}
}

func comparisonPrompt(a, b domain.Product) string {
	return fmt.Sprintf(
		"Compare these two products for sustainability.\nProduct A: %s, %s\nProduct B: %s, %s\nWhich is greener and why? Give short answer.",
		a.Name, a.Description, b.Name, b.Description,
	)
}
