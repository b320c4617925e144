package service

import (
	"context"
	"errors"
	"fmt"

	"esg-recommender/internal/domain"
	"esg-recommender/internal/esg"
	"esg-recommender/internal/explain"
	"esg-recommender/internal/repository"

	"go.uber.org/zap"
)

// RecommendationService defines the business logic for greener swaps
type RecommendationService interface {
	// Recommend finds the greenest same-category alternative to productID and
	// credits userID with the points earned. A product that is already the
	// best in its category yields a Recommendation without an alternative.
	Recommend(ctx context.Context, productID, userID int64) (*domain.Recommendation, error)
}

type recommendationService struct {
	products   repository.ProductRepository
	users      repository.UserRepository
	finder     *esg.Finder
	explainer  explain.Explainer
	multiplier float64
	logger     *zap.Logger
}

// NewRecommendationService creates a new instance of RecommendationService
func NewRecommendationService(
	products repository.ProductRepository,
	users repository.UserRepository,
	finder *esg.Finder,
	explainer explain.Explainer,
	pointsMultiplier float64,
	logger *zap.Logger,
) RecommendationService {
	return &recommendationService{
		products:   products,
		users:      users,
		finder:     finder,
		explainer:  explainer,
		multiplier: pointsMultiplier,
		logger:     logger,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, productID, userID int64) (*domain.Recommendation, error) {
	original, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	catalog, err := s.products.List(ctx, original.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	result := &domain.Recommendation{Original: *original}

	alternative, ok := s.finder.FindAlternative(*original, catalog)
	if !ok {
		s.logger.Info("No greener alternative",
			zap.Int64("product_id", original.ID),
			zap.String("category", original.Category),
		)
		return result, nil
	}

	result.Alternative = &alternative
	result.CarbonSavedKg = esg.EstimateSavings(*original, alternative)
	result.PointsAwarded = esg.ComputePoints(result.CarbonSavedKg, s.multiplier)

	result.Reason, err = s.explainer.Explain(ctx, *original, alternative)
	if err != nil {
		result.Reason = explain.Template(*original, alternative)
	}

	if result.PointsAwarded > 0 {
		balance, err := s.users.AddPoints(ctx, userID, result.PointsAwarded)
		if err != nil {
			return nil, fmt.Errorf("failed to credit points: %w", err)
		}
		s.logger.Info("Points credited",
			zap.Int64("user_id", userID),
			zap.Int("awarded", result.PointsAwarded),
			zap.Int("balance", balance),
		)
	}

	s.logger.Info("Recommendation generated",
		zap.Int64("product_id", original.ID),
		zap.Int64("alternative_id", alternative.ID),
		zap.Float64("carbon_saved", result.CarbonSavedKg),
	)

	return result, nil
}
