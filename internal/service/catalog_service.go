package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"esg-recommender/internal/domain"
	"esg-recommender/internal/esg"
	"esg-recommender/internal/repository"
)

// ProductDetails is a product together with its sustainability insights
type ProductDetails struct {
	Product  domain.Product         `json:"product"`
	Insights domain.ProductInsights `json:"insights"`
}

// CatalogService defines the business logic for browsing and scoring products
type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*ProductDetails, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	Score(product domain.Product) domain.ScoreResult
}

type catalogService struct {
	products repository.ProductRepository
	scorer   *esg.Scorer
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(products repository.ProductRepository, scorer *esg.Scorer) CatalogService {
	return &catalogService{products: products, scorer: scorer}
}

func (s *catalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.products.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*ProductDetails, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	return &ProductDetails{
		Product:  *product,
		Insights: s.scorer.Insights(*product),
	}, nil
}

// CreateProduct normalises the free-text fields and stores the product
func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.ToLower(strings.TrimSpace(product.Category))
	product.Packaging = domain.Packaging(strings.ToLower(strings.TrimSpace(string(product.Packaging))))

	if err := s.products.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *catalogService) Score(product domain.Product) domain.ScoreResult {
	return s.scorer.ScoreProduct(product)
}
