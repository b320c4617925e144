package service

import (
	"context"
	"fmt"

	"esg-recommender/internal/domain"
	"esg-recommender/internal/repository"

	"github.com/shopspring/decimal"
)

// Cart is a user's cart with totals computed in decimal arithmetic
type Cart struct {
	UserID        int64             `json:"user_id"`
	Items         []domain.CartItem `json:"items"`
	TotalPrice    decimal.Decimal   `json:"total_price"`
	TotalCarbonKg decimal.Decimal   `json:"total_carbon_kg"`
}

// CartService defines the business logic for shopping carts
type CartService interface {
	Add(ctx context.Context, userID, productID int64, quantity int) error
	Get(ctx context.Context, userID int64) (*Cart, error)
	Clear(ctx context.Context, userID int64) error
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

// NewCartService creates a new instance of CartService
func NewCartService(
	carts repository.CartRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) CartService {
	return &cartService{carts: carts, products: products, users: users}
}

func (s *cartService) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	if err := s.carts.Add(ctx, userID, productID, quantity); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	return nil
}

func (s *cartService) Get(ctx context.Context, userID int64) (*Cart, error) {
	items, err := s.carts.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart := &Cart{
		UserID:        userID,
		Items:         items,
		TotalPrice:    decimal.Zero,
		TotalCarbonKg: decimal.Zero,
	}

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		cart.TotalPrice = cart.TotalPrice.Add(decimal.NewFromFloat(item.Price).Mul(qty))
		cart.TotalCarbonKg = cart.TotalCarbonKg.Add(decimal.NewFromFloat(item.CarbonKg).Mul(qty))
	}

	cart.TotalPrice = cart.TotalPrice.Round(2)
	cart.TotalCarbonKg = cart.TotalCarbonKg.Round(2)

	return cart, nil
}

func (s *cartService) Clear(ctx context.Context, userID int64) error {
	if err := s.carts.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
