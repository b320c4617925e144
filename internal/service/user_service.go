package service

import (
	"context"
	"fmt"

	"esg-recommender/internal/domain"
	"esg-recommender/internal/repository"
)

// UserService defines the business logic for shoppers and their points
type UserService interface {
	GetByName(ctx context.Context, name string) (*domain.User, error)
	SetPoints(ctx context.Context, userID int64, points int) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return s.users.FindByName(ctx, name)
}

// SetPoints overwrites the balance and returns the updated user
func (s *userService) SetPoints(ctx context.Context, userID int64, points int) (*domain.User, error) {
	if points < 0 {
		return nil, ErrInvalidPoints
	}

	if err := s.users.UpdatePoints(ctx, userID, points); err != nil {
		return nil, fmt.Errorf("failed to set points: %w", err)
	}

	return s.users.FindByID(ctx, userID)
}
