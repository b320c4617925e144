package service

import (
	"context"
	"sync"

	"esg-recommender/internal/domain"
	"esg-recommender/internal/repository"
)

// Mock repositories for testing
type mockProductRepository struct {
	products []domain.Product
	listErr  error
	findErr  error
}

func newMockProductRepository(products ...domain.Product) *mockProductRepository {
	return &mockProductRepository{products: products}
}

func (m *mockProductRepository) List(ctx context.Context, category string) ([]domain.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []domain.Product{}
	for _, p := range m.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, p := range m.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = int64(len(m.products) + 1)
	m.products = append(m.products, *product)
	return nil
}

type mockUserRepository struct {
	mu      sync.Mutex
	users   map[int64]*domain.User
	addErr  error
	credits []int
}

func newMockUserRepository(users ...domain.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[int64]*domain.User)}
	for _, u := range users {
		u := u
		m.users[u.ID] = &u
	}
	return m
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Name == name {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) UpdatePoints(ctx context.Context, id int64, points int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Points = points
	return nil
}

func (m *mockUserRepository) AddPoints(ctx context.Context, id int64, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.addErr != nil {
		return 0, m.addErr
	}
	user, ok := m.users[id]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	user.Points += delta
	m.credits = append(m.credits, delta)
	return user.Points, nil
}

type mockCartRepository struct {
	items  map[int64][]domain.CartItem
	addErr error
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{items: make(map[int64][]domain.CartItem)}
}

func (m *mockCartRepository) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if m.addErr != nil {
		return m.addErr
	}
	for i, item := range m.items[userID] {
		if item.ProductID == productID {
			m.items[userID][i].Quantity += quantity
			return nil
		}
	}
	m.items[userID] = append(m.items[userID], domain.CartItem{
		CartID:    int64(len(m.items[userID]) + 1),
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (m *mockCartRepository) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return append([]domain.CartItem{}, m.items[userID]...), nil
}

func (m *mockCartRepository) Clear(ctx context.Context, userID int64) error {
	delete(m.items, userID)
	return nil
}

type recordingExplainer struct {
	text  string
	err   error
	calls int
}

func (r *recordingExplainer) Explain(ctx context.Context, original, alternative domain.Product) (string, error) {
	r.calls++
	return r.text, r.err
}

func seedCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Regular Chicken Breast", Description: "Standard chicken breast", Category: "meat", Packaging: "plastic", CarbonKg: 3.2, Price: 8.99},
		{ID: 2, Name: "Organic Free-Range Chicken", Description: "Organic, free-range chicken", Category: "meat", Packaging: "paper", IsOrganic: true, CarbonKg: 2.1, Price: 12.99},
		{ID: 3, Name: "Regular Ground Beef", Description: "Standard ground beef", Category: "meat", Packaging: "plastic", CarbonKg: 4.8, Price: 10.99},
		{ID: 4, Name: "Organic Grass-Fed Beef", Description: "Organic, grass-fed beef", Category: "meat", Packaging: "paper", IsOrganic: true, CarbonKg: 3.2, Price: 16.99},
		{ID: 5, Name: "Regular Milk", Description: "Standard milk", Category: "dairy", Packaging: "plastic", CarbonKg: 1.9, Price: 3.99},
		{ID: 6, Name: "Organic Oat Milk", Description: "Organic oat milk", Category: "dairy", Packaging: "glass", IsOrganic: true, CarbonKg: 0.8, Price: 4.99},
		{ID: 7, Name: "Regular Yogurt", Description: "Standard yogurt", Category: "dairy", Packaging: "plastic", CarbonKg: 1.2, Price: 2.99},
		{ID: 8, Name: "Organic Greek Yogurt", Description: "Organic Greek yogurt", Category: "dairy", Packaging: "glass", IsOrganic: true, CarbonKg: 0.9, Price: 5.99},
		{ID: 9, Name: "White Rice", Description: "Standard white rice", Category: "grains", Packaging: "plastic", CarbonKg: 2.1, Price: 2.49},
		{ID: 10, Name: "Organic Brown Rice", Description: "Organic brown rice", Category: "grains", Packaging: "paper", IsOrganic: true, CarbonKg: 1.8, Price: 3.99},
	}
}

var alice = domain.User{ID: 1, Name: "Alice", Points: 0}
