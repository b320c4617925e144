package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"esg-recommender/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedProductRepository serves catalog reads from redis and falls through
// to the wrapped repository on a miss. Redis faults are logged and never
// returned: the database stays the source of truth.
type CachedProductRepository struct {
	next   ProductRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProductRepository wraps next with a redis read-through cache
func NewCachedProductRepository(next ProductRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedProductRepository {
	return &CachedProductRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedProductRepository) List(ctx context.Context, category string) ([]domain.Product, error) {
	key := catalogKey(category)

	var products []domain.Product
	if r.get(ctx, key, &products) {
		return products, nil
	}

	products, err := r.next.List(ctx, category)
	if err != nil {
		return nil, err
	}

	r.set(ctx, key, products)
	return products, nil
}

func (r *CachedProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	key := productKey(id)

	var product domain.Product
	if r.get(ctx, key, &product) && product.ID == id {
		return &product, nil
	}

	found, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.set(ctx, key, found)
	return found, nil
}

// Create writes through and invalidates the catalog listings the new product
// belongs to.
func (r *CachedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.next.Create(ctx, product); err != nil {
		return err
	}

	keys := []string{catalogKey(""), catalogKey(product.Category)}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("Redis DEL failed", zap.Strings("keys", keys), zap.Error(err))
	}

	return nil
}

func (r *CachedProductRepository) get(ctx context.Context, key string, dest any) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("Redis GET failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warn("Redis unmarshal failed", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (r *CachedProductRepository) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("Failed to marshal value for caching", zap.String("key", key), zap.Error(err))
		return
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("Redis SET failed", zap.String("key", key), zap.Error(err))
	}
}

func catalogKey(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "catalog:all"
	}
	return "catalog:" + category
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
