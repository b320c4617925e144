package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_AddAccumulatesQuantity(t *testing.T) {
	svc := newTestDB(t)
	repo := NewCartRepository(svc.DB(), svc.Dialect())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1, 2, 1))
	require.NoError(t, repo.Add(ctx, 1, 2, 3))
	require.NoError(t, repo.Add(ctx, 1, 6, 2))

	items, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(2), items[0].ProductID)
	assert.Equal(t, "Organic Free-Range Chicken", items[0].Name)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, 12.99, items[0].Price)

	assert.Equal(t, int64(6), items[1].ProductID)
	assert.Equal(t, 2, items[1].Quantity)
	assert.True(t, items[1].IsOrganic)
}

func TestCartRepository_Clear(t *testing.T) {
	svc := newTestDB(t)
	repo := NewCartRepository(svc.DB(), svc.Dialect())
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 1, 3, 1))
	require.NoError(t, repo.Clear(ctx, 1))

	items, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)

	// clearing an empty cart is not an error
	assert.NoError(t, repo.Clear(ctx, 1))
}

func TestCartRepository_UnknownProductViolatesForeignKey(t *testing.T) {
	svc := newTestDB(t)
	repo := NewCartRepository(svc.DB(), svc.Dialect())

	err := repo.Add(context.Background(), 1, 999, 1)
	assert.Error(t, err)
}

func TestCartRepository_ConcurrentFirstAddsMerge(t *testing.T) {
	svc := newTestDB(t)
	repo := NewCartRepository(svc.DB(), svc.Dialect())
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Add(ctx, 1, 4, 1))
		}()
	}
	wg.Wait()

	items, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1, "one row per user and product")
	assert.Equal(t, workers, items[0].Quantity)
}
