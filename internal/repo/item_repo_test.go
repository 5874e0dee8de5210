package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tzelal/go-htmx-starter/internal/domain"
)

func TestMemoryItemRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryItemRepository()

	// Empty list
	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	// Create assigns sequential IDs starting at 1
	a, err := r.Create(ctx, domain.Item{Name: "a", Price: 1})
	require.NoError(t, err)
	require.Equal(t, 1, a.ID)

	b, err := r.Create(ctx, domain.Item{Name: "b", Price: 2})
	require.NoError(t, err)
	require.Equal(t, 2, b.ID)

	// Get
	got, err := r.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "a", got.Name)

	missing, err := r.Get(ctx, 99999)
	require.NoError(t, err)
	require.Nil(t, missing)

	// List is ordered by ID
	items, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, []int{1, 2}, []int{items[0].ID, items[1].ID})

	// Update
	a.Name = "a2"
	ok, err := r.Update(ctx, *a)
	require.NoError(t, err)
	require.True(t, ok)
	got, _ = r.Get(ctx, a.ID)
	require.Equal(t, "a2", got.Name)

	ok, err = r.Update(ctx, domain.Item{ID: 99999, Name: "x", Price: 1})
	require.NoError(t, err)
	require.False(t, ok)

	// Delete
	ok, err = r.Delete(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.Delete(ctx, b.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryItemRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryItemRepository()

	created, err := r.Create(ctx, domain.Item{Name: "orig", Price: 1})
	require.NoError(t, err)

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "orig", again.Name, "mutating a returned item must not affect the store")
}

func TestMemoryItemRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryItemRepository()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := r.Create(ctx, domain.Item{Name: fmt.Sprintf("item-%d", i), Price: 1})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, n)

	// IDs must be unique and dense: 1..n
	seen := make(map[int]bool, n)
	for _, it := range items {
		require.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
		require.GreaterOrEqual(t, it.ID, 1)
		require.LessOrEqual(t, it.ID, n)
	}
}
