// Package repo provides data access for the example item resource.
//
// The starter template ships with an in-memory implementation only; the
// repository interface is the seam where a real database would plug in
// (DATABASE_URL in the config is a placeholder for exactly that). Every
// application instance owns its repository — there is no package-level store.
package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/tzelal/go-htmx-starter/internal/domain"
)

// ItemRepository abstracts storage for items. Implementations must be safe
// for concurrent use by multiple requests.
type ItemRepository interface {
	// List returns all items ordered by ascending ID.
	List(ctx context.Context) ([]domain.Item, error)
	// Get returns the item with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id int) (*domain.Item, error)
	// Create stores item, assigns it a fresh ID, and returns the stored copy.
	Create(ctx context.Context, item domain.Item) (*domain.Item, error)
	// Update replaces the stored item with the same ID. Returns false when
	// no such item exists.
	Update(ctx context.Context, item domain.Item) (bool, error)
	// Delete removes the item with the given id. Returns false when no such
	// item exists.
	Delete(ctx context.Context, id int) (bool, error)
}

// MemoryItemRepository is a mutex-guarded in-memory ItemRepository. IDs are
// assigned from a monotonically increasing counter starting at 1.
type MemoryItemRepository struct {
	mu     sync.RWMutex
	items  map[int]domain.Item
	nextID int
}

// NewMemoryItemRepository returns an empty in-memory repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items:  make(map[int]domain.Item),
		nextID: 1,
	}
}

// List returns a snapshot of all items ordered by ID.
func (r *MemoryItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns the item with the given id, or nil when absent.
func (r *MemoryItemRepository) Get(ctx context.Context, id int) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// Create assigns the next ID and stores the item.
func (r *MemoryItemRepository) Create(ctx context.Context, item domain.Item) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return &item, nil
}

// Update replaces the stored item with the same ID.
func (r *MemoryItemRepository) Update(ctx context.Context, item domain.Item) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return false, nil
	}
	r.items[item.ID] = item
	return true, nil
}

// Delete removes the item with the given id.
func (r *MemoryItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
