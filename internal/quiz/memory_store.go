package quiz

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a Repository kept in process memory. It backs the
// ":memory:" database setting and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[int64]Item
	nextID int64
}

func NewMemoryStore(items ...Item) *MemoryStore {
	store := &MemoryStore{
		items:  make(map[int64]Item),
		nextID: 1,
	}
	for _, item := range items {
		if item.ID <= 0 {
			item.ID = store.nextID
		}
		store.items[item.ID] = item
		if item.ID >= store.nextID {
			store.nextID = item.ID + 1
		}
	}
	return store
}

func (s *MemoryStore) Create(ctx context.Context, item Item) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, RepositoryError(err)
	}
	if err := item.Validate(); err != nil {
		return Item{}, RepositoryError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	s.nextID++
	s.items[item.ID] = item
	return item, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, RepositoryError(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return Item{}, NotFound(id)
	}
	return item, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, RepositoryError(err)
	}

	s.mu.RLock()
	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *MemoryStore) Update(ctx context.Context, item Item) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, RepositoryError(err)
	}
	if err := item.Validate(); err != nil {
		return Item{}, RepositoryError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return Item{}, NotFound(item.ID)
	}
	s.items[item.ID] = item
	return item, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return RepositoryError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return NotFound(id)
	}
	delete(s.items, id)
	return nil
}
