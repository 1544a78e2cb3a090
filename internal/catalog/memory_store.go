package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a mutex-guarded map store used by tests. The id counter
// only ever moves forward, so deleted ids are never reused, matching the
// bigserial behaviour of the Postgres store.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int64]Product
	nextID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]Product),
		nextID:   1,
	}
}

func (m *MemoryStore) List(_ context.Context) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})

	return products, nil
}

func (m *MemoryStore) Create(_ context.Context, p Product) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextID
	m.nextID++
	p.Active = true

	m.products[p.ID] = p
	return &p, nil
}

func (m *MemoryStore) Update(_ context.Context, p Product) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.products[p.ID]
	if !ok {
		return nil, ErrNotFound
	}

	existing.Name = p.Name
	existing.Price = p.Price
	existing.Description = p.Description

	m.products[p.ID] = existing
	return &existing, nil
}

func (m *MemoryStore) UpdatePrice(_ context.Context, id int64, price float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return ErrNotFound
	}

	p.Price = price
	m.products[id] = p
	return nil
}

func (m *MemoryStore) SetActive(_ context.Context, id int64, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return ErrNotFound
	}

	p.Active = active
	m.products[id] = p
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id int64) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	delete(m.products, id)
	return &p, nil
}
