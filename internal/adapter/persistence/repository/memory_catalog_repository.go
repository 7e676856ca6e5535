package repository

import (
	"context"
	"fmt"
	"sync"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase/interfaces"
)

// MemoryCatalogRepository is the process-local default store backing a
// single record collection.
//
// Semantics:
//   - List returns a fresh slice in insertion order.
//   - Update of a missing id returns the zero value, Delete reports
//     absence via the bool; neither is an error at this layer.
//   - Safe for concurrent use; a single RWMutex guards the collection.
type MemoryCatalogRepository[T interfaces.Keyed] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

var _ interfaces.ICatalogRepository[entities.Customer] = (*MemoryCatalogRepository[entities.Customer])(nil)

func NewMemoryCatalogRepository[T interfaces.Keyed]() *MemoryCatalogRepository[T] {
	return &MemoryCatalogRepository[T]{records: make(map[string]T)}
}

func (r *MemoryCatalogRepository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepository[T]) GetByID(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[id], nil
}

func (r *MemoryCatalogRepository[T]) Create(_ context.Context, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rec.Key()
	if _, exists := r.records[id]; exists {
		var zero T
		return zero, fmt.Errorf("record already exists: %s", id)
	}
	r.records[id] = rec
	r.order = append(r.order, id)
	return rec, nil
}

func (r *MemoryCatalogRepository[T]) Update(_ context.Context, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rec.Key()
	if _, exists := r.records[id]; !exists {
		var zero T
		return zero, nil
	}
	r.records[id] = rec
	return rec, nil
}

func (r *MemoryCatalogRepository[T]) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return false, nil
	}
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
