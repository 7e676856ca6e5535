package repository

import (
	"context"
	"time"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase/interfaces"
)

// MemoryEstimateRepository adds the status transition on top of the
// generic memory store and deep-copies the embedded line items so no
// caller ever aliases the stored slice.
type MemoryEstimateRepository struct {
	*MemoryCatalogRepository[entities.Estimate]
}

var _ interfaces.IEstimateRepository = (*MemoryEstimateRepository)(nil)

func NewMemoryEstimateRepository() *MemoryEstimateRepository {
	return &MemoryEstimateRepository{NewMemoryCatalogRepository[entities.Estimate]()}
}

func (r *MemoryEstimateRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	es, err := r.MemoryCatalogRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range es {
		es[i] = cloneEstimate(es[i])
	}
	return es, nil
}

func (r *MemoryEstimateRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := r.MemoryCatalogRepository.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	return cloneEstimate(e), nil
}

func (r *MemoryEstimateRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	created, err := r.MemoryCatalogRepository.Create(ctx, cloneEstimate(e))
	if err != nil {
		return entities.Estimate{}, err
	}
	return cloneEstimate(created), nil
}

func (r *MemoryEstimateRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	updated, err := r.MemoryCatalogRepository.Update(ctx, cloneEstimate(e))
	if err != nil {
		return entities.Estimate{}, err
	}
	return cloneEstimate(updated), nil
}

func (r *MemoryEstimateRepository) UpdateStatus(_ context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.records[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	e.Status = status
	e.UpdatedAt = time.Now().UTC()
	r.records[id] = e
	return cloneEstimate(e), nil
}

func cloneEstimate(e entities.Estimate) entities.Estimate {
	if e.Items == nil {
		return e
	}
	items := make([]entities.LineItem, len(e.Items))
	copy(items, e.Items)
	e.Items = items
	return e
}
