package interfaces

import (
	"context"

	"oneflow/internal/domain/entities"
)

// IEstimateRepository extends the catalog contract with the status
// transition used by the approval flow.
//
// UpdateStatus follows the same absence convention: a zero Estimate
// means the id was not found.
type IEstimateRepository interface {
	ICatalogRepository[entities.Estimate]
	UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
}
