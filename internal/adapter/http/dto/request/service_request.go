package request

import "oneflow/internal/usecase"

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes"`
}

func (r CreateServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Notes:       r.Notes,
	}
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Notes       *string  `json:"notes"`
}

func (r UpdateServiceRequest) ToPatch() usecase.ServicePatch {
	return usecase.ServicePatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Notes:       r.Notes,
	}
}
