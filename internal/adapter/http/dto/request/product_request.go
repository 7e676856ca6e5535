package request

import "oneflow/internal/usecase"

type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
	Price float64 `json:"price" binding:"required"`
	Notes string  `json:"notes"`
}

func (r CreateProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:  r.Name,
		Unit:  r.Unit,
		Price: r.Price,
		Notes: r.Notes,
	}
}

type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Unit  *string  `json:"unit"`
	Price *float64 `json:"price"`
	Notes *string  `json:"notes"`
}

func (r UpdateProductRequest) ToPatch() usecase.ProductPatch {
	return usecase.ProductPatch{
		Name:  r.Name,
		Unit:  r.Unit,
		Price: r.Price,
		Notes: r.Notes,
	}
}
