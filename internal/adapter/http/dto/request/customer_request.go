package request

import "oneflow/internal/usecase"

// CreateCustomerRequest is the full-record create payload.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (r CreateCustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}

// UpdateCustomerRequest is a merge patch: absent fields keep the stored
// value.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

func (r UpdateCustomerRequest) ToPatch() usecase.CustomerPatch {
	return usecase.CustomerPatch{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Notes:   r.Notes,
	}
}
