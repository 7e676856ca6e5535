package request

import (
	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase"
)

// LineItemRequest is one row of the estimate editor. Quantity and unit
// price may be omitted for a freshly added line; the use case defaults
// them (1 and 0) and copies name/price from the referenced catalog
// record.
type LineItemRequest struct {
	Type      string  `json:"type" binding:"required"`
	RefID     string  `json:"refId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// EstimateRequest is the whole draft the editor submits, for both
// create and update.
type EstimateRequest struct {
	EstimateNumber  string            `json:"estimateNumber"`
	Date            string            `json:"date"`
	CustomerID      string            `json:"customerId"`
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerAddress string            `json:"customerAddress"`
	Notes           string            `json:"notes"`
	Items           []LineItemRequest `json:"items"`
}

func (r EstimateRequest) ToDraft() usecase.EstimateDraft {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.LineItem{
			Type:      entities.LineItemType(it.Type),
			RefID:     it.RefID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return usecase.EstimateDraft{
		EstimateNumber:  r.EstimateNumber,
		Date:            r.Date,
		CustomerID:      r.CustomerID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Notes:           r.Notes,
		Items:           items,
	}
}
