package response

import (
	"math"
	"time"

	"oneflow/internal/domain/entities"
)

type LineItemResponse struct {
	Type      string  `json:"type"`
	RefID     string  `json:"refId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Amount    float64 `json:"amount"`
}

// EstimateResponse carries the stored document plus the derived total.
// Total is computed on every response, never read from storage.
type EstimateResponse struct {
	ID              string             `json:"id"`
	EstimateNumber  string             `json:"estimateNumber"`
	Date            string             `json:"date"`
	CustomerID      string             `json:"customerId"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
	Items           []LineItemResponse `json:"items"`
	Total           float64            `json:"total"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, LineItemResponse{
			Type:      string(it.Type),
			RefID:     it.RefID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    roundCents(it.Amount()),
		})
	}
	return EstimateResponse{
		ID:              e.ID,
		EstimateNumber:  e.EstimateNumber,
		Date:            e.Date,
		CustomerID:      e.CustomerID,
		CustomerName:    e.CustomerName,
		CustomerEmail:   e.CustomerEmail,
		CustomerPhone:   e.CustomerPhone,
		CustomerAddress: e.CustomerAddress,
		Status:          string(e.Status),
		Notes:           e.Notes,
		Items:           items,
		Total:           roundCents(e.Total()),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}

// roundCents rounds to two decimal places for display.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
