package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - The transition is one-way: Pending -> Approved. There is no
//     un-approve operation; approving twice is a no-op by value.
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "Pending"
	EstimateStatusApproved EstimateStatus = "Approved"
)

// LineItemType tells whether a line item was drawn from the services
// or the products catalog.
type LineItemType string

const (
	LineItemTypeService LineItemType = "service"
	LineItemTypeProduct LineItemType = "product"
)

// LineItem is one priced row inside an estimate.
//
// Name and UnitPrice are copied from the referenced Service/Product when
// the line is added; later catalog edits do not flow back into existing
// lines, and both fields stay editable on the line itself.
type LineItem struct {
	Type      LineItemType `json:"type"`
	RefID     string       `json:"refId"`
	Name      string       `json:"name"`
	Quantity  float64      `json:"quantity"`
	UnitPrice float64      `json:"unitPrice"`
}

// Amount is the line total. A missing quantity counts as 1.
func (li LineItem) Amount() float64 {
	q := li.Quantity
	if q == 0 {
		q = 1
	}
	return q * li.UnitPrice
}

// Estimate is a quote document combining a customer snapshot and priced
// line items.
//
// Domain notes:
//   - Customer* fields are a point-in-time copy of the selected customer,
//     not a foreign key resolved at read time; the snapshot survives
//     deletion of the customer record.
//   - The document total is always derived from Items, never stored.
//   - Date uses the form's day-granular layout (2006-01-02).
type Estimate struct {
	ID              string         `json:"id"`
	EstimateNumber  string         `json:"estimateNumber"`
	Date            string         `json:"date"`
	CustomerID      string         `json:"customerId"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	Status          EstimateStatus `json:"status"`
	Notes           string         `json:"notes"`
	Items           []LineItem     `json:"items"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (e Estimate) Key() string { return e.ID }

// Total is the derived document total over all line items.
func (e Estimate) Total() float64 {
	sum := 0.0
	for _, it := range e.Items {
		sum += it.Amount()
	}
	return sum
}
