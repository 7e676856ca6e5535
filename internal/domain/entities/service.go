package entities

// Service is a catalog entry for labor offered by the tenant.
// Price is the default unit price copied into estimate line items.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes"`
}

func (s Service) Key() string { return s.ID }
