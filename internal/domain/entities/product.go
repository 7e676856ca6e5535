package entities

// Product is a catalog entry for goods sold by the tenant.
// Unit is a free-text unit-of-measure label ("L", "unit", "kg", ...).
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
	Notes string  `json:"notes"`
}

func (p Product) Key() string { return p.ID }
