package entities

// Customer is a tenant's customer record.
//
// Domain notes:
//   - Name is the only required field; everything else is free text.
//   - Estimates keep a denormalized snapshot of the customer taken at
//     composition time, so deleting a customer never cascades.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (c Customer) Key() string { return c.ID }
