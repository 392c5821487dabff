package domain

// Product is a catalog entry.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Merge returns p with every non-zero field of patch applied. Zero values in
// patch keep the current value, so a price or quantity cannot be reset to 0
// through an update.
func (p Product) Merge(patch Product) Product {
	if patch.Name != "" {
		p.Name = patch.Name
	}
	if patch.Description != "" {
		p.Description = patch.Description
	}
	if patch.Price != 0 {
		p.Price = patch.Price
	}
	if patch.Quantity != 0 {
		p.Quantity = patch.Quantity
	}
	return p
}
